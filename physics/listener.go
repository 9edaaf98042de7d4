package physics

// Listener is notified of every contact found during a step. Returning false
// keeps the contact out of overlap correction for that step only.
type Listener interface {
	OnCollision(a, b *Body) bool
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(a, b *Body) bool

func (f ListenerFunc) OnCollision(a, b *Body) bool {
	return f(a, b)
}
