package physics

import "github.com/milk9111/tankbattle/common"

const (
	// OverlapAllowance is the penetration left uncorrected to avoid jitter.
	OverlapAllowance float32 = 0.05
	// OverlapCorrectPercent is the fraction of the remaining penetration
	// corrected per step.
	OverlapCorrectPercent float32 = 0.6
)

// Manifold is the result of a narrow-phase test between A and B.
type Manifold struct {
	A *Body
	B *Body

	Overlap float32
	// Normal points from A toward B.
	Normal common.Vec2
}

func (m *Manifold) SetContact(overlap float32, normal common.Vec2) {
	m.Overlap = overlap
	m.Normal = normal
}

func (m *Manifold) FlipNormal() {
	m.Normal = m.Normal.Neg()
}

// CorrectOverlap pushes A and B apart along the normal, weighted by their
// inverse masses.
func (m *Manifold) CorrectOverlap() {
	if m == nil || m.A == nil || m.B == nil {
		return
	}
	invA := m.A.InverseMass()
	invB := m.B.InverseMass()
	invSum := invA + invB
	if invSum == 0 {
		return
	}

	depth := m.Overlap - OverlapAllowance
	if depth < 0 {
		depth = 0
	}
	correction := m.Normal.Scale(depth / invSum * OverlapCorrectPercent)

	m.A.SetPosition(m.A.Position().Sub(correction.Scale(invA)))
	m.B.SetPosition(m.B.Position().Add(correction.Scale(invB)))
}
