package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/milk9111/tankbattle/prefabs"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"
)

const clipboardHold = 10 * time.Second

func main() {
	sceneName := flag.String("scene", "drop", "scene file, or scene name in prefabs/scenes (.yaml optional)")
	steps := flag.Int("steps", 0, "number of steps (0 uses the scene's steps)")
	dt := flag.Float64("dt", 0, "time step in seconds (0 uses the scene's dt)")
	every := flag.Int("every", 0, "snapshot every N steps (0 snapshots only the first and last)")
	copyReport := flag.Bool("copy", false, "also copy the report to the clipboard")
	flag.Parse()

	spec, err := prefabs.LoadSceneSpec(*sceneName)
	if err != nil {
		log.Fatal(err)
	}
	if *steps <= 0 {
		*steps = spec.Steps
	}
	if *dt <= 0 {
		*dt = spec.DT
	}
	if *steps <= 0 || *dt <= 0 {
		log.Fatalf("simulate: %s: need positive steps and dt, got %d and %v", *sceneName, *steps, *dt)
	}

	scene, err := BuildScene(spec)
	if err != nil {
		log.Fatal(err)
	}
	report := scene.Run(*steps, float32(*dt), *every)

	out, err := yaml.Marshal(report)
	if err != nil {
		log.Fatalf("simulate: marshal report: %v", err)
	}
	fmt.Fprint(os.Stdout, string(out))

	if *copyReport {
		if err := clipboard.Init(); err != nil {
			log.Printf("simulate: clipboard unavailable: %v", err)
			return
		}
		changed := clipboard.Write(clipboard.FmtText, out)
		log.Printf("simulate: report copied to clipboard, holding it for %s", clipboardHold)
		// the selection is owned by this process on some platforms
		select {
		case <-changed:
		case <-time.After(clipboardHold):
		}
	}
}
