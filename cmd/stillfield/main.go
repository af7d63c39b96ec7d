//go:build !js
// +build !js

package main

import (
	"flag"
	"log"

	"github.com/stillfield/stillfield/term"
)

func main() {
	seed := flag.Uint("seed", 1, "starfield seed (same seed replays the same field)")
	mute := flag.Bool("mute", false, "disable the ambient drone")
	fps := flag.Int("fps", 30, "frames per second")
	flag.Parse()

	ui, err := term.NewUI(uint32(*seed), !*mute, *fps)
	if err != nil {
		log.Fatalf("terminal init failed: %v", err)
	}
	if err := ui.Run(); err != nil {
		log.Fatalf("scene error: %v", err)
	}
}
