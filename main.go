//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/stillfield/stillfield/app"
)

func main() {
	// Get the canvas element
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "c")
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}

	// Size the drawing surface to the viewport
	canvas.Set("width", js.Global.Get("innerWidth"))
	canvas.Set("height", js.Global.Get("innerHeight"))

	// Get 2D context
	ctx := canvas.Call("getContext", "2d")

	// Create the app instance and start the intro sequence
	a := app.NewApp(app.BrowserTimers)
	a.Mount(canvas, ctx)

	// Expose a small control API to the host page
	js.Global.Set("Stillfield", map[string]interface{}{
		"begin": func() bool {
			return a.Begin()
		},
		"setVision": func(text string) {
			a.SetVision(text)
		},
		"phase": func() string {
			return a.Phase().String()
		},
		"targetSpeed": func() float64 {
			return a.Speed.Target
		},
		"setSeed": func(seed int) {
			a.RNG.SetSeed(uint32(seed))
		},
	})

	// Tear down timers, the frame loop and audio when the page goes away
	js.Global.Call("addEventListener", "beforeunload", func() {
		a.Unmount()
	})

	select {}
}
