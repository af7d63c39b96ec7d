package app

import (
	"github.com/gopherjs/gopherjs/js"
)

// SetupInputHandlers wires the DOM: vision textarea, begin button, viewport
// resize and the stats overlay toggle. Called once from Mount.
func (a *App) SetupInputHandlers() {
	doc := js.Global.Get("document")

	// Vision textarea: content feeds the speed coupling and gates the
	// begin button. No validation, no length limit.
	vision := doc.Call("getElementById", "vision")
	if vision != nil && vision != js.Undefined {
		vision.Call("addEventListener", "input", func(event *js.Object) {
			a.SetVision(vision.Get("value").String())
			a.updateBeginState()
		})
	}

	// Begin button: a single trigger with no payload
	begin := doc.Call("getElementById", "begin")
	if begin != nil && begin != js.Undefined {
		begin.Call("addEventListener", "click", func(event *js.Object) {
			a.Begin()
		})
	}

	// Viewport resize: keep the surface and projection in sync
	a.resizeCB = js.MakeFunc(func(this *js.Object, args []*js.Object) interface{} {
		a.resizeSurface()
		return nil
	})
	js.Global.Call("addEventListener", "resize", a.resizeCB)

	// Stats overlay toggle (F10 = 121)
	doc.Call("addEventListener", "keydown", func(event *js.Object) {
		if event.Get("keyCode").Int() == 121 {
			a.StatsOverlay.Toggle()
			event.Call("preventDefault")
		}
	})

	// First pointer interaction resumes a context suspended by the
	// autoplay policy
	doc.Call("addEventListener", "click", func(event *js.Object) {
		a.Drone.Resume()
	})
}

// resizeSurface matches the canvas and projection to the viewport.
func (a *App) resizeSurface() {
	if a.Canvas == nil {
		return
	}
	width := js.Global.Get("innerWidth").Float()
	height := js.Global.Get("innerHeight").Float()
	a.Canvas.Set("width", width)
	a.Canvas.Set("height", height)
	a.Field.Resize(width, height)
}

// removeResizeHandler detaches the viewport listener on teardown.
func (a *App) removeResizeHandler() {
	if a.resizeCB == nil || js.Global == nil {
		return
	}
	js.Global.Call("removeEventListener", "resize", a.resizeCB)
	a.resizeCB = nil
}

// updateBeginState enables the begin button only while the vision text is
// non-empty.
func (a *App) updateBeginState() {
	begin := js.Global.Get("document").Call("getElementById", "begin")
	if begin == nil || begin == js.Undefined {
		return
	}
	begin.Set("disabled", !a.Speed.HasVision())
}
