package app

import (
	"math"

	"github.com/gopherjs/gopherjs/js"
)

// paintFade covers the surface with a translucent black rectangle so old
// frames decay into trails instead of being hard-cleared.
func (a *App) paintFade() {
	if a.Ctx == nil {
		return
	}
	a.Ctx.Set("fillStyle", Theme.FadeFillStyle)
	a.Ctx.Call("fillRect", 0, 0, a.Field.Width, a.Field.Height)
}

// paintStars draws the frame's star ops: a motion-blur line for near stars
// with a valid anchor, then the star disc itself.
func (a *App) paintStars(ops []StarOp) {
	if a.Ctx == nil {
		return
	}

	for i := range ops {
		op := &ops[i]

		if op.Trail {
			a.Ctx.Set("globalAlpha", op.TrailAlpha)
			a.Ctx.Set("strokeStyle", Theme.TrailColor)
			a.Ctx.Set("lineWidth", op.TrailWidth)
			a.Ctx.Call("beginPath")
			a.Ctx.Call("moveTo", op.TrailFromX, op.TrailFromY)
			a.Ctx.Call("lineTo", op.X, op.Y)
			a.Ctx.Call("stroke")
		}

		a.Ctx.Set("globalAlpha", op.Opacity)
		a.Ctx.Set("fillStyle", Theme.StarColor)
		a.Ctx.Call("beginPath")
		a.Ctx.Call("arc", op.X, op.Y, op.Size, 0, math.Pi*2)
		a.Ctx.Call("fill")
	}

	a.Ctx.Set("globalAlpha", 1)
}

// applyPulse pushes the pulse opacity to the decorative DOM element.
func (a *App) applyPulse() {
	if js.Global == nil || a.Canvas == nil {
		return
	}
	pulse := js.Global.Get("document").Call("getElementById", "pulse")
	if pulse == nil || pulse == js.Undefined {
		return
	}
	pulse.Get("style").Set("opacity", a.PulseOpacity)
}

// setBodyClass adds a phase class to the document body, driving the CSS
// entrance transitions of the primary UI.
func (a *App) setBodyClass(name string) {
	if js.Global == nil || a.Canvas == nil {
		return
	}
	body := js.Global.Get("document").Get("body")
	if body == nil || body == js.Undefined {
		return
	}
	body.Get("classList").Call("add", name)
}
