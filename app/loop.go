package app

import "github.com/gopherjs/gopherjs/js"

// startLoop begins the per-frame render callback. Headless instances have
// no context and nothing to schedule.
func (a *App) startLoop() {
	if a.Ctx == nil || js.Global == nil {
		return
	}

	// Cancel existing animation frame
	if a.AnimationFrameID > 0 {
		js.Global.Call("cancelAnimationFrame", a.AnimationFrameID)
	}

	a.AnimationFrameID = js.Global.Call("requestAnimationFrame", a.FrameRAF).Int()
}

// stopLoop cancels the per-frame reschedule.
func (a *App) stopLoop() {
	if a.AnimationFrameID > 0 && js.Global != nil {
		js.Global.Call("cancelAnimationFrame", a.AnimationFrameID)
	}
	a.AnimationFrameID = 0
}

// FrameRAF is the frame callback using requestAnimationFrame. It runs at
// display refresh rate while the field is active.
func (a *App) FrameRAF(currentTime float64) {
	// Schedule next frame
	a.AnimationFrameID = js.Global.Call("requestAnimationFrame", a.FrameRAF).Int()

	a.StatsOverlay.UpdateFPS(currentTime)
	a.LastFrameTime = currentTime

	a.StepFrame()

	// Debug overlay on top of the scene
	a.StatsOverlay.Render(a.Ctx, a)
}

// StepFrame advances the simulation one frame and paints it: ease the
// current speed toward the target, lay down the translucent fade, then
// draw every star op the field emits.
func (a *App) StepFrame() {
	a.Speed.Step()
	ops := a.Field.Frame(a.Speed.Current)
	a.paintFade()
	a.paintStars(ops)
}
