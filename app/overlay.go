package app

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// StatsOverlay displays real-time scene statistics
type StatsOverlay struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64

	// Position and styling
	PanelX      int
	PanelY      int
	LineHeight  int
	PanelWidth  int
	PanelHeight int
}

// NewStatsOverlay creates a new stats overlay instance
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{
		Visible:     false,
		PanelX:      16,
		PanelY:      16,
		LineHeight:  18,
		PanelWidth:  232,
		PanelHeight: 190,
	}
}

// Toggle toggles the stats overlay visibility
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS updates the FPS counter
func (s *StatsOverlay) UpdateFPS(currentTime float64) {
	s.FrameCount++

	// Update FPS every second
	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

// Render draws the stats overlay
func (s *StatsOverlay) Render(ctx *js.Object, a *App) {
	if !s.Visible || ctx == nil {
		return
	}

	// Panel background
	ctx.Set("fillStyle", Theme.OverlayBackground)
	ctx.Call("fillRect", s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)

	// Panel border
	ctx.Set("strokeStyle", Theme.OverlayBorder)
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)

	// Title
	ctx.Set("fillStyle", Theme.OverlayTitle)
	ctx.Set("font", Theme.OverlayTitleFont)
	ctx.Set("textAlign", "left")
	ctx.Call("fillText", "SCENE STATS [F10]", s.PanelX+10, s.PanelY+20)

	// Separator
	ctx.Set("strokeStyle", "#444444")
	ctx.Call("beginPath")
	ctx.Call("moveTo", s.PanelX+10, s.PanelY+28)
	ctx.Call("lineTo", s.PanelX+s.PanelWidth-10, s.PanelY+28)
	ctx.Call("stroke")

	// Stats content
	ctx.Set("font", Theme.OverlayFont)
	y := s.PanelY + 48

	s.drawStatLine(ctx, "FPS", strconv.FormatFloat(s.CurrentFPS, 'f', 1, 64), Theme.OverlayAccent, y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Phase", a.Phase().String(), Theme.OverlayValue, y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Speed", strconv.FormatFloat(a.Speed.Current, 'f', 5, 64), Theme.OverlayValue, y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Target", strconv.FormatFloat(a.Speed.Target, 'f', 5, 64), Theme.OverlayValue, y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Stars", strconv.Itoa(len(a.Field.Stars)), Theme.OverlayValue, y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Pulse", strconv.FormatFloat(a.PulseOpacity, 'f', 2, 64), Theme.OverlayValue, y)
	y += s.LineHeight

	drone := "off"
	if a.Drone.Started() {
		drone = "on"
	}
	s.drawStatLine(ctx, "Drone", drone, Theme.OverlayValue, y)
}

// drawStatLine draws a single stat line with label and value
func (s *StatsOverlay) drawStatLine(ctx *js.Object, label, value, valueColor string, y int) {
	ctx.Set("fillStyle", Theme.OverlayLabel)
	ctx.Call("fillText", label+":", s.PanelX+15, y)

	ctx.Set("fillStyle", valueColor)
	ctx.Set("textAlign", "right")
	ctx.Call("fillText", value, s.PanelX+s.PanelWidth-15, y)
	ctx.Set("textAlign", "left")
}
