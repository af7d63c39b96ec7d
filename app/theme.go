package app

// Theme holds all visual styling constants for easy customization.
var Theme = struct {
	// Background
	BackgroundColor string
	FadeFillStyle   string

	// Stars
	StarColor  string
	TrailColor string

	// Breath pulse
	PulseColor string

	// Overlay panel
	OverlayBackground string
	OverlayBorder     string
	OverlayTitle      string
	OverlayLabel      string
	OverlayValue      string
	OverlayAccent     string

	// Fonts
	OverlayTitleFont string
	OverlayFont      string
}{
	// Background - near-black void, fade fill carries the trail decay
	BackgroundColor: "#000",
	FadeFillStyle:   "rgba(0,0,0,.25)",

	// Stars - cold white with a faint blue cast
	StarColor:  "#EAF4FF",
	TrailColor: "#AFD3F2",

	// Breath pulse - muted violet
	PulseColor: "#8A7FB8",

	// Overlay panel
	OverlayBackground: "rgba(0, 0, 0, 0.75)",
	OverlayBorder:     "#00aaff",
	OverlayTitle:      "#00aaff",
	OverlayLabel:      "#cccccc",
	OverlayValue:      "#ffffff",
	OverlayAccent:     "#00ff88",

	// Fonts
	OverlayTitleFont: "bold 14px monospace",
	OverlayFont:      "12px monospace",
}
