package app

import "github.com/stillfield/stillfield/common"

// Star is one point of the starfield: a normalized 3D position radiating
// from the vanishing point, plus the previous screen-space projection used
// as the anchor for its motion trail.
type Star struct {
	X, Y float64 // Lateral offsets in [-1, 1)
	Z    float64 // Depth in (ZMin, ZMax], decreasing toward the viewer

	PrevX, PrevY float64 // Last drawn projection (trail anchor)
	HasPrev      bool    // False until first draw and after respawn
}

// StarOp is one star's draw commands for a frame, in screen space.
// Rendering surfaces (canvas, terminal) consume these without touching
// the simulation.
type StarOp struct {
	X, Y    float64
	Size    float64
	Opacity float64

	Trail      bool
	TrailFromX float64
	TrailFromY float64
	TrailAlpha float64
	TrailWidth float64
}

// Field is the starfield simulation. All math is pure; the only external
// input is the surface size and the per-frame speed.
type Field struct {
	Stars  []Star
	Width  float64
	Height float64

	rng *common.SeededRNG
	ops []StarOp
}

// NewField creates an empty field. Stars are allocated by Populate once the
// awakening phase activates rendering.
func NewField(rng *common.SeededRNG) *Field {
	return &Field{
		rng: rng,
		ops: make([]StarOp, 0, StarCount),
	}
}

// Active reports whether the star set has been allocated.
func (f *Field) Active() bool {
	return len(f.Stars) > 0
}

// Populate allocates the star set with random lateral positions and depths.
// Allocated once per session; repeated calls are no-ops so late resize or
// re-activation never resets the field.
func (f *Field) Populate() {
	if f.Active() {
		return
	}
	f.Stars = make([]Star, StarCount)
	for i := range f.Stars {
		f.Stars[i] = Star{
			X: f.rng.RandomFloat(-1, 1),
			Y: f.rng.RandomFloat(-1, 1),
			Z: f.rng.RandomFloat(ZMin, ZMax),
		}
	}
}

// Resize updates the surface dimensions used for projection.
func (f *Field) Resize(width, height float64) {
	f.Width = width
	f.Height = height
}

// respawn resets a star to full depth with a fresh lateral position.
// The trail anchor is cleared so no trail is drawn on the respawn frame.
func (f *Field) respawn(s *Star) {
	s.X = f.rng.RandomFloat(-1, 1)
	s.Y = f.rng.RandomFloat(-1, 1)
	s.Z = ZMax
	s.HasPrev = false
}

// Frame advances every star by speed and returns the draw ops for this
// frame. Stars that respawn or project more than OffscreenMargin outside
// the surface are skipped; a skipped star keeps its previous trail anchor.
func (f *Field) Frame(speed float64) []StarOp {
	f.ops = f.ops[:0]

	centerX := f.Width / 2
	centerY := f.Height / 2

	for i := range f.Stars {
		s := &f.Stars[i]

		s.Z -= speed
		if s.Z <= ZMin {
			f.respawn(s)
			continue
		}

		// Perspective projection toward the surface center
		scale := 1 / s.Z
		sx := s.X*scale*centerX + centerX
		sy := s.Y*scale*centerY + centerY

		if sx < -OffscreenMargin || sx > f.Width+OffscreenMargin ||
			sy < -OffscreenMargin || sy > f.Height+OffscreenMargin {
			// Off-surface: skip both the draw and the anchor update.
			// The stale anchor can produce one long trail segment when
			// the star re-enters view, matching observed behavior.
			continue
		}

		depth := 1 - s.Z/ZMax
		size := depth * StarSizeScale
		if size < 0 {
			size = 0
		}
		opacity := depth * StarOpacityScale
		if opacity > 1 {
			opacity = 1
		}

		op := StarOp{
			X:       sx,
			Y:       sy,
			Size:    size,
			Opacity: opacity,
		}

		// Motion trail only for near stars with a valid anchor
		if s.HasPrev && s.Z < TrailDepth {
			op.Trail = true
			op.TrailFromX = s.PrevX
			op.TrailFromY = s.PrevY
			op.TrailAlpha = opacity * TrailAlphaFactor
			op.TrailWidth = size * TrailWidthFactor
		}

		f.ops = append(f.ops, op)

		s.PrevX = sx
		s.PrevY = sy
		s.HasPrev = true
	}

	return f.ops
}
