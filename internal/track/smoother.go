package track

// SmoothingFactor is the per-tick lerp factor toward the latest
// fingertip position. It is applied once per game tick regardless of
// elapsed wall time, so responsiveness scales with the tick rate; this
// matches the tuned feel of the game and is deliberate.
const SmoothingFactor = 0.2

// Viewport holds the world-space dimensions the normalized camera
// coordinates map onto. It is read fresh every tick so resizes take
// effect immediately.
type Viewport struct {
	Width  float64
	Height float64
}

// Position is a pointer position in world space. Z is always 0; the
// playfield is planar.
type Position struct {
	X, Y, Z float64
}

// Smoother converts the latest normalized fingertip position into a
// smoothed world-space pointer. With no sample yet, it steers toward
// the viewport center (normalized {0.5, 0.5}).
type Smoother struct {
	slot *Slot
	pos  Position
}

// NewSmoother creates a Smoother reading from the given slot.
// The pointer starts at the world origin, which is where the default
// centered landmark maps to.
func NewSmoother(slot *Slot) *Smoother {
	return &Smoother{slot: slot}
}

// Tick advances the smoothed position by one frame and returns it.
//
// The normalized point maps to world space as X=(x-0.5)*w and
// Y=-(y-0.5)*h: camera coordinates grow downward, world Y grows upward.
func (s *Smoother) Tick(vp Viewport) Position {
	nx, ny := 0.5, 0.5
	if p, ok := s.slot.Latest(); ok {
		nx, ny = p.X, p.Y
	}

	targetX := (nx - 0.5) * vp.Width
	targetY := -(ny - 0.5) * vp.Height

	s.pos.X = lerp(s.pos.X, targetX, SmoothingFactor)
	s.pos.Y = lerp(s.pos.Y, targetY, SmoothingFactor)
	s.pos.Z = 0

	return s.pos
}

// Position returns the current smoothed position without advancing it.
func (s *Smoother) Position() Position {
	return s.pos
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
