// Package track turns raw fingertip landmarks into a smoothed pointer
// position in world space.
package track

import (
	"math"
	"sync/atomic"

	"github.com/ayusman/glowbite/internal/detector"
)

// Slot is a single-value, last-write-wins cell carrying the latest
// normalized fingertip position from the capture pipeline to the game
// loop. There is no queue: the producer overwrites, the consumer reads
// whatever is current and never blocks. A stalled producer simply leaves
// the last value in place.
type Slot struct {
	point atomic.Pointer[detector.Point]
}

// Store publishes a new fingertip position. Malformed samples
// (non-finite or outside [0,1]²) are ignored, which leaves the previous
// value visible to the consumer.
func (s *Slot) Store(p detector.Point) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return
	}
	if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
		return
	}
	s.point.Store(&p)
}

// Latest returns the most recently stored position. ok is false until
// the first valid sample arrives.
func (s *Slot) Latest() (detector.Point, bool) {
	p := s.point.Load()
	if p == nil {
		return detector.Point{}, false
	}
	return *p, true
}
