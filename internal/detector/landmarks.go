// Package detector provides hand detection for fingertip tracking.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point is a landmark coordinate normalized to the camera frame.
// X and Y are in [0,1]; Z is MediaPipe's relative depth estimate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Hand holds the 21 landmarks of one detected hand.
type Hand struct {
	Points     [NumLandmarks]Point `json:"points"`
	Handedness string              `json:"handedness"` // "Left" or "Right"
	Score      float64             `json:"score"`
}

// Fingertip returns the index-finger tip position, the landmark that
// drives the game pointer. ok is false when the coordinate is malformed
// (non-finite or outside [0,1]²); callers drop such samples and keep
// their previous value.
func (h *Hand) Fingertip() (Point, bool) {
	p := h.Points[IndexTip]
	if !isFinite(p.X) || !isFinite(p.Y) {
		return Point{}, false
	}
	if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
		return Point{}, false
	}
	return p, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
