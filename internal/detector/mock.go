package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []Hand
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []Hand) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]Hand, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// PointingHandAt returns a preset Hand with the index finger extended so
// that its tip sits at the given normalized position. The remaining
// fingers are curled toward the palm below it.
func PointingHandAt(x, y float64) Hand {
	hand := Hand{
		Handedness: "Right",
		Score:      0.95,
	}

	// Wrist well below the fingertip
	hand.Points[Wrist] = Point{X: x, Y: y + 0.35, Z: 0.0}

	// Thumb tucked sideways
	hand.Points[ThumbCMC] = Point{X: x + 0.04, Y: y + 0.30, Z: 0.0}
	hand.Points[ThumbMCP] = Point{X: x + 0.07, Y: y + 0.26, Z: 0.0}
	hand.Points[ThumbIP] = Point{X: x + 0.08, Y: y + 0.23, Z: 0.0}
	hand.Points[ThumbTip] = Point{X: x + 0.08, Y: y + 0.21, Z: 0.0}

	// Index finger extended straight up to the target position
	hand.Points[IndexMCP] = Point{X: x, Y: y + 0.22, Z: 0.0}
	hand.Points[IndexPIP] = Point{X: x, Y: y + 0.15, Z: 0.0}
	hand.Points[IndexDIP] = Point{X: x, Y: y + 0.07, Z: 0.0}
	hand.Points[IndexTip] = Point{X: x, Y: y, Z: 0.0}

	// Middle finger curled
	hand.Points[MiddleMCP] = Point{X: x - 0.03, Y: y + 0.21, Z: -0.02}
	hand.Points[MiddlePIP] = Point{X: x - 0.03, Y: y + 0.17, Z: -0.05}
	hand.Points[MiddleDIP] = Point{X: x - 0.04, Y: y + 0.20, Z: -0.04}
	hand.Points[MiddleTip] = Point{X: x - 0.04, Y: y + 0.23, Z: -0.02}

	// Ring finger curled
	hand.Points[RingMCP] = Point{X: x - 0.06, Y: y + 0.22, Z: -0.02}
	hand.Points[RingPIP] = Point{X: x - 0.06, Y: y + 0.18, Z: -0.05}
	hand.Points[RingDIP] = Point{X: x - 0.07, Y: y + 0.21, Z: -0.04}
	hand.Points[RingTip] = Point{X: x - 0.07, Y: y + 0.24, Z: -0.02}

	// Pinky curled
	hand.Points[PinkyMCP] = Point{X: x - 0.09, Y: y + 0.24, Z: -0.02}
	hand.Points[PinkyPIP] = Point{X: x - 0.09, Y: y + 0.20, Z: -0.05}
	hand.Points[PinkyDIP] = Point{X: x - 0.10, Y: y + 0.23, Z: -0.04}
	hand.Points[PinkyTip] = Point{X: x - 0.10, Y: y + 0.26, Z: -0.02}

	return hand
}
