// Package game holds the arcade core: targets, level generation,
// collision and the session state machine.
package game

// Gameplay tuning constants. EatDistance and the field extents are
// balance values tuned against the pointer smoothing, not derived from
// target size.
const (
	// EatDistance is the world-space distance below which the pointer
	// consumes a target. The comparison is strict (<, not <=).
	EatDistance = 0.8

	// Field extents: targets spawn with x in [-FieldHalfWidth,
	// FieldHalfWidth] and y in [-FieldHalfHeight, FieldHalfHeight].
	FieldHalfWidth  = 6.0
	FieldHalfHeight = 3.5

	// Level size: BaseTargets + TargetsPerLevel * difficulty.
	BaseTargets     = 5
	TargetsPerLevel = 3

	// MaxLevel caps the difficulty passed to the generator.
	MaxLevel = 10

	// Point values are PointStep * (1..PointMultiples).
	PointStep      = 10
	PointMultiples = 5
)

// NeonPalette is the fixed set of target colors.
var NeonPalette = [6]string{
	"#ff00ff", // magenta
	"#00ffff", // cyan
	"#39ff14", // green
	"#ffff00", // yellow
	"#ff9100", // orange
	"#ff2079", // pink
}
