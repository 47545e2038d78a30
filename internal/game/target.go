package game

import "math"

// Vec3 is a position in world space.
type Vec3 struct {
	X, Y, Z float64
}

// Dist returns the Euclidean distance between two positions.
func (v Vec3) Dist(o Vec3) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	dz := v.Z - o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Target is a collectible entity. IDs are unique within a session and
// never reused; a consumed target is gone for good.
type Target struct {
	ID       string
	Position Vec3
	Color    string
	Points   int
}
