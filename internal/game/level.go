package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generator produces the target set for a level.
type Generator interface {
	// Generate returns BaseTargets + TargetsPerLevel*difficulty fresh
	// targets. difficulty must be >= 1; the generator itself places no
	// upper bound on it.
	Generate(ctx context.Context, difficulty int) ([]Target, error)
}

// LevelGenerator samples target positions, colors and point values
// uniformly at random.
type LevelGenerator struct {
	// Delay is an optional pause before the targets are returned, used
	// only to pace the level-start presentation. Zero means none.
	Delay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewLevelGenerator creates a LevelGenerator seeded from the clock.
func NewLevelGenerator() *LevelGenerator {
	return &LevelGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededLevelGenerator creates a LevelGenerator with a fixed seed,
// for reproducible tests.
func NewSeededLevelGenerator(seed int64) *LevelGenerator {
	return &LevelGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Generate implements Generator.
func (g *LevelGenerator) Generate(ctx context.Context, difficulty int) ([]Target, error) {
	if difficulty < 1 {
		return nil, fmt.Errorf("difficulty %d out of range, must be >= 1", difficulty)
	}

	if g.Delay > 0 {
		select {
		case <-time.After(g.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	count := BaseTargets + TargetsPerLevel*difficulty
	targets := make([]Target, count)
	for i := range targets {
		targets[i] = Target{
			ID: uuid.NewString(),
			Position: Vec3{
				X: g.uniform(-FieldHalfWidth, FieldHalfWidth),
				Y: g.uniform(-FieldHalfHeight, FieldHalfHeight),
				Z: 0,
			},
			Color:  NeonPalette[g.rng.Intn(len(NeonPalette))],
			Points: PointStep * (1 + g.rng.Intn(PointMultiples)),
		}
	}

	return targets, nil
}

func (g *LevelGenerator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
