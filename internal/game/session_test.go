package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// stubGenerator returns a fixed target set, optionally blocking until
// released so tests can observe the generating phase.
type stubGenerator struct {
	targets []Target
	err     error
	release chan struct{}
}

func (g *stubGenerator) Generate(ctx context.Context, difficulty int) ([]Target, error) {
	if g.release != nil {
		select {
		case <-g.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if g.err != nil {
		return nil, g.err
	}
	out := make([]Target, len(g.targets))
	copy(out, g.targets)
	return out, nil
}

func targetAt(id string, x, y float64, points int) Target {
	return Target{
		ID:       id,
		Position: Vec3{X: x, Y: y},
		Color:    NeonPalette[0],
		Points:   points,
	}
}

func waitStatus(t *testing.T, s *Session, want Status) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.Status() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("status = %v, want %v", s.Status(), want)
}

func startPlaying(t *testing.T, targets ...Target) *Session {
	t.Helper()
	s := NewSession(&stubGenerator{targets: targets})
	s.Start(context.Background())
	waitStatus(t, s, StatusPlaying)
	return s
}

func TestSession_StartTransitionsToPlaying(t *testing.T) {
	s := startPlaying(t, targetAt("a", 3, 0, 10))

	if got := len(s.Targets()); got != 1 {
		t.Errorf("len(targets) = %d, want 1", got)
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0", s.Score())
	}
}

func TestSession_StartIgnoredUnlessIdle(t *testing.T) {
	gen := &stubGenerator{targets: []Target{targetAt("a", 3, 0, 10)}, release: make(chan struct{})}
	s := NewSession(gen)

	s.Start(context.Background())
	if s.Status() != StatusGenerating {
		t.Fatalf("status = %v, want generating", s.Status())
	}

	// A second rapid start while a request is outstanding is a no-op.
	s.Start(context.Background())

	close(gen.release)
	waitStatus(t, s, StatusPlaying)

	if got := len(s.Targets()); got != 1 {
		t.Errorf("len(targets) = %d, want 1 from a single generation", got)
	}
}

func TestSession_TargetsClearedBeforeGenerationCompletes(t *testing.T) {
	gen := &stubGenerator{targets: []Target{targetAt("a", 3, 0, 10)}, release: make(chan struct{})}
	s := NewSession(gen)

	s.Start(context.Background())
	if got := len(s.Targets()); got != 0 {
		t.Errorf("len(targets) while generating = %d, want 0", got)
	}
	close(gen.release)
	waitStatus(t, s, StatusPlaying)
}

func TestSession_GenerationFailureRevertsToIdle(t *testing.T) {
	s := NewSession(&stubGenerator{err: errors.New("boom")})
	s.Start(context.Background())
	waitStatus(t, s, StatusIdle)

	if got := len(s.Targets()); got != 0 {
		t.Errorf("len(targets) after failure = %d, want 0", got)
	}
}

func TestSession_CollisionThresholdIsStrict(t *testing.T) {
	cases := []struct {
		name  string
		x     float64
		eaten bool
	}{
		{"inside threshold", 0.79, true},
		{"exactly threshold", 0.8, false},
		{"outside threshold", 0.81, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := startPlaying(t,
				targetAt("near", 0, 0, 10),
				targetAt("far", 5, 3, 10),
			)

			var eatenIDs []string
			s.OnEaten = func(id string, points int) {
				eatenIDs = append(eatenIDs, id)
			}

			s.Step(Vec3{X: tc.x, Y: 0})

			got := len(eatenIDs) == 1 && eatenIDs[0] == "near"
			if got != tc.eaten {
				t.Errorf("pointer at distance %f: eaten = %v, want %v", tc.x, got, tc.eaten)
			}
		})
	}
}

func TestSession_MultipleTargetsEatenInOnePass(t *testing.T) {
	s := startPlaying(t,
		targetAt("a", 0.2, 0, 10),
		targetAt("b", -0.2, 0, 20),
		targetAt("c", 5, 3, 30),
	)

	var eaten int
	s.OnEaten = func(id string, points int) { eaten++ }

	s.Step(Vec3{})

	if eaten != 2 {
		t.Errorf("eaten in one pass = %d, want 2", eaten)
	}
	if s.Score() != 30 {
		t.Errorf("score = %d, want 30", s.Score())
	}
	if got := len(s.Targets()); got != 1 {
		t.Errorf("len(targets) = %d, want 1", got)
	}
}

func TestSession_TargetEatenAtMostOnce(t *testing.T) {
	s := startPlaying(t,
		targetAt("a", 0, 0, 10),
		targetAt("far", 5, 3, 10),
	)

	counts := make(map[string]int)
	s.OnEaten = func(id string, points int) { counts[id]++ }

	// Pointer lingers on the same spot for many frames.
	for i := 0; i < 10; i++ {
		s.Step(Vec3{})
	}

	if counts["a"] != 1 {
		t.Errorf(`target "a" eaten %d times, want exactly 1`, counts["a"])
	}
	if s.Score() != 10 {
		t.Errorf("score = %d, want 10", s.Score())
	}
}

func TestSession_ClearedFiresExactlyOnce(t *testing.T) {
	s := startPlaying(t, targetAt("last", 0, 0, 10))

	var mu sync.Mutex
	clears := 0
	s.OnStatus = func(st Status) {
		mu.Lock()
		defer mu.Unlock()
		if st == StatusCleared {
			clears++
		}
	}

	for i := 0; i < 5; i++ {
		s.Step(Vec3{})
	}

	if s.Status() != StatusCleared {
		t.Fatalf("status = %v, want cleared", s.Status())
	}
	mu.Lock()
	defer mu.Unlock()
	if clears != 1 {
		t.Errorf("cleared transition fired %d times, want 1", clears)
	}
}

func TestSession_StepIgnoredOutsidePlaying(t *testing.T) {
	gen := &stubGenerator{targets: []Target{targetAt("a", 0, 0, 10)}, release: make(chan struct{})}
	s := NewSession(gen)

	// Idle: nothing to eat, nothing must change.
	s.Step(Vec3{})
	if s.Score() != 0 {
		t.Errorf("score after idle step = %d, want 0", s.Score())
	}

	s.Start(context.Background())
	s.Step(Vec3{})
	if s.Score() != 0 {
		t.Errorf("score after generating step = %d, want 0", s.Score())
	}

	close(gen.release)
	waitStatus(t, s, StatusPlaying)
}

func TestSession_ModelReadyNeverInterruptsGame(t *testing.T) {
	gen := &stubGenerator{targets: []Target{targetAt("a", 0, 0, 10)}, release: make(chan struct{})}
	s := NewSession(gen)

	s.Start(context.Background())
	s.ModelReady()
	if s.Status() != StatusGenerating {
		t.Errorf("ModelReady during generation moved status to %v", s.Status())
	}

	close(gen.release)
	waitStatus(t, s, StatusPlaying)

	s.ModelReady()
	if s.Status() != StatusPlaying {
		t.Errorf("ModelReady during play moved status to %v", s.Status())
	}
}

func TestSession_ModelLoadingRoundTrip(t *testing.T) {
	s := NewSession(&stubGenerator{})

	s.ModelLoading()
	if s.Status() != StatusLoadingModel {
		t.Fatalf("status = %v, want loading", s.Status())
	}

	s.ModelReady()
	if s.Status() != StatusIdle {
		t.Fatalf("status = %v, want idle", s.Status())
	}
}

func TestSession_ScoreAccumulatesAndRestartResets(t *testing.T) {
	s := startPlaying(t,
		targetAt("a", -4, 0, 10),
		targetAt("b", 0, 0, 20),
		targetAt("c", 4, 0, 30),
	)

	s.Step(Vec3{X: -4})
	s.Step(Vec3{X: 0})
	s.Step(Vec3{X: 4})

	if s.Score() != 60 {
		t.Fatalf("score = %d, want 60", s.Score())
	}
	waitStatus(t, s, StatusCleared)

	s.Restart(context.Background())
	if s.Score() != 0 {
		t.Errorf("score after restart = %d, want 0", s.Score())
	}
	if s.Level() != 1 {
		t.Errorf("level after restart = %d, want 1", s.Level())
	}
	waitStatus(t, s, StatusPlaying)
}

func TestSession_NextLevelIncrementsAndCaps(t *testing.T) {
	gen := &stubGenerator{targets: []Target{targetAt("only", 0, 0, 10)}}
	s := NewSession(gen)
	s.Start(context.Background())
	waitStatus(t, s, StatusPlaying)

	for i := 0; i < 15; i++ {
		s.Step(Vec3{})
		waitStatus(t, s, StatusCleared)
		s.NextLevel(context.Background())
		waitStatus(t, s, StatusPlaying)
	}

	if s.Level() != MaxLevel {
		t.Errorf("level after many clears = %d, want cap %d", s.Level(), MaxLevel)
	}
}

func TestSession_NextLevelIgnoredUnlessCleared(t *testing.T) {
	s := startPlaying(t, targetAt("a", 0, 0, 10))

	s.NextLevel(context.Background())
	if s.Status() != StatusPlaying {
		t.Errorf("NextLevel during play moved status to %v", s.Status())
	}
	if s.Level() != 1 {
		t.Errorf("level = %d, want 1", s.Level())
	}
}
