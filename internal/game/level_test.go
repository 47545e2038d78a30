package game

import (
	"context"
	"testing"
	"time"
)

func TestLevelGenerator_Count(t *testing.T) {
	gen := NewSeededLevelGenerator(1)

	cases := []struct {
		difficulty int
		want       int
	}{
		{1, 8},
		{2, 11},
		{5, 20},
		{10, 35},
	}

	for _, tc := range cases {
		targets, err := gen.Generate(context.Background(), tc.difficulty)
		if err != nil {
			t.Fatalf("Generate(%d) error = %v", tc.difficulty, err)
		}
		if len(targets) != tc.want {
			t.Errorf("Generate(%d) returned %d targets, want %d", tc.difficulty, len(targets), tc.want)
		}
	}
}

func TestLevelGenerator_TargetFields(t *testing.T) {
	gen := NewSeededLevelGenerator(42)

	targets, err := gen.Generate(context.Background(), 10)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	palette := make(map[string]bool, len(NeonPalette))
	for _, c := range NeonPalette {
		palette[c] = true
	}

	seen := make(map[string]bool, len(targets))
	for i, tgt := range targets {
		if tgt.ID == "" {
			t.Fatalf("target %d has empty ID", i)
		}
		if seen[tgt.ID] {
			t.Fatalf("duplicate target ID %s", tgt.ID)
		}
		seen[tgt.ID] = true

		p := tgt.Position
		if p.X < -FieldHalfWidth || p.X > FieldHalfWidth {
			t.Errorf("target %d x = %f outside [%f, %f]", i, p.X, -FieldHalfWidth, FieldHalfWidth)
		}
		if p.Y < -FieldHalfHeight || p.Y > FieldHalfHeight {
			t.Errorf("target %d y = %f outside [%f, %f]", i, p.Y, -FieldHalfHeight, FieldHalfHeight)
		}
		if p.Z != 0 {
			t.Errorf("target %d z = %f, want 0", i, p.Z)
		}

		if !palette[tgt.Color] {
			t.Errorf("target %d color %q not in palette", i, tgt.Color)
		}

		if tgt.Points < PointStep || tgt.Points > PointStep*PointMultiples || tgt.Points%PointStep != 0 {
			t.Errorf("target %d points = %d, want a multiple of %d in [%d, %d]",
				i, tgt.Points, PointStep, PointStep, PointStep*PointMultiples)
		}
	}
}

func TestLevelGenerator_RejectsNonPositiveDifficulty(t *testing.T) {
	gen := NewSeededLevelGenerator(7)

	for _, d := range []int{0, -1} {
		if _, err := gen.Generate(context.Background(), d); err == nil {
			t.Errorf("Generate(%d) succeeded, want error", d)
		}
	}
}

func TestLevelGenerator_DelayHonorsContext(t *testing.T) {
	gen := NewSeededLevelGenerator(7)
	gen.Delay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	if _, err := gen.Generate(ctx, 1); err == nil {
		t.Fatal("expected a context error")
	}
	if time.Since(start) > time.Second {
		t.Error("cancelled generation did not return promptly")
	}
}
