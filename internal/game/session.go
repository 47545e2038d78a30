package game

import (
	"context"
	"log"
	"sync"
)

// Status is the current phase of a play session.
type Status int

const (
	// StatusIdle means ready to start, awaiting player action.
	StatusIdle Status = iota
	// StatusLoadingModel means the hand-tracking model is initializing.
	StatusLoadingModel
	// StatusGenerating means a level request is outstanding.
	StatusGenerating
	// StatusPlaying means targets are live and collisions count.
	StatusPlaying
	// StatusCleared means every target of the level was eaten.
	StatusCleared
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoadingModel:
		return "loading"
	case StatusGenerating:
		return "generating"
	case StatusPlaying:
		return "playing"
	case StatusCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Session owns the game state: status, score, difficulty and the live
// target set. All mutation is serialized under its lock; transitions are
// one-shot per triggering event. Observer callbacks are invoked outside
// the lock.
type Session struct {
	mu      sync.Mutex
	status  Status
	score   int
	level   int
	targets []Target
	gen     Generator

	// OnEaten fires once per consumed target, at most once per target ID.
	OnEaten func(id string, points int)
	// OnStatus fires on every status change.
	OnStatus func(Status)
	// OnScore fires whenever the score value changes.
	OnScore func(int)
}

// NewSession creates a Session in the idle state at difficulty 1.
func NewSession(gen Generator) *Session {
	return &Session{
		status: StatusIdle,
		level:  1,
		gen:    gen,
	}
}

// Status returns the current session status.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Score returns the current score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Level returns the current difficulty.
func (s *Session) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Targets returns a copy of the live target set.
func (s *Session) Targets() []Target {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Target, len(s.targets))
	copy(out, s.targets)
	return out
}

// ModelLoading marks the start of hand-model initialization.
// Only meaningful from the idle state.
func (s *Session) ModelLoading() {
	s.mu.Lock()
	if s.status != StatusIdle {
		s.mu.Unlock()
		return
	}
	s.status = StatusLoadingModel
	notify := s.OnStatus
	s.mu.Unlock()

	if notify != nil {
		notify(StatusLoadingModel)
	}
}

// ModelReady marks the hand model as initialized. It only moves
// LoadingModel back to Idle; it must never interrupt a session that is
// generating, playing or cleared.
func (s *Session) ModelReady() {
	s.mu.Lock()
	if s.status != StatusLoadingModel {
		s.mu.Unlock()
		return
	}
	s.status = StatusIdle
	notify := s.OnStatus
	s.mu.Unlock()

	if notify != nil {
		notify(StatusIdle)
	}
}

// Start begins a new game from the idle state. The target set is
// cleared immediately so no stale targets show while generation runs.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	if s.status != StatusIdle {
		s.mu.Unlock()
		return
	}
	s.beginGeneration(ctx)
}

// NextLevel advances to the next level after a clear. Difficulty is
// capped at MaxLevel.
func (s *Session) NextLevel(ctx context.Context) {
	s.mu.Lock()
	if s.status != StatusCleared {
		s.mu.Unlock()
		return
	}
	if s.level < MaxLevel {
		s.level++
	}
	s.beginGeneration(ctx)
}

// Restart begins over from level 1 with the score reset to zero.
// Available from the cleared state.
func (s *Session) Restart(ctx context.Context) {
	s.mu.Lock()
	if s.status != StatusCleared {
		s.mu.Unlock()
		return
	}
	s.level = 1
	s.score = 0
	notifyScore := s.OnScore
	s.beginGeneration(ctx)

	if notifyScore != nil {
		notifyScore(0)
	}
}

// beginGeneration moves to StatusGenerating and kicks off the level
// request. Called with the lock held; releases it.
func (s *Session) beginGeneration(ctx context.Context) {
	s.status = StatusGenerating
	s.targets = nil
	level := s.level
	notify := s.OnStatus
	s.mu.Unlock()

	if notify != nil {
		notify(StatusGenerating)
	}

	go s.runGeneration(ctx, level)
}

// runGeneration performs the level request and installs the result.
// The game loop keeps ticking while this is outstanding; it only renders
// the (empty) target set.
func (s *Session) runGeneration(ctx context.Context, level int) {
	targets, err := s.gen.Generate(ctx, level)

	s.mu.Lock()
	if s.status != StatusGenerating {
		s.mu.Unlock()
		return
	}

	var next Status
	if err != nil {
		log.Printf("level generation failed: %v", err)
		next = StatusIdle
	} else {
		s.targets = targets
		next = StatusPlaying
	}
	s.status = next
	notify := s.OnStatus
	s.mu.Unlock()

	if notify != nil {
		notify(next)
	}
}

// Step runs one collision pass against the smoothed pointer position.
// It is a no-op unless the session is playing, so collisions during
// loading, generating or cleared phases can never touch the score or
// the target set.
//
// Every live target strictly closer than EatDistance is consumed in the
// same pass; removal happens before the callbacks fire, so a target can
// never be eaten twice even if the pointer lingers on its position.
// When the set is empty after the pass, the session moves to cleared;
// the status change makes the transition fire exactly once.
func (s *Session) Step(pointer Vec3) {
	s.mu.Lock()
	if s.status != StatusPlaying {
		s.mu.Unlock()
		return
	}

	var eaten []Target
	survivors := s.targets[:0]
	for _, tgt := range s.targets {
		if pointer.Dist(tgt.Position) < EatDistance {
			eaten = append(eaten, tgt)
			s.score += tgt.Points
		} else {
			survivors = append(survivors, tgt)
		}
	}
	s.targets = survivors

	cleared := len(s.targets) == 0
	if cleared {
		s.status = StatusCleared
	}

	score := s.score
	onEaten := s.OnEaten
	onScore := s.OnScore
	onStatus := s.OnStatus
	s.mu.Unlock()

	for _, tgt := range eaten {
		if onEaten != nil {
			onEaten(tgt.ID, tgt.Points)
		}
	}
	if len(eaten) > 0 && onScore != nil {
		onScore(score)
	}
	if cleared && onStatus != nil {
		onStatus(StatusCleared)
	}
}
