// Package audio plays the consumption chime. It is strictly
// fire-and-forget: initialization or playback failures put the player in
// silent mode and never reach the game core.
package audio

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	chimeDuration = 120 * time.Millisecond
	chimeBaseFreq = 660.0
	// Higher point values pitch the chime up slightly.
	chimeFreqPerPoint = 4.0
)

// ChimePlayer plays a short blip every time a target is eaten.
type ChimePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewChimePlayer creates a ChimePlayer. Call Init before playing.
func NewChimePlayer() *ChimePlayer {
	return &ChimePlayer{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker. On failure the player stays in silent mode;
// the error is logged and swallowed.
func (c *ChimePlayer) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		log.Printf("audio unavailable, running silent: %v", err)
		return
	}

	speaker.Play(c.mixer)
	c.initialized = true
}

// Play queues a chime for a consumed target. Safe to call from any
// goroutine; a no-op in silent mode.
func (c *ChimePlayer) Play(points int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	freq := chimeBaseFreq + chimeFreqPerPoint*float64(points)
	streamer := beep.Take(sampleRate.N(chimeDuration), newChimeTone(sampleRate, freq))
	c.mixer.Add(streamer)
}

// Close mutes the player. The speaker itself stays open; beep owns the
// backend for the process lifetime.
func (c *ChimePlayer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	c.mixer.Clear()
	c.initialized = false
}

// chimeTone generates a decaying sine blip.
type chimeTone struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newChimeTone(sr beep.SampleRate, freq float64) *chimeTone {
	return &chimeTone{sr: sr, freq: freq}
}

func (g *chimeTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.5 * math.Sin(2*math.Pi*g.freq*t)
		// A touch of the octave above for sparkle
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)

		// Fast attack, exponential decay
		attack := math.Min(t/0.005, 1.0)
		decay := math.Exp(-t * 18)
		sample *= attack * decay * 0.4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *chimeTone) Err() error {
	return nil
}
