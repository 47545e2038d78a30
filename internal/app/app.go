// Package app wires the capture pipeline and the game loop together.
package app

import (
	"log"
	"sync"

	"github.com/ayusman/glowbite/internal/capture"
	"github.com/ayusman/glowbite/internal/detector"
	"github.com/ayusman/glowbite/internal/game"
	"github.com/ayusman/glowbite/internal/track"
)

// Loop timing constants.
const (
	// TickRate is the game loop frequency in Hz. Pointer smoothing and
	// the collision pass both run once per tick.
	TickRate = 60
	// CaptureFPS is the camera sampling rate. It stays at or below the
	// tick rate; the game loop never waits for a fresh landmark.
	CaptureFPS = 30
)

// Default world dimensions. Targets spawn inside this area, so the
// pointer must be able to reach slightly past its edges.
const (
	DefaultWorldWidth  = 13.0
	DefaultWorldHeight = 7.5
)

// Config holds configuration options for the application.
type Config struct {
	CameraID int

	// MotionThresh is the percentage of changed pixels required to run
	// hand detection on a frame. Zero selects the default; a negative
	// value disables the gate so every frame is detected.
	MotionThresh float64

	// Mirror flips the x axis so the pointer moves like a mirror image,
	// which is how players expect a selfie camera to behave.
	Mirror bool

	// Viewport supplies the world dimensions, read fresh every tick.
	// Nil means the fixed default world.
	Viewport func() track.Viewport

	// Generator overrides the level generator. Nil means the standard
	// random generator.
	Generator game.Generator
}

// App owns the capture pipeline (camera → motion gate → detector →
// fingertip slot) and the game loop (smoother → session). The two run
// on independent goroutines; the slot is the only thing they share.
type App struct {
	config   Config
	camera   capture.Camera
	gate     *capture.MotionGate
	detector detector.Detector
	slot     *track.Slot
	smoother *track.Smoother
	session  *game.Session
	viewport func() track.Viewport

	mu     sync.Mutex
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold == 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	gen := config.Generator
	if gen == nil {
		gen = game.NewLevelGenerator()
	}

	viewport := config.Viewport
	if viewport == nil {
		viewport = func() track.Viewport {
			return track.Viewport{Width: DefaultWorldWidth, Height: DefaultWorldHeight}
		}
	}

	slot := &track.Slot{}

	a := &App{
		config:   config,
		camera:   capture.NewCamera(config.CameraID),
		slot:     slot,
		smoother: track.NewSmoother(slot),
		session:  game.NewSession(gen),
		viewport: viewport,
	}
	if motionThreshold > 0 {
		a.gate = capture.NewMotionGate(motionThreshold)
	}

	// Try MediaPipe first, fall back to the mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// Session returns the game session for observers and action triggers.
func (a *App) Session() *game.Session {
	return a.session
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// Start opens the camera and launches the capture pipeline and the game
// loop. The session passes through the model-loading state while the
// detector warms up.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	a.session.ModelLoading()

	if err := a.camera.Open(); err != nil {
		// Stays in the loading state: the player sees a stuck loading
		// indicator and can quit, there is no automatic retry.
		log.Printf("camera unavailable: %v", err)
		return err
	}
	a.camera.SetFPS(CaptureFPS)

	a.stopCh = make(chan struct{})
	a.wg.Add(2)
	go a.runCapture(a.stopCh)
	go a.runLoop(a.stopCh)

	a.session.ModelReady()

	log.Println("Tracking pipeline started")
	return nil
}

// Stop halts both loops and releases capture resources.
func (a *App) Stop() {
	a.mu.Lock()
	if a.stopCh == nil {
		a.mu.Unlock()
		return
	}
	close(a.stopCh)
	a.stopCh = nil
	a.mu.Unlock()

	a.wg.Wait()

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	if a.gate != nil {
		a.gate.Close()
	}

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Tracking pipeline stopped")
}
