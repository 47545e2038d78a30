package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ayusman/glowbite/internal/app"
	"github.com/ayusman/glowbite/internal/audio"
	"github.com/ayusman/glowbite/internal/game"
	"github.com/ayusman/glowbite/internal/tray"
)

func main() {
	fmt.Println("Glowbite - Motion-Controlled Cube Eating")

	chime := audio.NewChimePlayer()
	chime.Init()

	// Short pause before each level lands, purely for presentation.
	gen := game.NewLevelGenerator()
	gen.Delay = 400 * time.Millisecond

	application := app.New(app.Config{
		CameraID:  0,
		Mirror:    true,
		Generator: gen,
	})

	ctx := context.Background()
	sess := application.Session()
	sess.OnEaten = func(id string, points int) {
		chime.Play(points)
	}

	tr := tray.New()
	sess.OnStatus = func(st game.Status) {
		tr.SetStatus(st.String())
	}
	sess.OnScore = func(score int) {
		tr.SetScore(score)
	}

	tr.OnStart(func() { sess.Start(ctx) })
	tr.OnNextLevel(func() {
		// A click after a clear advances; otherwise it is ignored by
		// the session guard.
		sess.NextLevel(ctx)
	})
	tr.OnRestart(func() { sess.Restart(ctx) })
	tr.OnQuit(func() {
		application.Stop()
		chime.Close()
	})

	if err := application.Start(); err != nil {
		// No camera: stay up with a stuck loading indicator so the
		// player can still quit from the tray.
		log.Printf("Tracking unavailable: %v", err)
	}

	// Blocks until quit; systray needs the main goroutine.
	tr.Run()
}
