package app

import (
	"time"

	"github.com/ayusman/glowbite/internal/game"
)

// runLoop is the game loop. Each tick advances the pointer smoother by
// one step and immediately runs the collision pass with the result; the
// two stay coupled so collisions always see the freshest pointer.
// Nothing here blocks: level generation runs elsewhere while the loop
// keeps ticking over the (empty) target set.
func (a *App) runLoop(stop <-chan struct{}) {
	defer a.wg.Done()

	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			pos := a.smoother.Tick(a.viewport())
			a.session.Step(game.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z})
		}
	}
}
