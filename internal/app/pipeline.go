package app

import (
	"log"
	"time"
)

// runCapture is the landmark producer: read a frame, gate on motion,
// detect the hand, publish the fingertip. It runs at the capture rate,
// independent of the game loop, and communicates only through the
// last-write-wins slot — a dropped or slow frame leaves the previous
// fingertip in place.
func (a *App) runCapture(stop <-chan struct{}) {
	defer a.wg.Done()

	ticker := time.NewTicker(time.Second / CaptureFPS)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			// Skip the detector round-trip on static scenes; the
			// pointer just holds its last smoothed position.
			if a.gate != nil {
				if motion, _ := a.gate.Check(frame); !motion {
					frame.Close()
					continue
				}
			}

			hands, err := a.detector.Detect(frame)
			frame.Close()

			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}
			if len(hands) == 0 {
				// No hand this frame: prior value persists.
				continue
			}

			tip, ok := hands[0].Fingertip()
			if !ok {
				continue
			}
			if a.config.Mirror {
				tip.X = 1 - tip.X
			}
			a.slot.Store(tip)
		}
	}
}
