// Package tray provides the system tray control surface for the game:
// player actions in, read-only status and score out.
package tray

import (
	"fmt"
	"sync"

	"github.com/getlantern/systray"
)

// Tray is the system tray menu. It observes session state and forwards
// the player's start / next level / restart / quit actions.
type Tray struct {
	onStart   func()
	onNext    func()
	onRestart func()
	onQuit    func()
	mu        sync.RWMutex

	// Menu items stored for later updates
	menuStatus *systray.MenuItem
	menuScore  *systray.MenuItem
	menuNext   *systray.MenuItem
}

// New creates a new Tray instance.
func New() *Tray {
	return &Tray{}
}

// OnStart sets the callback for the "Start Game" menu item.
func (t *Tray) OnStart(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onStart = fn
}

// OnNextLevel sets the callback for the "Next Level" menu item.
func (t *Tray) OnNextLevel(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onNext = fn
}

// OnRestart sets the callback for the "Restart" menu item.
func (t *Tray) OnRestart(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onRestart = fn
}

// OnQuit sets the callback for the quit menu item.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady builds the menu structure once the tray is available.
func (t *Tray) onReady() {
	systray.SetTitle("Glowbite")
	systray.SetTooltip("Glowbite — eat the cubes")

	t.menuStatus = systray.AddMenuItem("Status: idle", "Current game state")
	t.menuStatus.Disable()
	t.menuScore = systray.AddMenuItem("Score: 0", "Current score")
	t.menuScore.Disable()
	systray.AddSeparator()

	menuStart := systray.AddMenuItem("Start Game", "Start a new game")
	t.menuNext = systray.AddMenuItem("Next Level", "Advance to the next level")
	menuRestart := systray.AddMenuItem("Restart", "Start over from level 1")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Glowbite")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-menuStart.ClickedCh:
				t.fire(t.pickStart())
			case <-t.menuNext.ClickedCh:
				t.fire(t.pickNext())
			case <-menuRestart.ClickedCh:
				t.fire(t.pickRestart())
			case <-menuQuit.ClickedCh:
				t.fire(t.pickQuit())
				systray.Quit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {}

func (t *Tray) pickStart() func() {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.onStart
}

func (t *Tray) pickNext() func() {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.onNext
}

func (t *Tray) pickRestart() func() {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.onRestart
}

func (t *Tray) pickQuit() func() {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.onQuit
}

// fire invokes a callback snapshot taken outside the lock.
func (t *Tray) fire(callback func()) {
	if callback != nil {
		callback()
	}
}

// SetStatus updates the status line in the menu.
func (t *Tray) SetStatus(status string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuStatus != nil {
		t.menuStatus.SetTitle("Status: " + status)
	}
}

// SetScore updates the score line in the menu.
func (t *Tray) SetScore(score int) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuScore != nil {
		t.menuScore.SetTitle(fmt.Sprintf("Score: %d", score))
	}
}
