// Package game runs the ebiten loop and switches scenes.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/golfball/internal/application/scene"
)

// Game implements ebiten.Game on top of a current scene
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	// closing reports a pending window close; nil when not handled
	closing func() bool
}

// New creates a Game showing initial. framerate sets the fixed time step;
// non-positive values fall back to 60.
func New(initial scene.Scene, screenW, screenH, framerate int) *Game {
	if framerate <= 0 {
		framerate = 60
	}
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(framerate),
	}
	g.current.OnEnter()
	return g
}

// HandleWindowClose makes closing the window exit the current scene
// before the loop terminates.
func (g *Game) HandleWindowClose() {
	ebiten.SetWindowClosingHandled(true)
	g.closing = ebiten.IsWindowBeingClosed
}

// Update advances the current scene and switches to the next one if asked
func (g *Game) Update() error {
	if g.closing != nil && g.closing() {
		g.current.OnExit()
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout keeps the logical resolution fixed; ebiten scales the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// DT returns the fixed time step in seconds
func (g *Game) DT() float64 {
	return g.dt
}
