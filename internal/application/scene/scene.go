// Package scene defines the screens the game loop switches between.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game: loading or playing a stage.
// The game loop forwards Update and Draw to the current scene and switches
// when Update returns a non-nil next scene.
type Scene interface {
	// Update advances the scene by dt seconds. An error ends the game.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current
	OnEnter()

	// OnExit runs when the scene is replaced
	OnExit()
}
