package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/golfball/internal/domain/geometry"
)

// InputSystem turns mouse and keyboard state into intents
type InputSystem struct {
	aiming bool
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	MouseX       int
	MouseY       int
	Aim          bool // left button held
	Release      bool // left button released this frame
	Reset        bool
	ToggleHitbox bool
	Pause        bool
	Save         bool // write the recording so far
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		MouseX:       mx,
		MouseY:       my,
		Aim:          ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Release:      inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Reset:        inpututil.IsKeyJustPressed(ebiten.KeyR),
		ToggleHitbox: inpututil.IsKeyJustPressed(ebiten.KeyH),
		Pause:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Save:         inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}
}

// Aiming reports whether the player is holding an aim
func (s *InputSystem) Aiming() bool {
	return s.aiming
}

// Intents converts input into ball intents. A shot fires on release after
// the button was held on an earlier frame.
func (s *InputSystem) Intents(input InputState) []Intent {
	var intents []Intent

	if input.Reset {
		intents = append(intents, ResetIntent{})
	}

	if input.Release && s.aiming {
		intents = append(intents, ShootIntent{Aim: geometry.V(float64(input.MouseX), float64(input.MouseY))})
	}
	s.aiming = input.Aim && !input.Release

	return intents
}
