package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/golfball/internal/domain/geometry"
)

func TestInputSystem_Intents(t *testing.T) {
	tests := []struct {
		name   string
		frames []InputState
		want   []Intent // intents of the last frame
	}{
		{
			name:   "idle",
			frames: []InputState{{}},
			want:   nil,
		},
		{
			name: "press and release shoots at cursor",
			frames: []InputState{
				{MouseX: 10, MouseY: 20, Aim: true},
				{MouseX: 30, MouseY: 40, Release: true},
			},
			want: []Intent{ShootIntent{Aim: geometry.V(30, 40)}},
		},
		{
			name: "release without a press is ignored",
			frames: []InputState{
				{MouseX: 30, MouseY: 40, Release: true},
			},
			want: nil,
		},
		{
			name: "reset comes before the shot",
			frames: []InputState{
				{Aim: true},
				{MouseX: 5, MouseY: 6, Release: true, Reset: true},
			},
			want: []Intent{ResetIntent{}, ShootIntent{Aim: geometry.V(5, 6)}},
		},
		{
			name: "holding does not shoot",
			frames: []InputState{
				{Aim: true},
				{Aim: true},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInputSystem()
			var got []Intent
			for _, f := range tt.frames {
				got = in.Intents(f)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInputSystem_AimingState(t *testing.T) {
	in := NewInputSystem()
	assert.False(t, in.Aiming())

	in.Intents(InputState{Aim: true})
	assert.True(t, in.Aiming())

	got := in.Intents(InputState{Release: true})
	require.Len(t, got, 1)
	assert.False(t, in.Aiming())

	assert.Empty(t, in.Intents(InputState{Release: true}), "one shot per press")
}
