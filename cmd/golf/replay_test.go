package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/golfball/internal/application/replay"
	"github.com/younwookim/golfball/internal/domain/geometry"
	"github.com/younwookim/golfball/internal/infrastructure/config"
)

func testLoader() *config.Loader {
	return config.NewLoader("configs")
}

// shotReplay lobs the ball up and to the right on hill, then idles
func shotReplay(idle int) *replay.ReplayData {
	data := replay.NewReplayData("hill")
	data.Frames = append(data.Frames,
		replay.FrameInput{F: 0, MX: 170, MY: 102, Aim: true},
		replay.FrameInput{F: 1, MX: 170, MY: 102, Rel: true},
	)
	for i := 0; i < idle; i++ {
		data.Frames = append(data.Frames, replay.FrameInput{F: 2 + i, MX: 170, MY: 102})
	}
	return &data
}

func TestRunReplay_Idle(t *testing.T) {
	data := replay.CreateTestReplayData(120, 0, 0)
	data.Stage = "hill"

	res, err := RunReplay(context.Background(), testLoader(), &data)
	require.NoError(t, err)

	assert.Equal(t, 120, res.Frames)
	assert.Equal(t, "hill", res.Stage)
	assert.Equal(t, data.Session, res.Session)
	assert.InDelta(t, 152.0, res.Pos.X, 1e-9)
	assert.InDelta(t, 138.0, res.Pos.Y, 0.01)
	assert.True(t, res.OnGround)
	assert.Equal(t, 2, res.Jumps)
}

func TestRunReplay_Shot(t *testing.T) {
	res, err := RunReplay(context.Background(), testLoader(), shotReplay(0))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Jumps)
	assert.False(t, res.OnGround)
	assert.Greater(t, res.Vel.X, 0.0)
	assert.Less(t, res.Vel.Y, 0.0)
}

func TestRunReplay_Deterministic(t *testing.T) {
	first, err := RunReplay(context.Background(), testLoader(), shotReplay(300))
	require.NoError(t, err)
	second, err := RunReplay(context.Background(), testLoader(), shotReplay(300))
	require.NoError(t, err)

	assert.Equal(t, first.Pos, second.Pos)
	assert.Equal(t, first.Vel, second.Vel)
	assert.Equal(t, first.OnGround, second.OnGround)
	assert.NotEqual(t, geometry.V(152, 138), first.Pos, "the shot moved the ball")
}

func TestRunReplay_UnknownStage(t *testing.T) {
	data := replay.CreateTestReplayData(1, 0, 0)
	data.Stage = "nowhere"

	_, err := RunReplay(context.Background(), testLoader(), &data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build stage nowhere")
}

func TestVerifyReplay_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	raw, err := json.Marshal(shotReplay(10))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	res, err := VerifyReplay(context.Background(), testLoader(), path)
	require.NoError(t, err)
	assert.Equal(t, 12, res.Frames)
	assert.Contains(t, res.String(), "stage=hill")
	assert.Contains(t, res.String(), "frames=12")

	_, err = VerifyReplay(context.Background(), testLoader(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestEmbeddedConfigs(t *testing.T) {
	for _, name := range []string{"configs/physics.json", "configs/shapes.json", "configs/stages/demo.json", "configs/stages/hill.tmx"} {
		_, err := configFS.ReadFile(name)
		assert.NoError(t, err, name)
	}
}
