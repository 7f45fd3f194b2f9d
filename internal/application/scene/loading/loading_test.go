package loading

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/golfball/internal/application/scene"
	"github.com/younwookim/golfball/internal/application/scene/playing"
	"github.com/younwookim/golfball/internal/domain/geometry"
	"github.com/younwookim/golfball/internal/infrastructure/config"
)

const configDir = "../../../../cmd/golf/configs"

func TestLoading_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Loading)(nil)
}

func TestBuild(t *testing.T) {
	tests := []struct {
		stage     string
		wantSpawn geometry.Vec2
	}{
		{"demo", geometry.V(152, 682)},
		{"hill", geometry.V(152, 138)},
	}

	for _, tt := range tests {
		t.Run(tt.stage, func(t *testing.T) {
			s, err := Build(context.Background(), config.NewLoader(configDir), tt.stage)
			require.NoError(t, err)

			assert.Equal(t, tt.stage, s.ID)
			assert.Equal(t, tt.wantSpawn, s.Level.Spawn)
			assert.NotNil(t, s.Config.Physics)
			assert.NotNil(t, s.Config.Shapes)
			assert.Positive(t, s.Index.Len())
			assert.LessOrEqual(t, s.Index.Len(), len(s.Level.Tiles), "de-duplication never adds tiles")
			assert.Zero(t, s.Index.ActiveLen(), "the camera decides the first window")
		})
	}
}

func TestBuild_MissingStage(t *testing.T) {
	_, err := Build(context.Background(), config.NewLoader(configDir), "nowhere")
	assert.Error(t, err)
}

func TestBuild_Context(t *testing.T) {
	t.Run("live context survives the load", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		s, err := Build(ctx, config.NewLoader(configDir), "hill")
		require.NoError(t, err)
		assert.NoError(t, ctx.Err())
		assert.NotNil(t, s.Index)
	})

	t.Run("canceled caller aborts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Build(ctx, config.NewLoader(configDir), "hill")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func waitForScene(t *testing.T, l *Loading) (scene.Scene, error) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		next, err := l.Update(1.0 / 60)
		if next != nil || err != nil {
			return next, err
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("loading never finished")
	return nil, nil
}

func TestLoading_SwitchesToPlaying(t *testing.T) {
	l := New(config.NewLoader(configDir), "hill", "")
	l.OnEnter()
	defer l.OnExit()

	next, err := waitForScene(t, l)
	require.NoError(t, err)

	p, ok := next.(*playing.Playing)
	require.True(t, ok)
	assert.Equal(t, geometry.V(152, 138), p.Player().Pos)
}

func TestLoading_ReportsErrors(t *testing.T) {
	l := New(config.NewLoader(configDir), "nowhere", "")
	l.OnEnter()
	defer l.OnExit()

	next, err := waitForScene(t, l)
	assert.Nil(t, next)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load stage nowhere")
}
