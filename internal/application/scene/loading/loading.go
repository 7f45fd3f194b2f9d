// Package loading builds a stage in the background and hands it to the
// playing scene.
package loading

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/golfball/internal/application/scene"
	"github.com/younwookim/golfball/internal/application/scene/playing"
	"github.com/younwookim/golfball/internal/application/system"
	"github.com/younwookim/golfball/internal/domain/entity"
	"github.com/younwookim/golfball/internal/domain/obstacle"
	"github.com/younwookim/golfball/internal/infrastructure/config"
)

// Stage is everything the playing scene needs
type Stage struct {
	ID     string
	Config *config.GameConfig
	Level  *entity.Level
	Index  *obstacle.Index
}

// Build reads the configs and the stage concurrently, then spawns the
// level and builds its obstacle index.
func Build(ctx context.Context, loader *config.Loader, stageID string) (*Stage, error) {
	var (
		physics *config.PhysicsConfig
		shapes  *config.ShapesConfig
		data    *config.StageData
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		physics, err = loader.LoadPhysics()
		return err
	})
	g.Go(func() error {
		var err error
		shapes, err = loader.LoadShapes()
		return err
	})
	g.Go(func() error {
		// Stage files are the largest read; skip them once a sibling failed
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		data, err = loader.LoadStageData(stageID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The group's context is always done after Wait; only the caller's
	// cancellation aborts the build.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	level, err := system.LoadLevel(data, system.BuildShapes(shapes), physics.Player.Radius)
	if err != nil {
		return nil, err
	}
	index := obstacle.NewIndex(level.Tiles, level.Width(), level.Height(), level.TileSize)

	return &Stage{
		ID:     stageID,
		Config: &config.GameConfig{Physics: physics, Shapes: shapes},
		Level:  level,
		Index:  index,
	}, nil
}

type result struct {
	stage *Stage
	err   error
}

// Loading shows a message until the stage is built
type Loading struct {
	loader     *config.Loader
	stageID    string
	recordPath string

	done   chan result
	cancel context.CancelFunc
}

// New creates a loading scene for stageID
func New(loader *config.Loader, stageID, recordPath string) *Loading {
	return &Loading{
		loader:     loader,
		stageID:    stageID,
		recordPath: recordPath,
	}
}

// OnEnter starts the background build
func (l *Loading) OnEnter() {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.done = make(chan result, 1)

	go func() {
		s, err := Build(ctx, l.loader, l.stageID)
		l.done <- result{stage: s, err: err}
	}()
}

// OnExit stops a build that is still running
func (l *Loading) OnExit() {
	if l.cancel != nil {
		l.cancel()
	}
}

// Update switches to the playing scene once the build is done
func (l *Loading) Update(_ float64) (scene.Scene, error) {
	select {
	case r := <-l.done:
		if r.err != nil {
			return nil, fmt.Errorf("failed to load stage %s: %w", l.stageID, r.err)
		}
		return playing.New(r.stage.Config, r.stage.ID, r.stage.Level, r.stage.Index, l.recordPath), nil
	default:
		return nil, nil
	}
}

// Draw shows the stage being loaded
func (l *Loading) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Loading %s...", l.stageID))
}
