package main

import (
	"context"
	"fmt"

	"github.com/younwookim/golfball/internal/application/replay"
	"github.com/younwookim/golfball/internal/application/scene/loading"
	"github.com/younwookim/golfball/internal/application/scene/playing"
	"github.com/younwookim/golfball/internal/application/system"
	"github.com/younwookim/golfball/internal/domain/geometry"
	"github.com/younwookim/golfball/internal/infrastructure/config"
)

// ReplayResult is the ball state after a replay has run out of frames
type ReplayResult struct {
	Session  string
	Stage    string
	Frames   int
	Pos      geometry.Vec2
	Vel      geometry.Vec2
	OnGround bool
	Jumps    int
}

func (r ReplayResult) String() string {
	return fmt.Sprintf("session=%s stage=%s frames=%d pos=(%.3f,%.3f) vel=(%.3f,%.3f) onGround=%t jumps=%d",
		r.Session, r.Stage, r.Frames, r.Pos.X, r.Pos.Y, r.Vel.X, r.Vel.Y, r.OnGround, r.Jumps)
}

// toInputState converts a recorded frame into live input
func toInputState(in replay.ReplayInput) system.InputState {
	return system.InputState{
		MouseX:  in.MouseX,
		MouseY:  in.MouseY,
		Aim:     in.Aim,
		Release: in.Release,
		Reset:   in.Reset,
	}
}

// RunReplay builds the replay's stage and feeds every recorded frame
// through the playing scene without a window.
func RunReplay(ctx context.Context, loader *config.Loader, data *replay.ReplayData) (*ReplayResult, error) {
	stage, err := loading.Build(ctx, loader, data.Stage)
	if err != nil {
		return nil, fmt.Errorf("failed to build stage %s: %w", data.Stage, err)
	}

	p := playing.New(stage.Config, stage.ID, stage.Level, stage.Index, "")
	dt := 1.0 / float64(stage.Config.Physics.Display.Framerate)

	r := replay.NewReplayer(*data)
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		p.Step(toInputState(in), dt)
	}

	pl := p.Player()
	return &ReplayResult{
		Session:  r.Session(),
		Stage:    r.Stage(),
		Frames:   r.CurrentFrame(),
		Pos:      pl.Pos,
		Vel:      pl.Vel,
		OnGround: pl.OnGround,
		Jumps:    pl.Jumps,
	}, nil
}

// VerifyReplay loads a replay file and runs it
func VerifyReplay(ctx context.Context, loader *config.Loader, path string) (*ReplayResult, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return nil, err
	}
	return RunReplay(ctx, loader, data)
}
