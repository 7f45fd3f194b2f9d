package playing

import (
	"errors"
	"fmt"
	"time"

	"github.com/younwookim/golfball/internal/application/replay"
	"github.com/younwookim/golfball/internal/application/system"
)

var errNothingRecorded = errors.New("recording has no frames")

// Recorder collects the simulated frames of one session
type Recorder struct {
	data    replay.ReplayData
	stopped bool
}

// NewRecorder starts a recording on stage under a new session ID
func NewRecorder(stage string) *Recorder {
	return &Recorder{data: replay.NewReplayData(stage)}
}

// RecordFrame appends input as the next frame. Pause and hitbox toggles
// never reach the simulation, so they are not kept.
func (r *Recorder) RecordFrame(input system.InputState) {
	if r.stopped {
		return
	}
	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F:   len(r.data.Frames),
		MX:  input.MouseX,
		MY:  input.MouseY,
		Aim: input.Aim,
		Rel: input.Release,
		Rst: input.Reset,
	})
}

// Save writes the session to filename
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return errNothingRecorded
	}
	return replay.SaveReplay(filename, r.data)
}

// Stop freezes the recording; later frames are dropped
func (r *Recorder) Stop() { r.stopped = true }

func (r *Recorder) IsRecording() bool { return !r.stopped }

func (r *Recorder) FrameCount() int { return len(r.data.Frames) }

func (r *Recorder) Session() string { return r.data.Session }

// DefaultFilename names a recording after its stage and start time
func (r *Recorder) DefaultFilename(now time.Time) string {
	return fmt.Sprintf("%s_%s.json", r.data.Stage, now.Format("20060102_150405"))
}
