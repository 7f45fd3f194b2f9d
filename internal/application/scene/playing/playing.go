// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/golfball/internal/application/camera"
	"github.com/younwookim/golfball/internal/application/scene"
	"github.com/younwookim/golfball/internal/application/state"
	"github.com/younwookim/golfball/internal/application/system"
	"github.com/younwookim/golfball/internal/domain/entity"
	"github.com/younwookim/golfball/internal/domain/geometry"
	"github.com/younwookim/golfball/internal/domain/obstacle"
	"github.com/younwookim/golfball/internal/domain/tile"
	"github.com/younwookim/golfball/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorBlock    = color.RGBA{80, 80, 100, 255}
	colorSlope    = color.RGBA{110, 110, 140, 255}
	colorPlatform = color.RGBA{160, 120, 70, 255}
	colorTerrain  = color.RGBA{50, 90, 60, 255}
	colorBall     = color.RGBA{240, 240, 240, 255}
	colorSpin     = color.RGBA{200, 50, 50, 255}
	colorHitbox   = color.RGBA{255, 60, 60, 255}
	colorAim      = color.RGBA{255, 215, 0, 255}
)

// Playing is the main gameplay scene
type Playing struct {
	config        *config.GameConfig
	stageID       string
	level         *entity.Level
	index         *obstacle.Index
	state         state.GameState
	player        *entity.Player
	physicsSystem *system.PhysicsSystem
	inputSystem   *system.InputSystem
	camera        *camera.Controller
	screenW       int
	screenH       int

	showHitbox bool
	lastInput  system.InputState
	frame      int

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene on a built level.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, stageID string, level *entity.Level, index *obstacle.Index, recordPath string) *Playing {
	pc := cfg.Physics
	player := entity.NewPlayer(level.Spawn, pc.Player.Radius, pc.Player.DefaultJumps)

	p := &Playing{
		config:         cfg,
		stageID:        stageID,
		level:          level,
		index:          index,
		state:          state.StatePlaying,
		player:         player,
		physicsSystem:  system.NewPhysicsSystem(pc, index),
		inputSystem:    system.NewInputSystem(),
		screenW:        pc.Display.ScreenWidth,
		screenH:        pc.Display.ScreenHeight,
		recordFilename: recordPath,
	}
	p.camera = camera.NewController(pc.Camera, float64(p.screenW), float64(p.screenH), level, index)
	p.camera.Reset(player)

	if recordPath != "" {
		p.recorder = NewRecorder(stageID)
		log.Printf("Recording enabled: %s (session: %s)", recordPath, p.recorder.Session())
	}

	return p
}

// Update reads the devices and advances one frame (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.Step(p.inputSystem.GetInput(), dt)
	return nil, nil // nil = stay on this scene
}

// Step advances one frame with the given input. Paused frames are neither
// simulated nor recorded, so a replay only holds frames that moved the ball.
func (p *Playing) Step(input system.InputState, dt float64) {
	p.lastInput = input

	if input.Pause {
		p.state = p.state.Toggle()
	}
	if input.ToggleHitbox {
		p.showHitbox = !p.showHitbox
	}
	// F5: save the recording without leaving the scene
	if input.Save {
		p.saveRecording()
	}
	if p.state != state.StatePlaying {
		return
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	intents := p.inputSystem.Intents(input)
	p.physicsSystem.Apply(p.player, intents)
	if hasReset(intents) {
		p.camera.Reset(p.player)
	}

	p.physicsSystem.Update(p.player, dt)
	p.camera.Update(p.player, dt)

	if p.physicsSystem.KillIfOffscreen(p.player, float64(p.screenW), float64(p.screenH)) {
		p.camera.Reset(p.player)
	}
	p.frame++
}

func hasReset(intents []system.Intent) bool {
	for _, in := range intents {
		if _, ok := in.(system.ResetIntent); ok {
			return true
		}
	}
	return false
}

// Player returns the ball
func (p *Playing) Player() *entity.Player {
	return p.player
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Frame returns the number of simulated frames
func (p *Playing) Frame() int {
	return p.frame
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = p.recorder.DefaultFilename(time.Now())
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	off := p.camera.Offset()

	p.drawTiles(screen, p.level.Terrain, off)
	p.drawTiles(screen, p.level.Tiles, off)
	if p.showHitbox {
		p.drawHitboxes(screen, off)
	}
	p.drawAim(screen)
	p.drawBall(screen)
	p.drawUI(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) visible(t tile.Tile, off geometry.Vec2) bool {
	b := t.Bounds()
	return b.Max.Y >= off.Y && b.Min.Y <= off.Y+float64(p.screenH)
}

func (p *Playing) drawTiles(screen *ebiten.Image, tiles []tile.Tile, off geometry.Vec2) {
	ts := p.level.TileSize
	for _, t := range tiles {
		if !p.visible(t, off) {
			continue
		}
		x := t.Origin.X - off.X
		y := t.Origin.Y - off.Y

		switch t.Kind.(type) {
		case tile.Block:
			ebitenutil.DrawRect(screen, x, y, ts, ts, colorBlock)
		case tile.Terrain:
			ebitenutil.DrawRect(screen, x, y, ts, ts, colorTerrain)
		case tile.Platform:
			ebitenutil.DrawRect(screen, x, y, ts, 2, colorPlatform)
		case tile.Slope:
			for _, e := range t.Edges {
				ebitenutil.DrawLine(screen, e.A.X-off.X, e.A.Y-off.Y, e.B.X-off.X, e.B.Y-off.Y, colorSlope)
			}
		}
	}
}

// drawHitboxes outlines the active edges with their outward normals
func (p *Playing) drawHitboxes(screen *ebiten.Image, off geometry.Vec2) {
	for _, t := range p.index.Active() {
		for _, e := range t.Edges {
			a := e.A.Sub(off)
			b := e.B.Sub(off)
			ebitenutil.DrawLine(screen, a.X, a.Y, b.X, b.Y, colorHitbox)

			m := geometry.Seg(a, b).Midpoint()
			n := m.Add(e.Normal.Scale(4))
			ebitenutil.DrawLine(screen, m.X, m.Y, n.X, n.Y, colorHitbox)
		}
	}
}

func (p *Playing) drawBall(screen *ebiten.Image) {
	if !p.player.Visible {
		return
	}
	o := p.player.Offset
	r := p.player.Radius
	vector.DrawFilledCircle(screen, float32(o.X), float32(o.Y), float32(r), colorBall, true)

	// Spin marker
	rad := p.player.Rotation * math.Pi / 180
	ebitenutil.DrawLine(screen, o.X, o.Y, o.X+math.Sin(rad)*r, o.Y-math.Cos(rad)*r, colorSpin)
}

func (p *Playing) drawAim(screen *ebiten.Image) {
	if !p.inputSystem.Aiming() || !p.player.CanShoot() {
		return
	}
	o := p.player.Offset
	ebitenutil.DrawLine(screen, o.X, o.Y, float64(p.lastInput.MouseX), float64(p.lastInput.MouseY), colorAim)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	pl := p.player
	text := fmt.Sprintf("%s  jumps %d/%d  %s\nLMB: aim/shoot | R: reset | H: hitbox | ESC: pause",
		p.level.Name, pl.Jumps, pl.DefaultJumps, pl.State())
	if p.recorder != nil && p.recorder.IsRecording() {
		text += fmt.Sprintf("\nREC %d (F5: save)", p.recorder.FrameCount())
	}
	ebitenutil.DebugPrint(screen, text)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit saves the recording and closes it
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
}
