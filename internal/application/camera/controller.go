// Package camera keeps the ball on screen and the obstacle window around it.
package camera

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/golfball/internal/domain/entity"
	"github.com/younwookim/golfball/internal/domain/geometry"
	"github.com/younwookim/golfball/internal/infrastructure/config"
)

// Window is the part of the obstacle index the camera keeps active
type Window interface {
	Activate(yMin, yMax float64)
}

// Controller scrolls the view vertically and moves the active window
type Controller struct {
	cfg     config.CameraConfig
	screenW float64
	screenH float64
	worldH  float64

	offset geometry.Vec2
	tween  *gween.Tween
	target float64

	window     Window
	lastCenter float64
	activated  bool
}

// NewController creates a camera looking at the bottom of the world
func NewController(cfg config.CameraConfig, screenW, screenH float64, level *entity.Level, window Window) *Controller {
	c := &Controller{
		cfg:     cfg,
		screenW: screenW,
		screenH: screenH,
		worldH:  level.Height(),
		window:  window,
	}
	if ts := level.TileSize; ts > 0 {
		c.offset.X = (math.Ceil(screenW/ts)*ts - screenW) / 2
	}
	c.offset.Y = c.maxY()
	c.target = c.offset.Y
	return c
}

// Offset returns the world position of the top-left screen corner
func (c *Controller) Offset() geometry.Vec2 {
	return c.offset
}

// Easing reports whether a scroll is in progress
func (c *Controller) Easing() bool {
	return c.tween != nil
}

func (c *Controller) maxY() float64 {
	return math.Max(0, c.worldH-c.screenH)
}

// Update follows the player and writes its screen position
func (c *Controller) Update(player *entity.Player, dt float64) {
	want := geometry.Clamp(player.Pos.Y-c.screenH/2, 0, c.maxY())
	screenY := player.Pos.Y - c.offset.Y

	if (player.OnGround || screenY > c.cfg.FollowThreshold*c.screenH) && want != c.target {
		c.scrollTo(want)
	}

	if c.tween != nil {
		y, done := c.tween.Update(float32(dt))
		c.offset.Y = float64(y)
		if done {
			c.offset.Y = c.target
			c.tween = nil
		}
	}

	c.updateWindow(player.Pos.Y)
	player.Offset = player.Pos.Sub(c.offset)
}

func (c *Controller) scrollTo(y float64) {
	c.target = y
	if c.cfg.EaseDuration <= 0 {
		c.offset.Y = y
		c.tween = nil
		return
	}
	c.tween = gween.New(float32(c.offset.Y), float32(y), float32(c.cfg.EaseDuration), ease.OutQuad)
}

// updateWindow re-centers the active window once the ball has moved far
// enough from the last center.
func (c *Controller) updateWindow(y float64) {
	if c.window == nil {
		return
	}
	if c.activated && math.Abs(y-c.lastCenter) <= c.cfg.WindowHysteresis {
		return
	}
	c.window.Activate(y-c.cfg.WindowSpan, y+c.cfg.WindowSpan)
	c.lastCenter = y
	c.activated = true
}

// Reset snaps the view back onto the player, e.g. after a respawn
func (c *Controller) Reset(player *entity.Player) {
	c.tween = nil
	c.target = geometry.Clamp(player.Pos.Y-c.screenH/2, 0, c.maxY())
	c.offset.Y = c.target
	c.activated = false
	c.updateWindow(player.Pos.Y)
	player.Offset = player.Pos.Sub(c.offset)
}
