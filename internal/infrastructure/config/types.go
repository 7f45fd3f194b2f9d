package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display DisplayConfig   `json:"display" mapstructure:"display"`
	Physics PhysicsSettings `json:"physics" mapstructure:"physics"`
	Player  PlayerConfig    `json:"player" mapstructure:"player"`
	Camera  CameraConfig    `json:"camera" mapstructure:"camera"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" mapstructure:"screenWidth"`
	ScreenHeight int `json:"screenHeight" mapstructure:"screenHeight"`
	Scale        int `json:"scale" mapstructure:"scale"`
	Framerate    int `json:"framerate" mapstructure:"framerate"`
}

type PhysicsSettings struct {
	Gravity             float64 `json:"gravity" mapstructure:"gravity"` // px/s^2 per unit mass
	Mass                float64 `json:"mass" mapstructure:"mass"`
	Substeps            int     `json:"substeps" mapstructure:"substeps"`
	BisectionIterations int     `json:"bisectionIterations" mapstructure:"bisectionIterations"`
	QueryMargin         float64 `json:"queryMargin" mapstructure:"queryMargin"` // broadphase padding (pixels)
}

type PlayerConfig struct {
	Radius          float64 `json:"radius" mapstructure:"radius"`
	DefaultJumps    int     `json:"defaultJumps" mapstructure:"defaultJumps"`
	ShootMultiplier float64 `json:"shootMultiplier" mapstructure:"shootMultiplier"`
	SpinFactor      float64 `json:"spinFactor" mapstructure:"spinFactor"`
	RollFactor      float64 `json:"rollFactor" mapstructure:"rollFactor"`
	RespawnBlink    float64 `json:"respawnBlink" mapstructure:"respawnBlink"`   // seconds
	BlinkInterval   float64 `json:"blinkInterval" mapstructure:"blinkInterval"` // seconds
}

type CameraConfig struct {
	FollowThreshold  float64 `json:"followThreshold" mapstructure:"followThreshold"` // fraction of screen height
	EaseDuration     float64 `json:"easeDuration" mapstructure:"easeDuration"`       // seconds
	WindowSpan       float64 `json:"windowSpan" mapstructure:"windowSpan"`           // pixels above and below the ball
	WindowHysteresis float64 `json:"windowHysteresis" mapstructure:"windowHysteresis"`
}

// Defaults fills zero values that would stall the simulation
func (c *PhysicsConfig) Defaults() {
	if c.Physics.Substeps <= 0 {
		c.Physics.Substeps = 4
	}
	if c.Physics.BisectionIterations <= 0 {
		c.Physics.BisectionIterations = 10
	}
	if c.Physics.Mass == 0 {
		c.Physics.Mass = 1
	}
	if c.Display.Framerate <= 0 {
		c.Display.Framerate = 60
	}
	if c.Display.Scale <= 0 {
		c.Display.Scale = 1
	}
}
