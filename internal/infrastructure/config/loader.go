package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides for physics.json,
// e.g. GOLF_PHYSICS_GRAVITY=1200
const EnvPrefix = "GOLF"

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Shapes  *ShapesConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.json. Every key can be overridden from the
// environment with the GOLF_ prefix and dots replaced by underscores.
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode physics.json: %w", err)
	}
	cfg.Defaults()

	return &cfg, nil
}

// LoadShapes loads shapes.json
func (l *Loader) LoadShapes() (*ShapesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "shapes.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read shapes.json: %w", err)
	}

	var cfg ShapesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse shapes.json: %w", err)
	}

	for name, s := range cfg.Shapes {
		if n := len(s.Vertices); n == 1 {
			return nil, fmt.Errorf("failed to parse shapes.json: shape %s has %d vertices", name, n)
		}
	}

	return &cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadStageData loads a stage by name. stages/<name>.tmx wins over
// stages/<name>.json when both exist.
func (l *Loader) LoadStageData(name string) (*StageData, error) {
	tmxPath := "stages/" + name + ".tmx"
	if _, err := fs.Stat(l.fsys, tmxPath); err == nil {
		return l.LoadTMX(tmxPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", tmxPath, err)
	}

	cfg, err := l.LoadStage(name)
	if err != nil {
		return nil, err
	}

	data := &StageData{
		ID:       cfg.ID,
		Name:     cfg.Name,
		TileSize: cfg.Size.TileSize,
		Layers:   make(map[string]Grid, len(cfg.Layers)),
		Mapping:  make(map[int]TileMappingConfig, len(cfg.TileMapping)),
	}
	if data.TileSize <= 0 {
		return nil, fmt.Errorf("failed to load stage %s: tile size must be positive", name)
	}

	for key, m := range cfg.TileMapping {
		var id int
		if _, err := fmt.Sscanf(key, "%d", &id); err != nil {
			return nil, fmt.Errorf("failed to parse stage %s: tile mapping key %q: %w", name, key, err)
		}
		data.Mapping[id] = m
	}

	for layer, path := range cfg.Layers {
		grid, err := l.LoadCSV("stages/" + path)
		if err != nil {
			return nil, fmt.Errorf("failed to load stage %s layer %s: %w", name, layer, err)
		}
		data.Layers[layer] = grid
		data.Rows = max(data.Rows, len(grid))
		data.Cols = max(data.Cols, grid.Cols())
	}

	return data, nil
}

// LoadAll loads all base configurations (physics, shapes)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	shapes, err := l.LoadShapes()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		Shapes:  shapes,
	}, nil
}
