package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuningYAML []byte

// Tuning is the YAML-overridable subset of the configuration.
type Tuning struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Effects EffectsConfig `yaml:"effects"`
	Camera  CameraConfig  `yaml:"camera"`
	Clouds  CloudConfig   `yaml:"clouds"`
}

// CurrentTuning snapshots the live configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Physics: Physics,
		Player:  Player,
		Enemy:   Enemy,
		Effects: Effects,
		Camera:  Camera,
		Clouds:  Clouds,
	}
}

// Apply replaces the live configuration.
func (t Tuning) Apply() {
	Physics = t.Physics
	Player = t.Player
	Enemy = t.Enemy
	Effects = t.Effects
	Camera = t.Camera
	Clouds = t.Clouds
}

// ParseTuning overlays YAML onto base. Keys missing from data keep base's value.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, err
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.Physics.TileSize <= 0:
		return fmt.Errorf("physics.tile_size must be positive, got %d", t.Physics.TileSize)
	case t.Player.Width <= 0 || t.Player.Height <= 0:
		return fmt.Errorf("player size must be positive, got %vx%v", t.Player.Width, t.Player.Height)
	case t.Enemy.Width <= 0 || t.Enemy.Height <= 0:
		return fmt.Errorf("enemy size must be positive, got %vx%v", t.Enemy.Width, t.Enemy.Height)
	case t.Player.DashActiveThreshold >= t.Player.DashDuration:
		return fmt.Errorf("player.dash_active_threshold (%d) must be below dash_duration (%d)",
			t.Player.DashActiveThreshold, t.Player.DashDuration)
	case t.Enemy.PatrolMinTicks <= 0 || t.Enemy.PatrolMaxTicks < t.Enemy.PatrolMinTicks:
		return fmt.Errorf("enemy patrol ticks must satisfy 0 < min <= max, got %d..%d",
			t.Enemy.PatrolMinTicks, t.Enemy.PatrolMaxTicks)
	case t.Effects.SparkDecay <= 0:
		return fmt.Errorf("effects.spark_decay must be positive, got %v", t.Effects.SparkDecay)
	case t.Camera.Smoothing < 1:
		return fmt.Errorf("camera.smoothing must be at least 1, got %v", t.Camera.Smoothing)
	}
	return nil
}

// LoadTuning resolves tuning overrides.
// Search order: customPath -> ~/.tileplat/tuning.yaml -> ./configs/tuning.yaml -> embedded default
// The result is layered over the built-in defaults, so files only need the
// keys they change. It does not apply the result.
func LoadTuning(customPath string) (Tuning, error) {
	base, err := ParseTuning(defaultTuningYAML, CurrentTuning())
	if err != nil {
		return CurrentTuning(), fmt.Errorf("embedded tuning: %w", err)
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read tuning %s: %w", customPath, err)
		}
		t, err := ParseTuning(data, base)
		if err != nil {
			return base, fmt.Errorf("failed to parse tuning %s: %w", customPath, err)
		}
		return t, nil
	}

	for _, path := range []string{userConfigPath("tuning.yaml"), filepath.Join("configs", "tuning.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		t, err := ParseTuning(data, base)
		if err != nil {
			return base, fmt.Errorf("failed to parse tuning %s: %w", path, err)
		}
		return t, nil
	}

	return base, nil
}

func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tileplat", name)
}
