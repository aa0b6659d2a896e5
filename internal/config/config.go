package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/tracer/pkg/math3d"
	"github.com/taigrr/tracer/pkg/projectile"
	"github.com/taigrr/tracer/pkg/render"
)

const (
	DefaultWidth          = 900
	DefaultHeight         = 550
	DefaultScale          = 1
	DefaultSpeed          = 11.25
	DefaultTicksPerSecond = 1
	DefaultMaxTicks       = 10000
	DefaultOutput         = "projectile.png"
)

// ErrInvalid indicates a configuration value outside its valid range.
var ErrInvalid = errors.New("config: invalid value")

// Triple is a three-component value written as a YAML sequence.
type Triple [3]float64

// Point returns t as a point.
func (t Triple) Point() math3d.Tuple { return math3d.Point(t[0], t[1], t[2]) }

// Vector returns t as a vector.
func (t Triple) Vector() math3d.Tuple { return math3d.Vector(t[0], t[1], t[2]) }

// Color returns t as a color.
func (t Triple) Color() render.Color { return render.RGB(t[0], t[1], t[2]) }

type Config struct {
	Canvas         CanvasConfig      `yaml:"canvas"`
	Projectile     ProjectileConfig  `yaml:"projectile"`
	Environment    EnvironmentConfig `yaml:"environment"`
	TicksPerSecond int               `yaml:"ticks_per_second"`
	MaxTicks       int               `yaml:"max_ticks"`
	Output         string            `yaml:"output"`
}

type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background Triple `yaml:"background"`
	Scale      int    `yaml:"scale"`
}

type ProjectileConfig struct {
	Start    Triple  `yaml:"start"`
	Velocity Triple  `yaml:"velocity"`
	Speed    float64 `yaml:"speed"`
	Color    Triple  `yaml:"color"`
}

type EnvironmentConfig struct {
	Gravity Triple `yaml:"gravity"`
	Wind    Triple `yaml:"wind"`
}

func DefaultConfig() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Scale:  DefaultScale,
		},
		Projectile: ProjectileConfig{
			Start:    Triple{0, 1, 0},
			Velocity: Triple{1, 1.8, 0},
			Speed:    DefaultSpeed,
			Color:    Triple{1, 0.8, 0.2},
		},
		Environment: EnvironmentConfig{
			Gravity: Triple{0, -0.1, 0},
			Wind:    Triple{-0.01, 0, 0},
		},
		TicksPerSecond: DefaultTicksPerSecond,
		MaxTicks:       DefaultMaxTicks,
		Output:         DefaultOutput,
	}
}

// Load reads a YAML file on top of DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Canvas.Width < 1 || c.Canvas.Height < 1:
		return fmt.Errorf("canvas %dx%d: %w", c.Canvas.Width, c.Canvas.Height, ErrInvalid)
	case c.Canvas.Scale < 1:
		return fmt.Errorf("canvas scale %d: %w", c.Canvas.Scale, ErrInvalid)
	case c.TicksPerSecond < 1:
		return fmt.Errorf("ticks_per_second %d: %w", c.TicksPerSecond, ErrInvalid)
	case c.MaxTicks < 1:
		return fmt.Errorf("max_ticks %d: %w", c.MaxTicks, ErrInvalid)
	}
	return nil
}

// Env returns the configured forces.
func (c *Config) Env() projectile.Environment {
	return projectile.Environment{
		Gravity: c.Environment.Gravity.Vector(),
		Wind:    c.Environment.Wind.Vector(),
	}
}

// Launch returns the projectile at its start point, moving along the
// configured direction at the configured speed.
func (c *Config) Launch() (projectile.Projectile, error) {
	dir, err := c.Projectile.Velocity.Vector().Normalize()
	if err != nil {
		return projectile.Projectile{}, fmt.Errorf("projectile velocity: %w", err)
	}
	return projectile.New(c.Projectile.Start.Point(), dir.Scale(c.Projectile.Speed))
}
