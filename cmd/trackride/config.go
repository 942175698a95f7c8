package main

import (
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
	"honnef.co/go/track"
	"honnef.co/go/track/controls"
)

// Config is the optional trackride.yaml configuration.
type Config struct {
	Controls controls.Config `yaml:"controls"`
	Ride     RideConfig      `yaml:"ride"`
	// Track lists the controls of the course. A built-in course is used if
	// it is empty.
	Track []ControlConfig `yaml:"track,omitempty"`
}

// RideConfig contains ride settings.
type RideConfig struct {
	// Speed is the nominal speed of the rider in world units per second.
	Speed float64 `yaml:"speed,omitempty"`
	// Width is the width of the road.
	Width float64 `yaml:"width,omitempty"`
	Lanes int     `yaml:"lanes,omitempty"`
	// Rate is the spacing of the road's rows.
	Rate float64 `yaml:"rate,omitempty"`
	FPS  int     `yaml:"fps,omitempty"`
}

// ControlConfig is a track control as written in the configuration.
type ControlConfig struct {
	Position [3]float64 `yaml:"position"`
	Tangent  [3]float64 `yaml:"tangent"`
	Twist    float64    `yaml:"twist,omitempty"`
}

const (
	defaultSpeed = 6.0
	defaultWidth = 3.0
	defaultLanes = 2
	defaultRate  = 0.5
	defaultFPS   = 60
)

// LoadOptional reads the configuration at path if present and fills in
// defaults.
func LoadOptional(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	cfg.resolve()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return &cfg, nil
}

func (cfg *Config) resolve() {
	if cfg.Ride.Speed == 0 {
		cfg.Ride.Speed = defaultSpeed
	}
	if cfg.Ride.Width == 0 {
		cfg.Ride.Width = defaultWidth
	}
	if cfg.Ride.Lanes == 0 {
		cfg.Ride.Lanes = defaultLanes
	}
	if cfg.Ride.Rate == 0 {
		cfg.Ride.Rate = defaultRate
	}
	if cfg.Ride.FPS == 0 {
		cfg.Ride.FPS = defaultFPS
	}
	if len(cfg.Track) == 0 {
		cfg.Track = defaultCourse()
	}
}

func (cfg *Config) validate() error {
	if cfg.Ride.Speed < 0 {
		return fmt.Errorf("ride.speed must not be negative (got %g)", cfg.Ride.Speed)
	}
	if cfg.Ride.Width < 0 {
		return fmt.Errorf("ride.width must not be negative (got %g)", cfg.Ride.Width)
	}
	if cfg.Ride.Lanes < 0 {
		return fmt.Errorf("ride.lanes must not be negative (got %d)", cfg.Ride.Lanes)
	}
	if cfg.Ride.Rate < 0 {
		return fmt.Errorf("ride.rate must not be negative (got %g)", cfg.Ride.Rate)
	}
	if cfg.Ride.FPS < 1 || cfg.Ride.FPS > 1000 {
		return fmt.Errorf("ride.fps must be between 1 and 1000 (got %d)", cfg.Ride.FPS)
	}
	if len(cfg.Track) < 2 {
		return fmt.Errorf("track needs at least two controls (got %d)", len(cfg.Track))
	}
	for i, c := range cfg.Track {
		if c.Tangent == [3]float64{} {
			return fmt.Errorf("track[%d] has a zero tangent", i)
		}
	}
	return nil
}

// Controls returns the course as track controls.
func (cfg *Config) Controls() []track.Control {
	out := make([]track.Control, len(cfg.Track))
	for i, c := range cfg.Track {
		out[i] = track.Ctrl(vec3(c.Position), vec3(c.Tangent), c.Twist)
	}
	return out
}

func vec3(v [3]float64) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// defaultCourse is a banked, slightly hilly ring of radius 12, made of four
// quarter arcs.
func defaultCourse() []ControlConfig {
	// handle length of a cubic approximating a quarter circle
	const r = 12.0
	const k = 0.5522847498 * r
	return []ControlConfig{
		{Position: [3]float64{r, 0, 0}, Tangent: [3]float64{0, 0, k}},
		{Position: [3]float64{0, 2, r}, Tangent: [3]float64{-k, 0, 0}, Twist: 0.4},
		{Position: [3]float64{-r, 0, 0}, Tangent: [3]float64{0, 0, -k}},
		{Position: [3]float64{0, -1, -r}, Tangent: [3]float64{k, 0, 0}, Twist: -0.4},
		{Position: [3]float64{r, 0, 0}, Tangent: [3]float64{0, 0, k}},
	}
}
