// Package config handles navtool configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/midgard-nav/internal/agent"
	"github.com/Faultbox/midgard-nav/pkg/math"
	"github.com/Faultbox/midgard-nav/pkg/pathfinding"
)

// Config holds all navtool settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Scene   SceneConfig   `yaml:"scene"`
	Agent   AgentConfig   `yaml:"agent"`
	Logging LoggingConfig `yaml:"logging"`
}

// MeshConfig selects the navigation mesh and how to route over it.
type MeshConfig struct {
	Path      string `yaml:"path"`      // .navmesh file
	Algorithm string `yaml:"algorithm"` // dijkstra, spfa or default
}

// SceneConfig places the mesh in the scene.
type SceneConfig struct {
	Position [3]float32 `yaml:"position,flow"`
	Rotation [3]float32 `yaml:"rotation,flow"` // Euler angles in degrees
	Scale    [3]float32 `yaml:"scale,flow"`
}

// AgentConfig holds movement simulation settings.
type AgentConfig struct {
	Speed        float32 `yaml:"speed"`         // Units per second
	StepMs       float32 `yaml:"step_ms"`       // Simulation time step
	ArriveRadius float32 `yaml:"arrive_radius"` // Waypoint arrival distance
	MaxSteps     int     `yaml:"max_steps"`     // Stop walking after this many steps
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			Algorithm: pathfinding.Default.String(),
		},
		Scene: SceneConfig{
			Scale: [3]float32{1, 1, 1},
		},
		Agent: AgentConfig{
			Speed:        agent.DefaultSpeed,
			StepMs:       1000.0 / 60,
			ArriveRadius: agent.DefaultArriveRadius,
			MaxSteps:     10000,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that cannot be used as given.
func (c *Config) Validate() error {
	if _, err := c.Mesh.PathAlgorithm(); err != nil {
		return err
	}
	for i, s := range c.Scene.Scale {
		if s == 0 {
			return fmt.Errorf("scene scale component %d is zero", i)
		}
	}
	if c.Agent.Speed <= 0 {
		return fmt.Errorf("agent speed must be positive, got %g", c.Agent.Speed)
	}
	if c.Agent.StepMs <= 0 {
		return fmt.Errorf("agent step must be positive, got %g", c.Agent.StepMs)
	}
	return nil
}

// PathAlgorithm parses the configured algorithm name.
func (m MeshConfig) PathAlgorithm() (pathfinding.Algorithm, error) {
	return pathfinding.ParseAlgorithm(m.Algorithm)
}

// Transform builds the local-to-scene matrix (translation * rotation * scale).
func (s SceneConfig) Transform() math.Mat4 {
	return math.Compose(
		math.Vec3FromArray(s.Position),
		math.QuatFromEulerDegrees(s.Rotation[0], s.Rotation[1], s.Rotation[2]),
		math.Vec3FromArray(s.Scale),
	)
}
