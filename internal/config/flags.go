package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flags holds command-line overrides. Only flags the user actually set are
// applied on top of the loaded config.
type Flags struct {
	fs *pflag.FlagSet

	ConfigPath string
	Debug      bool
	LogFile    string
	MeshPath   string
	Algorithm  string
	Speed      float32
	Position   []float32
	Rotation   []float32
	Scale      []float32
}

// BindFlags registers the config flags on fs, typically a cobra command's
// persistent flag set.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFile, "log-file", "", "Also write logs to this file")
	fs.StringVarP(&f.MeshPath, "mesh", "m", "", "Navigation mesh file")
	fs.StringVar(&f.Algorithm, "algorithm", "", "Path finding algorithm (dijkstra, spfa)")
	fs.Float32Var(&f.Speed, "speed", 0, "Agent speed in units per second")
	fs.Float32SliceVar(&f.Position, "scene-position", nil, "Mesh position in the scene (x,y,z)")
	fs.Float32SliceVar(&f.Rotation, "scene-rotation", nil, "Mesh rotation in Euler degrees (x,y,z)")
	fs.Float32SliceVar(&f.Scale, "scene-scale", nil, "Mesh scale (x,y,z)")
	return f
}

func (f *Flags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// applyFlags applies CLI flag overrides to the config.
func (f *Flags) applyFlags(cfg *Config) error {
	if f.changed("debug") && f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.changed("log-file") {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.changed("mesh") {
		cfg.Mesh.Path = f.MeshPath
	}
	if f.changed("algorithm") {
		cfg.Mesh.Algorithm = f.Algorithm
	}
	if f.changed("speed") {
		cfg.Agent.Speed = f.Speed
	}

	vectors := []struct {
		name   string
		values []float32
		dst    *[3]float32
	}{
		{"scene-position", f.Position, &cfg.Scene.Position},
		{"scene-rotation", f.Rotation, &cfg.Scene.Rotation},
		{"scene-scale", f.Scale, &cfg.Scene.Scale},
	}
	for _, v := range vectors {
		if !f.changed(v.name) {
			continue
		}
		if len(v.values) != 3 {
			return fmt.Errorf("--%s needs 3 values, got %d", v.name, len(v.values))
		}
		copy(v.dst[:], v.values)
	}
	return nil
}
