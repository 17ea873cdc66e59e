package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/Faultbox/midgard-nav/pkg/math"
	"github.com/Faultbox/midgard-nav/pkg/pathfinding"
)

// isolate keeps tests away from any real config files.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	chdir(t, tmpDir)
	return tmpDir
}

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("failed to parse flags %v: %v", args, err)
	}
	return flags
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Mesh.Algorithm != "dijkstra" {
		t.Errorf("expected algorithm dijkstra, got %s", cfg.Mesh.Algorithm)
	}
	if cfg.Mesh.Path != "" {
		t.Errorf("expected empty mesh path, got %s", cfg.Mesh.Path)
	}
	if cfg.Scene.Scale != [3]float32{1, 1, 1} {
		t.Errorf("expected unit scale, got %v", cfg.Scene.Scale)
	}
	if cfg.Scene.Transform() != math.Identity() {
		t.Errorf("default scene transform should be identity, got %v", cfg.Scene.Transform())
	}
	if cfg.Agent.Speed <= 0 || cfg.Agent.StepMs <= 0 || cfg.Agent.MaxSteps <= 0 {
		t.Errorf("agent defaults must be positive: %+v", cfg.Agent)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
mesh:
  path: "level1.navmesh"
  algorithm: spfa

scene:
  position: [1, 2, 3]
  rotation: [0, 90, 0]
  scale: [2, 2, 2]

agent:
  speed: 6.5
  step_ms: 20
  arrive_radius: 0.1
  max_steps: 500

logging:
  level: "debug"
  log_file: "nav.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Mesh.Path != "level1.navmesh" {
		t.Errorf("expected mesh path level1.navmesh, got %s", cfg.Mesh.Path)
	}
	if algo, err := cfg.Mesh.PathAlgorithm(); err != nil || algo != pathfinding.SPFA {
		t.Errorf("expected SPFA, got %v (%v)", algo, err)
	}
	if cfg.Scene.Position != [3]float32{1, 2, 3} {
		t.Errorf("expected position [1 2 3], got %v", cfg.Scene.Position)
	}
	if cfg.Scene.Rotation != [3]float32{0, 90, 0} {
		t.Errorf("expected rotation [0 90 0], got %v", cfg.Scene.Rotation)
	}
	if cfg.Scene.Scale != [3]float32{2, 2, 2} {
		t.Errorf("expected scale [2 2 2], got %v", cfg.Scene.Scale)
	}
	if cfg.Agent.Speed != 6.5 || cfg.Agent.StepMs != 20 || cfg.Agent.ArriveRadius != 0.1 || cfg.Agent.MaxSteps != 500 {
		t.Errorf("unexpected agent config: %+v", cfg.Agent)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "nav.log" {
		t.Errorf("expected log file 'nav.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("agent:\n  speed: 9\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Agent.Speed != 9 {
		t.Errorf("expected speed 9, got %f", cfg.Agent.Speed)
	}
	// Untouched sections keep their defaults
	if cfg.Agent.StepMs != Default().Agent.StepMs || cfg.Scene.Scale != [3]float32{1, 1, 1} {
		t.Errorf("defaults were lost: %+v %+v", cfg.Agent, cfg.Scene)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
agent:
  speed: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := isolate(t)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "navtool.yaml")
	if err := os.WriteFile(configPath, []byte("agent:\n  speed: 2\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find navtool.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{
			name: "no flags",
			args: nil,
			verify: func(t *testing.T, cfg *Config) {
				if *cfg != *Default() {
					t.Errorf("config changed without flags: %+v", cfg)
				}
			},
		},
		{
			name: "debug flag",
			args: []string{"--debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "mesh and algorithm",
			args: []string{"-m", "a.navmesh", "--algorithm", "spfa", "--log-file", "x.log"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Mesh.Path != "a.navmesh" || cfg.Mesh.Algorithm != "spfa" {
					t.Errorf("unexpected mesh config: %+v", cfg.Mesh)
				}
				if cfg.Logging.LogFile != "x.log" {
					t.Errorf("expected log file x.log, got %s", cfg.Logging.LogFile)
				}
			},
		},
		{
			name: "speed",
			args: []string{"--speed", "2.5"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Agent.Speed != 2.5 {
					t.Errorf("expected speed 2.5, got %f", cfg.Agent.Speed)
				}
			},
		},
		{
			name: "scene vectors",
			args: []string{"--scene-position", "1,2,3", "--scene-rotation=0,0,45", "--scene-scale", "2,2,2"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Position != [3]float32{1, 2, 3} {
					t.Errorf("expected position [1 2 3], got %v", cfg.Scene.Position)
				}
				if cfg.Scene.Rotation != [3]float32{0, 0, 45} {
					t.Errorf("expected rotation [0 0 45], got %v", cfg.Scene.Rotation)
				}
				if cfg.Scene.Scale != [3]float32{2, 2, 2} {
					t.Errorf("expected scale [2 2 2], got %v", cfg.Scene.Scale)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := parseFlags(t, tt.args...)

			cfg := Default()
			if err := flags.applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags failed: %v", err)
			}
			tt.verify(t, cfg)
		})
	}
}

func TestApplyFlagsBadVector(t *testing.T) {
	flags := parseFlags(t, "--scene-position", "1,2")
	err := flags.applyFlags(Default())
	if err == nil || !strings.Contains(err.Error(), "scene-position") {
		t.Errorf("expected error naming scene-position, got %v", err)
	}
}

func TestLoadPriority(t *testing.T) {
	isolate(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
mesh:
  path: from-file.navmesh
  algorithm: spfa
agent:
  speed: 3
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(parseFlags(t, "--config", configPath, "--speed", "7"))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Speed from flag, not file
	if cfg.Agent.Speed != 7 {
		t.Errorf("expected speed 7 from flag, got %f", cfg.Agent.Speed)
	}
	// Mesh from file since no flag override
	if cfg.Mesh.Path != "from-file.navmesh" || cfg.Mesh.Algorithm != "spfa" {
		t.Errorf("expected mesh settings from file, got %+v", cfg.Mesh)
	}
}

func TestLoadNilFlags(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown algorithm", []string{"--algorithm", "astar"}},
		{"zero speed", []string{"--speed", "0"}},
		{"zero scale", []string{"--scene-scale", "1,0,1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(parseFlags(t, tt.args...)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSceneTransform(t *testing.T) {
	scene := SceneConfig{
		Position: [3]float32{10, 0, 0},
		Rotation: [3]float32{0, 0, 90},
		Scale:    [3]float32{2, 2, 2},
	}

	got := scene.Transform().TransformPoint(math.Vec3{X: 1})
	want := math.Vec3{X: 10, Y: 2}
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("Transform applied to (1,0,0) = %v, want %v", got, want)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Mesh.Path = "saved.navmesh"
	cfg.Scene.Rotation = [3]float32{0, 45, 0}
	cfg.Agent.MaxSteps = 42

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("reloaded config = %+v, want %+v", loaded, cfg)
	}
}

func TestSave(t *testing.T) {
	isolate(t)

	path, err := Default().Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if filepath.Dir(path) != ConfigDir() {
		t.Errorf("saved to %s, want directory %s", path, ConfigDir())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
