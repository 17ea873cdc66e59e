// navtool inspects navigation meshes and runs floor and path queries
// against them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-nav/internal/config"
	"github.com/Faultbox/midgard-nav/internal/logger"
	"github.com/Faultbox/midgard-nav/pkg/navmesh"
)

var VERSION = "UNKNOWN"

// app carries state shared by all subcommands.
type app struct {
	flags *config.Flags
	cfg   *config.Config
}

func main() {
	if err := RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// RootCmd builds the navtool command tree.
func RootCmd() *cobra.Command {
	a := &app{}
	c := &cobra.Command{
		Use:          "navtool",
		Short:        "navigation mesh query tool",
		Version:      VERSION,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.flags)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
				return err
			}
			logger.Debug("config loaded",
				zap.String("mesh", cfg.Mesh.Path),
				zap.String("algorithm", cfg.Mesh.Algorithm))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	a.flags = config.BindFlags(c.PersistentFlags())

	c.AddCommand(
		InfoCmd(a),
		FloorCmd(a),
		PathCmd(a),
		WalkCmd(a),
		ConfigCmd(a),
	)
	return c
}

// loadMesh opens the configured mesh and places it in the scene.
func (a *app) loadMesh() (*navmesh.NavigationMesh, error) {
	if a.cfg.Mesh.Path == "" {
		return nil, fmt.Errorf("no navigation mesh given (use --mesh or mesh.path)")
	}
	mesh, err := navmesh.CreateFromFile(a.cfg.Mesh.Path)
	if err != nil {
		return nil, err
	}
	mesh.SetSceneTransform(a.cfg.Scene.Transform())

	logger.Info("navigation mesh loaded",
		zap.String("path", a.cfg.Mesh.Path),
		zap.Uint32("faces", mesh.FaceCount()),
		zap.Uint32("edges", mesh.EdgeCount()),
		zap.Uint32("vertices", mesh.VertexCount()))
	return mesh, nil
}
