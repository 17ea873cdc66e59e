package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-nav/internal/logger"
	"github.com/Faultbox/midgard-nav/pkg/math"
)

func FloorCmd(a *app) *cobra.Command {
	var (
		hint         int
		noNeighbours bool
	)
	c := &cobra.Command{
		Use:   "floor x,y,z",
		Short: "find the floor beneath a scene-space point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			point, err := parseVec3(args[0])
			if err != nil {
				return err
			}
			mesh, err := a.loadMesh()
			if err != nil {
				return err
			}

			var (
				pos  math.Vec3
				face uint32
				ok   bool
			)
			if hint >= 0 {
				pos, face, ok = mesh.FindFloorForFace(point, uint32(hint), noNeighbours)
			} else {
				pos, face, ok = mesh.FindFloor(point)
			}

			out := cmd.OutOrStdout()
			if !ok {
				logger.Debug("floor not found", zap.Any("point", point), zap.Int("hint", hint))
				fmt.Fprintln(out, "No floor")
				return nil
			}
			fmt.Fprintf(out, "Face:     %d\n", face)
			fmt.Fprintf(out, "Position: %s\n", formatVec3(pos))
			fmt.Fprintf(out, "Local:    %s\n", formatVec2(mesh.FaceLocalPosition(face, pos)))
			return nil
		},
	}
	c.Flags().IntVar(&hint, "face", -1, "start the search from this face")
	c.Flags().BoolVar(&noNeighbours, "no-neighbours", false, "with --face, test only that face")
	return c
}
