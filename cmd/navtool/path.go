package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-nav/internal/logger"
	"github.com/Faultbox/midgard-nav/pkg/pathfinding"
)

func PathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path <from> <to>",
		Short: "find a path between two faces or two scene-space points",
		Long: `Find the shortest path across the mesh.

Endpoints are either both face indices (e.g. "path 18 139") or both
scene-space points (e.g. "path 0.2,0.2,1 2.7,0.1,1").`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mesh, err := a.loadMesh()
			if err != nil {
				return err
			}
			algorithm, err := a.cfg.Mesh.PathAlgorithm()
			if err != nil {
				return err
			}
			pf, err := pathfinding.New(mesh, algorithm)
			if err != nil {
				return err
			}

			var path []pathfinding.WayPoint
			fromFace, fromIsFace := parseFace(args[0])
			toFace, toIsFace := parseFace(args[1])
			switch {
			case fromIsFace && toIsFace:
				path = pf.FindPath(fromFace, toFace)
			case !fromIsFace && !toIsFace:
				from, err := parseVec3(args[0])
				if err != nil {
					return err
				}
				to, err := parseVec3(args[1])
				if err != nil {
					return err
				}
				path = pf.FindPathBetweenPoints(from, to)
			default:
				return fmt.Errorf("endpoints must both be faces or both be points")
			}

			logger.Debug("path query",
				zap.Stringer("algorithm", algorithm),
				zap.Strings("endpoints", args),
				zap.Int("waypoints", len(path)))

			out := cmd.OutOrStdout()
			if len(path) == 0 {
				fmt.Fprintln(out, "No path")
				return nil
			}

			var length float32
			for i, wp := range path {
				if i > 0 {
					length += wp.ScenePosition.Distance(path[i-1].ScenePosition)
				}
				fmt.Fprintf(out, "%3d  face %-5d %s  local %s\n",
					i, wp.FaceIndex, formatVec3(wp.ScenePosition), formatVec2(wp.FaceLocalPosition))
			}
			fmt.Fprintf(out, "Waypoints: %d, length %.4f\n", len(path), length)
			return nil
		},
	}
}
