package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/midgard-nav/pkg/navmesh"
)

func InfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "show navigation mesh statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mesh, err := a.loadMesh()
			if err != nil {
				return err
			}

			boundary := 0
			for i := 0; i < int(mesh.EdgeCount()); i++ {
				e := mesh.GetEdge(i)
				if e.Face[0] == navmesh.NullFace || e.Face[1] == navmesh.NullFace {
					boundary++
				}
			}
			bounds := mesh.Bounds()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Mesh:       %s\n", a.cfg.Mesh.Path)
			fmt.Fprintf(out, "Vertices:   %d\n", mesh.VertexCount())
			fmt.Fprintf(out, "Edges:      %d (%d boundary)\n", mesh.EdgeCount(), boundary)
			fmt.Fprintf(out, "Faces:      %d\n", mesh.FaceCount())
			fmt.Fprintf(out, "Components: %d\n", countComponents(mesh))
			fmt.Fprintf(out, "Gravity:    %s\n", formatVec3(mesh.GravityVector()))
			fmt.Fprintf(out, "Bounds:     %s - %s\n", formatVec3(bounds.Min), formatVec3(bounds.Max))
			return nil
		},
	}
}

// countComponents counts face regions connected through shared edges.
func countComponents(mesh *navmesh.NavigationMesh) int {
	n := int(mesh.FaceCount())
	seen := make([]bool, n)
	components := 0

	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		components++
		seen[start] = true
		stack := []uint16{uint16(start)}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, ei := range mesh.GetFace(int(f)).Edge {
				next := mesh.GetEdge(int(ei)).Other(f)
				if next != navmesh.NullFace && !seen[next] {
					seen[next] = true
					stack = append(stack, next)
				}
			}
		}
	}
	return components
}
