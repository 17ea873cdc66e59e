package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-nav/internal/agent"
	"github.com/Faultbox/midgard-nav/internal/logger"
	"github.com/Faultbox/midgard-nav/pkg/pathfinding"
)

func WalkCmd(a *app) *cobra.Command {
	var trace bool
	c := &cobra.Command{
		Use:   "walk x,y,z x,y,z",
		Short: "simulate an agent walking between two scene-space points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseVec3(args[0])
			if err != nil {
				return err
			}
			to, err := parseVec3(args[1])
			if err != nil {
				return err
			}
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

			ac := a.cfg.Agent
			mc := agent.NewMovementController(pf, ac.Speed, ac.ArriveRadius)

			out := cmd.OutOrStdout()
			if !mc.Place(from) {
				fmt.Fprintln(out, "No floor at start")
				return nil
			}
			if mc.MoveTo(to) == nil {
				fmt.Fprintln(out, "No path")
				return nil
			}

			steps := 0
			for mc.IsFollowingPath && steps < ac.MaxSteps {
				mc.Update(ac.StepMs)
				steps++
				if trace {
					fmt.Fprintf(out, "%5d  face %-5d %s\n", steps, mc.Face(), formatVec3(mc.Position()))
				}
			}

			if mc.IsFollowingPath {
				logger.Warn("walk stopped before arrival", zap.Int("steps", steps))
			}
			fmt.Fprintf(out, "Arrived:  %t\n", !mc.IsFollowingPath)
			fmt.Fprintf(out, "Steps:    %d (%.2fs)\n", steps, float32(steps)*ac.StepMs/1000)
			fmt.Fprintf(out, "Face:     %d\n", mc.Face())
			fmt.Fprintf(out, "Position: %s\n", formatVec3(mc.Position()))
			return nil
		},
	}
	c.Flags().BoolVar(&trace, "trace", false, "print the agent position after every step")
	return c
}
