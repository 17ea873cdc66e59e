package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func ConfigCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "manage the navtool configuration",
	}
	c.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration to a file",
		Long: `Write the effective configuration (defaults, config file and flags
merged) as YAML. Without a path it goes to the user config directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			var err error
			if len(args) == 1 {
				path = args[0]
				err = a.cfg.SaveTo(path)
			} else {
				path, err = a.cfg.Save()
			}
			if err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	})
	return c
}
