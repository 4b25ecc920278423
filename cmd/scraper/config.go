package main

import (
	"fmt"

	"github.com/namongk/fast-linkedin-scraper/internal/config"
	"github.com/namongk/fast-linkedin-scraper/internal/launch"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Dump(cmd.OutOrStdout(), a.cfg)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "args",
		Short: "Print the browser flags the launch profile adds, in launch order",
		Long:  "Print the browser flags the launch profile adds, in launch order.\nThe selected browser.driver puts its own defaults in front of them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := launch.Args(a.cfg.Browser)
			if err != nil {
				return err
			}
			for _, arg := range line {
				fmt.Fprintln(cmd.OutOrStdout(), arg)
			}
			return nil
		},
	})
	return cmd
}
