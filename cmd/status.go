package cmd

import (
	"github.com/inovacc/timejar/internal/core"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show both jars",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *core.Session) error {
			core.PrintStatus(cmd.OutOrStdout(), env.Config.Jar.Title, s.State)

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
