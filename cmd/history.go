package cmd

import (
	"github.com/inovacc/timejar/internal/core"
	"github.com/spf13/cobra"
)

var (
	historyAll   bool
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent transfers, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *core.Session) error {
			limit := s.HistoryLimit()

			switch {
			case historyAll:
				limit = 0
			case cmd.Flags().Changed("limit"):
				limit = historyLimit
			}

			core.PrintHistory(cmd.OutOrStdout(), s.State, limit)

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVar(&historyAll, "all", false, "Show the whole history")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Number of records to show (default from config)")
}
