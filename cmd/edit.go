package cmd

import (
	"fmt"
	"strconv"

	"github.com/inovacc/timejar/internal/core"
	"github.com/inovacc/timejar/internal/jar"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <index> <value>",
	Short: "Change the minutes of a history record",
	Long: `Replace the value of the history record at index (as printed by
'timejar history') and recompute both jars from the whole history.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[0], err)
		}

		return withSession(func(s *core.Session) error {
			if err := s.State.EditHistory(index, args[1]); err != nil {
				return err
			}

			e := jar.Entry{Index: index, Record: s.State.History()[index]}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ [%d] %s\n", e.Index, e.Describe())
			core.PrintStatus(cmd.OutOrStdout(), "", s.State)

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().SetInterspersed(false)
}
