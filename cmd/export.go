package cmd

import (
	"fmt"

	"github.com/inovacc/timejar/internal/core"
	"github.com/spf13/cobra"
)

var exportPretty bool

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the saved state as JSON",
	Long: `Write the state in the same layout it is stored in. Without a file the
JSON goes to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *core.Session) error {
			snap := s.State.Snapshot()

			if len(args) == 0 {
				return core.WriteSnapshot(cmd.OutOrStdout(), snap, exportPretty)
			}

			if err := core.WriteSnapshotToFile(args[0], snap); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d transfers to %s\n", len(snap.History), args[0])

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolVar(&exportPretty, "pretty", false, "Indent the JSON")
}
