package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/inovacc/timejar/internal/core"
	"github.com/spf13/cobra"
)

var importYes bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the state with an exported snapshot",
	Long: `Replace both jars and the history with a snapshot written by 'timejar export',
or with a browser localStorage dump that holds it under the storage key.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := core.ReadSnapshotFile(args[0], env.Config.Storage.Key)
		if err != nil {
			return err
		}

		if !importYes {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Replace current state with %d transfers from '%s'? [y/N]: ", len(snap.History), args[0])

			response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if r := strings.TrimSpace(response); r != "y" && r != "Y" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")

				return nil
			}
		}

		return withSession(func(s *core.Session) error {
			core.ImportSnapshot(s, *snap)
			core.PrintStatus(cmd.OutOrStdout(), "", s.State)

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "Skip confirmation prompt")
}
