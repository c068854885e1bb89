package cmd

import (
	"fmt"

	"github.com/inovacc/timejar/internal/core"
	"github.com/inovacc/timejar/internal/model"
	"github.com/inovacc/timejar/internal/store"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return core.ShowConfig(cmd.OutOrStdout(), env)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file and storage paths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		storagePath, err := store.Path(env.Config.Storage, env.DataDir)
		if err != nil {
			return err
		}

		if storagePath == "" {
			storagePath = "(memory)"
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "Config:  %s\n", env.ConfigPath)
		_, err = fmt.Fprintf(out, "Storage: %s\n", storagePath)

		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := core.InitConfig(env.ConfigPath, model.DefaultConfig(), configForce); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", env.ConfigPath)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configPathCmd, configInitCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
}
