package cmd

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/timejar/internal/application"
	"github.com/inovacc/timejar/internal/cli"
	"github.com/inovacc/timejar/internal/core"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	env      *core.Env
	closeLog = func() error { return nil }

	stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Move reading time from one jar to another",
	Long: `Timejar keeps two jars of time. Jar 1 starts with 365 hours, Jar 2 starts
empty. Every transfer moves minutes from Jar 1 to Jar 2 and is kept in an
editable history. State is saved locally after every change.

Run without a command to open the interactive widget.`,
	Version:            application.Version,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return closeLog() },
	RunE:               runWidget,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	bindGlobalFlags(rootCmd.PersistentFlags(), &globals)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error

	env, err = core.LoadEnv(core.EnvOptions{
		DataDir:    globals.dataDir,
		ConfigPath: globals.configPath,
		Backend:    globals.backend,
	})
	if err != nil {
		return err
	}

	closeLog, err = core.SetupLogger(env)
	if err != nil {
		return err
	}

	slog.Debug("starting", "command", cmd.CommandPath(), "data_dir", env.DataDir, "config", env.ConfigPath)

	return nil
}

// withSession opens a session for the duration of fn.
func withSession(fn func(s *core.Session) error) error {
	s, err := core.OpenSession(env)
	if err != nil {
		return err
	}

	defer func() {
		if err := s.Close(); err != nil {
			slog.Warn("failed to close store", "error", err)
		}
	}()

	return fn(s)
}

func runWidget(cmd *cobra.Command, args []string) error {
	return withSession(func(s *core.Session) error {
		if !stdoutIsTerminal() {
			core.PrintStatus(cmd.OutOrStdout(), env.Config.Jar.Title, s.State)
			core.PrintHistory(cmd.OutOrStdout(), s.State, s.HistoryLimit())

			return nil
		}

		m := cli.NewTransferModel(s.State, env.Config.Jar.Title, s.HistoryLimit())
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()

		return err
	})
}
