package cmd

import (
	"errors"
	"unicode"

	"github.com/inovacc/timejar/internal/core"
	"github.com/inovacc/timejar/internal/jar"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var transferCmd = &cobra.Command{
	Use:   "transfer <minutes>",
	Short: "Move minutes from Jar 1 to Jar 2",
	Long: `Move a whole number of minutes from Jar 1 to Jar 2 and record it in the
history. The amount must be positive and no larger than what Jar 1 holds.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *core.Session) error {
			if err := s.State.Transfer(args[0]); err != nil {
				return err
			}

			core.PrintStatus(cmd.OutOrStdout(), "", s.State)

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(transferCmd)
	transferCmd.Flags().SetInterspersed(false)
	transferCmd.SetFlagErrorFunc(negativeMinutesError)
}

// negativeMinutesError turns "-5", which pflag reads as a shorthand flag,
// into the rejection a negative amount deserves.
func negativeMinutesError(cmd *cobra.Command, err error) error {
	var notExist *pflag.NotExistError
	if errors.As(err, &notExist) {
		if short := notExist.GetSpecifiedShortnames(); short != "" && unicode.IsDigit(rune(short[0])) {
			return &jar.TransferError{Input: "-" + short, Err: jar.ErrInvalidMinutes}
		}
	}

	return err
}
