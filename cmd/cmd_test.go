package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inovacc/timejar/internal/jar"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) { f.Changed = false }

	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)

	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	globals = globalFlags{}
	historyAll, historyLimit = false, 0
	exportPretty, importYes, configForce = false, false, false

	resetFlags(rootCmd)

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func run(t *testing.T, dataDir string, args ...string) string {
	t.Helper()

	out, err := execute(t, "", append([]string{"--data-dir", dataDir, "--backend", "bolt"}, args...)...)
	require.NoError(t, err, out)

	return out
}

func TestTransferAndStatus(t *testing.T) {
	dir := t.TempDir()

	out := run(t, dir, "transfer", "60")
	assert.Contains(t, out, "Jar 1: 364 hours 0 minutes (99.7%)")
	assert.Contains(t, out, "Jar 2: 1 hours 0 minutes (0.3%)")

	out = run(t, dir, "status")
	assert.Contains(t, out, "Read Book For 365 Hrs")
	assert.Contains(t, out, "Jar 1: 364 hours 0 minutes")
}

func TestTransfer_Rejected(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "", "--data-dir", dir, "--backend", "bolt", "transfer", "600000")
	require.Error(t, err)
	assert.Contains(t, out, "not enough time left in jar 1")

	out = run(t, dir, "status")
	assert.Contains(t, out, "Jar 1: 365 hours 0 minutes")
}

func TestTransfer_NegativeMinutes(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "", "--data-dir", dir, "--backend", "bolt", "transfer", "-5")
	require.Error(t, err)
	assert.ErrorIs(t, err, jar.ErrInvalidMinutes)

	var te *jar.TransferError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "-5", te.Input)

	out := run(t, dir, "status")
	assert.Contains(t, out, "Jar 1: 365 hours 0 minutes")
}

func TestEdit_NegativeValue(t *testing.T) {
	dir := t.TempDir()

	run(t, dir, "transfer", "30")

	out := run(t, dir, "edit", "0", "-5")
	assert.Contains(t, out, "[0] -5 minutes transferred on")
	assert.Contains(t, out, "Jar 1: 365 hours")
}

func TestEdit(t *testing.T) {
	dir := t.TempDir()

	run(t, dir, "transfer", "30")

	out := run(t, dir, "edit", "0", "90")
	assert.Contains(t, out, "[0] 90 minutes transferred on")
	assert.Contains(t, out, "Jar 1: 363 hours 30 minutes")
	assert.Contains(t, out, "Jar 2: 1 hours 30 minutes")

	_, err := execute(t, "", "--data-dir", dir, "--backend", "bolt", "edit", "3", "1")
	assert.Error(t, err)

	_, err = execute(t, "", "--data-dir", dir, "--backend", "bolt", "edit", "first", "1")
	assert.Error(t, err)
}

func TestHistory(t *testing.T) {
	dir := t.TempDir()

	for _, m := range []string{"1", "2", "3", "4", "5", "6"} {
		run(t, dir, "transfer", m)
	}

	out := run(t, dir, "history")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "[5] 6 minutes"), lines[0])
	assert.True(t, strings.HasPrefix(lines[4], "[1] 2 minutes"), lines[4])

	out = run(t, dir, "history", "--all")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 6)

	out = run(t, dir, "history", "-n", "2")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestExportImport(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()

	run(t, src, "transfer", "120")

	exported := filepath.Join(t.TempDir(), "jar.json")
	out := run(t, src, "export", exported)
	assert.Contains(t, out, "Exported 1 transfers")

	out = run(t, src, "export")
	assert.Contains(t, out, `"jar1Hours":363`)

	out, err := execute(t, "n\n", "--data-dir", dst, "--backend", "bolt", "import", exported)
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	assert.Contains(t, run(t, dst, "status"), "Jar 1: 365 hours 0 minutes")

	out, err = execute(t, "y\n", "--data-dir", dst, "--backend", "bolt", "import", exported)
	require.NoError(t, err)
	assert.Contains(t, out, "Jar 1: 363 hours 0 minutes")
	assert.Contains(t, run(t, dst, "history"), "120 minutes transferred")
}

func TestImport_LocalStorageDump(t *testing.T) {
	dir := t.TempDir()

	dump := filepath.Join(t.TempDir(), "localStorage.json")
	require.NoError(t, os.WriteFile(dump, []byte(
		`{"timeTransferData":"{\"jar1Hours\":364.5,\"jar2Hours\":0.5,\"history\":[{\"value\":\"30\",\"date\":\"1/2/2024, 3:04:05 PM\"}]}"}`,
	), 0o600))

	out := run(t, dir, "import", "--yes", dump)
	assert.Contains(t, out, "Jar 1: 364 hours 30 minutes")
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()

	out := run(t, dir, "config", "path")
	assert.Equal(t, "Config:  "+filepath.Join(dir, "config.ini")+"\n"+
		"Storage: "+filepath.Join(dir, "timejar.bolt")+"\n", out)

	out = run(t, dir, "config", "init")
	assert.Contains(t, out, "Wrote")

	_, err := execute(t, "", "--data-dir", dir, "config", "init")
	assert.Error(t, err)

	run(t, dir, "config", "init", "--force")

	out = run(t, dir, "config", "show")
	assert.Contains(t, out, "Backend:         bolt")
	assert.Contains(t, out, "History Limit:   5")
}

func TestRoot_NoTerminalPrintsStatus(t *testing.T) {
	isTerminal := stdoutIsTerminal
	stdoutIsTerminal = func() bool { return false }

	t.Cleanup(func() { stdoutIsTerminal = isTerminal })

	dir := t.TempDir()

	run(t, dir, "transfer", "45")

	out := run(t, dir)
	assert.Contains(t, out, "Jar 1: 364 hours 15 minutes")
	assert.Contains(t, out, "[0] 45 minutes transferred on")
}
