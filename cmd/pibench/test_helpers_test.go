package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// executeCommand executes a cobra command and returns its output.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	resetFlags(root)
	viper.Reset()
	cfgFile = ""

	oldExit := exit
	exit = func(code int) {
		if code != 0 {
			panic(fmt.Sprintf("exit-%d", code))
		}
	}
	defer func() { exit = oldExit }()
	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(string); ok && strings.HasPrefix(s, "exit-") {
				return
			}
			panic(r)
		}
	}()

	root.SetArgs(args)
	b := new(bytes.Buffer)
	root.SetOut(b)
	root.SetErr(b)
	root.SetIn(bytes.NewBufferString(""))
	err := root.Execute()
	return b.String(), err
}

// resetFlags resets all flags to their default values.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// smallSweeps keeps command tests fast: tiny sweeps, fixed seed, empty cwd.
func smallSweeps(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("PIBENCH_SEED", "7")
	t.Setenv("PIBENCH_MONTE_CARLO_POINTS", "100,1000")
	t.Setenv("PIBENCH_MONTE_CARLO_RUNS", "2")
	t.Setenv("PIBENCH_ACCUMULATOR_TERMS", "10,100")
	t.Setenv("PIBENCH_ARCHIMEDES_SIDES", "3,6,60")
	t.Setenv("PIBENCH_ARCHIMEDES_RUNS", "2")
}
