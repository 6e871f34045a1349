package main

import (
	"fmt"
	"os"

	"pibench/internal/config"
	"pibench/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit

var (
	cfgFile string
	cfg     *config.Config
)

// flagKeys maps command-line flags onto configuration keys. Flags are bound
// on every invocation so that a viper.Reset between runs loses nothing.
var flagKeys = map[string]string{
	"verbose":    "verbose",
	"log-file":   "log_file",
	"seed":       "seed",
	"iterations": "archimedes.iterations",
	"format":     "output.format",
	"plot-dir":   "output.plot_dir",
	"metrics":    "output.metrics",
	"no-color":   "output.no_color",
}

// rootCmd represents the base command when called without any subcommands.
// On its own it runs the full benchmark, same as "pibench run".
var rootCmd = &cobra.Command{
	Use:   "pibench",
	Short: "Compare runtime versus precision of classic pi approximations",
	Long: `pibench approximates pi with three classical methods (Monte Carlo sampling,
the Nilakantha series and Archimedes' polygons), times every call across a
sweep of workload sizes and reports runtime against absolute error.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runBenchmarks,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pibench --help' for usage.")
		exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Also append logs to this file")

	addRunFlags(rootCmd)
}

// loadConfig reads the config file and ENV variables, then sets up logging.
func loadConfig(cmd *cobra.Command, args []string) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	telemetry.InitLogger(c.Verbose, c.LogFile)
	telemetry.LogDebug("configuration loaded", "seed", c.Seed, "format", c.Output.Format)
	cfg = c
	return nil
}
