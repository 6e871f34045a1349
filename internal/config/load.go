package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"pibench/internal/benchmark"
	"pibench/internal/estimator"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. PIBENCH_SEED.
const EnvPrefix = "PIBENCH"

// Output formats accepted by output.format.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatNone     = "none"
)

type Config struct {
	Verbose     bool              `mapstructure:"verbose"`
	LogFile     string            `mapstructure:"log_file"`
	Seed        uint64            `mapstructure:"seed"`
	MonteCarlo  MonteCarloConfig  `mapstructure:"monte_carlo"`
	Accumulator AccumulatorConfig `mapstructure:"accumulator"`
	Archimedes  ArchimedesConfig  `mapstructure:"archimedes"`
	Output      OutputConfig      `mapstructure:"output"`
}

type MonteCarloConfig struct {
	Points []int `mapstructure:"points" validate:"required,min=1,ascending,dive,gte=1"`
	Runs   int   `mapstructure:"runs" validate:"gte=1"`
}

type AccumulatorConfig struct {
	Terms []int `mapstructure:"terms" validate:"required,min=1,ascending,dive,gte=0"`
	Runs  int   `mapstructure:"runs" validate:"gte=1"`
}

type ArchimedesConfig struct {
	Sides      []int `mapstructure:"sides" validate:"required,min=1,ascending,dive,gte=3"`
	Runs       int   `mapstructure:"runs" validate:"gte=1"`
	Iterations int   `mapstructure:"iterations" validate:"gte=0"`
}

type OutputConfig struct {
	Format  string `mapstructure:"format" validate:"oneof=table markdown none"`
	PlotDir string `mapstructure:"plot_dir"`
	Metrics bool   `mapstructure:"metrics"`
	NoColor bool   `mapstructure:"no_color"`
}

// Plan converts the sweep settings into a benchmark plan.
func (c *Config) Plan() benchmark.Plan {
	return benchmark.Plan{
		Points:          c.MonteCarlo.Points,
		MonteCarloRuns:  c.MonteCarlo.Runs,
		Terms:           c.Accumulator.Terms,
		AccumulatorRuns: c.Accumulator.Runs,
		Sides:           c.Archimedes.Sides,
		ArchimedesRuns:  c.Archimedes.Runs,
	}
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("seed", 0)

	viper.SetDefault("monte_carlo.points", benchmark.DefaultPoints)
	viper.SetDefault("monte_carlo.runs", benchmark.DefaultMonteCarloRuns)
	viper.SetDefault("accumulator.terms", benchmark.DefaultTerms)
	viper.SetDefault("accumulator.runs", benchmark.DefaultAccumulatorRuns)
	viper.SetDefault("archimedes.sides", benchmark.DefaultSides)
	viper.SetDefault("archimedes.runs", benchmark.DefaultArchimedesRuns)
	viper.SetDefault("archimedes.iterations", estimator.DefaultDoublingIterations)

	viper.SetDefault("output.format", FormatTable)
	viper.SetDefault("output.plot_dir", "")
	viper.SetDefault("output.metrics", false)
	viper.SetDefault("output.no_color", false)
}

// Load initializes the configuration from file and environment variables and
// returns the validated result. A missing config.yaml is fine; a missing file
// named explicitly by cfgFile is not.
func Load(cfgFile string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		slog.Debug("Using config file", "path", viper.ConfigFileUsed())
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
