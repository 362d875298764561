package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/TrevorS/unionfind"
)

// DBConfig selects a SQL edge source and optional component sink.
type DBConfig struct {
	Driver    string `mapstructure:"driver"`
	DSN       string `mapstructure:"dsn"`
	Table     string `mapstructure:"table"`
	SaveTable string `mapstructure:"save_table"`
}

// ClusterConfig holds the threshold-clustering parameters.
type ClusterConfig struct {
	Epsilon float64 `mapstructure:"epsilon"`
	Metric  string  `mapstructure:"metric"`
	Workers int     `mapstructure:"workers"`
}

// Config holds all runtime configuration for a ufind invocation.
// Values are populated from .ufind.toml, UFIND_* env vars, and CLI flags.
type Config struct {
	Input   string        `mapstructure:"input"`
	Format  string        `mapstructure:"format"`
	Watch   bool          `mapstructure:"watch"`
	Verbose bool          `mapstructure:"verbose"`
	DB      DBConfig      `mapstructure:"db"`
	Cluster ClusterConfig `mapstructure:"cluster"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("input", "")
	viper.SetDefault("format", "")
	viper.SetDefault("watch", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("db.driver", "sqlite")
	viper.SetDefault("db.dsn", "")
	viper.SetDefault("db.table", "edges")
	viper.SetDefault("db.save_table", "")
	viper.SetDefault("cluster.epsilon", 1.0)
	viper.SetDefault("cluster.metric", "euclidean")
	viper.SetDefault("cluster.workers", 0)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Format {
	case "", "text", "toml":
	default:
		return fmt.Errorf("config: format must be \"text\" or \"toml\", got %q", c.Format)
	}
	switch c.DB.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("config: db.driver must be \"sqlite\" or \"postgres\", got %q", c.DB.Driver)
	}
	if c.Cluster.Workers < 0 {
		return fmt.Errorf("config: cluster.workers must be >= 0, got %d", c.Cluster.Workers)
	}
	return nil
}

// Threshold converts the cluster section into a library config.
func (c Config) Threshold() (unionfind.ThresholdConfig, error) {
	metric, err := unionfind.MetricByName(c.Cluster.Metric)
	if err != nil {
		return unionfind.ThresholdConfig{}, err
	}
	return unionfind.ThresholdConfig{
		Epsilon: c.Cluster.Epsilon,
		Metric:  metric,
		Workers: c.Cluster.Workers,
	}, nil
}
