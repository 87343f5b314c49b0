// Package config loads runtime settings for the disjoint CLI from defaults,
// an optional YAML config file, a .env file, DISJOINT_* environment variables
// and command-line flags, in increasing order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/disjoint/cluster"
	"github.com/katalvlaran/disjoint/gridgraph"
	"github.com/pingcap/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. DISJOINT_TOP.
const EnvPrefix = "DISJOINT"

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

var (
	// ErrInvalidFormat indicates an output format other than text or yaml.
	ErrInvalidFormat = errors.New("config: unknown output format")

	// ErrInvalidLand indicates a land marker that is not exactly one character.
	ErrInvalidLand = errors.New("config: land marker must be a single character")
)

// Config holds all runtime configuration for one CLI invocation.
type Config struct {
	Input       string `mapstructure:"input"`
	Connections int    `mapstructure:"connections"`
	Top         int    `mapstructure:"top"`
	Format      string `mapstructure:"format"`
	LogLevel    string `mapstructure:"log_level"`
	Land        string `mapstructure:"land"`
	Diagonal    bool   `mapstructure:"diagonal"`
	Watch       bool   `mapstructure:"watch"`
}

// SetDefaults registers the built-in value of every key on v.
// Keys must be known to v for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", "input.txt")
	v.SetDefault("connections", cluster.DefaultConnections)
	v.SetDefault("top", cluster.DefaultTop)
	v.SetDefault("format", FormatText)
	v.SetDefault("log_level", "info")
	v.SetDefault("land", "@")
	v.SetDefault("diagonal", false)
	v.SetDefault("watch", false)
}

// Init prepares v: defaults, .env, environment binding and the config file.
//
// cfgFile names an explicit config file; when empty, .disjoint.yaml is looked
// up in the working directory and then the home directory, and a missing file
// is not an error. envFile names a dotenv file; when empty, ./.env is loaded
// if present. Variables already set in the environment win over the dotenv file.
func Init(v *viper.Viper, cfgFile, envFile string) error {
	SetDefaults(v)

	if err := loadDotEnv(envFile); err != nil {
		return err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".disjoint")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return errors.Annotatef(err, "read config %s", cfgFile)
	}

	return nil
}

func loadDotEnv(path string) error {
	if path == "" {
		path = ".env"
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil
		}
	}

	return errors.Annotatef(godotenv.Load(path), "load env file %s", path)
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Trace(err)
	}
	cfg.Input = filepath.Clean(cfg.Input)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field that can be checked without reading input.
func (c Config) Validate() error {
	if _, err := cluster.NewOptions(c.ClusterOptions()...); err != nil {
		return errors.Trace(err)
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return errors.Annotatef(ErrInvalidFormat, "%q", c.Format)
	}
	if utf8.RuneCountInString(c.Land) != 1 {
		return errors.Annotatef(ErrInvalidLand, "%q", c.Land)
	}

	return nil
}

// ClusterOptions converts the clustering settings into cluster options.
func (c Config) ClusterOptions() []cluster.Option {
	return []cluster.Option{
		cluster.WithConnections(c.Connections),
		cluster.WithTop(c.Top),
	}
}

// LandRune returns the land marker. Valid only after Validate succeeded.
func (c Config) LandRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Land)
	return r
}

// GridOptions returns the grid connectivity selected by Diagonal.
func (c Config) GridOptions() gridgraph.GridOptions {
	opts := gridgraph.DefaultGridOptions()
	if c.Diagonal {
		opts.Conn = gridgraph.Conn8
	}

	return opts
}
