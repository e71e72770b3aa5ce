package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// FileName is the config file searched for when no path is given.
	FileName = "dw-migrate"
	// DotEnvFile holds BASE_DIR / OUTPUT_DIR overrides, read from the working directory.
	DotEnvFile = ".env"
)

type Config struct {
	BaseDir    string        `mapstructure:"base_dir"`
	OutputDir  string        `mapstructure:"output_dir"`
	SchemaFile string        `mapstructure:"schema_file"`
	Dialects   []string      `mapstructure:"dialects"`
	Logging    LoggingConfig `mapstructure:"logging"`
	Seed       SeedConfig    `mapstructure:"seed"`
	Databases  []DBConfig    `mapstructure:"databases"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type SeedConfig struct {
	Rows     int   `mapstructure:"rows"`
	FactRows int   `mapstructure:"fact_rows"`
	Seed     int64 `mapstructure:"seed"`
}

type DBConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Owner  string `mapstructure:"owner"`
	Active bool   `mapstructure:"active"`
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"base-dir":    "base_dir",
	"output-dir":  "output_dir",
	"schema-file": "schema_file",
	"log-level":   "logging.level",
}

// Load resolves the configuration. Precedence, highest first: flags that
// were set, environment, config file, .env file, defaults. An explicit path
// must exist; the default search tolerates a missing file.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := mergeDotEnv(v, DotEnvFile); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if ex, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(ex))
		}
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_dir", ".")
	v.SetDefault("output_dir", "output")
	v.SetDefault("schema_file", "")
	v.SetDefault("dialects", []string{"postgresql", "oracle"})

	v.SetDefault("logging.level", "info")

	v.SetDefault("seed.rows", 20)
	v.SetDefault("seed.fact_rows", 100)
	v.SetDefault("seed.seed", 42)
}

// mergeDotEnv lets a .env file replace the directory defaults.
func mergeDotEnv(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	env := viper.New()
	env.SetConfigFile(path)
	env.SetConfigType("env")
	if err := env.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	for _, key := range []string{"base_dir", "output_dir"} {
		if env.IsSet(key) {
			v.SetDefault(key, env.GetString(key))
		}
	}
	return nil
}

// Validate rejects values no command can work with.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if len(c.Dialects) == 0 {
		return fmt.Errorf("dialects must list at least one dialect")
	}
	if c.Seed.Rows < 0 || c.Seed.FactRows < 0 {
		return fmt.Errorf("seed row counts must not be negative (rows=%d, fact_rows=%d)", c.Seed.Rows, c.Seed.FactRows)
	}
	return nil
}

// OutputRoot is the directory migrations and docs are written under.
func (c *Config) OutputRoot() string {
	if filepath.IsAbs(c.OutputDir) {
		return c.OutputDir
	}
	return filepath.Join(c.BaseDir, c.OutputDir)
}

// ActiveDatabase returns the single database marked active.
func (c *Config) ActiveDatabase() (*DBConfig, error) {
	var active *DBConfig
	count := 0

	for i := range c.Databases {
		if c.Databases[i].Active {
			active = &c.Databases[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active database found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}
	return active, nil
}
