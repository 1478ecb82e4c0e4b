// Package config loads engine settings from an optional YAML file and GOLURK_ environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/nathanieltooley/gokemon-calc/golurk"
)

// EngineConfig controls how moves are evaluated
type EngineConfig struct {
	// Generation is the ruleset, 1-9
	Generation int `mapstructure:"generation"`
	// Format is "singles", "doubles" or "triples"
	Format string `mapstructure:"format"`
	// DamageRolls is "average", "min", "max" or "all"
	DamageRolls  string `mapstructure:"damage_rolls"`
	BranchOnCrit bool   `mapstructure:"branch_on_crit"`
	// WeightTolerance is how far branch weights may drift from 1
	WeightTolerance float64 `mapstructure:"weight_tolerance"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "trace", "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

type Config struct {
	Engine  EngineConfig  `mapstructure:"engine"`
	Logging LoggingConfig `mapstructure:"logging"`
}

var formats = map[string]func(golurk.Generation) golurk.BattleFormat{
	"singles": golurk.NewSinglesFormat,
	"doubles": golurk.NewDoublesFormat,
	"triples": golurk.NewTriplesFormat,
}

// Validate checks every setting and reports all of the problems at once
func (c Config) Validate() error {
	var errs []string

	if err := validateEngine(c.Engine); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateEngine(e EngineConfig) error {
	var errs []string
	if _, err := golurk.ParseGeneration(e.Generation); err != nil {
		errs = append(errs, fmt.Sprintf("engine.generation must be 1-%d, got %d", golurk.LATEST_GENERATION, e.Generation))
	}
	if _, ok := formats[e.Format]; !ok {
		errs = append(errs, fmt.Sprintf("engine.format must be one of [singles, doubles, triples], got %q", e.Format))
	}
	if _, err := golurk.ParseDamageRolls(e.DamageRolls); err != nil {
		errs = append(errs, fmt.Sprintf("engine.damage_rolls must be one of [average, min, max, all], got %q", e.DamageRolls))
	}
	if e.WeightTolerance <= 0 || e.WeightTolerance >= 1 {
		errs = append(errs, fmt.Sprintf("engine.weight_tolerance must be between 0 and 1, got %g", e.WeightTolerance))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [trace, debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// EngineOptions converts the engine settings into composer options.
// The config must have been validated.
func (c Config) EngineOptions() golurk.Options {
	opts := golurk.DefaultOptions()
	opts.Rolls = golurk.Must(golurk.ParseDamageRolls(c.Engine.DamageRolls))
	opts.BranchOnCritical = c.Engine.BranchOnCrit
	opts.WeightTolerance = c.Engine.WeightTolerance

	return opts
}

// Format is the battle format for the configured generation
func (c Config) Format() golurk.BattleFormat {
	gen := golurk.Must(golurk.ParseGeneration(c.Engine.Generation))
	return formats[c.Engine.Format](gen)
}

// Load reads configuration from path, applies environment variable
// overrides, and validates the result. An empty path uses only defaults and the environment.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with GOLURK_ prefix
	v.SetEnvPrefix("GOLURK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.generation", int(golurk.LATEST_GENERATION))
	v.SetDefault("engine.format", "singles")
	v.SetDefault("engine.damage_rolls", golurk.ROLLS_AVERAGE.String())
	v.SetDefault("engine.branch_on_crit", false)
	v.SetDefault("engine.weight_tolerance", golurk.DEFAULT_WEIGHT_TOLERANCE)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
