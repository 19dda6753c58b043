// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CLIConfig holds command-line configuration.
type CLIConfig struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	Debug      bool
	Validate   bool

	// Overrides, applied only when named in set.
	Seed    int64
	Nodes   int
	Signals int
	Filters int
	Order   int
	Workers int
	Base    string

	set map[string]bool // flags given on the command line or via env
}

// parseFlags parses args with environment fallbacks (GCNN_*).
func parseFlags(args []string, stderr io.Writer) (*CLIConfig, error) {
	cfg := &CLIConfig{}
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.ConfigPath, "config",
		getEnv("GCNN_CONFIG", ""),
		"Path to YAML configuration file (env: GCNN_CONFIG)")
	fs.StringVar(&cfg.LogLevel, "log-level",
		getEnv("GCNN_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: GCNN_LOG_LEVEL)")
	fs.StringVar(&cfg.LogFormat, "log-format",
		getEnv("GCNN_LOG_FORMAT", "text"),
		"Log format: json, text (env: GCNN_LOG_FORMAT)")
	fs.BoolVar(&cfg.Debug, "debug",
		getEnvBool("GCNN_DEBUG", false),
		"Enable debug logging (env: GCNN_DEBUG)")
	fs.BoolVar(&cfg.Validate, "validate", false, "Validate configuration and exit")

	fs.Int64Var(&cfg.Seed, "seed", getEnvInt64("GCNN_SEED", 0), "RNG seed override (env: GCNN_SEED)")
	fs.IntVar(&cfg.Nodes, "nodes", 0, "Number of graph nodes")
	fs.IntVar(&cfg.Signals, "signals", 0, "Number of signals in the batch")
	fs.IntVar(&cfg.Filters, "filters", 0, "Number of output channels")
	fs.IntVar(&cfg.Order, "order", 0, "Chebyshev order K")
	fs.IntVar(&cfg.Workers, "workers", getEnvInt("GCNN_WORKERS", 0), "Parallel channel workers (env: GCNN_WORKERS)")
	fs.StringVar(&cfg.Base, "base", "", "Zeroth Chebyshev term: ones, identity")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "%s - Chebyshev graph convolution demo\n\nUsage: %s [options]\n\nOptions:\n", appName, appName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}
	cfg.set = explicitFlags(fs, map[string]string{"seed": "GCNN_SEED", "workers": "GCNN_WORKERS"})

	return cfg, nil
}

// validateFlags checks logging flags.
func validateFlags(cfg *CLIConfig) error {
	if !contains([]string{"debug", "info", "warn", "error"}, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	if !contains([]string{"json", "text"}, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	return nil
}

// explicitFlags names the flags set on the command line plus those whose
// env fallback in envs holds a parseable value.
func explicitFlags(fs *flag.FlagSet, envs map[string]string) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for name, key := range envs {
		if value, ok := os.LookupEnv(key); ok {
			if _, err := strconv.ParseInt(value, 10, 64); err == nil {
				set[name] = true
			}
		}
	}

	return set
}

// apply copies explicitly given overrides into c, zero values included.
func (f *CLIConfig) apply(c *Config) {
	if f.set["seed"] {
		c.Seed = f.Seed
	}
	if f.set["nodes"] {
		c.Nodes = f.Nodes
	}
	if f.set["signals"] {
		c.Signals = f.Signals
	}
	if f.set["filters"] {
		c.Layer.Filters = f.Filters
	}
	if f.set["order"] {
		c.Layer.Order = f.Order
	}
	if f.set["workers"] {
		c.Layer.Workers = f.Workers
	}
	if f.set["base"] {
		c.Layer.Base = f.Base
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
