package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/esimov/seamcarve/utils"
	"github.com/spf13/cobra"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// config holds the options shared by all commands.
// Values are read from an optional TOML file and overridden by explicit flags.
type config struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Percentage bool   `toml:"percentage"`
	Debug      bool   `toml:"debug"`
	SeamColor  string `toml:"seam_color"`
	Workers    int    `toml:"workers"`
	LogFile    string `toml:"log_file"`
	Verbose    bool   `toml:"verbose"`
}

func defaultConfig() config {
	return config{
		SeamColor: "#ff0000",
		Workers:   runtime.NumCPU(),
	}
}

// loadConfig returns the default configuration updated with the content of the TOML file
// found at path. An empty path yields the defaults. Unknown keys are reported as errors.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("unable to read config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// merge overrides cfg with the flag values which were explicitly set on cmd.
func (cfg *config) merge(cmd *cobra.Command, flags config) {
	changed := cmd.Flags().Changed
	if changed("width") {
		cfg.Width = flags.Width
	}
	if changed("height") {
		cfg.Height = flags.Height
	}
	if changed("perc") {
		cfg.Percentage = flags.Percentage
	}
	if changed("debug") {
		cfg.Debug = flags.Debug
	}
	if changed("seam-color") {
		cfg.SeamColor = flags.SeamColor
	}
	if changed("conc") {
		cfg.Workers = flags.Workers
	}
	if changed("log-file") {
		cfg.LogFile = flags.LogFile
	}
	if changed("verbose") {
		cfg.Verbose = flags.Verbose
	}
}

// validate checks the option values and limits the worker count.
func (cfg *config) validate() error {
	if cfg.Width < 0 || cfg.Height < 0 {
		return fmt.Errorf("width and height must not be negative")
	}
	if cfg.Percentage && (cfg.Width >= 100 || cfg.Height >= 100) {
		return fmt.Errorf("cannot use the percentage flag for image enlargement")
	}
	// Limit the concurrently running workers to maxWorkers.
	if cfg.Workers <= 0 || cfg.Workers > maxWorkers {
		cfg.Workers = utils.Min(runtime.NumCPU(), maxWorkers)
	}
	return nil
}
