package config

import (
	"fmt"
	"slices"
)

// Config represents a rangemap.yaml configuration file.
// All values are optional and act as defaults for command flags.
// CLI flags always override config values.
type Config struct {
	Input       string       `yaml:"input"`
	InputFormat string       `yaml:"input_format"`
	Seeds       string       `yaml:"seeds"`
	Strict      bool         `yaml:"strict"`
	Coalesce    bool         `yaml:"coalesce"`
	Log         LogConfig    `yaml:"log"`
	Output      OutputConfig `yaml:"output"`
}

// LogConfig holds logging defaults from the config file.
type LogConfig struct {
	Level string `yaml:"level"`
}

// OutputConfig holds rendering defaults from the config file.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// Input formats accepted by input_format.
var inputFormats = []string{"", "text", "yaml", "msgpack"}

// Validate checks enumerated fields. Empty values are left to flag defaults.
func (c *Config) Validate() error {
	if !slices.Contains(inputFormats, c.InputFormat) {
		return fmt.Errorf("input_format: invalid value %q (must be text, yaml, or msgpack)", c.InputFormat)
	}
	switch c.Seeds {
	case "", "ranges", "points":
	default:
		return fmt.Errorf("seeds: invalid value %q (must be ranges or points)", c.Seeds)
	}
	switch c.Output.Format {
	case "", "json", "table", "yaml":
	default:
		return fmt.Errorf("output.format: invalid value %q (must be json, table, or yaml)", c.Output.Format)
	}
	return nil
}
