package cmd

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"

	"github.com/pithecene-io/rangemap/almanac"
	rmconfig "github.com/pithecene-io/rangemap/cli/config"
	"github.com/pithecene-io/rangemap/cli/reader"
	"github.com/pithecene-io/rangemap/log"
)

// settings is the merged view of flags and config for one command.
type settings struct {
	input        string
	inputFormat  reader.Format
	seeds        almanac.SeedMode
	strict       bool
	coalesce     bool
	runID        string
	logLevel     zapcore.Level
	outputFormat string
}

// loadConfig reads --config when given. A nil config means none was given.
func loadConfig(c *cli.Context) (*rmconfig.Config, error) {
	path := c.String("config")
	if path == "" {
		return nil, nil
	}
	return rmconfig.Load(path)
}

// configVal reads a field from cfg, tolerating a nil config.
func configVal[T any](cfg *rmconfig.Config, get func(*rmconfig.Config) T) T {
	var zero T
	if cfg == nil {
		return zero
	}
	return get(cfg)
}

// resolveString returns the flag value when set on the command line, the
// config value when non-empty, and the flag default otherwise.
func resolveString(c *cli.Context, name, configValue string) string {
	if c.IsSet(name) || configValue == "" {
		return c.String(name)
	}
	return configValue
}

// resolveBool returns the flag value when set, otherwise flag || config.
func resolveBool(c *cli.Context, name string, configValue bool) bool {
	if c.IsSet(name) {
		return c.Bool(name)
	}
	return c.Bool(name) || configValue
}

// resolveSettings merges flags over config. positional is the almanac path
// taken from the arguments and wins over --input and config input.
func resolveSettings(c *cli.Context, positional string) (*settings, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, cli.Exit(err.Error(), exitInvalidInput)
	}

	s := &settings{
		input:        positional,
		strict:       resolveBool(c, "strict", configVal(cfg, func(c *rmconfig.Config) bool { return c.Strict })),
		coalesce:     resolveBool(c, "coalesce", configVal(cfg, func(c *rmconfig.Config) bool { return c.Coalesce })),
		outputFormat: configVal(cfg, func(c *rmconfig.Config) string { return c.Output.Format }),
		runID:        c.String("run-id"),
	}
	if s.input == "" {
		s.input = resolveString(c, "input", configVal(cfg, func(c *rmconfig.Config) string { return c.Input }))
	}
	if s.input == "" {
		return nil, cli.Exit("almanac input required: pass a path, --input, or set input in the config file", exitInvalidInput)
	}

	if s.inputFormat, err = reader.ParseFormat(resolveString(c, "input-format", configVal(cfg, func(c *rmconfig.Config) string { return c.InputFormat }))); err != nil {
		return nil, cli.Exit(err.Error(), exitInvalidInput)
	}
	if s.seeds, err = almanac.ParseSeedMode(resolveString(c, "seeds", configVal(cfg, func(c *rmconfig.Config) string { return c.Seeds }))); err != nil {
		return nil, cli.Exit(err.Error(), exitInvalidInput)
	}
	if s.logLevel, err = log.ParseLevel(resolveString(c, "log-level", configVal(cfg, func(c *rmconfig.Config) string { return c.Log.Level }))); err != nil {
		return nil, cli.Exit(err.Error(), exitInvalidInput)
	}

	return s, nil
}

// describe renders s for debug logs.
func (s *settings) describe() map[string]any {
	return map[string]any{
		"input_format": string(reader.Resolve(s.input, s.inputFormat)),
		"seeds":        string(s.seeds),
		"strict":       s.strict,
		"coalesce":     s.coalesce,
	}
}
