// Package cmd provides CLI commands for the rangemap binary.
package cmd

import (
	"os"

	"github.com/urfave/cli/v2"
)

// Shared output flags.
var (
	// FormatFlag selects output format: json, table, yaml.
	FormatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: json, table, yaml",
	}

	// NoColorFlag disables colored output.
	NoColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable colored output",
	}

	// TUIFlag enables Bubble Tea interactive mode.
	// Only valid for inspect and trace.
	TUIFlag = &cli.BoolFlag{
		Name:  "tui",
		Usage: "Enable interactive TUI mode (inspect, trace only)",
	}
)

// Shared almanac and pipeline flags.
var (
	// ConfigFlag points at a rangemap.yaml file.
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a YAML config file",
		EnvVars: []string{"RANGEMAP_CONFIG"},
	}

	// InputFlag names the almanac when no positional argument is given.
	InputFlag = &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "Almanac file (- for stdin)",
	}

	// InputFormatFlag forces an input encoding instead of detecting it
	// from the file extension.
	InputFormatFlag = &cli.StringFlag{
		Name:  "input-format",
		Usage: "Input format: text, yaml, msgpack (default: by extension)",
	}

	// SeedsFlag selects how seed numbers are read.
	SeedsFlag = &cli.StringFlag{
		Name:  "seeds",
		Usage: "Seed interpretation: ranges (start length pairs) or points",
		Value: "ranges",
	}

	// StrictFlag rejects broken stage chains and overlapping rules.
	StrictFlag = &cli.BoolFlag{
		Name:  "strict",
		Usage: "Reject broken stage chains and overlapping rule sources",
	}

	// CoalesceFlag merges intervals between stages.
	CoalesceFlag = &cli.BoolFlag{
		Name:  "coalesce",
		Usage: "Merge overlapping and adjacent intervals after every stage",
	}

	// RunIDFlag fixes the run id instead of generating one.
	RunIDFlag = &cli.StringFlag{
		Name:    "run-id",
		Usage:   "Run id (UUID) attached to logs and reports (default: random)",
		EnvVars: []string{"RANGEMAP_RUN_ID"},
	}

	// LogLevelFlag sets the stderr log level.
	LogLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level: debug, info, warn, error",
		Value: "warn",
	}
)

// ReadOnlyFlags returns the shared output flags.
// Includes --tui so that unsupported commands can provide explicit error messages
// instead of generic "flag not defined" errors.
func ReadOnlyFlags() []cli.Flag {
	return []cli.Flag{
		FormatFlag,
		NoColorFlag,
		TUIFlag,
	}
}

// TUIReadOnlyFlags returns flags for commands that support TUI mode.
// This is an alias for ReadOnlyFlags, kept for documentation clarity.
func TUIReadOnlyFlags() []cli.Flag {
	return ReadOnlyFlags()
}

// AlmanacFlags returns the flags that locate and interpret an almanac.
func AlmanacFlags() []cli.Flag {
	return []cli.Flag{
		ConfigFlag,
		InputFlag,
		InputFormatFlag,
		SeedsFlag,
		StrictFlag,
		RunIDFlag,
		LogLevelFlag,
	}
}

// PipelineFlags returns the flags for commands that run the pipeline.
func PipelineFlags() []cli.Flag {
	flags := append(AlmanacFlags(), CoalesceFlag)
	return append(flags, ReadOnlyFlags()...)
}

// isStderrTTY reports whether stderr is a terminal.
func isStderrTTY() bool {
	info, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
