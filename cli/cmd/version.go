package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/rangemap/cli/render"
	"github.com/pithecene-io/rangemap/codec"
	"github.com/pithecene-io/rangemap/types"
)

// VersionResponse is the response for the version command.
type VersionResponse struct {
	Version       string `json:"version" yaml:"version"`
	Commit        string `json:"commit" yaml:"commit"`
	FormatVersion int    `json:"format_version" yaml:"format_version"`
}

// VersionCommand returns the version command.
// It reports the binary version and the msgpack almanac layout version.
func VersionCommand(commit string) *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show version information",
		Flags:  ReadOnlyFlags(),
		Action: versionAction(commit),
	}
}

func versionAction(commit string) cli.ActionFunc {
	return func(c *cli.Context) error {
		r, err := render.NewRenderer(c, "")
		if err != nil {
			return err
		}

		// TUI not supported for version command
		if c.Bool("tui") {
			return cli.Exit("--tui is not supported for version command", 1)
		}

		resp := VersionResponse{
			Version:       types.Version,
			Commit:        commit,
			FormatVersion: codec.FormatVersion,
		}

		return r.Render(resp)
	}
}
