// Package main provides the rangemap CLI entrypoint.
//
// Usage:
//
//	rangemap <command> [options] [almanac]
//
// Exit codes:
//   - 0: success
//   - 1: invalid input (unreadable or malformed almanac, bad flags)
//   - 2: pipeline error (unknown stage, broken chain, overlapping rules)
//   - 3: empty result
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/rangemap/cli/cmd"
	"github.com/pithecene-io/rangemap/types"
)

// Commit is set via ldflags at build time.
var commit = "unknown"

func main() {
	app := &cli.App{
		Name:           "rangemap",
		Usage:          "Push integer ranges through staged offset maps",
		Version:        fmt.Sprintf("%s (commit: %s)", types.Version, commit),
		ExitErrHandler: exitErrHandler,
		Commands: []*cli.Command{
			cmd.SolveCommand(),
			cmd.TraceCommand(),
			cmd.InspectCommand(),
			cmd.LocateCommand(),
			cmd.ConvertCommand(),
			cmd.VersionCommand(commit),
		},
	}

	if err := app.Run(os.Args); err != nil {
		// ExitErrHandler already exited for cli.ExitCoder errors.
		os.Exit(1)
	}
}

// exitErrHandler prints err and exits with the code carried by cli.Exit.
func exitErrHandler(_ *cli.Context, err error) {
	if err == nil {
		return
	}
	code, msg := exitStatus(err)
	if msg != "" {
		fmt.Fprintln(os.Stderr, msg)
	}
	os.Exit(code)
}

// exitStatus extracts the exit code and the message worth printing.
// cli.Exit("", N) reports "exit status N", which is not printed.
func exitStatus(err error) (int, string) {
	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		code := exitCoder.ExitCode()
		msg := exitCoder.Error()
		if msg == fmt.Sprintf("exit status %d", code) {
			msg = ""
		}
		return code, msg
	}
	return 1, fmt.Sprintf("Error: %v", err)
}
