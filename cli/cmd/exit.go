package cmd

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/rangemap/almanac"
	"github.com/pithecene-io/rangemap/remap"
)

// Exit codes.
const (
	exitSuccess       = 0
	exitInvalidInput  = 1
	exitPipelineError = 2
	exitEmptyResult   = 3
)

// exitCodeFor classifies err into an exit code.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, remap.ErrEmptyGeneration):
		return exitEmptyResult
	case errors.Is(err, remap.ErrUnknownStage),
		errors.Is(err, remap.ErrBrokenChain),
		errors.Is(err, remap.ErrOverlappingRules),
		errors.Is(err, almanac.ErrDuplicateStage):
		return exitPipelineError
	default:
		return exitInvalidInput
	}
}

// failure wraps err as a cli exit error with its classified code.
// Errors that already carry an exit code pass through.
func failure(err error) error {
	if err == nil {
		return nil
	}
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return err
	}
	return cli.Exit(err.Error(), exitCodeFor(err))
}
