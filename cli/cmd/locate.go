package cmd

import (
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/rangemap/cli/reader"
	"github.com/pithecene-io/rangemap/cli/render"
)

// LocateCommand returns the locate command.
// Locate maps one value through every stage and reports the value seen in
// each domain.
func LocateCommand() *cli.Command {
	return &cli.Command{
		Name:      "locate",
		Usage:     "Follow a single value through the pipeline",
		ArgsUsage: "[almanac] <value>",
		Flags:     append(AlmanacFlags(), ReadOnlyFlags()...),
		Action:    locateAction,
	}
}

func locateAction(c *cli.Context) error {
	if c.Bool("tui") {
		return cli.Exit("--tui is not supported for locate command", exitInvalidInput)
	}

	var input, raw string
	switch c.NArg() {
	case 1:
		raw = c.Args().Get(0)
	case 2:
		input, raw = c.Args().Get(0), c.Args().Get(1)
	default:
		return cli.Exit("usage: rangemap locate [almanac] <value>", exitInvalidInput)
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return cli.Exit("value must be an integer: "+raw, exitInvalidInput)
	}

	sess, err := openSession(c, input)
	if err != nil {
		return err
	}
	defer sess.close()

	r, err := render.NewRenderer(c, sess.settings.outputFormat)
	if err != nil {
		return cli.Exit(err.Error(), exitInvalidInput)
	}

	path := sess.pipeline.Locate(value)
	resp := &reader.LocateResponse{Value: value, Path: path, Result: value}
	if len(path) > 0 {
		resp.Result = path[len(path)-1].Value
	}
	sess.collector.IncRunCompleted()

	if r.Format() == render.FormatTable {
		return r.Render(resp.Path)
	}
	return r.Render(resp)
}
