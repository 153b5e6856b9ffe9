package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/rangemap/cli/reader"
	"github.com/pithecene-io/rangemap/cli/render"
	"github.com/pithecene-io/rangemap/interval"
)

// SolveCommand returns the solve command.
// Solve runs every seed interval through the pipeline and reports the
// smallest resulting value.
func SolveCommand() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "Run the pipeline and report the minimum resulting value",
		ArgsUsage: "[almanac]",
		Flags: append(PipelineFlags(),
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "Include run metrics in the output",
			},
		),
		Action: solveAction,
	}
}

func solveAction(c *cli.Context) error {
	if c.Bool("tui") {
		return cli.Exit("--tui is not supported for solve command", exitInvalidInput)
	}

	sess, err := openSession(c, c.Args().First())
	if err != nil {
		return err
	}
	defer sess.close()

	r, err := render.NewRenderer(c, sess.settings.outputFormat)
	if err != nil {
		return cli.Exit(err.Error(), exitInvalidInput)
	}

	final, _ := sess.run()
	minStart, err := sess.finish(final)
	if err != nil {
		return err
	}

	resp := &reader.SolveResponse{
		RunID:     sess.meta.RunID,
		Input:     sess.meta.Input,
		SeedMode:  string(sess.settings.seeds),
		MinStart:  minStart,
		Intervals: len(final),
		Values:    interval.TotalLen(final),
	}
	if c.Bool("stats") {
		snap := sess.collector.Snapshot()
		resp.Stats = &snap
	}

	if err := r.Render(resp); err != nil {
		return err
	}
	if resp.Stats != nil && r.Format() == render.FormatTable {
		return r.Render(resp.Stats.Stages)
	}
	return nil
}
