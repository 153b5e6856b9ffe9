package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/rangemap/cli/reader"
	"github.com/pithecene-io/rangemap/cli/render"
	"github.com/pithecene-io/rangemap/cli/tui"
)

// TraceCommand returns the trace command.
// Trace runs the pipeline and reports every stage transition.
func TraceCommand() *cli.Command {
	return &cli.Command{
		Name:      "trace",
		Usage:     "Run the pipeline and report each stage transition",
		ArgsUsage: "[almanac]",
		Flags:     PipelineFlags(),
		Action:    traceAction,
	}
}

func traceAction(c *cli.Context) error {
	sess, err := openSession(c, c.Args().First())
	if err != nil {
		return err
	}
	defer sess.close()

	r, err := render.NewRenderer(c, sess.settings.outputFormat)
	if err != nil {
		return cli.Exit(err.Error(), exitInvalidInput)
	}

	final, reports := sess.run()
	minStart, err := sess.finish(final)
	if err != nil {
		return err
	}

	resp := &reader.TraceResponse{
		RunID:    sess.meta.RunID,
		Input:    sess.meta.Input,
		SeedMode: string(sess.settings.seeds),
		Initial:  sess.seeds,
		Stages:   reports,
		MinStart: minStart,
		Stats:    sess.collector.Snapshot(),
	}

	if c.Bool("tui") {
		return r.RenderTUI(tui.ViewTracePipeline, resp)
	}

	// A struct table would collapse the stage list to a count.
	if r.Format() == render.FormatTable {
		return r.Render(resp.Stages)
	}
	return r.Render(resp)
}
