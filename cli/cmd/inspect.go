package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/rangemap/cli/reader"
	"github.com/pithecene-io/rangemap/cli/render"
	"github.com/pithecene-io/rangemap/cli/tui"
)

// InspectCommand returns the inspect command.
// Inspect summarizes an almanac without running it. Strict-mode problems
// are reported, not enforced, unless --strict is given.
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Summarize an almanac's seeds and stages",
		ArgsUsage: "[almanac]",
		Flags:     append(AlmanacFlags(), TUIReadOnlyFlags()...),
		Action:    inspectAction,
	}
}

func inspectAction(c *cli.Context) error {
	sess, err := openSession(c, c.Args().First())
	if err != nil {
		return err
	}
	defer sess.close()

	r, err := render.NewRenderer(c, sess.settings.outputFormat)
	if err != nil {
		return cli.Exit(err.Error(), exitInvalidInput)
	}

	resp, err := reader.InspectAlmanac(sess.settings.input, sess.settings.inputFormat, sess.almanac, sess.settings.seeds)
	if err != nil {
		return sess.fail("inspect almanac", err)
	}

	if c.Bool("tui") {
		return r.RenderTUI(tui.ViewInspectAlmanac, resp)
	}
	return r.Render(resp)
}
