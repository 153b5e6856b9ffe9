package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/rangemap/cli/reader"
	"github.com/pithecene-io/rangemap/cli/render"
	"github.com/pithecene-io/rangemap/iox"
)

// ConvertCommand returns the convert command.
// Convert rewrites an almanac between the text, YAML and msgpack encodings.
// Stage names must survive as text headers whatever the target. An almanac
// with an explicit stage order is refused when the target is text.
func ConvertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Rewrite an almanac in another encoding",
		ArgsUsage: "[almanac]",
		Flags: append([]cli.Flag{
			ConfigFlag,
			InputFlag,
			InputFormatFlag,
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Destination file (- for stdout)",
				Value:   iox.Stdio,
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "Output encoding: text, yaml, msgpack (default: by output extension)",
			},
		}, ReadOnlyFlags()...),
		Action: convertAction,
	}
}

func convertAction(c *cli.Context) error {
	if c.Bool("tui") {
		return cli.Exit("--tui is not supported for convert command", exitInvalidInput)
	}

	s, err := resolveSettings(c, c.Args().First())
	if err != nil {
		return err
	}

	output := c.String("output")
	to, err := reader.ParseFormat(c.String("to"))
	if err != nil {
		return cli.Exit(err.Error(), exitInvalidInput)
	}
	if to == reader.FormatAuto && output == iox.Stdio {
		return cli.Exit("--to is required when writing to stdout", exitInvalidInput)
	}
	to = reader.Resolve(output, to)
	from := reader.Resolve(s.input, s.inputFormat)

	a, err := reader.GetReader().Load(s.input, s.inputFormat)
	if err != nil {
		return failure(err)
	}
	if err := a.CheckNames(); err != nil {
		return failure(err)
	}
	if to == reader.FormatText && len(a.Order) > 0 {
		return cli.Exit("almanac has an explicit stage order, which the text encoding cannot represent", exitInvalidInput)
	}

	wc, err := iox.CreateOutput(output)
	if err != nil {
		return cli.Exit(fmt.Sprintf("create output: %v", err), exitInvalidInput)
	}
	if err := reader.Encode(wc, a, to); err != nil {
		iox.DiscardClose(wc)
		return cli.Exit(fmt.Sprintf("write %s: %v", output, err), exitInvalidInput)
	}
	if err := wc.Close(); err != nil {
		return cli.Exit(fmt.Sprintf("close %s: %v", output, err), exitInvalidInput)
	}

	resp := &reader.ConvertResponse{
		Input:  s.input,
		Output: output,
		From:   string(from),
		To:     string(to),
		Stages: len(a.Stages),
		Rules:  a.RuleCount(),
	}

	// Stdout carries the converted almanac; the summary goes to a terminal
	// on stderr or nowhere.
	if output == iox.Stdio {
		if isStderrTTY() {
			fmt.Fprintf(c.App.ErrWriter, "converted %d stages (%s → %s)\n", resp.Stages, resp.From, resp.To)
		}
		return nil
	}

	r, err := render.NewRenderer(c, s.outputFormat)
	if err != nil {
		return cli.Exit(err.Error(), exitInvalidInput)
	}
	return r.Render(resp)
}
