package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/rangemap/almanac"
	rmconfig "github.com/pithecene-io/rangemap/cli/config"
	"github.com/pithecene-io/rangemap/cli/reader"
	"github.com/pithecene-io/rangemap/remap"
)

const samplePath = "../../almanac/testdata/sample.txt"

func TestReadOnlyFlags_IncludesTUI(t *testing.T) {
	flags := ReadOnlyFlags()

	hasTUI := false
	for _, f := range flags {
		if f.Names()[0] == "tui" {
			hasTUI = true
			break
		}
	}

	if !hasTUI {
		t.Error("ReadOnlyFlags should include --tui flag for explicit error handling")
	}
}

func TestPipelineFlags_IncludesAlmanacAndOutputFlags(t *testing.T) {
	names := make(map[string]bool)
	for _, f := range PipelineFlags() {
		names[f.Names()[0]] = true
	}
	for _, want := range []string{"config", "input", "input-format", "seeds", "strict", "run-id", "coalesce", "log-level", "format", "tui"} {
		if !names[want] {
			t.Errorf("PipelineFlags missing --%s", want)
		}
	}
}

func TestIsStderrTTY(_ *testing.T) {
	// This test documents the function exists and can be called.
	// Actual TTY behavior depends on runtime environment.
	_ = isStderrTTY()
}

// --- Config precedence ---

// newTestCLIContext builds a minimal *cli.Context with the given flags set.
// flagValues maps flag names to their string values. All listed flags are
// registered and marked as explicitly set (c.IsSet returns true).
// defaultFlags maps flag names to default values (not explicitly set).
func newTestCLIContext(t *testing.T, flagValues map[string]string, defaultFlags map[string]string) *cli.Context {
	t.Helper()
	app := cli.NewApp()

	allFlags := make(map[string]string)
	for k, v := range defaultFlags {
		allFlags[k] = v
	}
	for k, v := range flagValues {
		allFlags[k] = v
	}

	var cliFlags []cli.Flag
	for name, val := range allFlags {
		cliFlags = append(cliFlags, &cli.StringFlag{Name: name, Value: val})
	}
	app.Flags = cliFlags

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	for name, val := range allFlags {
		fs.String(name, val, "")
	}

	// Only set the flagValues (not defaults) so c.IsSet works
	for name, val := range flagValues {
		if err := fs.Set(name, val); err != nil {
			t.Fatalf("failed to set flag %s: %v", name, err)
		}
	}

	return cli.NewContext(app, fs, nil)
}

func TestResolveString_CLIWins(t *testing.T) {
	c := newTestCLIContext(t, map[string]string{"seeds": "points"}, nil)
	got := resolveString(c, "seeds", "ranges")
	if got != "points" {
		t.Errorf("expected CLI to win, got %q", got)
	}
}

func TestResolveString_ConfigFallback(t *testing.T) {
	c := newTestCLIContext(t, nil, map[string]string{"input": ""})
	got := resolveString(c, "input", "config.txt")
	if got != "config.txt" {
		t.Errorf("expected config fallback, got %q", got)
	}
}

func TestResolveString_UrfaveDefault(t *testing.T) {
	c := newTestCLIContext(t, nil, map[string]string{"log-level": "warn"})
	got := resolveString(c, "log-level", "")
	if got != "warn" {
		t.Errorf("expected urfave default, got %q", got)
	}
}

func TestResolveBool(t *testing.T) {
	app := cli.NewApp()
	app.Flags = []cli.Flag{&cli.BoolFlag{Name: "strict"}}

	unset := flag.NewFlagSet("test", flag.ContinueOnError)
	unset.Bool("strict", false, "")
	if !resolveBool(cli.NewContext(app, unset, nil), "strict", true) {
		t.Error("expected config true when flag unset")
	}

	explicit := flag.NewFlagSet("test", flag.ContinueOnError)
	explicit.Bool("strict", false, "")
	_ = explicit.Set("strict", "false")
	if resolveBool(cli.NewContext(app, explicit, nil), "strict", true) {
		t.Error("expected explicit --strict=false to win over config")
	}
}

func TestConfigVal_NilConfig(t *testing.T) {
	if got := configVal(nil, func(c *rmconfig.Config) string { return c.Input }); got != "" {
		t.Errorf("expected empty for nil config, got %q", got)
	}
}

// --- Exit codes ---

func TestExitCodeConstants(t *testing.T) {
	if exitSuccess != 0 || exitInvalidInput != 1 || exitPipelineError != 2 || exitEmptyResult != 3 {
		t.Error("exit code constants changed")
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitSuccess},
		{"empty result", remap.ErrEmptyGeneration, exitEmptyResult},
		{"unknown stage", remap.ErrUnknownStage, exitPipelineError},
		{"broken chain", remap.ErrBrokenChain, exitPipelineError},
		{"overlapping rules", remap.ErrOverlappingRules, exitPipelineError},
		{"duplicate stage", almanac.ErrDuplicateStage, exitPipelineError},
		{"odd seeds", almanac.ErrOddSeeds, exitInvalidInput},
		{"parse error", &almanac.ParseError{Kind: almanac.ParseErrorSyntax, Line: 3, Msg: "bad"}, exitInvalidInput},
		{"anything else", errors.New("boom"), exitInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFailure_PreservesExitCoder(t *testing.T) {
	orig := cli.Exit("already coded", 7)
	if got := failure(orig); got != orig {
		t.Errorf("failure should pass exit coders through, got %v", got)
	}
	if failure(nil) != nil {
		t.Error("failure(nil) should be nil")
	}
}

// --- Commands end to end ---

type testApp struct {
	app    *cli.App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestApp creates a cli.App with every command wired up and ExitErrHandler
// suppressed so errors are returned instead of calling os.Exit.
func newTestApp() *testApp {
	ta := &testApp{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	ta.app = cli.NewApp()
	ta.app.Name = "rangemap"
	ta.app.Writer = ta.stdout
	ta.app.ErrWriter = ta.stderr
	ta.app.Commands = []*cli.Command{
		SolveCommand(),
		TraceCommand(),
		InspectCommand(),
		LocateCommand(),
		ConvertCommand(),
		VersionCommand("test"),
	}
	ta.app.ExitErrHandler = func(*cli.Context, error) {} // suppress os.Exit
	return ta
}

func (ta *testApp) run(args ...string) error {
	return ta.app.Run(append([]string{"rangemap"}, args...))
}

func (ta *testApp) decode(t *testing.T, v any) {
	t.Helper()
	if err := json.Unmarshal(ta.stdout.Bytes(), v); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, ta.stdout.String())
	}
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return exitSuccess
	}
	var coder cli.ExitCoder
	if !errors.As(err, &coder) {
		t.Fatalf("error is not a cli.ExitCoder: %v", err)
	}
	return coder.ExitCode()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestSolve_Sample(t *testing.T) {
	tests := []struct {
		seeds string
		want  int64
	}{
		{"ranges", 46},
		{"points", 35},
	}
	for _, tt := range tests {
		t.Run(tt.seeds, func(t *testing.T) {
			ta := newTestApp()
			if err := ta.run("solve", "--format", "json", "--seeds", tt.seeds, samplePath); err != nil {
				t.Fatalf("solve failed: %v", err)
			}

			var resp reader.SolveResponse
			ta.decode(t, &resp)
			if resp.MinStart != tt.want {
				t.Errorf("min_start = %d, want %d", resp.MinStart, tt.want)
			}
			if resp.SeedMode != tt.seeds {
				t.Errorf("seed_mode = %q, want %q", resp.SeedMode, tt.seeds)
			}
			if resp.RunID == "" {
				t.Error("run_id should be set")
			}
			if resp.Stats != nil {
				t.Error("stats should be omitted without --stats")
			}
		})
	}
}

func TestSolve_StatsAndCoalesce(t *testing.T) {
	ta := newTestApp()
	if err := ta.run("solve", "--format", "json", "--stats", "--coalesce", samplePath); err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	var resp reader.SolveResponse
	ta.decode(t, &resp)
	if resp.MinStart != 46 {
		t.Errorf("min_start = %d, want 46", resp.MinStart)
	}
	if resp.Stats == nil {
		t.Fatal("stats missing with --stats")
	}
	if resp.Stats.StagesApplied != 7 || len(resp.Stats.Stages) != 7 {
		t.Errorf("stats stages = %d/%d, want 7", resp.Stats.StagesApplied, len(resp.Stats.Stages))
	}
	if resp.Stats.ValuesCovered != 27 || resp.Values != 27 {
		t.Errorf("values = %d/%d, want 27", resp.Stats.ValuesCovered, resp.Values)
	}
	if !resp.Stats.Coalesce || resp.Stats.RunsCompleted != 1 {
		t.Errorf("stats = %+v", resp.Stats)
	}
}

func TestSolve_InputFlag(t *testing.T) {
	ta := newTestApp()
	if err := ta.run("solve", "--format", "json", "--input", samplePath); err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	var resp reader.SolveResponse
	ta.decode(t, &resp)
	if resp.Input != samplePath {
		t.Errorf("input = %q, want %q", resp.Input, samplePath)
	}
}

func TestSolve_ConfigProvidesInput(t *testing.T) {
	abs, err := filepath.Abs(samplePath)
	if err != nil {
		t.Fatal(err)
	}
	cfg := writeFile(t, "rangemap.yaml", "input: "+abs+"\nseeds: points\noutput:\n  format: json\n")

	ta := newTestApp()
	if err := ta.run("solve", "--config", cfg); err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	var resp reader.SolveResponse
	ta.decode(t, &resp)
	if resp.MinStart != 35 {
		t.Errorf("min_start = %d, want 35 (points from config)", resp.MinStart)
	}
}

func TestSolve_CLIOverridesConfig(t *testing.T) {
	cfg := writeFile(t, "rangemap.yaml", "seeds: points\n")

	ta := newTestApp()
	if err := ta.run("solve", "--config", cfg, "--seeds", "ranges", "--format", "json", samplePath); err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	var resp reader.SolveResponse
	ta.decode(t, &resp)
	if resp.MinStart != 46 {
		t.Errorf("min_start = %d, want 46 (CLI --seeds ranges)", resp.MinStart)
	}
}

func TestSolve_ConfigFileNotFound(t *testing.T) {
	ta := newTestApp()
	err := ta.run("solve", "--config", "/nonexistent/rangemap.yaml", samplePath)
	if code := exitCode(t, err); code != exitInvalidInput {
		t.Errorf("exit code = %d, want %d", code, exitInvalidInput)
	}
	if !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSolve_MissingInput(t *testing.T) {
	ta := newTestApp()
	err := ta.run("solve")
	if code := exitCode(t, err); code != exitInvalidInput {
		t.Errorf("exit code = %d, want %d", code, exitInvalidInput)
	}
	if !strings.Contains(err.Error(), "almanac input required") {
		t.Errorf("error should be actionable, got: %v", err)
	}
}

func TestSolve_InvalidSeedMode(t *testing.T) {
	ta := newTestApp()
	err := ta.run("solve", "--seeds", "pairs", samplePath)
	if code := exitCode(t, err); code != exitInvalidInput {
		t.Errorf("exit code = %d, want %d", code, exitInvalidInput)
	}
}

func TestSolve_ParseErrorIsInvalidInput(t *testing.T) {
	path := writeFile(t, "bad.txt", "seeds: 1 2\n\nseed-to-soil map:\n1 2\n")

	ta := newTestApp()
	err := ta.run("solve", path)
	if code := exitCode(t, err); code != exitInvalidInput {
		t.Errorf("exit code = %d, want %d", code, exitInvalidInput)
	}
	if !strings.Contains(ta.stderr.String(), "load almanac failed") {
		t.Errorf("failure should be logged, stderr: %s", ta.stderr.String())
	}
}

const brokenChainYAML = `seeds: [1, 5]
stages:
  - from: seed
    to: soil
    rules:
      - {destination: 100, source: 0, length: 10}
  - from: water
    to: light
    rules: []
`

func TestSolve_StrictRejectsBrokenChain(t *testing.T) {
	path := writeFile(t, "broken.yaml", brokenChainYAML)

	ta := newTestApp()
	err := ta.run("solve", "--strict", path)
	if code := exitCode(t, err); code != exitPipelineError {
		t.Errorf("exit code = %d, want %d (err: %v)", code, exitPipelineError, err)
	}

	ta = newTestApp()
	if err := ta.run("solve", "--format", "json", path); err != nil {
		t.Fatalf("non-strict solve failed: %v", err)
	}
	var resp reader.SolveResponse
	ta.decode(t, &resp)
	if resp.MinStart != 101 {
		t.Errorf("min_start = %d, want 101", resp.MinStart)
	}
}

func TestSolve_NonStrictWarnsAboutBrokenChain(t *testing.T) {
	path := writeFile(t, "broken.yaml", brokenChainYAML)

	ta := newTestApp()
	if err := ta.run("solve", "--format", "json", path); err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	logs := ta.stderr.String()
	if !strings.Contains(logs, `"message":"pipeline is not strictly valid"`) || !strings.Contains(logs, "stage chain is broken") {
		t.Errorf("expected a warning about the broken chain, stderr: %s", logs)
	}
	if strings.Contains(logs, "stage applied") {
		t.Error("stage debug entries should be filtered at the default warn level")
	}
}

const badStageNameYAML = `seeds: [1, 5]
stages:
  - from: ""
    to: soil
    rules: []
  - from: soil
    to: wet ground
    rules: []
`

func TestSolve_BadStageNameIsInvalidInput(t *testing.T) {
	path := writeFile(t, "names.yaml", badStageNameYAML)

	err := newTestApp().run("solve", path)
	if code := exitCode(t, err); code != exitInvalidInput {
		t.Errorf("exit code = %d, want %d (err: %v)", code, exitInvalidInput, err)
	}
	if !strings.Contains(err.Error(), "invalid stage name") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSolve_RunIDFlag(t *testing.T) {
	const id = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	ta := newTestApp()
	if err := ta.run("solve", "--format", "json", "--run-id", id, samplePath); err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	var resp reader.SolveResponse
	ta.decode(t, &resp)
	if resp.RunID != id {
		t.Errorf("run_id = %q, want %q", resp.RunID, id)
	}

	err := newTestApp().run("solve", "--run-id", "run-1", samplePath)
	if code := exitCode(t, err); code != exitInvalidInput {
		t.Errorf("exit code = %d, want %d", code, exitInvalidInput)
	}
	if !strings.Contains(err.Error(), "run_id must be a UUID") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSolve_UnknownStageInOrder(t *testing.T) {
	path := writeFile(t, "order.yaml", `seeds: [1, 5]
order:
  - {from: seed, to: soil}
  - {from: soil, to: water}
stages:
  - from: seed
    to: soil
    rules: []
`)

	ta := newTestApp()
	err := ta.run("solve", path)
	if code := exitCode(t, err); code != exitPipelineError {
		t.Errorf("exit code = %d, want %d (err: %v)", code, exitPipelineError, err)
	}
}

func TestSolve_EmptyResult(t *testing.T) {
	path := writeFile(t, "empty.yaml", "seeds: []\nstages: []\n")

	ta := newTestApp()
	err := ta.run("solve", path)
	if code := exitCode(t, err); code != exitEmptyResult {
		t.Errorf("exit code = %d, want %d (err: %v)", code, exitEmptyResult, err)
	}
}

func TestSolve_TUIUnsupported(t *testing.T) {
	ta := newTestApp()
	err := ta.run("solve", "--tui", samplePath)
	if code := exitCode(t, err); code != exitInvalidInput {
		t.Errorf("exit code = %d, want %d", code, exitInvalidInput)
	}
	if !strings.Contains(err.Error(), "--tui is not supported") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSolve_DebugLogging(t *testing.T) {
	ta := newTestApp()
	if err := ta.run("solve", "--format", "json", "--log-level", "debug", samplePath); err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	logs := ta.stderr.String()
	for _, want := range []string{`"message":"almanac loaded"`, `"message":"stage applied"`, `"message":"pipeline finished"`, `"run_id"`} {
		if !strings.Contains(logs, want) {
			t.Errorf("debug log missing %s", want)
		}
	}
}

func TestTrace_Sample(t *testing.T) {
	ta := newTestApp()
	if err := ta.run("trace", "--format", "json", samplePath); err != nil {
		t.Fatalf("trace failed: %v", err)
	}

	var resp reader.TraceResponse
	ta.decode(t, &resp)
	if len(resp.Stages) != 7 {
		t.Fatalf("len(stages) = %d, want 7", len(resp.Stages))
	}
	if resp.Stages[0].Stage.String() != "seed-to-soil" || resp.Stages[6].Stage.String() != "humidity-to-location" {
		t.Errorf("stage order = %s ... %s", resp.Stages[0].Stage, resp.Stages[6].Stage)
	}
	for _, s := range resp.Stages {
		if s.Values != 27 {
			t.Errorf("stage %s values = %d, want 27", s.Stage, s.Values)
		}
	}
	if resp.MinStart != 46 || resp.Stages[6].MinStart != 46 {
		t.Errorf("min_start = %d, want 46", resp.MinStart)
	}
	if resp.Stats.InitialIntervals != 2 {
		t.Errorf("initial intervals = %d, want 2", resp.Stats.InitialIntervals)
	}
}

func TestTrace_TableListsStages(t *testing.T) {
	ta := newTestApp()
	if err := ta.run("trace", "--format", "table", samplePath); err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	out := ta.stdout.String()
	if !strings.Contains(out, "intervals_in") || !strings.Contains(out, "humidity-to-location") {
		t.Errorf("table should list stages:\n%s", out)
	}
}

func TestInspect_Sample(t *testing.T) {
	ta := newTestApp()
	if err := ta.run("inspect", "--format", "json", samplePath); err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	var resp reader.InspectAlmanacResponse
	ta.decode(t, &resp)
	if len(resp.Stages) != 7 || resp.SeedCount != 27 {
		t.Errorf("inspect = %d stages, %d seed values", len(resp.Stages), resp.SeedCount)
	}
	if resp.Format != "text" {
		t.Errorf("format = %q, want text", resp.Format)
	}
}

func TestInspect_ReportsBrokenChainWithoutStrict(t *testing.T) {
	path := writeFile(t, "broken.yaml", brokenChainYAML)

	ta := newTestApp()
	if err := ta.run("inspect", "--format", "json", path); err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	var resp reader.InspectAlmanacResponse
	ta.decode(t, &resp)
	if len(resp.Problems) != 1 {
		t.Errorf("problems = %v, want 1", resp.Problems)
	}
}

func TestLocate_SampleSeeds(t *testing.T) {
	tests := map[string]int64{"79": 82, "14": 43, "55": 86, "13": 35}
	for seed, want := range tests {
		t.Run(seed, func(t *testing.T) {
			ta := newTestApp()
			if err := ta.run("locate", "--format", "json", samplePath, seed); err != nil {
				t.Fatalf("locate failed: %v", err)
			}
			var resp reader.LocateResponse
			ta.decode(t, &resp)
			if resp.Result != want {
				t.Errorf("locate %s = %d, want %d", seed, resp.Result, want)
			}
			if len(resp.Path) != 8 || resp.Path[0].Domain != "seed" || resp.Path[7].Domain != "location" {
				t.Errorf("path = %+v", resp.Path)
			}
		})
	}
}

func TestLocate_ValueWithInputFlag(t *testing.T) {
	ta := newTestApp()
	if err := ta.run("locate", "--format", "json", "--input", samplePath, "79"); err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	var resp reader.LocateResponse
	ta.decode(t, &resp)
	if resp.Path[1].Value != 81 {
		t.Errorf("soil = %d, want 81", resp.Path[1].Value)
	}
}

func TestLocate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no value", []string{"locate"}},
		{"not a number", []string{"locate", samplePath, "seventy-nine"}},
		{"too many", []string{"locate", samplePath, "1", "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestApp().run(tt.args...)
			if code := exitCode(t, err); code != exitInvalidInput {
				t.Errorf("exit code = %d, want %d", code, exitInvalidInput)
			}
		})
	}
}

func TestConvert_RoundTripSolves(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"almanac.yaml", "almanac.rmp"} {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(dir, name)

			ta := newTestApp()
			if err := ta.run("convert", "--output", out, "--format", "json", samplePath); err != nil {
				t.Fatalf("convert failed: %v", err)
			}
			var conv reader.ConvertResponse
			ta.decode(t, &conv)
			if conv.From != "text" || conv.Stages != 7 || conv.Rules != 18 {
				t.Errorf("convert = %+v", conv)
			}

			ta = newTestApp()
			if err := ta.run("solve", "--format", "json", out); err != nil {
				t.Fatalf("solve %s failed: %v", name, err)
			}
			var resp reader.SolveResponse
			ta.decode(t, &resp)
			if resp.MinStart != 46 {
				t.Errorf("min_start = %d, want 46", resp.MinStart)
			}
		})
	}
}

func TestConvert_RefusesUnwritableStageNames(t *testing.T) {
	path := writeFile(t, "names.yaml", badStageNameYAML)

	for _, name := range []string{"out.txt", "out.yaml"} {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), name)

			err := newTestApp().run("convert", "--output", out, path)
			if code := exitCode(t, err); code != exitInvalidInput {
				t.Errorf("exit code = %d, want %d", code, exitInvalidInput)
			}
			if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
				t.Errorf("output %s should not be written, stat err: %v", out, statErr)
			}
		})
	}
}

func TestConvert_StdoutNeedsTarget(t *testing.T) {
	err := newTestApp().run("convert", samplePath)
	if code := exitCode(t, err); code != exitInvalidInput {
		t.Errorf("exit code = %d, want %d", code, exitInvalidInput)
	}
	if !strings.Contains(err.Error(), "--to is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConvert_OrderCannotBecomeText(t *testing.T) {
	path := writeFile(t, "order.yaml", `seeds: [1, 5]
order:
  - {from: seed, to: soil}
stages:
  - from: seed
    to: soil
    rules: []
`)
	out := filepath.Join(t.TempDir(), "out.txt")

	err := newTestApp().run("convert", "--output", out, path)
	if code := exitCode(t, err); code != exitInvalidInput {
		t.Errorf("exit code = %d, want %d", code, exitInvalidInput)
	}
}

func TestVersion(t *testing.T) {
	ta := newTestApp()
	if err := ta.run("version", "--format", "json"); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	var resp VersionResponse
	ta.decode(t, &resp)
	if resp.Commit != "test" || resp.Version == "" || resp.FormatVersion != 1 {
		t.Errorf("version = %+v", resp)
	}
}
