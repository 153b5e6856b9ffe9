// Package reader provides the read side of the rangemap CLI: loading
// almanacs in any supported encoding and shaping the response views that
// commands render.
package reader

import (
	"github.com/pithecene-io/rangemap/interval"
	"github.com/pithecene-io/rangemap/metrics"
	"github.com/pithecene-io/rangemap/remap"
)

// StageSummary describes one stage of an almanac.
type StageSummary struct {
	Index   int    `json:"index" yaml:"index"`
	Stage   string `json:"stage" yaml:"stage"`
	Rules   int    `json:"rules" yaml:"rules"`
	Covered int64  `json:"covered" yaml:"covered"`
	// Overlap names the first pair of overlapping rule sources, if any.
	Overlap string `json:"overlap,omitempty" yaml:"overlap,omitempty"`
}

// InspectAlmanacResponse summarizes a loaded almanac without running it.
type InspectAlmanacResponse struct {
	Input     string              `json:"input" yaml:"input"`
	Format    string              `json:"format" yaml:"format"`
	SeedMode  string              `json:"seed_mode" yaml:"seed_mode"`
	Seeds     []interval.Interval `json:"seeds" yaml:"seeds"`
	SeedCount int64               `json:"seed_count" yaml:"seed_count"`
	Domains   []string            `json:"domains" yaml:"domains"`
	Stages    []StageSummary      `json:"stages" yaml:"stages"`
	// Problems lists strict-mode violations; empty for a well-formed chain.
	Problems []string `json:"problems,omitempty" yaml:"problems,omitempty"`
}

// SolveResponse is the result of a full pipeline run.
type SolveResponse struct {
	RunID     string `json:"run_id" yaml:"run_id"`
	Input     string `json:"input" yaml:"input"`
	SeedMode  string `json:"seed_mode" yaml:"seed_mode"`
	MinStart  int64  `json:"min_start" yaml:"min_start"`
	Intervals int    `json:"intervals" yaml:"intervals"`
	Values    int64  `json:"values" yaml:"values"`
	// Stats is populated by --stats.
	Stats *metrics.Snapshot `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// TraceResponse reports every stage transition of a run.
type TraceResponse struct {
	RunID    string              `json:"run_id" yaml:"run_id"`
	Input    string              `json:"input" yaml:"input"`
	SeedMode string              `json:"seed_mode" yaml:"seed_mode"`
	Initial  []interval.Interval `json:"initial" yaml:"initial"`
	Stages   []remap.StageReport `json:"stages" yaml:"stages"`
	MinStart int64               `json:"min_start" yaml:"min_start"`
	Stats    metrics.Snapshot    `json:"stats" yaml:"stats"`
}

// LocateResponse follows a single value through the pipeline.
type LocateResponse struct {
	Value  int64        `json:"value" yaml:"value"`
	Path   []remap.Step `json:"path" yaml:"path"`
	Result int64        `json:"result" yaml:"result"`
}

// ConvertResponse reports a format conversion.
type ConvertResponse struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Stages int    `json:"stages" yaml:"stages"`
	Rules  int    `json:"rules" yaml:"rules"`
}
