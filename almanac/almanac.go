// Package almanac holds the parsed form of a remapping input: the initial
// seed numbers and the named stages of (destination, source, length)
// triples, in declaration order.
//
// An Almanac is the boundary between input formats and the remap engine.
// Intervals converts the seeds into the initial generation and Pipeline
// converts the stages into a remap.Pipeline.
package almanac

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/pithecene-io/rangemap/interval"
	"github.com/pithecene-io/rangemap/remap"
)

// SeedMode selects how the seed numbers are read.
type SeedMode string

const (
	// SeedRanges reads seeds as (start, length) pairs.
	SeedRanges SeedMode = "ranges"
	// SeedPoints reads every seed as the single value [n, n+1).
	SeedPoints SeedMode = "points"
)

// ParseSeedMode validates a seed mode string. Empty selects SeedRanges.
func ParseSeedMode(s string) (SeedMode, error) {
	switch SeedMode(s) {
	case "", SeedRanges:
		return SeedRanges, nil
	case SeedPoints:
		return SeedPoints, nil
	default:
		return "", fmt.Errorf("invalid seed mode: %q (must be ranges or points)", s)
	}
}

var (
	// ErrOddSeeds is returned when range mode meets an unpaired seed number.
	ErrOddSeeds = errors.New("seed ranges need an even number of values")
	// ErrDuplicateStage is returned when two stages share a key.
	ErrDuplicateStage = errors.New("duplicate stage")
	// ErrStageName is returned for a stage name that is not a single
	// <from>-to-<to> header.
	ErrStageName = errors.New("invalid stage name")
)

// Triple is one mapping line: Length values starting at Source map onto
// Length values starting at Destination.
type Triple struct {
	Destination int64 `json:"destination" yaml:"destination" msgpack:"destination"`
	Source      int64 `json:"source" yaml:"source" msgpack:"source"`
	Length      int64 `json:"length" yaml:"length" msgpack:"length"`
}

// StageSpec is one named block of triples.
type StageSpec struct {
	From  string   `json:"from" yaml:"from" msgpack:"from"`
	To    string   `json:"to" yaml:"to" msgpack:"to"`
	Rules []Triple `json:"rules" yaml:"rules" msgpack:"rules"`
}

// Key returns the stage key for s.
func (s StageSpec) Key() remap.StageKey {
	return remap.StageKey{From: s.From, To: s.To}
}

// Almanac is a parsed remapping input.
type Almanac struct {
	Seeds []int64 `json:"seeds" yaml:"seeds" msgpack:"seeds"`
	// Order lists the traversal order. Empty means declaration order of Stages.
	Order  []remap.StageKey `json:"order,omitempty" yaml:"order,omitempty" msgpack:"order,omitempty"`
	Stages []StageSpec      `json:"stages" yaml:"stages" msgpack:"stages"`
}

// Intervals converts the seeds into the initial generation, sorted by start.
func (a *Almanac) Intervals(mode SeedMode) ([]interval.Interval, error) {
	var out []interval.Interval

	switch mode {
	case SeedPoints:
		out = make([]interval.Interval, 0, len(a.Seeds))
		for _, s := range a.Seeds {
			r, err := interval.FromLength(s, 1)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
	case SeedRanges, "":
		if len(a.Seeds)%2 != 0 {
			return nil, fmt.Errorf("%w: got %d", ErrOddSeeds, len(a.Seeds))
		}
		out = make([]interval.Interval, 0, len(a.Seeds)/2)
		for i := 0; i < len(a.Seeds); i += 2 {
			r, err := interval.FromLength(a.Seeds[i], a.Seeds[i+1])
			if err != nil {
				return nil, fmt.Errorf("seed pair %d: %w", i/2+1, err)
			}
			out = append(out, r)
		}
	default:
		return nil, fmt.Errorf("invalid seed mode: %q", mode)
	}

	slices.SortStableFunc(out, func(x, y interval.Interval) int {
		return cmp.Compare(x.Start, y.Start)
	})
	return out, nil
}

// Pipeline converts the stages into rules and resolves the traversal order.
// Stage names are checked with CheckNames first.
func (a *Almanac) Pipeline() (*remap.Pipeline, error) {
	if err := a.CheckNames(); err != nil {
		return nil, err
	}

	rules := make(map[remap.StageKey][]remap.Rule, len(a.Stages))
	order := a.Order
	if len(order) == 0 {
		order = make([]remap.StageKey, 0, len(a.Stages))
		for _, s := range a.Stages {
			order = append(order, s.Key())
		}
	}

	for _, s := range a.Stages {
		key := s.Key()
		if _, dup := rules[key]; dup {
			return nil, fmt.Errorf("%w %s", ErrDuplicateStage, key)
		}
		rs := make([]remap.Rule, 0, len(s.Rules))
		for i, t := range s.Rules {
			r, err := remap.NewRule(t.Destination, t.Source, t.Length)
			if err != nil {
				return nil, fmt.Errorf("stage %s rule %d: %w", key, i+1, err)
			}
			rs = append(rs, r)
		}
		rules[key] = rs
	}

	return remap.NewPipeline(order, rules)
}

// CheckNames validates every stage and order key with CheckStageKey.
func (a *Almanac) CheckNames() error {
	for i, s := range a.Stages {
		if err := CheckStageKey(s.Key()); err != nil {
			return fmt.Errorf("stage %d: %w", i+1, err)
		}
	}
	for i, k := range a.Order {
		if err := CheckStageKey(k); err != nil {
			return fmt.Errorf("order entry %d: %w", i+1, err)
		}
	}
	return nil
}

// RuleCount returns the total number of triples across all stages.
func (a *Almanac) RuleCount() int {
	n := 0
	for _, s := range a.Stages {
		n += len(s.Rules)
	}
	return n
}
