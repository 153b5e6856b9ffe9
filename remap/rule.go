// Package remap implements the interval remapping engine: mapping rules,
// stages, the interval transformer and the multi-stage pipeline runner.
//
// Values are never materialized one by one. An interval entering a stage is
// split at rule boundaries and every resulting piece is shifted by the bias of
// the rule covering it, so a generation of a few dozen intervals can stand for
// billions of values.
package remap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pithecene-io/rangemap/interval"
)

// Errors returned while building rules, stages and pipelines.
var (
	// ErrLengthMismatch indicates a rule whose source and destination differ in length.
	ErrLengthMismatch = errors.New("source and destination lengths differ")
	// ErrUnknownStage indicates a pipeline step with no rule list.
	ErrUnknownStage = errors.New("unknown stage")
	// ErrBrokenChain indicates adjacent stages whose domains do not connect.
	ErrBrokenChain = errors.New("stage chain is broken")
	// ErrOverlappingRules indicates two rules in one stage with overlapping sources.
	ErrOverlappingRules = errors.New("overlapping rule sources")
	// ErrEmptyGeneration is returned when reducing a generation with no intervals.
	ErrEmptyGeneration = errors.New("empty generation")
)

// Rule maps every x in Source to x + Bias().
type Rule struct {
	Source      interval.Interval `json:"source" yaml:"source"`
	Destination interval.Interval `json:"destination" yaml:"destination"`
}

// NewRule builds a rule from a (destination start, source start, length)
// triple as written in an almanac.
func NewRule(dstStart, srcStart, length int64) (Rule, error) {
	src, err := interval.FromLength(srcStart, length)
	if err != nil {
		return Rule{}, fmt.Errorf("rule source: %w", err)
	}
	dst, err := interval.FromLength(dstStart, length)
	if err != nil {
		return Rule{}, fmt.Errorf("rule destination: %w", err)
	}
	return Rule{Source: src, Destination: dst}, nil
}

// RuleFromIntervals builds a rule from explicit ranges.
func RuleFromIntervals(src, dst interval.Interval) (Rule, error) {
	if !src.WellFormed() || !dst.WellFormed() {
		return Rule{}, fmt.Errorf("%w: source %s, destination %s", interval.ErrMalformed, src, dst)
	}
	if src.Len() != dst.Len() {
		return Rule{}, fmt.Errorf("%w: source %s, destination %s", ErrLengthMismatch, src, dst)
	}
	return Rule{Source: src, Destination: dst}, nil
}

// Bias is the constant offset added to every value of Source.
func (r Rule) Bias() int64 {
	return r.Destination.Start - r.Source.Start
}

// Apply maps x through the rule. ok is false when x is outside Source.
func (r Rule) Apply(x int64) (v int64, ok bool) {
	if !r.Source.Contains(x) {
		return x, false
	}
	return x + r.Bias(), true
}

// StageKey names a stage by the domains it connects.
type StageKey struct {
	From string `json:"from" yaml:"from" msgpack:"from"`
	To   string `json:"to" yaml:"to" msgpack:"to"`
}

// String renders the key as it appears in an almanac header ("seed-to-soil").
func (k StageKey) String() string {
	return k.From + "-to-" + k.To
}

// Stage is one layer of the pipeline.
// Rule sources are expected not to overlap; see Overlaps.
type Stage struct {
	Key   StageKey
	Rules []Rule
}

// Overlaps returns the first pair of rules whose sources overlap.
// ok is false when the stage satisfies the non-overlap assumption.
func (s Stage) Overlaps() (a, b Rule, ok bool) {
	sorted := make([]Rule, len(s.Rules))
	copy(sorted, s.Rules)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Source.Start < sorted[j].Source.Start
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Source.Overlaps(sorted[i].Source) {
			return sorted[i-1], sorted[i], true
		}
	}
	return Rule{}, Rule{}, false
}

// CoveredLen is the total source length covered by the stage's rules.
func (s Stage) CoveredLen() int64 {
	var n int64
	for _, r := range s.Rules {
		n += r.Source.Len()
	}
	return n
}

// MapValue maps a single value through rules: the first rule whose source
// contains x decides, otherwise x passes through unchanged.
func MapValue(x int64, rules []Rule) int64 {
	for _, r := range rules {
		if v, ok := r.Apply(x); ok {
			return v
		}
	}
	return x
}
