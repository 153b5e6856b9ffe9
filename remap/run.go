package remap

import (
	"fmt"

	"github.com/pithecene-io/rangemap/interval"
)

// StageReport summarizes one stage transition.
type StageReport struct {
	// Index is the zero-based position of the stage in the pipeline.
	Index int `json:"index" yaml:"index"`
	// Stage is the key of the stage just applied.
	Stage StageKey `json:"stage" yaml:"stage"`
	// IntervalsIn is the size of the generation entering the stage.
	IntervalsIn int `json:"intervals_in" yaml:"intervals_in"`
	// IntervalsOut is the size of the generation leaving the stage.
	IntervalsOut int `json:"intervals_out" yaml:"intervals_out"`
	// Values is the summed length of the outgoing generation.
	Values int64 `json:"values" yaml:"values"`
	// MinStart is the smallest start in the outgoing generation.
	MinStart int64 `json:"min_start" yaml:"min_start"`
}

// Observer receives a report after every stage. It must not retain gen.
type Observer func(report StageReport, gen []interval.Interval)

// RunOptions tune a pipeline run. The zero value is a plain run.
type RunOptions struct {
	// Coalesce merges overlapping and adjacent intervals after every stage.
	// The covered value set is unchanged; only the fragment count shrinks.
	Coalesce bool
	// Observer, when set, is called after each stage.
	Observer Observer
}

// Run passes initial through every stage of p in order and returns the final
// generation. initial is not modified.
func Run(initial []interval.Interval, p *Pipeline) []interval.Interval {
	return RunWith(initial, p, RunOptions{})
}

// RunWith is Run with options.
func RunWith(initial []interval.Interval, p *Pipeline, opts RunOptions) []interval.Interval {
	generation := make([]interval.Interval, len(initial))
	copy(generation, initial)

	for i, stage := range p.stages {
		next := make([]interval.Interval, 0, len(generation)*2)
		for _, r := range generation {
			next = append(next, Transform(r, stage.Rules)...)
		}

		var merged interval.Set
		if opts.Coalesce {
			merged = interval.NewSet(next)
			next = merged.Intervals()
		}

		if opts.Observer != nil {
			report := StageReport{
				Index:        i,
				Stage:        stage.Key,
				IntervalsIn:  len(generation),
				IntervalsOut: len(next),
			}
			if opts.Coalesce {
				// A set is sorted and disjoint, so its length counts values
				// exactly and its first range holds the minimum.
				report.Values = merged.Len()
				report.MinStart, _ = merged.Min()
			} else {
				report.Values = interval.TotalLen(next)
				if m, err := MinStart(next); err == nil {
					report.MinStart = m
				}
			}
			opts.Observer(report, next)
		}

		generation = next
	}

	return generation
}

// MinStart returns the smallest start value across generation.
func MinStart(generation []interval.Interval) (int64, error) {
	if len(generation) == 0 {
		return 0, fmt.Errorf("minimum start: %w", ErrEmptyGeneration)
	}
	m := generation[0].Start
	for _, r := range generation[1:] {
		if r.Start < m {
			m = r.Start
		}
	}
	return m, nil
}
