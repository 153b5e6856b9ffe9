package reader

import (
	"fmt"

	"github.com/pithecene-io/rangemap/almanac"
	"github.com/pithecene-io/rangemap/interval"
	"github.com/pithecene-io/rangemap/remap"
)

// InspectAlmanac summarizes a with its seeds read in mode.
// Stages are reported in traversal order.
func InspectAlmanac(input string, format Format, a *almanac.Almanac, mode almanac.SeedMode) (*InspectAlmanacResponse, error) {
	seeds, err := a.Intervals(mode)
	if err != nil {
		return nil, err
	}
	p, err := a.Pipeline()
	if err != nil {
		return nil, err
	}

	resp := &InspectAlmanacResponse{
		Input:     input,
		Format:    string(Resolve(input, format)),
		SeedMode:  string(mode),
		Seeds:     seeds,
		SeedCount: interval.TotalLen(seeds),
		Domains:   p.Domains(),
		Stages:    make([]StageSummary, 0, p.Len()),
	}

	stages := p.Stages()
	for i, s := range stages {
		sum := StageSummary{
			Index:   i,
			Stage:   s.Key.String(),
			Rules:   len(s.Rules),
			Covered: s.CoveredLen(),
		}
		if x, y, ok := s.Overlaps(); ok {
			sum.Overlap = fmt.Sprintf("%s and %s", x.Source, y.Source)
			resp.Problems = append(resp.Problems, fmt.Sprintf("%s: %s in %s", remap.ErrOverlappingRules, sum.Overlap, s.Key))
		}
		if i > 0 && stages[i-1].Key.To != s.Key.From {
			resp.Problems = append(resp.Problems, fmt.Sprintf("%s: %s is followed by %s", remap.ErrBrokenChain, stages[i-1].Key, s.Key))
		}
		resp.Stages = append(resp.Stages, sum)
	}

	return resp, nil
}
