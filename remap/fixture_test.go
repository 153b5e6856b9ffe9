package remap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pithecene-io/rangemap/interval"
)

// sampleStages is the seven-stage sample almanac (seed -> ... -> location).
var sampleStages = []struct {
	key     StageKey
	triples [][3]int64
}{
	{StageKey{"seed", "soil"}, [][3]int64{{50, 98, 2}, {52, 50, 48}}},
	{StageKey{"soil", "fertilizer"}, [][3]int64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{StageKey{"fertilizer", "water"}, [][3]int64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{StageKey{"water", "light"}, [][3]int64{{88, 18, 7}, {18, 25, 70}}},
	{StageKey{"light", "temperature"}, [][3]int64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{StageKey{"temperature", "humidity"}, [][3]int64{{0, 69, 1}, {1, 0, 69}}},
	{StageKey{"humidity", "location"}, [][3]int64{{60, 56, 37}, {56, 93, 4}}},
}

var sampleSeeds = []int64{79, 14, 55, 13}

func mustRule(t testing.TB, dst, src, length int64) Rule {
	t.Helper()
	r, err := NewRule(dst, src, length)
	require.NoError(t, err)
	return r
}

func samplePipeline(t testing.TB) *Pipeline {
	t.Helper()
	order := make([]StageKey, 0, len(sampleStages))
	rules := make(map[StageKey][]Rule, len(sampleStages))
	for _, s := range sampleStages {
		order = append(order, s.key)
		for _, tr := range s.triples {
			rules[s.key] = append(rules[s.key], mustRule(t, tr[0], tr[1], tr[2]))
		}
	}
	p, err := NewPipeline(order, rules)
	require.NoError(t, err)
	return p
}

func seedRanges(t testing.TB) []interval.Interval {
	t.Helper()
	var out []interval.Interval
	for i := 0; i+1 < len(sampleSeeds); i += 2 {
		r, err := interval.FromLength(sampleSeeds[i], sampleSeeds[i+1])
		require.NoError(t, err)
		out = append(out, r)
	}
	return out
}

func seedPoints(t testing.TB) []interval.Interval {
	t.Helper()
	out := make([]interval.Interval, 0, len(sampleSeeds))
	for _, s := range sampleSeeds {
		r, err := interval.FromLength(s, 1)
		require.NoError(t, err)
		out = append(out, r)
	}
	return out
}
