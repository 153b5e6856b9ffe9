package remap

import (
	"cmp"

	"github.com/pithecene-io/rangemap/interval"
)

// Overlap classifies how a pending interval lies against a rule source.
type Overlap int

const (
	// OverlapNone: the ranges share no value.
	OverlapNone Overlap = iota
	// OverlapLeft: the interval starts before the source and ends inside it
	// or exactly at its end.
	OverlapLeft
	// OverlapRight: the interval starts inside the source (or at its start)
	// and ends after it.
	OverlapRight
	// OverlapInside: the interval lies entirely within the source.
	OverlapInside
	// OverlapSpan: the interval strictly covers the source on both sides.
	OverlapSpan
)

var overlapNames = [...]string{
	OverlapNone:   "none",
	OverlapLeft:   "left",
	OverlapRight:  "right",
	OverlapInside: "inside",
	OverlapSpan:   "span",
}

func (o Overlap) String() string {
	if o < 0 || int(o) >= len(overlapNames) {
		return "unknown"
	}
	return overlapNames[o]
}

// Classify compares pending against from using the four boundary orderings
// (pending.Start vs from.Start, pending.Start vs from.End, pending.End vs
// from.Start, pending.End vs from.End). Both ranges must be well formed.
func Classify(pending, from interval.Interval) Overlap {
	startStart := cmp.Compare(pending.Start, from.Start)
	startEnd := cmp.Compare(pending.Start, from.End)
	endStart := cmp.Compare(pending.End, from.Start)
	endEnd := cmp.Compare(pending.End, from.End)

	switch {
	case startEnd >= 0 || endStart <= 0:
		return OverlapNone
	case startStart < 0 && endEnd <= 0:
		return OverlapLeft
	case startStart >= 0 && endEnd > 0:
		return OverlapRight
	case startStart >= 0 && endEnd <= 0:
		return OverlapInside
	default:
		return OverlapSpan
	}
}
