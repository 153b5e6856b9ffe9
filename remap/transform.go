package remap

import "github.com/pithecene-io/rangemap/interval"

// Transform applies one stage's rules to r and returns the resulting pieces.
//
// Pieces are resolved from a worklist seeded with r. A popped piece is tested
// against every rule in order; the first rule it overlaps maps the covered
// part and pushes any uncovered remainder back onto the worklist, where it is
// tested against all rules again. A piece overlapping no rule passes through
// unchanged. The sum of output lengths always equals r.Len().
//
// Output order is unspecified.
func Transform(r interval.Interval, rules []Rule) []interval.Interval {
	if len(rules) == 0 {
		return []interval.Interval{r}
	}

	result := make([]interval.Interval, 0, 16)
	pending := make([]interval.Interval, 0, 4)
	pending = append(pending, r)

next:
	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		for _, rule := range rules {
			from := rule.Source
			bias := rule.Bias()

			switch Classify(cur, from) {
			case OverlapLeft:
				pending = append(pending, interval.Interval{Start: cur.Start, End: from.Start})
				result = append(result, interval.Interval{Start: from.Start, End: cur.End}.Shift(bias))
				continue next
			case OverlapRight:
				result = append(result, interval.Interval{Start: cur.Start, End: from.End}.Shift(bias))
				pending = append(pending, interval.Interval{Start: from.End, End: cur.End})
				continue next
			case OverlapInside:
				result = append(result, cur.Shift(bias))
				continue next
			case OverlapSpan:
				pending = append(pending,
					interval.Interval{Start: cur.Start, End: from.Start},
					interval.Interval{Start: from.End, End: cur.End},
				)
				result = append(result, from.Shift(bias))
				continue next
			case OverlapNone:
			}
		}

		result = append(result, cur)
	}

	return result
}
