package interval

import "sort"

// Set is a sorted list of disjoint, non-adjacent ranges.
// The zero value is an empty set.
type Set []Interval

// NewSet builds a Set covering every value of rs.
func NewSet(rs []Interval) Set {
	var s Set
	for _, r := range rs {
		s.Add(r)
	}
	return s
}

// Add merges r into the set. Empty or inverted ranges are ignored.
func (s *Set) Add(r Interval) {
	low, high := r.Start, r.End
	if low >= high {
		return
	}

	i := sort.Search(len(*s), func(i int) bool { return (*s)[i].Start > low }) - 1
	j := sort.Search(len(*s), func(i int) bool { return (*s)[i].End > high })
	if i == j {
		return
	}

	var merged Interval
	if i >= 0 && low <= (*s)[i].End {
		merged.Start = (*s)[i].Start
	} else {
		merged.Start = low
		i++
	}
	if j < len(*s) && (*s)[j].Start <= high {
		merged.End = (*s)[j].End
		j++
	} else {
		merged.End = high
	}

	if i < j {
		(*s)[i] = merged
	} else {
		*s = append(*s, Interval{})
		copy((*s)[i+1:], (*s)[i:])
		(*s)[i] = merged
	}
	i++

	if i < j {
		*s = append((*s)[:i], (*s)[j:]...)
	}
}

// Len returns the number of distinct values covered by the set.
func (s Set) Len() int64 {
	return TotalLen(s)
}

// Min returns the smallest covered value. ok is false for an empty set.
func (s Set) Min() (v int64, ok bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[0].Start, true
}

// Intervals returns a copy of the set's ranges in ascending order.
func (s Set) Intervals() []Interval {
	out := make([]Interval, len(s))
	copy(out, s)
	return out
}
