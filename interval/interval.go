// Package interval provides the half-open integer range used throughout rangemap.
package interval

import (
	"errors"
	"fmt"
)

// ErrMalformed is returned when a range would be empty or inverted.
var ErrMalformed = errors.New("malformed interval")

// Interval is the half-open range [Start, End).
// Values are immutable; every method returns a new Interval.
type Interval struct {
	Start int64 `json:"start" yaml:"start" msgpack:"start"`
	End   int64 `json:"end" yaml:"end" msgpack:"end"`
}

// New returns [start, end) or ErrMalformed when end <= start.
func New(start, end int64) (Interval, error) {
	if end <= start {
		return Interval{}, fmt.Errorf("%w: [%d, %d)", ErrMalformed, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// FromLength returns [start, start+length).
func FromLength(start, length int64) (Interval, error) {
	if length <= 0 {
		return Interval{}, fmt.Errorf("%w: start %d with length %d", ErrMalformed, start, length)
	}
	return New(start, start+length)
}

// WellFormed reports whether Start < End.
func (r Interval) WellFormed() bool {
	return r.Start < r.End
}

// Len returns End - Start.
func (r Interval) Len() int64 {
	return r.End - r.Start
}

// Contains reports whether x lies in [Start, End).
func (r Interval) Contains(x int64) bool {
	return r.Start <= x && x < r.End
}

// Overlaps reports whether r and o share at least one value.
func (r Interval) Overlaps(o Interval) bool {
	return r.Start < o.End && o.Start < r.End
}

// IsSupersetOf reports whether o is contained within r.
func (r Interval) IsSupersetOf(o Interval) bool {
	return r.Start <= o.Start && r.End >= o.End
}

// Shift translates both bounds by n.
func (r Interval) Shift(n int64) Interval {
	return Interval{Start: r.Start + n, End: r.End + n}
}

// String renders the range as "[start, end)".
func (r Interval) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// TotalLen sums the lengths of all ranges in rs. Overlapping ranges are
// counted once per occurrence.
func TotalLen(rs []Interval) int64 {
	var n int64
	for _, r := range rs {
		n += r.Len()
	}
	return n
}
