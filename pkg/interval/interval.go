// Package interval implements half-open time intervals [Start, End) and the
// busy/free arithmetic used by the scheduler.
package interval

import (
	"sort"
	"time"
)

// Interval is a half-open span of time [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// New returns the interval [start, end).
func New(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Valid reports whether End is strictly after Start.
func (i Interval) Valid() bool {
	return i.End.After(i.Start)
}

// Duration of the interval, zero when invalid.
func (i Interval) Duration() time.Duration {
	if !i.Valid() {
		return 0
	}
	return i.End.Sub(i.Start)
}

// Hours of the interval as a float.
func (i Interval) Hours() float64 {
	return i.Duration().Hours()
}

// Overlaps reports whether two intervals share any instant. Touching
// intervals ([a,b) and [b,c)) do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// Contains reports whether t lies in [Start, End).
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Clip returns the part of i inside bounds, and false when nothing is left.
func (i Interval) Clip(bounds Interval) (Interval, bool) {
	start := i.Start
	if bounds.Start.After(start) {
		start = bounds.Start
	}
	end := i.End
	if bounds.End.Before(end) {
		end = bounds.End
	}
	out := Interval{Start: start, End: end}
	return out, out.Valid()
}

// Sort orders intervals by start, then by end.
func Sort(in []Interval) {
	sort.Slice(in, func(a, b int) bool {
		if in[a].Start.Equal(in[b].Start) {
			return in[a].End.Before(in[b].End)
		}
		return in[a].Start.Before(in[b].Start)
	})
}

// Merge returns a sorted copy of in where overlapping or touching intervals
// are collapsed. Invalid intervals are dropped.
func Merge(in []Interval) []Interval {
	cp := make([]Interval, 0, len(in))
	for _, iv := range in {
		if iv.Valid() {
			cp = append(cp, iv)
		}
	}
	if len(cp) == 0 {
		return nil
	}
	Sort(cp)

	out := []Interval{cp[0]}
	for _, iv := range cp[1:] {
		last := &out[len(out)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

// Free returns the gaps of window not covered by busy, in order.
func Free(window Interval, busy []Interval) []Interval {
	if !window.Valid() {
		return nil
	}

	var clipped []Interval
	for _, b := range busy {
		if c, ok := b.Clip(window); ok {
			clipped = append(clipped, c)
		}
	}

	var out []Interval
	cursor := window.Start
	for _, b := range Merge(clipped) {
		if b.Start.After(cursor) {
			out = append(out, Interval{Start: cursor, End: b.Start})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if window.End.After(cursor) {
		out = append(out, Interval{Start: cursor, End: window.End})
	}
	return out
}

// TotalHours sums the hours of the given intervals without merging them.
func TotalHours(in []Interval) float64 {
	var total time.Duration
	for _, iv := range in {
		total += iv.Duration()
	}
	return total.Hours()
}

// AnyOverlap reports whether candidate overlaps any interval in set.
func AnyOverlap(candidate Interval, set []Interval) bool {
	for _, iv := range set {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}
