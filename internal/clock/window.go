package clock

// Range is a time band on the clock face. Both ends are inclusive.
// When Start > End the band wraps past midnight, e.g. 22:00-05:59.
type Range struct {
	Start Minutes
	End   Minutes
}

// NewRange builds a Range from two HH:MM literals and panics on bad input.
func NewRange(start, end string) Range {
	return Range{Start: MustParse(start), End: MustParse(end)}
}

// Wraps reports whether the band spans midnight.
func (r Range) Wraps() bool {
	return r.Start > r.End
}

// Contains reports whether the minute-of-day m falls inside the band.
func (r Range) Contains(m Minutes) bool {
	if !r.Wraps() {
		return m >= r.Start && m <= r.End
	}
	return m >= r.Start || m <= r.End
}

func (r Range) String() string {
	return FormatClock(r.Start) + "-" + FormatClock(r.End)
}

// Interval is a span of absolute minute offsets counted from midnight of
// the report day. End may exceed 1440.
type Interval struct {
	Start Minutes
	End   Minutes
}

// Overlaps uses max(starts) < min(ends), so intervals that only touch do not overlap.
func (iv Interval) Overlaps(o Interval) bool {
	return max(iv.Start, o.Start) < min(iv.End, o.End)
}

// Shift moves both ends by d minutes.
func (iv Interval) Shift(d Minutes) Interval {
	return Interval{Start: iv.Start + d, End: iv.End + d}
}

// OverlapsDaily checks iv against a daily window on the report day and on
// the following day. A duty that starts late and runs past midnight is
// judged against the occurrence it actually flies through.
func OverlapsDaily(iv Interval, window Interval) bool {
	return iv.Overlaps(window) || iv.Overlaps(window.Shift(MinutesPerDay))
}

// Forward returns at as an offset from the day of from: unchanged when it
// is not earlier, otherwise moved onto the next day.
func Forward(from, at Minutes) Minutes {
	if at < from {
		return at + MinutesPerDay
	}
	return at
}
