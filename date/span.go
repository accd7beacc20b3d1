package date

// DaySpan is a half-open range of time [Start, End), or a single
// point in time when built with Point.
type DaySpan struct {
	Start Day
	End   Day

	point bool
}

// Between builds a span covering [start, end).
func Between(start, end Day) DaySpan {
	return DaySpan{Start: start, End: end}
}

// Point builds a zero-length span at the given instant.
func Point(day Day) DaySpan {
	return DaySpan{Start: day, End: day, point: true}
}

// IsPoint reports whether the span is a single instant.
func (s DaySpan) IsPoint() bool {
	return s.point
}

// Contains reports whether the instant lies inside the span. Point
// spans contain exactly their own instant.
func (s DaySpan) Contains(d Day) bool {
	if s.point {
		return d.Equal(s.Start)
	}
	return !d.Before(s.Start) && d.Before(s.End)
}

// MatchesDay reports whether any part of the span falls on the given
// calendar day.
func (s DaySpan) MatchesDay(d Day) bool {
	if s.Start.SameDay(d) {
		return true
	}
	if s.point {
		return false
	}
	return s.Start.Before(d.EndOfDay()) && s.End.After(d.StartOfDay())
}

// MatchesWeek reports whether any part of the span falls in the given
// day's week.
func (s DaySpan) MatchesWeek(d Day) bool {
	if s.Start.SameWeek(d) {
		return true
	}
	if s.point {
		return false
	}
	return s.Start.Before(d.EndOfWeek()) && s.End.After(d.StartOfWeek())
}

// MatchesMonth reports whether any part of the span falls in the
// given day's month.
func (s DaySpan) MatchesMonth(d Day) bool {
	if s.Start.SameMonth(d) {
		return true
	}
	if s.point {
		return false
	}
	return s.Start.Before(d.EndOfMonth()) && s.End.After(d.StartOfMonth())
}

// MatchesYear reports whether any part of the span falls in the given
// day's year.
func (s DaySpan) MatchesYear(d Day) bool {
	if s.Start.SameYear(d) {
		return true
	}
	if s.point {
		return false
	}
	return s.Start.Before(d.EndOfYear()) && s.End.After(d.StartOfYear())
}

// Days returns the number of calendar days from the span start to its
// exclusive end. A span from one midnight to the next returns 1.
func (s DaySpan) Days() int {
	return s.Start.DaysUntil(s.End)
}

// LastDay returns the last calendar day the span touches. For a span
// ending exactly at midnight the end instant itself is outside the
// span, so the previous day is returned.
func (s DaySpan) LastDay() Day {
	if !s.point && s.End.IsStartOfDay() && s.End.After(s.Start) {
		return s.End.Prev()
	}
	return s.End
}
