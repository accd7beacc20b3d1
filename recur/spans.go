package recur

import (
	"github.com/samber/mo"

	"github.com/cyp0633/libdayspan/date"
)

// GetFullSpan returns the span of a full-day occurrence starting on
// the given day: midnight plus the configured duration.
func (s *Schedule) GetFullSpan(d date.Day) date.DaySpan {
	start := d.StartOfDay()
	return date.Between(start, start.Add(s.Duration, s.DurationUnit))
}

// GetTimeSpan returns the span of an occurrence starting on the given
// day at the given time of day.
func (s *Schedule) GetTimeSpan(d date.Day, t date.Time) date.DaySpan {
	start := d.WithTime(t)
	return date.Between(start, start.Add(s.Duration, s.DurationUnit))
}

// FindStartingDay returns the earliest day whose occurrence covers
// the given day: the day itself when it matches, or a matching
// earlier day whose span still reaches it. The backward search is
// bounded by DurationInDays, which is exact for the schedule's own
// maximum occurrence length, so the walk never exceeds it.
func (s *Schedule) FindStartingDay(d date.Day) mo.Option[date.Day] {
	for behind := s.DurationInDays() - 1; behind >= 0; behind-- {
		start := d.Relative(-behind)
		if !s.MatchesDay(start) {
			continue
		}
		if behind == 0 || s.spanTouchesDay(start, d) {
			return mo.Some(start)
		}
	}
	return mo.None[date.Day]()
}

// spanTouchesDay reports whether any occurrence starting on start
// extends into day d.
func (s *Schedule) spanTouchesDay(start, d date.Day) bool {
	if s.IsFullDay() {
		return s.GetFullSpan(start).MatchesDay(d)
	}
	for _, t := range s.Times {
		if s.GetTimeSpan(start, t).MatchesDay(d) {
			return true
		}
	}
	return false
}

// CoversDay reports whether the day lies inside some occurrence,
// including multi-day occurrences that started earlier. Compare
// MatchesDay, which only concerns literal start days.
func (s *Schedule) CoversDay(d date.Day) bool {
	return s.FindStartingDay(d).IsPresent()
}

// GetSpansOver returns the spans of all occurrences touching the
// given day, including ones that started on an earlier day. For a
// timed schedule one span per configured time is produced, filtered
// to those that actually reach the day; a full-day schedule produces
// a single span. Empty means no occurrence covers the day.
func (s *Schedule) GetSpansOver(d date.Day) []date.DaySpan {
	start, ok := s.FindStartingDay(d).Get()
	if !ok {
		return nil
	}
	if s.IsFullDay() {
		return []date.DaySpan{s.GetFullSpan(start)}
	}
	var spans []date.DaySpan
	onStart := start.SameDay(d)
	for _, t := range s.Times {
		span := s.GetTimeSpan(start, t)
		if onStart || span.MatchesDay(d) {
			spans = append(spans, span)
		}
	}
	return spans
}

// GetSpansOn returns the spans of occurrences starting exactly on the
// given day, with no backward search. When check is true the day must
// pass MatchesDay first; with check false spans are produced
// unconditionally, which callers use to build representative spans
// for days they have already matched.
func (s *Schedule) GetSpansOn(d date.Day, check bool) []date.DaySpan {
	if check && !s.MatchesDay(d) {
		return nil
	}
	if s.IsFullDay() {
		return []date.DaySpan{s.GetFullSpan(d)}
	}
	spans := make([]date.DaySpan, 0, len(s.Times))
	for _, t := range s.Times {
		spans = append(spans, s.GetTimeSpan(d, t))
	}
	return spans
}
