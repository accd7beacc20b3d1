package recur

import (
	"github.com/samber/mo"

	"github.com/cyp0633/libdayspan/date"
)

// DefaultLookahead is the default cap on how many days IterateDays
// visits. It guarantees termination for schedules that never match.
const DefaultLookahead = 366

// IterateDays walks one calendar day at a time starting from `from`,
// forward or backward, and invokes onMatch for every day the schedule
// matches. The walk stops when onMatch returns false, when max
// matches have been emitted, or after visiting lookahead days
// (DefaultLookahead when lookahead <= 0). includeFrom controls
// whether the starting day itself is tested before stepping.
//
// Finding no matching day is a valid outcome, not an error.
func (s *Schedule) IterateDays(from date.Day, max int, forward, includeFrom bool, lookahead int, onMatch func(date.Day) bool) {
	if max <= 0 {
		return
	}
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}

	day := from
	if !includeFrom {
		day = step(day, forward)
	}
	matched := 0
	for visited := 0; visited < lookahead; visited++ {
		if s.MatchesDay(day) {
			if !onMatch(day) {
				return
			}
			matched++
			if matched >= max {
				return
			}
		}
		day = step(day, forward)
	}
}

func step(d date.Day, forward bool) date.Day {
	if forward {
		return d.Next()
	}
	return d.Prev()
}

// NextDay returns the next matching day after (or at, when
// includeFrom) the given day, within lookahead days.
func (s *Schedule) NextDay(from date.Day, includeFrom bool, lookahead int) mo.Option[date.Day] {
	days := s.NextDays(from, 1, includeFrom, lookahead)
	if len(days) == 0 {
		return mo.None[date.Day]()
	}
	return mo.Some(days[0])
}

// NextDays returns up to max matching days walking forward.
func (s *Schedule) NextDays(from date.Day, max int, includeFrom bool, lookahead int) []date.Day {
	return s.collectDays(from, max, true, includeFrom, lookahead)
}

// PrevDay returns the previous matching day before (or at, when
// includeFrom) the given day, within lookahead days.
func (s *Schedule) PrevDay(from date.Day, includeFrom bool, lookahead int) mo.Option[date.Day] {
	days := s.PrevDays(from, 1, includeFrom, lookahead)
	if len(days) == 0 {
		return mo.None[date.Day]()
	}
	return mo.Some(days[0])
}

// PrevDays returns up to max matching days walking backward.
func (s *Schedule) PrevDays(from date.Day, max int, includeFrom bool, lookahead int) []date.Day {
	return s.collectDays(from, max, false, includeFrom, lookahead)
}

func (s *Schedule) collectDays(from date.Day, max int, forward, includeFrom bool, lookahead int) []date.Day {
	var days []date.Day
	s.IterateDays(from, max, forward, includeFrom, lookahead, func(d date.Day) bool {
		days = append(days, d)
		return true
	})
	return days
}
