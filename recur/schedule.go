package recur

import (
	"errors"

	"github.com/samber/mo"

	"github.com/cyp0633/libdayspan/date"
)

// ErrInvalidBounds is returned when a schedule's start bound is after
// its end bound.
var ErrInvalidBounds = errors.New("schedule start is after end")

// Schedule is a full recurrence definition: optional date bounds, an
// occurrence duration, optional times of day, an exclusion set, and
// one frequency check per calendar component.
//
// Matching and iteration are total: a structurally valid schedule
// never produces an error, only empty results. Construction-time
// validation (Validate) is the caller's responsibility, normally via
// the parse package.
//
// Mutate schedules only through the Set* methods; they keep the
// derived duration-in-days bound current. After mutating exported
// fields directly, call Refresh.
type Schedule struct {
	// Start is the inclusive first day an occurrence may start on.
	// Absent means unbounded in the past.
	Start mo.Option[date.Day]
	// End is the exclusive bound past which no occurrence starts.
	// Absent means unbounded in the future.
	End mo.Option[date.Day]

	// Duration and DurationUnit give the length of one occurrence.
	Duration     int
	DurationUnit date.Unit

	// Times lists the times of day occurrences start at, in the order
	// given. Empty means a full-day schedule starting at midnight.
	Times []date.Time

	// Exclude holds day identifiers (date.Day.Identifier) on which no
	// occurrence may start, regardless of the frequency checks. It
	// does not exclude days merely covered by a multi-day occurrence
	// that started earlier.
	Exclude map[int]bool

	checks         [numComponents]Check
	durationInDays int
}

// New returns an unconstrained schedule: no bounds, all components
// always matching, one-day duration, full day.
func New() *Schedule {
	s := &Schedule{
		Duration:     1,
		DurationUnit: date.UnitDay,
		Exclude:      map[int]bool{},
	}
	for i := range s.checks {
		s.checks[i] = Compile(Always())
	}
	s.Refresh()
	return s
}

// Refresh recomputes all derived state. The Set* mutators call it;
// callers that assign exported fields directly must call it
// themselves.
func (s *Schedule) Refresh() {
	var last int64
	for _, t := range s.Times {
		if t.Millis() > last {
			last = t.Millis()
		}
	}
	total := last + int64(s.Duration)*s.DurationUnit.Millis()
	days := int((total + date.MillisPerDay - 1) / date.MillisPerDay)
	if days < 1 {
		days = 1
	}
	s.durationInDays = days
}

// SetFrequency installs the rule for one component and recompiles its
// check.
func (s *Schedule) SetFrequency(c Component, f Frequency) *Schedule {
	s.checks[c] = Compile(f)
	return s
}

// Check returns the compiled check for a component.
func (s *Schedule) Check(c Component) Check {
	return s.checks[c]
}

// SetDuration sets the occurrence length and re-derives the
// duration-in-days bound.
func (s *Schedule) SetDuration(amount int, unit date.Unit) *Schedule {
	s.Duration = amount
	s.DurationUnit = unit
	s.Refresh()
	return s
}

// SetTimes sets the start times of day, kept in the order given, and
// re-derives the duration-in-days bound.
func (s *Schedule) SetTimes(times ...date.Time) *Schedule {
	s.Times = times
	s.Refresh()
	return s
}

// SetBounds sets the inclusive start and exclusive end day bounds.
func (s *Schedule) SetBounds(start, end mo.Option[date.Day]) *Schedule {
	s.Start = start
	s.End = end
	return s
}

// ExcludeDay adds a day to the exclusion set.
func (s *Schedule) ExcludeDay(d date.Day) *Schedule {
	if s.Exclude == nil {
		s.Exclude = map[int]bool{}
	}
	s.Exclude[d.Identifier()] = true
	return s
}

// IsExcluded reports whether occurrences are forbidden from starting
// on the day.
func (s *Schedule) IsExcluded(d date.Day) bool {
	return s.Exclude[d.Identifier()]
}

// IsFullDay reports whether the schedule has no configured start
// times, in which case occurrences start at midnight.
func (s *Schedule) IsFullDay() bool {
	return len(s.Times) == 0
}

// DurationInDays is the maximum number of calendar days one
// occurrence can touch, derived from the latest start time plus the
// duration. It bounds the backward search in FindStartingDay.
func (s *Schedule) DurationInDays() int {
	if s.durationInDays < 1 {
		// zero-value Schedule, never Refresh()ed
		return 1
	}
	return s.durationInDays
}

// Validate reports construction errors: inverted bounds or an invalid
// frequency. It never inspects dates beyond the bounds themselves.
func (s *Schedule) Validate() error {
	start, hasStart := s.Start.Get()
	end, hasEnd := s.End.Get()
	if hasStart && hasEnd && start.After(end) {
		return ErrInvalidBounds
	}
	for i := range s.checks {
		if err := s.checks[i].Input.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// MatchesDay reports whether an occurrence starts on the given day:
// the day is not excluded, lies within the [start, end) bounds, and
// passes every component check.
func (s *Schedule) MatchesDay(d date.Day) bool {
	if s.IsExcluded(d) {
		return false
	}
	if start, ok := s.Start.Get(); ok && d.Identifier() < start.Identifier() {
		return false
	}
	if end, ok := s.End.Get(); ok && d.Identifier() >= end.Identifier() {
		return false
	}
	for i := range s.checks {
		if !s.checks[i].Matches(Component(i).valueOf(d)) {
			return false
		}
	}
	return true
}

// MatchesTime reports whether an occurrence starts at the given
// instant: its day matches and its time of day equals one of the
// configured times exactly.
func (s *Schedule) MatchesTime(d date.Day) bool {
	if !s.MatchesDay(d) {
		return false
	}
	clock := d.Clock()
	for _, t := range s.Times {
		if clock == t {
			return true
		}
	}
	return false
}
