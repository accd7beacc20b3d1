/*
Package recur implements the recurrence engine: declarative frequency
rules compiled into per-component predicates, and schedules that
answer day matching, bounded iteration, multi-day coverage and span
generation queries.

# Frequencies

Each of the twelve calendar components (day of week, week of month,
year, ...) carries one Frequency, a tagged union of three variants:

  - Always: no constraint (the default).
  - EveryNth(every, offset): matches v iff (v - offset) mod every == 0.
  - OneOf(values...): matches values from an explicit list.

A schedule matches a day when the day is not excluded, lies inside
the optional [start, end) bounds, and every component check passes.

# Building a schedule

	s := recur.New().
		SetFrequency(recur.ComponentDayOfWeek, recur.OneOf(1, 3, 5)).
		SetTimes(date.MustParseTime("09:00")).
		SetDuration(90, date.UnitMinute)

	next := s.NextDays(date.Today(), 3, false, 0)
	spans := s.GetSpansOn(next[0], true)

# Totality

All queries are total functions: "no match", "no covering occurrence"
and "empty range" are empty results, never errors. Iteration is
bounded by an explicit lookahead (366 days by default) and the
backward search behind a day is bounded by the schedule's own maximum
occurrence length, so no query loops unboundedly, even for schedules
that can never match.
*/
package recur
