/*
Package calendar materializes recurrence schedules into a navigable
grid of day cells.

# Building a grid

	meetings := recur.New().
		SetFrequency(recur.ComponentDayOfWeek, recur.OneOf(1, 3, 5)).
		SetTimes(date.MustParseTime("09:00")).
		SetDuration(1, date.UnitHour)

	cal := calendar.Months[string](1, date.Today(), -1, &calendar.Options{
		Fill:         true,
		RepeatCovers: true,
		ListTimes:    true,
	})
	if err := cal.AddEntry(calendar.NewEntry(meetings, "standup")); err != nil {
		// already registered
	}

	for _, cell := range cal.Days {
		for _, ev := range cell.Events {
			// render ev.Span, ev.Payload, ...
		}
	}

# Rebuild pipeline

Every mutation runs a staged rebuild: the filled (week-padded) span,
the cell slice, the current-day flags, the selection flags, and
finally the per-cell event lists. Cells are reconciled by position:
when the date at a position is unchanged the same *Day pointer is
kept, so rendering layers that diff by reference never see spurious
replacements.

# Event identity

Event ids are entryIndex*MaxEventsPerDay + occurrenceIndex, which is
stable across rebuilds as long as registration order is unchanged.
Schedules with more than MaxEventsPerDay start times per day collide;
see the constant's documentation.
*/
package calendar
