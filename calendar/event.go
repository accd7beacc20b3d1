package calendar

import (
	"github.com/cyp0633/libdayspan/date"
	"github.com/cyp0633/libdayspan/recur"
)

// MaxEventsPerDay is the number of event id slots reserved per
// registered schedule on a single day. Event ids are computed as
//
//	entryIndex * MaxEventsPerDay + occurrenceIndex
//
// so a schedule with more start times per day than this constant
// produces colliding ids. That is a documented limit of the id
// scheme, kept because consumers rely on the exact formula.
const MaxEventsPerDay = 24

// Event is one occurrence of a registered schedule materialized onto
// one grid cell.
type Event[T comparable] struct {
	// ID is deterministic across rebuilds: it depends only on the
	// entry's registration position and the occurrence index within
	// the day.
	ID int

	// Payload is the value registered alongside the schedule. The
	// calendar never inspects it.
	Payload T

	// Schedule is the recurrence rule that generated the occurrence.
	Schedule *recur.Schedule

	// Span is the concrete time range of the occurrence.
	Span date.DaySpan

	// FullDay is set for occurrences of schedules with no start
	// times.
	FullDay bool

	// Starting and Ending report whether the occurrence starts or
	// ends on the cell the event is attached to. Both are set for
	// single-day occurrences; multi-day occurrences set only one (or
	// neither, in the middle).
	Starting bool
	Ending   bool
}

func newEvent[T comparable](id int, entry *Entry[T], span date.DaySpan, cell date.Day) Event[T] {
	return Event[T]{
		ID:       id,
		Payload:  entry.Payload,
		Schedule: entry.Schedule,
		Span:     span,
		FullDay:  entry.Schedule.IsFullDay(),
		Starting: span.Start.SameDay(cell),
		Ending:   span.LastDay().SameDay(cell),
	}
}
