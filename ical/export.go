// Package ical renders a calendar's registered schedules as an
// iCalendar document. Schedules whose rules have an RRULE equivalent
// are exported as recurring VEVENTs; the rest are exported with their
// occurrence days enumerated as RDATEs over the calendar's visible
// range.
package ical

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/cyp0633/libdayspan/calendar"
	"github.com/cyp0633/libdayspan/date"
)

const prodID = "-//libdayspan//NONSGML v1.0//EN"

const icalDateTimeLayout = "20060102T150405Z"

// Export builds a VCALENDAR with one VEVENT per registered entry and
// start time. summary renders an entry's payload into the VEVENT
// summary; a nil summary leaves summaries empty. Entries that never
// match within the calendar's range and iteration lookahead are
// skipped: an empty document is a valid result, not an error.
func Export[T comparable](cal *calendar.Calendar[T], summary func(T) string) (*ical.Calendar, error) {
	doc := ical.NewCalendar()
	doc.Props.SetText(ical.PropProductID, prodID)
	doc.Props.SetText(ical.PropVersion, "2.0")

	for _, entry := range cal.Entries {
		s := entry.Schedule
		lookahead := cal.Span.Days() + 366
		first, ok := s.NextDay(cal.Span.Start, true, lookahead).Get()
		if !ok {
			continue
		}

		opt, recurring := RRule(s)
		var rdates []date.Day
		if !recurring {
			rdates = s.NextDays(cal.Filled.Start, cal.Filled.Days(), true, cal.Filled.Days())
		}

		starts := []date.Time{{}}
		if !s.IsFullDay() {
			starts = s.Times
		}
		for _, at := range starts {
			event := ical.NewEvent()
			event.Props.SetText(ical.PropUID, uuid.NewString())
			event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now())
			if summary != nil {
				event.Props.SetText(ical.PropSummary, summary(entry.Payload))
			}

			start := first.WithTime(at)
			event.Props.SetDateTime(ical.PropDateTimeStart, start.Time())
			event.Props.SetDateTime(ical.PropDateTimeEnd, start.Add(s.Duration, s.DurationUnit).Time())

			if recurring {
				event.Props.SetText(ical.PropRecurrenceRule, opt.RRuleString())
			} else if len(rdates) > 0 {
				event.Props.SetText(ical.PropRecurrenceDates, formatDays(rdates, at))
			}
			if len(s.Exclude) > 0 {
				event.Props.SetText(ical.PropExceptionDates, formatExclusions(s.Exclude, at))
			}

			doc.Children = append(doc.Children, event.Component)
		}
	}
	return doc, nil
}

func formatDays(days []date.Day, at date.Time) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = d.WithTime(at).Time().UTC().Format(icalDateTimeLayout)
	}
	return strings.Join(parts, ",")
}

func formatExclusions(exclude map[int]bool, at date.Time) string {
	ids := make([]int, 0, len(exclude))
	for id, excluded := range exclude {
		if excluded {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	parts := make([]string, len(ids))
	for i, id := range ids {
		d := date.NewDay(id/10000, (id/100)%100, id%100)
		parts[i] = d.WithTime(at).Time().UTC().Format(icalDateTimeLayout)
	}
	return strings.Join(parts, ",")
}

// Encode renders the document as ics text.
func Encode(doc *ical.Calendar) (string, error) {
	var sb strings.Builder
	if err := ical.NewEncoder(&sb).Encode(doc); err != nil {
		return "", fmt.Errorf("failed to encode calendar: %w", err)
	}
	return sb.String(), nil
}
