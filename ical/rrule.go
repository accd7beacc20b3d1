package ical

import (
	"github.com/teambition/rrule-go"

	"github.com/cyp0633/libdayspan/recur"
)

var rruleWeekdays = [...]rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// RRule maps a schedule onto an RRULE when its frequency rules are
// expressible in iCalendar terms: an unconstrained schedule (DAILY),
// day-of-week lists (WEEKLY + BYDAY), day-of-month lists (MONTHLY +
// BYMONTHDAY) and month lists, optionally with day-of-month lists
// (YEARLY + BYMONTH). Interval rules and the weekspan/full-week
// components have no RRULE counterpart; ok is false for those and
// callers fall back to enumerating RDATEs.
func RRule(s *recur.Schedule) (opt rrule.ROption, ok bool) {
	configured := map[recur.Component]recur.Frequency{}
	for _, c := range recur.Components() {
		input := s.Check(c).Input
		if !input.IsAlways() {
			configured[c] = input
		}
	}

	for c, f := range configured {
		if f.Kind != recur.KindOneOf {
			return opt, false
		}
		switch c {
		case recur.ComponentDayOfWeek, recur.ComponentDayOfMonth, recur.ComponentMonth:
		default:
			return opt, false
		}
	}

	dow, hasDow := configured[recur.ComponentDayOfWeek]
	dom, hasDom := configured[recur.ComponentDayOfMonth]
	month, hasMonth := configured[recur.ComponentMonth]

	switch {
	case hasMonth:
		opt.Freq = rrule.YEARLY
		opt.Bymonth = month.Values
		if hasDom {
			opt.Bymonthday = dom.Values
		}
		if hasDow {
			return opt, false
		}
	case hasDom:
		if hasDow {
			return opt, false
		}
		opt.Freq = rrule.MONTHLY
		opt.Bymonthday = dom.Values
	case hasDow:
		opt.Freq = rrule.WEEKLY
		for _, v := range dow.Values {
			if v < 0 || v >= len(rruleWeekdays) {
				return opt, false
			}
			opt.Byweekday = append(opt.Byweekday, rruleWeekdays[v])
		}
	default:
		opt.Freq = rrule.DAILY
	}

	if end, has := s.End.Get(); has {
		opt.Until = end.StartOfDay().Time().UTC()
	}
	return opt, true
}
