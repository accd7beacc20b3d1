package date

import "time"

// DaysPerWeek is the number of days in a calendar week.
const DaysPerWeek = 7

// Day is a point in time that knows which calendar day it belongs to.
// It wraps a time.Time, so it carries a time of day as well; schedule
// matching only looks at the calendar-day components, while span
// construction uses the full instant. Weeks start on Sunday.
//
// Day is a value type: all arithmetic returns a new Day.
type Day struct {
	t time.Time
}

// FromTime wraps an instant as a Day, truncated to millisecond
// resolution.
func FromTime(t time.Time) Day {
	return Day{t: t.Truncate(time.Millisecond)}
}

// NewDay builds a Day at midnight UTC on the given civil date.
// Month is 1-based.
func NewDay(year, month, day int) Day {
	return Day{t: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current day at midnight in the local time zone.
// It is the call-site default for "today"; anything that needs to be
// deterministic should take an explicit Day instead of calling this.
func Today() Day {
	return FromTime(time.Now()).StartOfDay()
}

// Time returns the underlying instant.
func (d Day) Time() time.Time {
	return d.t
}

// Component accessors.

func (d Day) Year() int { return d.t.Year() }

// Month is 1-based (January = 1).
func (d Day) Month() int { return int(d.t.Month()) }

// DayOfWeek is 0-based with Sunday = 0.
func (d Day) DayOfWeek() int { return int(d.t.Weekday()) }

// DayOfMonth is 1-based.
func (d Day) DayOfMonth() int { return d.t.Day() }

// DayOfYear is 1-based.
func (d Day) DayOfYear() int { return d.t.YearDay() }

// Week is the Sunday-started week of the year, where week 1 is the
// week containing January 1st.
func (d Day) Week() int {
	jan1 := NewDay(d.Year(), 1, 1)
	return (d.DayOfYear()-1+jan1.DayOfWeek())/DaysPerWeek + 1
}

// WeekOfYear is the ISO 8601 week number.
func (d Day) WeekOfYear() int {
	_, week := d.t.ISOWeek()
	return week
}

// WeekspanOfYear is the 0-based count of whole 7-day spans since
// January 1st.
func (d Day) WeekspanOfYear() int {
	return (d.DayOfYear() - 1) / DaysPerWeek
}

// FullWeekOfYear numbers only complete Sunday-started weeks: days
// before the year's first Sunday are week 0, the first full week is
// week 1.
func (d Day) FullWeekOfYear() int {
	jan1 := NewDay(d.Year(), 1, 1)
	return fullWeekOf(d.DayOfYear(), jan1.DayOfWeek())
}

// WeekOfMonth is the Sunday-started week of the month, where week 1
// is the week containing the 1st.
func (d Day) WeekOfMonth() int {
	first := NewDay(d.Year(), d.Month(), 1)
	return (d.DayOfMonth()-1+first.DayOfWeek())/DaysPerWeek + 1
}

// WeekspanOfMonth is the 0-based count of whole 7-day spans since the
// 1st of the month.
func (d Day) WeekspanOfMonth() int {
	return (d.DayOfMonth() - 1) / DaysPerWeek
}

// FullWeekOfMonth numbers only complete Sunday-started weeks within
// the month, analogous to FullWeekOfYear.
func (d Day) FullWeekOfMonth() int {
	first := NewDay(d.Year(), d.Month(), 1)
	return fullWeekOf(d.DayOfMonth(), first.DayOfWeek())
}

// fullWeekOf computes the full-week number for a 1-based ordinal whose
// period (year or month) starts on the given day of week.
func fullWeekOf(ordinal, firstDayOfWeek int) int {
	firstSunday := 1 + (DaysPerWeek-firstDayOfWeek)%DaysPerWeek
	if ordinal < firstSunday {
		return 0
	}
	return (ordinal-firstSunday)/DaysPerWeek + 1
}

// Identifier returns a stable integer identifying the calendar day,
// in YYYYMMDD form. Suitable as a map key.
func (d Day) Identifier() int {
	return d.Year()*10000 + d.Month()*100 + d.DayOfMonth()
}

// Arithmetic. Day-granularity steps use calendar arithmetic so the
// time of day is preserved across DST transitions.

// Next returns the same instant one calendar day later.
func (d Day) Next() Day { return d.Relative(1) }

// Prev returns the same instant one calendar day earlier.
func (d Day) Prev() Day { return d.Relative(-1) }

// Relative returns the same instant n calendar days away.
func (d Day) Relative(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// Add advances by the given amount of a unit.
func (d Day) Add(amount int, unit Unit) Day {
	switch unit {
	case UnitMinute:
		return Day{t: d.t.Add(time.Duration(amount) * time.Minute)}
	case UnitHour:
		return Day{t: d.t.Add(time.Duration(amount) * time.Hour)}
	case UnitDay:
		return d.Relative(amount)
	case UnitWeek:
		return d.Relative(amount * DaysPerWeek)
	case UnitMonth:
		return Day{t: d.t.AddDate(0, amount, 0)}
	case UnitYear:
		return Day{t: d.t.AddDate(amount, 0, 0)}
	default:
		return d
	}
}

// StartOfDay returns midnight on the same calendar day.
func (d Day) StartOfDay() Day {
	y, m, day := d.t.Date()
	return Day{t: time.Date(y, m, day, 0, 0, 0, 0, d.t.Location())}
}

// EndOfDay returns the exclusive end of the day: midnight of the next
// day. All EndOf* accessors are exclusive instants.
func (d Day) EndOfDay() Day {
	return d.StartOfDay().Relative(1)
}

// StartOfWeek returns midnight on the Sunday starting the week.
func (d Day) StartOfWeek() Day {
	return d.StartOfDay().Relative(-d.DayOfWeek())
}

// EndOfWeek returns midnight on the Sunday after this week.
func (d Day) EndOfWeek() Day {
	return d.StartOfWeek().Relative(DaysPerWeek)
}

// StartOfMonth returns midnight on the 1st of the month.
func (d Day) StartOfMonth() Day {
	y, m, _ := d.t.Date()
	return Day{t: time.Date(y, m, 1, 0, 0, 0, 0, d.t.Location())}
}

// EndOfMonth returns midnight on the 1st of the next month.
func (d Day) EndOfMonth() Day {
	return d.StartOfMonth().Add(1, UnitMonth)
}

// StartOfYear returns midnight on January 1st.
func (d Day) StartOfYear() Day {
	return Day{t: time.Date(d.t.Year(), 1, 1, 0, 0, 0, 0, d.t.Location())}
}

// EndOfYear returns midnight on January 1st of the next year.
func (d Day) EndOfYear() Day {
	return d.StartOfYear().Add(1, UnitYear)
}

// Comparison.

func (d Day) Before(other Day) bool { return d.t.Before(other.t) }
func (d Day) After(other Day) bool  { return d.t.After(other.t) }
func (d Day) Equal(other Day) bool  { return d.t.Equal(other.t) }

// SameDay reports whether both values fall on the same calendar day.
func (d Day) SameDay(other Day) bool {
	return d.Identifier() == other.Identifier()
}

// SameWeek reports whether both values fall in the same Sunday-started
// week.
func (d Day) SameWeek(other Day) bool {
	return d.StartOfWeek().Identifier() == other.StartOfWeek().Identifier()
}

// SameMonth reports whether both values fall in the same month of the
// same year.
func (d Day) SameMonth(other Day) bool {
	return d.Year() == other.Year() && d.Month() == other.Month()
}

// SameYear reports whether both values fall in the same year.
func (d Day) SameYear(other Day) bool {
	return d.Year() == other.Year()
}

// SameTime reports whether both values have the same time of day.
func (d Day) SameTime(other Day) bool {
	return d.Clock() == other.Clock()
}

// DaysUntil returns the number of calendar days from this day to
// other, ignoring time of day. Negative when other is earlier.
func (d Day) DaysUntil(other Day) int {
	from := d.StartOfDay().t
	to := other.StartOfDay().t
	hours := to.Sub(from).Hours()
	// round instead of truncate: DST days are 23 or 25 hours long
	if hours >= 0 {
		return int((hours + 12) / 24)
	}
	return -int((-hours + 12) / 24)
}

// Time-of-day composition.

// WithTime returns the same calendar day at the given time of day.
func (d Day) WithTime(t Time) Day {
	y, m, day := d.t.Date()
	return Day{t: time.Date(y, m, day, t.Hour, t.Minute, t.Second,
		t.Millisecond*int(time.Millisecond), d.t.Location())}
}

// Clock returns the time of day.
func (d Day) Clock() Time {
	return Time{
		Hour:        d.t.Hour(),
		Minute:      d.t.Minute(),
		Second:      d.t.Second(),
		Millisecond: d.t.Nanosecond() / int(time.Millisecond),
	}
}

// IsStartOfDay reports whether the instant is exactly midnight.
func (d Day) IsStartOfDay() bool {
	return d.Clock() == Time{}
}

// Format renders the day with the given time layout.
func (d Day) Format(layout string) string {
	return d.t.Format(layout)
}

func (d Day) String() string {
	if d.IsStartOfDay() {
		return d.t.Format("2006-01-02")
	}
	return d.t.Format("2006-01-02 15:04:05.000")
}
