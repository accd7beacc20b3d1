package date

import "fmt"

// Millisecond counts used when converting schedule durations into a
// day-count bound. Month and year use upper bounds (31 and 366 days)
// so that any bound derived from them is never too small.
const (
	MillisPerSecond int64 = 1000
	MillisPerMinute int64 = 60 * MillisPerSecond
	MillisPerHour   int64 = 60 * MillisPerMinute
	MillisPerDay    int64 = 24 * MillisPerHour
	MillisPerWeek   int64 = 7 * MillisPerDay
)

// Unit is a calendar or clock unit used for durations and navigation.
type Unit int

const (
	UnitMinute Unit = iota
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

var unitNames = map[Unit]string{
	UnitMinute: "minute",
	UnitHour:   "hour",
	UnitDay:    "day",
	UnitWeek:   "week",
	UnitMonth:  "month",
	UnitYear:   "year",
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Millis returns the unit length in milliseconds. Month and year are
// not fixed-length; the values returned for them are upper bounds,
// which is what duration-to-day-count derivations require.
func (u Unit) Millis() int64 {
	switch u {
	case UnitMinute:
		return MillisPerMinute
	case UnitHour:
		return MillisPerHour
	case UnitDay:
		return MillisPerDay
	case UnitWeek:
		return MillisPerWeek
	case UnitMonth:
		return 31 * MillisPerDay
	case UnitYear:
		return 366 * MillisPerDay
	default:
		return 0
	}
}

// ParseUnit parses a unit name. Both singular and plural forms are
// accepted ("minute", "minutes", ...).
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "minute", "minutes":
		return UnitMinute, nil
	case "hour", "hours":
		return UnitHour, nil
	case "day", "days", "":
		return UnitDay, nil
	case "week", "weeks":
		return UnitWeek, nil
	case "month", "months":
		return UnitMonth, nil
	case "year", "years":
		return UnitYear, nil
	default:
		return UnitDay, fmt.Errorf("unknown unit %q", s)
	}
}
