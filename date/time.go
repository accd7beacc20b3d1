package date

import (
	"fmt"
	"strconv"
	"strings"
)

// Time is a time of day with millisecond resolution. The zero value
// is midnight.
type Time struct {
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// ParseTime parses a time of day in one of the forms "HH", "HH:MM",
// "HH:MM:SS" or "HH:MM:SS.mmm".
func ParseTime(s string) (Time, error) {
	var t Time
	main := s
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		main = s[:dot]
		ms, err := strconv.Atoi(s[dot+1:])
		if err != nil || ms < 0 || ms > 999 {
			return t, fmt.Errorf("invalid milliseconds in time %q", s)
		}
		t.Millisecond = ms
	}

	parts := strings.Split(main, ":")
	if len(parts) == 0 || len(parts) > 3 {
		return t, fmt.Errorf("invalid time %q", s)
	}
	fields := []*int{&t.Hour, &t.Minute, &t.Second}
	limits := []int{23, 59, 59}
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 || v > limits[i] {
			return t, fmt.Errorf("invalid time %q", s)
		}
		*fields[i] = v
	}
	return t, nil
}

// MustParseTime is ParseTime for compile-time-known inputs; it panics
// on malformed input.
func MustParseTime(s string) Time {
	t, err := ParseTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Millis returns the time of day as milliseconds since midnight.
func (t Time) Millis() int64 {
	return int64(t.Hour)*MillisPerHour +
		int64(t.Minute)*MillisPerMinute +
		int64(t.Second)*MillisPerSecond +
		int64(t.Millisecond)
}

func (t Time) Equal(other Time) bool {
	return t == other
}

func (t Time) Before(other Time) bool {
	return t.Millis() < other.Millis()
}

// Format renders the shortest form that round-trips through
// ParseTime: seconds and milliseconds are omitted when zero.
func (t Time) Format() string {
	switch {
	case t.Millisecond != 0:
		return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour, t.Minute, t.Second, t.Millisecond)
	case t.Second != 0:
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	default:
		return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
	}
}

func (t Time) String() string {
	return t.Format()
}
