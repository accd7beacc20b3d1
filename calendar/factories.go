package calendar

import "github.com/cyp0633/libdayspan/date"

// The factory constructors compute a [start, end) range around a
// reference day. focus positions the reference day within the range:
// 0 puts it at the start, 1 at the end; pass a negative value for
// DefaultFocus. All of them are thin wrappers over New.

// Days builds a calendar of size consecutive days around the
// reference day.
func Days[T comparable](size int, around date.Day, focus float64, opts *Options) *Calendar[T] {
	start := around.StartOfDay().Relative(-focusOffset(size, focus))
	end := start.Relative(size)
	mover := unitMover(date.UnitDay, size)
	return New[T](start, end, date.UnitDay, size, mover, mover, opts)
}

// Weeks builds a calendar of size whole weeks around the reference
// day.
func Weeks[T comparable](size int, around date.Day, focus float64, opts *Options) *Calendar[T] {
	start := around.StartOfWeek().Add(-focusOffset(size, focus), date.UnitWeek)
	end := start.Add(size, date.UnitWeek)
	mover := unitMover(date.UnitWeek, size)
	return New[T](start, end, date.UnitWeek, size, mover, mover, opts)
}

// Months builds a calendar of size whole months around the reference
// day. The start boundary stays on a first-of-month and the end
// boundary on the first of the month after the range, so both move
// functions keep their boundary on a month edge independently.
func Months[T comparable](size int, around date.Day, focus float64, opts *Options) *Calendar[T] {
	start := around.StartOfMonth().Add(-focusOffset(size, focus), date.UnitMonth)
	end := start.Add(size, date.UnitMonth)
	mover := unitMover(date.UnitMonth, size)
	return New[T](start, end, date.UnitMonth, size, mover, mover, opts)
}

// Years builds a calendar of size whole years around the reference
// day.
func Years[T comparable](size int, around date.Day, focus float64, opts *Options) *Calendar[T] {
	start := around.StartOfYear().Add(-focusOffset(size, focus), date.UnitYear)
	end := start.Add(size, date.UnitYear)
	mover := unitMover(date.UnitYear, size)
	return New[T](start, end, date.UnitYear, size, mover, mover, opts)
}

func focusOffset(size int, focus float64) int {
	if focus < 0 {
		focus = DefaultFocus
	}
	return int(float64(size) * focus)
}

func unitMover(unit date.Unit, size int) MoveFunc {
	return func(d date.Day, jump int) date.Day {
		return d.Add(jump*size, unit)
	}
}
