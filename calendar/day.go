package calendar

import "github.com/cyp0633/libdayspan/date"

// Day is one grid cell. Cells are reconciled positionally during
// rebuilds: as long as the date at a position does not change, the
// same *Day pointer is kept, so observers that diff by reference see
// no spurious replacements.
type Day[T comparable] struct {
	// Day is the date the cell represents.
	date.Day

	// Current* flags are relative to the reference day passed to
	// RefreshCurrent.
	CurrentDay   bool
	CurrentWeek  bool
	CurrentMonth bool
	CurrentYear  bool

	// Selected* flags are relative to the calendar's selection span,
	// all false when nothing is selected.
	SelectedDay   bool
	SelectedWeek  bool
	SelectedMonth bool
	SelectedYear  bool

	// InRange is set for cells inside the calendar's nominal span, as
	// opposed to cells only present because of week fill padding or a
	// minimum grid size.
	InRange bool

	// Events is the cell's materialized occurrence list, in schedule
	// registration order.
	Events []Event[T]
}

func newDay[T comparable](d date.Day) *Day[T] {
	return &Day[T]{Day: d.StartOfDay()}
}

func (d *Day[T]) updateCurrent(today date.Day) {
	d.CurrentDay = d.SameDay(today)
	d.CurrentWeek = d.SameWeek(today)
	d.CurrentMonth = d.SameMonth(today)
	d.CurrentYear = d.SameYear(today)
}

func (d *Day[T]) updateSelected(span date.DaySpan) {
	d.SelectedDay = span.MatchesDay(d.Day)
	d.SelectedWeek = span.MatchesWeek(d.Day)
	d.SelectedMonth = span.MatchesMonth(d.Day)
	d.SelectedYear = span.MatchesYear(d.Day)
}

func (d *Day[T]) clearSelected() {
	d.SelectedDay = false
	d.SelectedWeek = false
	d.SelectedMonth = false
	d.SelectedYear = false
}
