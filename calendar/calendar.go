package calendar

import (
	"errors"

	"github.com/samber/mo"

	"github.com/cyp0633/libdayspan/date"
	"github.com/cyp0633/libdayspan/recur"
)

// ErrDuplicateEntry is returned when a schedule entry that is already
// registered is added again without allowDuplicates.
var ErrDuplicateEntry = errors.New("calendar: entry already registered")

// DefaultFocus places the reference day of a factory-built calendar
// near the middle of its range.
const DefaultFocus = 0.5

// Entry is one (schedule, payload) registration. The payload is
// opaque to the calendar and is copied onto every event the schedule
// produces.
type Entry[T comparable] struct {
	Schedule *recur.Schedule
	Payload  T
}

// NewEntry pairs a schedule with its payload.
func NewEntry[T comparable](s *recur.Schedule, payload T) *Entry[T] {
	return &Entry[T]{Schedule: s, Payload: payload}
}

// MoveFunc steps a range boundary by a number of jumps. Start and end
// carry independent step functions so ranges like month views can
// keep both boundaries on month edges.
type MoveFunc func(d date.Day, jump int) date.Day

// Options holds the calendar's behavior flags.
type Options struct {
	// Fill pads the visible range to whole weeks.
	Fill bool
	// MinimumSize forces at least this many cells even when the
	// filled range is shorter.
	MinimumSize int
	// RepeatCovers materializes multi-day occurrences onto every cell
	// they cover, not just their start day.
	RepeatCovers bool
	// ListTimes emits one event per start time; when false, a
	// schedule's occurrences on a day collapse into one full-span
	// event.
	ListTimes bool
	// EventsOutside materializes events on padding cells outside the
	// nominal range as well.
	EventsOutside bool
}

// DefaultOptions is the factory default: multi-day aware, one event
// per start time, no fill.
var DefaultOptions = Options{
	RepeatCovers: true,
	ListTimes:    true,
}

// Calendar is a navigable grid of day cells over a date range, with
// any number of registered schedules materialized onto the cells.
//
// Every mutation (Move, Select, entry changes, option changes) runs
// the staged rebuild pipeline: filled span, cells, current flags,
// selection flags, events. Stages only depend on earlier stages, and
// re-running the pipeline without an intervening mutation is a no-op
// by value and preserves every cell pointer.
type Calendar[T comparable] struct {
	// Span is the nominal range [Start, End), both at midnight.
	Span date.DaySpan
	// Filled is the padded range actually covered by cells; equal to
	// Span unless Fill is set.
	Filled date.DaySpan

	// Size is the range length counted in Type units.
	Size int
	// Type is the navigation granularity.
	Type date.Unit

	// MoveStart and MoveEnd step the two range boundaries.
	MoveStart MoveFunc
	MoveEnd   MoveFunc

	Fill          bool
	MinimumSize   int
	RepeatCovers  bool
	ListTimes     bool
	EventsOutside bool

	// Selection is the currently selected span, if any.
	Selection mo.Option[date.DaySpan]

	// Days holds the grid cells in date order, covering Filled.
	Days []*Day[T]

	// Entries holds the registered schedules in registration order.
	// The order is significant: it is the tie-break for event ids and
	// for display order within a cell.
	Entries []*Entry[T]
}

// New builds a calendar over [start, end) and runs the initial
// rebuild with "today" as the current-day reference. A nil opts means
// DefaultOptions.
func New[T comparable](start, end date.Day, typ date.Unit, size int, moveStart, moveEnd MoveFunc, opts *Options) *Calendar[T] {
	if opts == nil {
		o := DefaultOptions
		opts = &o
	}
	c := &Calendar[T]{
		Span:          date.Between(start.StartOfDay(), end.StartOfDay()),
		Size:          size,
		Type:          typ,
		MoveStart:     moveStart,
		MoveEnd:       moveEnd,
		Fill:          opts.Fill,
		MinimumSize:   opts.MinimumSize,
		RepeatCovers:  opts.RepeatCovers,
		ListTimes:     opts.ListTimes,
		EventsOutside: opts.EventsOutside,
	}
	c.Refresh(date.Today())
	return c
}

// Refresh runs the whole rebuild pipeline. The reference day is used
// for the cells' Current* flags; pass date.Today() unless you need a
// deterministic reference.
func (c *Calendar[T]) Refresh(today date.Day) *Calendar[T] {
	c.ResetDays()
	c.RefreshCurrent(today)
	c.RefreshSelection()
	c.RefreshEvents()
	return c
}

// ResetFilled recomputes the padded span: the nominal span extended
// to whole weeks when Fill is set.
func (c *Calendar[T]) ResetFilled() {
	if c.Fill {
		c.Filled = date.Between(
			c.Span.Start.StartOfWeek(),
			c.Span.LastDay().EndOfWeek(),
		)
	} else {
		c.Filled = c.Span
	}
}

// ResetDays rebuilds the cell slice to cover the filled span,
// reconciling positionally: a cell is kept when its date already
// matches the target date for its position, and replaced otherwise.
// Same position and same date means the same cell pointer survives.
func (c *Calendar[T]) ResetDays() {
	c.ResetFilled()

	total := c.Filled.Days()
	if total < c.MinimumSize {
		total = c.MinimumSize
	}
	if len(c.Days) > total {
		c.Days = c.Days[:total]
	}
	for len(c.Days) < total {
		c.Days = append(c.Days, nil)
	}

	current := c.Filled.Start
	for i := 0; i < total; i++ {
		cell := c.Days[i]
		if cell == nil || !cell.SameDay(current) {
			cell = newDay[T](current)
			c.Days[i] = cell
		}
		cell.InRange = c.Span.Contains(cell.Day)
		current = current.Next()
	}
}

// RefreshCurrent stamps every cell's Current* flags relative to the
// given reference day.
func (c *Calendar[T]) RefreshCurrent(today date.Day) {
	for _, cell := range c.Days {
		cell.updateCurrent(today)
	}
}

// RefreshSelection stamps every cell's Selected* flags relative to
// the selection span, or clears them when nothing is selected.
func (c *Calendar[T]) RefreshSelection() {
	if span, ok := c.Selection.Get(); ok {
		for _, cell := range c.Days {
			cell.updateSelected(span)
		}
		return
	}
	for _, cell := range c.Days {
		cell.clearSelected()
	}
}

// RefreshEvents rebuilds every cell's event list. Padding cells
// outside the nominal span stay empty unless EventsOutside is set.
func (c *Calendar[T]) RefreshEvents() {
	for _, cell := range c.Days {
		if cell.InRange || c.EventsOutside {
			cell.Events = c.EventsForDay(cell.Day, c.ListTimes, c.RepeatCovers)
		} else {
			cell.Events = nil
		}
	}
}

// EventsForDay materializes the day's events across all registered
// entries, in registration order. covers selects multi-day-aware
// lookup (occurrences whose span reaches the day) over literal
// matching (occurrences starting on the day). listTimes=false
// collapses a schedule's occurrences into one representative
// full-span event.
func (c *Calendar[T]) EventsForDay(day date.Day, listTimes, covers bool) []Event[T] {
	var events []Event[T]
	for i, entry := range c.Entries {
		var spans []date.DaySpan
		if covers {
			spans = entry.Schedule.GetSpansOver(day)
		} else {
			spans = entry.Schedule.GetSpansOn(day, true)
		}
		if len(spans) == 0 {
			continue
		}
		if listTimes {
			for k, span := range spans {
				events = append(events, newEvent(i*MaxEventsPerDay+k, entry, span, day))
			}
		} else {
			span := entry.Schedule.GetFullSpan(spans[0].Start)
			events = append(events, newEvent(i*MaxEventsPerDay, entry, span, day))
		}
	}
	return events
}

// Move shifts the range by jump steps through the per-boundary step
// functions, then rebuilds.
func (c *Calendar[T]) Move(jump int) *Calendar[T] {
	c.Span = date.Between(
		c.MoveStart(c.Span.Start, jump),
		c.MoveEnd(c.Span.End, jump),
	)
	return c.Refresh(date.Today())
}

// Next moves the range forward one step.
func (c *Calendar[T]) Next() *Calendar[T] {
	return c.Move(1)
}

// Prev moves the range backward one step.
func (c *Calendar[T]) Prev() *Calendar[T] {
	return c.Move(-1)
}

// Select sets the selection span and restamps the cells.
func (c *Calendar[T]) Select(span date.DaySpan) *Calendar[T] {
	c.Selection = mo.Some(span)
	c.RefreshSelection()
	return c
}

// Unselect clears the selection and restamps the cells.
func (c *Calendar[T]) Unselect() *Calendar[T] {
	c.Selection = mo.None[date.DaySpan]()
	c.RefreshSelection()
	return c
}

// FindEntry locates a registration by the entry pointer itself, its
// schedule, or its payload, whichever matches first in registration
// order. It returns -1 when nothing matches.
func (c *Calendar[T]) FindEntry(query any) int {
	for i, entry := range c.Entries {
		if q, ok := query.(*Entry[T]); ok && q == entry {
			return i
		}
		if q, ok := query.(*recur.Schedule); ok && q == entry.Schedule {
			return i
		}
		if q, ok := query.(T); ok && q == entry.Payload {
			return i
		}
	}
	return -1
}

// AddEntry registers one entry and rebuilds events. Registering the
// same entry again, or another entry for an already registered
// schedule, fails with ErrDuplicateEntry.
func (c *Calendar[T]) AddEntry(entry *Entry[T]) error {
	return c.AddEntries([]*Entry[T]{entry}, false, false)
}

// AddEntries registers several entries at once. delayRefresh skips
// the event rebuild so batches pay for it once; callers must then
// call RefreshEvents themselves.
func (c *Calendar[T]) AddEntries(entries []*Entry[T], allowDuplicates, delayRefresh bool) error {
	for _, entry := range entries {
		if !allowDuplicates && (c.FindEntry(entry) >= 0 || c.FindEntry(entry.Schedule) >= 0) {
			return ErrDuplicateEntry
		}
		c.Entries = append(c.Entries, entry)
	}
	if !delayRefresh {
		c.RefreshEvents()
	}
	return nil
}

// RemoveEntry unregisters the first entry FindEntry locates for the
// query and rebuilds events. It reports whether anything was removed.
func (c *Calendar[T]) RemoveEntry(query any) bool {
	i := c.FindEntry(query)
	if i < 0 {
		return false
	}
	c.Entries = append(c.Entries[:i], c.Entries[i+1:]...)
	c.RefreshEvents()
	return true
}

// Split partitions the calendar into independent sub-calendars of by
// units each (the last one possibly shorter). Each part inherits the
// options and the registered entries.
func (c *Calendar[T]) Split(by int) []*Calendar[T] {
	if by < 1 {
		by = 1
	}
	opts := c.options()
	var parts []*Calendar[T]
	start := c.Span.Start
	for remaining := c.Size; remaining > 0; remaining -= by {
		n := by
		if n > remaining {
			n = remaining
		}
		end := start.Add(n, c.Type)
		part := New[T](start, end, c.Type, n, c.MoveStart, c.MoveEnd, &opts)
		part.Entries = append([]*Entry[T](nil), c.Entries...)
		part.RefreshEvents()
		parts = append(parts, part)
		start = end
	}
	return parts
}

func (c *Calendar[T]) options() Options {
	return Options{
		Fill:          c.Fill,
		MinimumSize:   c.MinimumSize,
		RepeatCovers:  c.RepeatCovers,
		ListTimes:     c.ListTimes,
		EventsOutside: c.EventsOutside,
	}
}
