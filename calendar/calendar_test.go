package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyp0633/libdayspan/date"
	"github.com/cyp0633/libdayspan/recur"
)

func monthOfJanuary2024(opts *Options) *Calendar[string] {
	return Months[string](1, date.NewDay(2024, 1, 15), -1, opts)
}

func TestMonthSpan(t *testing.T) {
	cal := monthOfJanuary2024(nil)

	assert.Equal(t, 20240101, cal.Span.Start.Identifier())
	assert.Equal(t, 20240201, cal.Span.End.Identifier())
	assert.Equal(t, 31, len(cal.Days))
	assert.Equal(t, cal.Span, cal.Filled, "no fill configured")
	for _, cell := range cal.Days {
		assert.True(t, cell.InRange)
	}
}

func TestMonthFill(t *testing.T) {
	cal := monthOfJanuary2024(&Options{Fill: true, RepeatCovers: true, ListTimes: true})

	// January 2024 runs Monday to Wednesday; the filled grid runs
	// from Sunday Dec 31 through Saturday Feb 3
	require.Equal(t, 35, len(cal.Days))
	assert.Equal(t, 20231231, cal.Days[0].Identifier())
	assert.Equal(t, 20240203, cal.Days[34].Identifier())

	assert.False(t, cal.Days[0].InRange, "padding before the month")
	assert.True(t, cal.Days[1].InRange, "Jan 1")
	assert.True(t, cal.Days[31].InRange, "Jan 31")
	assert.False(t, cal.Days[32].InRange, "padding after the month")

	assert.Equal(t, 0, cal.Days[0].DayOfWeek(), "grid starts on Sunday")
	assert.Equal(t, 6, cal.Days[34].DayOfWeek(), "grid ends on Saturday")
}

func TestMinimumSize(t *testing.T) {
	cal := Days[string](1, date.NewDay(2024, 1, 15), -1, &Options{
		MinimumSize:  7,
		RepeatCovers: true,
		ListTimes:    true,
	})

	require.Equal(t, 7, len(cal.Days))
	assert.True(t, cal.Days[0].InRange)
	for i, cell := range cal.Days {
		assert.Equal(t, date.NewDay(2024, 1, 15+i).Identifier(), cell.Identifier())
		if i > 0 {
			assert.False(t, cell.InRange, "forced cells are outside the nominal span")
		}
	}
}

func TestRefreshPreservesCellIdentity(t *testing.T) {
	cal := monthOfJanuary2024(&Options{Fill: true, RepeatCovers: true, ListTimes: true})
	today := date.NewDay(2024, 1, 15)
	cal.Refresh(today)

	before := append([]*Day[string](nil), cal.Days...)
	cal.Refresh(today)

	require.Equal(t, len(before), len(cal.Days))
	for i := range before {
		assert.Same(t, before[i], cal.Days[i], "cell %d must be reused", i)
	}
}

func TestMoveRebuildsCells(t *testing.T) {
	cal := Days[string](14, date.NewDay(2024, 1, 1), 0, nil)
	require.Equal(t, 20240101, cal.Days[0].Identifier())

	first := cal.Days[0]
	cal.Move(1)

	require.Equal(t, 14, len(cal.Days))
	assert.NotSame(t, first, cal.Days[0], "date at position 0 changed, cell replaced")
	for i, cell := range cal.Days {
		assert.Equal(t, date.NewDay(2024, 1, 15+i).Identifier(), cell.Identifier())
	}
}

func TestRefreshCurrent(t *testing.T) {
	cal := monthOfJanuary2024(nil)
	cal.Refresh(date.NewDay(2024, 1, 15)) // a Monday

	jan15 := cal.Days[14]
	assert.True(t, jan15.CurrentDay)
	assert.True(t, jan15.CurrentWeek)
	assert.True(t, jan15.CurrentMonth)
	assert.True(t, jan15.CurrentYear)

	jan16 := cal.Days[15]
	assert.False(t, jan16.CurrentDay)
	assert.True(t, jan16.CurrentWeek)

	jan22 := cal.Days[21]
	assert.False(t, jan22.CurrentWeek)
	assert.True(t, jan22.CurrentMonth)
}

func TestSelection(t *testing.T) {
	cal := monthOfJanuary2024(nil)
	cal.Select(date.Between(date.NewDay(2024, 1, 10), date.NewDay(2024, 1, 12)))

	assert.True(t, cal.Days[9].SelectedDay, "Jan 10")
	assert.True(t, cal.Days[10].SelectedDay, "Jan 11")
	assert.False(t, cal.Days[11].SelectedDay, "Jan 12, exclusive end")
	assert.True(t, cal.Days[11].SelectedWeek, "same week as the selection")
	assert.True(t, cal.Days[30].SelectedMonth)

	cal.Unselect()
	for _, cell := range cal.Days {
		assert.False(t, cell.SelectedDay || cell.SelectedWeek || cell.SelectedMonth || cell.SelectedYear)
	}
}

func TestEventsForDayIdsAndOrder(t *testing.T) {
	mondays := recur.New().SetFrequency(recur.ComponentDayOfWeek, recur.OneOf(1))
	timed := recur.New().
		SetFrequency(recur.ComponentDayOfWeek, recur.OneOf(1)).
		SetTimes(date.MustParseTime("09:00"), date.MustParseTime("14:00")).
		SetDuration(1, date.UnitHour)

	cal := monthOfJanuary2024(nil)
	require.NoError(t, cal.AddEntries([]*Entry[string]{
		NewEntry(mondays, "all-day"),
		NewEntry(timed, "meetings"),
	}, false, false))

	jan8 := cal.Days[7] // Monday
	require.Len(t, jan8.Events, 3)

	assert.Equal(t, 0, jan8.Events[0].ID)
	assert.Equal(t, "all-day", jan8.Events[0].Payload)
	assert.True(t, jan8.Events[0].FullDay)
	assert.True(t, jan8.Events[0].Starting)
	assert.True(t, jan8.Events[0].Ending)

	assert.Equal(t, MaxEventsPerDay, jan8.Events[1].ID, "second entry, first time")
	assert.Equal(t, MaxEventsPerDay+1, jan8.Events[2].ID, "second entry, second time")
	assert.Equal(t, "meetings", jan8.Events[1].Payload)
	assert.Equal(t, date.Time{Hour: 9}, jan8.Events[1].Span.Start.Clock())
	assert.Equal(t, date.Time{Hour: 14}, jan8.Events[2].Span.Start.Clock())

	jan9 := cal.Days[8] // Tuesday
	assert.Empty(t, jan9.Events)
}

func TestListTimesCollapse(t *testing.T) {
	timed := recur.New().
		SetFrequency(recur.ComponentDayOfWeek, recur.OneOf(1)).
		SetTimes(date.MustParseTime("09:00"), date.MustParseTime("14:00")).
		SetDuration(1, date.UnitHour)

	cal := monthOfJanuary2024(&Options{RepeatCovers: true, ListTimes: false})
	require.NoError(t, cal.AddEntry(NewEntry(timed, "meetings")))

	jan8 := cal.Days[7]
	require.Len(t, jan8.Events, 1, "timed occurrences collapse into one event")
	ev := jan8.Events[0]
	assert.Equal(t, 0, ev.ID)
	assert.True(t, ev.Span.Start.IsStartOfDay(), "representative span is the full span")
}

func TestRepeatCoversMultiDay(t *testing.T) {
	twoDay := recur.New().
		SetFrequency(recur.ComponentDayOfWeek, recur.OneOf(1)).
		SetDuration(2, date.UnitDay)

	cal := monthOfJanuary2024(nil)
	require.NoError(t, cal.AddEntry(NewEntry(twoDay, "conference")))

	jan8, jan9, jan10 := cal.Days[7], cal.Days[8], cal.Days[9]

	require.Len(t, jan8.Events, 1)
	assert.True(t, jan8.Events[0].Starting)
	assert.False(t, jan8.Events[0].Ending)

	require.Len(t, jan9.Events, 1, "covered by the Monday occurrence")
	assert.False(t, jan9.Events[0].Starting)
	assert.True(t, jan9.Events[0].Ending)
	assert.Equal(t, jan8.Events[0].ID, jan9.Events[0].ID)

	assert.Empty(t, jan10.Events)

	// literal matching only: the covered Tuesday loses its event
	cal.RepeatCovers = false
	cal.RefreshEvents()
	assert.Len(t, cal.Days[7].Events, 1)
	assert.Empty(t, cal.Days[8].Events)
}

func TestEventsOutside(t *testing.T) {
	daily := recur.New()
	opts := &Options{Fill: true, RepeatCovers: true, ListTimes: true}
	cal := monthOfJanuary2024(opts)
	require.NoError(t, cal.AddEntry(NewEntry(daily, "x")))

	assert.Empty(t, cal.Days[0].Events, "padding cell without eventsOutside")

	cal.EventsOutside = true
	cal.RefreshEvents()
	assert.Len(t, cal.Days[0].Events, 1)
}

func TestRegistry(t *testing.T) {
	s1 := recur.New()
	s2 := recur.New()
	e1 := NewEntry(s1, "one")
	e2 := NewEntry(s2, "two")

	cal := monthOfJanuary2024(nil)
	require.NoError(t, cal.AddEntry(e1))
	require.NoError(t, cal.AddEntry(e2))

	assert.Equal(t, 0, cal.FindEntry(e1), "by entry")
	assert.Equal(t, 1, cal.FindEntry(s2), "by schedule")
	assert.Equal(t, 1, cal.FindEntry("two"), "by payload")
	assert.Equal(t, -1, cal.FindEntry("missing"))

	assert.ErrorIs(t, cal.AddEntry(e1), ErrDuplicateEntry)
	assert.ErrorIs(t, cal.AddEntry(NewEntry(s1, "other")), ErrDuplicateEntry, "same schedule counts as duplicate")
	require.NoError(t, cal.AddEntries([]*Entry[string]{e1}, true, false), "explicitly allowed")
	cal.Entries = cal.Entries[:2]

	assert.True(t, cal.RemoveEntry("one"))
	assert.Equal(t, 1, len(cal.Entries))
	assert.False(t, cal.RemoveEntry("one"))
}

func TestAddEntriesDelayRefresh(t *testing.T) {
	daily := recur.New()
	cal := monthOfJanuary2024(nil)

	require.NoError(t, cal.AddEntries([]*Entry[string]{NewEntry(daily, "x")}, false, true))
	assert.Empty(t, cal.Days[0].Events, "refresh deferred")

	cal.RefreshEvents()
	assert.Len(t, cal.Days[0].Events, 1)
}

func TestMoveMonths(t *testing.T) {
	cal := monthOfJanuary2024(nil)
	cal.Next()

	assert.Equal(t, 20240201, cal.Span.Start.Identifier())
	assert.Equal(t, 20240301, cal.Span.End.Identifier())
	assert.Equal(t, 29, len(cal.Days), "February 2024 is a leap month")

	cal.Prev()
	assert.Equal(t, 20240101, cal.Span.Start.Identifier())
	assert.Equal(t, 31, len(cal.Days))
}

func TestSplit(t *testing.T) {
	daily := recur.New()
	cal := Months[string](3, date.NewDay(2024, 1, 15), 0, nil)
	require.NoError(t, cal.AddEntry(NewEntry(daily, "x")))
	require.Equal(t, 20240101, cal.Span.Start.Identifier())

	parts := cal.Split(1)
	require.Len(t, parts, 3)
	assert.Equal(t, 20240101, parts[0].Span.Start.Identifier())
	assert.Equal(t, 20240201, parts[1].Span.Start.Identifier())
	assert.Equal(t, 20240301, parts[2].Span.Start.Identifier())
	assert.Equal(t, 20240401, parts[2].Span.End.Identifier())

	for _, part := range parts {
		assert.Equal(t, 1, part.Size)
		assert.Equal(t, date.UnitMonth, part.Type)
		require.Len(t, part.Entries, 1, "entries are inherited")
		assert.Len(t, part.Days[0].Events, 1)
	}
}

func TestFactoryRanges(t *testing.T) {
	around := date.NewDay(2024, 6, 15) // a Saturday

	days := Days[string](3, around, -1, nil)
	assert.Equal(t, 20240614, days.Span.Start.Identifier(), "focus 0.5 of 3 days is 1 back")
	assert.Equal(t, 20240617, days.Span.End.Identifier())

	weeks := Weeks[string](2, around, -1, nil)
	assert.Equal(t, 20240602, weeks.Span.Start.Identifier(), "one week before the week of the 15th")
	assert.Equal(t, 20240616, weeks.Span.End.Identifier())

	years := Years[string](1, around, -1, nil)
	assert.Equal(t, 20240101, years.Span.Start.Identifier())
	assert.Equal(t, 20250101, years.Span.End.Identifier())
	assert.Equal(t, 366, len(years.Days))
}
