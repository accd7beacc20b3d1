/*
Package date provides the date and time-of-day values the recurrence
engine and calendar grid are built on.

# Day

Day wraps a time.Time and exposes the calendar components schedules
match against (day of week, week of month, weekspan of year, ...) plus
day-granularity arithmetic. Weeks start on Sunday and day-of-week is
0-based, so Sunday is 0 and Saturday is 6. Month and day-of-month are
1-based.

Three different week-of-period numberings are provided, matching what
calendar UIs tend to need:

  - Week / WeekOfMonth: week 1 is the (possibly partial) week
    containing the first day of the period.
  - WeekspanOfYear / WeekspanOfMonth: 0-based count of whole 7-day
    spans since the first day of the period, ignoring day of week.
  - FullWeekOfYear / FullWeekOfMonth: counts only complete
    Sunday-started weeks; days before the period's first Sunday are
    week 0.

WeekOfYear is the ISO 8601 week number.

# DaySpan

DaySpan is a half-open [Start, End) range used for occurrence spans
and calendar ranges. The Matches* predicates test overlap at day,
week, month and year granularity.

# Time

Time is a clock value with millisecond resolution, parseable from
"HH:MM" style strings.
*/
package date
