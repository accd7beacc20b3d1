package recur

import (
	"fmt"

	"github.com/cyp0633/libdayspan/date"
)

// Component identifies one of the twelve calendar components a
// schedule can constrain.
type Component int

const (
	ComponentDayOfWeek Component = iota
	ComponentDayOfMonth
	ComponentDayOfYear
	ComponentMonth
	ComponentWeek
	ComponentWeekOfYear
	ComponentWeekspanOfYear
	ComponentFullWeekOfYear
	ComponentWeekOfMonth
	ComponentWeekspanOfMonth
	ComponentFullWeekOfMonth
	ComponentYear

	numComponents int = iota
)

var componentNames = [...]string{
	ComponentDayOfWeek:       "dayOfWeek",
	ComponentDayOfMonth:      "dayOfMonth",
	ComponentDayOfYear:       "dayOfYear",
	ComponentMonth:           "month",
	ComponentWeek:            "week",
	ComponentWeekOfYear:      "weekOfYear",
	ComponentWeekspanOfYear:  "weekspanOfYear",
	ComponentFullWeekOfYear:  "fullWeekOfYear",
	ComponentWeekOfMonth:     "weekOfMonth",
	ComponentWeekspanOfMonth: "weekspanOfMonth",
	ComponentFullWeekOfMonth: "fullWeekOfMonth",
	ComponentYear:            "year",
}

func (c Component) String() string {
	if c >= 0 && int(c) < len(componentNames) {
		return componentNames[c]
	}
	return fmt.Sprintf("Component(%d)", int(c))
}

// valueOf extracts the component's value from a day.
func (c Component) valueOf(d date.Day) int {
	switch c {
	case ComponentDayOfWeek:
		return d.DayOfWeek()
	case ComponentDayOfMonth:
		return d.DayOfMonth()
	case ComponentDayOfYear:
		return d.DayOfYear()
	case ComponentMonth:
		return d.Month()
	case ComponentWeek:
		return d.Week()
	case ComponentWeekOfYear:
		return d.WeekOfYear()
	case ComponentWeekspanOfYear:
		return d.WeekspanOfYear()
	case ComponentFullWeekOfYear:
		return d.FullWeekOfYear()
	case ComponentWeekOfMonth:
		return d.WeekOfMonth()
	case ComponentWeekspanOfMonth:
		return d.WeekspanOfMonth()
	case ComponentFullWeekOfMonth:
		return d.FullWeekOfMonth()
	case ComponentYear:
		return d.Year()
	default:
		return 0
	}
}

// Components lists every matchable component in evaluation order.
func Components() []Component {
	out := make([]Component, numComponents)
	for i := range out {
		out[i] = Component(i)
	}
	return out
}
