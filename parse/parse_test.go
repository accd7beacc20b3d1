package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyp0633/libdayspan/date"
	"github.com/cyp0633/libdayspan/recur"
)

func TestScheduleFromInput(t *testing.T) {
	s, err := Schedule(ScheduleInput{
		Start:        "2024-01-01",
		End:          "2024-07-01",
		Duration:     90,
		DurationUnit: "minutes",
		Times:        []string{"09:00", "14:30"},
		Exclude:      []string{"2024-01-15"},
		DayOfWeek:    FrequencyInput{OneOf: []int{1, 3, 5}},
	})
	require.NoError(t, err)

	assert.True(t, s.MatchesDay(date.NewDay(2024, 1, 8)), "Monday in range")
	assert.False(t, s.MatchesDay(date.NewDay(2024, 1, 9)), "Tuesday")
	assert.False(t, s.MatchesDay(date.NewDay(2024, 1, 15)), "excluded Monday")
	assert.False(t, s.MatchesDay(date.NewDay(2024, 7, 1)), "end is exclusive")
	assert.False(t, s.MatchesDay(date.NewDay(2023, 12, 29)), "before start")

	require.Len(t, s.Times, 2)
	assert.Equal(t, date.Time{Hour: 9}, s.Times[0])
	assert.Equal(t, 90, s.Duration)
	assert.Equal(t, date.UnitMinute, s.DurationUnit)
}

func TestScheduleValidation(t *testing.T) {
	tests := []struct {
		name  string
		input ScheduleInput
	}{
		{name: "inverted bounds", input: ScheduleInput{Start: "2024-06-01", End: "2024-01-01"}},
		{name: "bad start", input: ScheduleInput{Start: "01/02/2024"}},
		{name: "bad time", input: ScheduleInput{Times: []string{"25:00"}}},
		{name: "bad exclusion", input: ScheduleInput{Exclude: []string{"someday"}}},
		{name: "bad unit", input: ScheduleInput{Duration: 1, DurationUnit: "fortnights"}},
		{name: "negative duration", input: ScheduleInput{Duration: -5, DurationUnit: "days"}},
		{name: "every below one", input: ScheduleInput{Month: FrequencyInput{Every: -1}}},
		{name: "oneOf with every", input: ScheduleInput{Month: FrequencyInput{Every: 2, OneOf: []int{1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Schedule(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestScheduleYAML(t *testing.T) {
	doc := []byte(`
start: 2024-01-01
duration: 90
durationUnit: minutes
times: ["09:00"]
dayOfWeek: [1, 3, 5]
weekspanOfMonth: { every: 2, offset: 1 }
month: 3
`)

	s, err := ScheduleYAML(doc)
	require.NoError(t, err)

	dow := s.Check(recur.ComponentDayOfWeek).Input
	assert.Equal(t, recur.KindOneOf, dow.Kind)
	assert.Equal(t, []int{1, 3, 5}, dow.Values)

	span := s.Check(recur.ComponentWeekspanOfMonth).Input
	assert.Equal(t, recur.KindEvery, span.Kind)
	assert.Equal(t, 2, span.Every)
	assert.Equal(t, 1, span.Offset)

	month := s.Check(recur.ComponentMonth).Input
	assert.Equal(t, recur.KindOneOf, month.Kind)
	assert.Equal(t, []int{3}, month.Values, "scalar becomes a one-element list")

	// every=2 offset=1 selects odd weekspans: March 8 is in weekspan
	// 1 of its month, March 15 in weekspan 2
	assert.True(t, s.MatchesDay(date.NewDay(2024, 3, 8)), "weekspan 1 matches")
	assert.False(t, s.MatchesDay(date.NewDay(2024, 3, 15)), "weekspan 2 does not")
}

func TestScheduleYAMLMalformed(t *testing.T) {
	_, err := ScheduleYAML([]byte("dayOfWeek: {oneOf: [1,"))
	assert.Error(t, err)
}

func TestUnconfiguredComponentsAreAlways(t *testing.T) {
	s, err := Schedule(ScheduleInput{})
	require.NoError(t, err)
	for _, c := range recur.Components() {
		assert.True(t, s.Check(c).IsAlways(), "%s should be unconstrained", c)
	}
	assert.True(t, s.MatchesDay(date.NewDay(2024, 2, 29)))
}
