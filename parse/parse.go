// Package parse normalizes declarative schedule definitions into
// recurrence schedules. It is the construction-time boundary: all
// validation errors (inverted bounds, every < 1, malformed times)
// surface here, so the engine's own queries stay total.
//
// ScheduleInput carries yaml tags and FrequencyInput implements
// yaml.Unmarshaler, so definitions can be read straight from YAML
// documents:
//
//	duration: 90
//	durationUnit: minutes
//	times: ["09:00", "14:30"]
//	dayOfWeek: [1, 3, 5]
//	weekOfMonth: { every: 2 }
package parse

import (
	"fmt"
	"time"

	"github.com/samber/mo"
	"gopkg.in/yaml.v3"

	"github.com/cyp0633/libdayspan/date"
	"github.com/cyp0633/libdayspan/recur"
)

// DayLayout is the date format accepted for bounds and exclusions.
const DayLayout = "2006-01-02"

// FrequencyInput is the declarative form of one component rule. In
// YAML it may be a scalar (one allowed value), a sequence (a list of
// allowed values), or a mapping with "every" and optional "offset".
// The zero value means no constraint.
type FrequencyInput struct {
	Every  int   `yaml:"every" json:"every,omitempty"`
	Offset int   `yaml:"offset" json:"offset,omitempty"`
	OneOf  []int `yaml:"oneOf" json:"oneOf,omitempty"`
}

// UnmarshalYAML accepts the three declarative shapes.
func (f *FrequencyInput) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var v int
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("invalid frequency value: %w", err)
		}
		f.OneOf = []int{v}
		return nil
	case yaml.SequenceNode:
		if err := value.Decode(&f.OneOf); err != nil {
			return fmt.Errorf("invalid frequency list: %w", err)
		}
		return nil
	case yaml.MappingNode:
		type plain FrequencyInput
		if err := value.Decode((*plain)(f)); err != nil {
			return fmt.Errorf("invalid frequency mapping: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("invalid frequency node: %v", value.Kind)
	}
}

// Frequency converts the input to its engine form. Inputs with both
// a list and an interval are rejected; an empty input means Always.
func (f FrequencyInput) Frequency() (recur.Frequency, error) {
	switch {
	case len(f.OneOf) > 0 && f.Every != 0:
		return recur.Always(), fmt.Errorf("frequency cannot combine oneOf and every")
	case len(f.OneOf) > 0:
		return recur.OneOf(f.OneOf...), nil
	case f.Every != 0 || f.Offset != 0:
		freq := recur.EveryNth(f.Every, f.Offset)
		if err := freq.Validate(); err != nil {
			return recur.Always(), err
		}
		return freq, nil
	default:
		return recur.Always(), nil
	}
}

// ScheduleInput is the declarative form of a whole schedule.
type ScheduleInput struct {
	Start string `yaml:"start" json:"start,omitempty"`
	End   string `yaml:"end" json:"end,omitempty"`

	Duration     int    `yaml:"duration" json:"duration,omitempty"`
	DurationUnit string `yaml:"durationUnit" json:"durationUnit,omitempty"`

	Times   []string `yaml:"times" json:"times,omitempty"`
	Exclude []string `yaml:"exclude" json:"exclude,omitempty"`

	DayOfWeek       FrequencyInput `yaml:"dayOfWeek" json:"dayOfWeek,omitempty"`
	DayOfMonth      FrequencyInput `yaml:"dayOfMonth" json:"dayOfMonth,omitempty"`
	DayOfYear       FrequencyInput `yaml:"dayOfYear" json:"dayOfYear,omitempty"`
	Month           FrequencyInput `yaml:"month" json:"month,omitempty"`
	Week            FrequencyInput `yaml:"week" json:"week,omitempty"`
	WeekOfYear      FrequencyInput `yaml:"weekOfYear" json:"weekOfYear,omitempty"`
	WeekspanOfYear  FrequencyInput `yaml:"weekspanOfYear" json:"weekspanOfYear,omitempty"`
	FullWeekOfYear  FrequencyInput `yaml:"fullWeekOfYear" json:"fullWeekOfYear,omitempty"`
	WeekOfMonth     FrequencyInput `yaml:"weekOfMonth" json:"weekOfMonth,omitempty"`
	WeekspanOfMonth FrequencyInput `yaml:"weekspanOfMonth" json:"weekspanOfMonth,omitempty"`
	FullWeekOfMonth FrequencyInput `yaml:"fullWeekOfMonth" json:"fullWeekOfMonth,omitempty"`
	Year            FrequencyInput `yaml:"year" json:"year,omitempty"`
}

func (in ScheduleInput) frequencies() map[recur.Component]FrequencyInput {
	return map[recur.Component]FrequencyInput{
		recur.ComponentDayOfWeek:       in.DayOfWeek,
		recur.ComponentDayOfMonth:      in.DayOfMonth,
		recur.ComponentDayOfYear:       in.DayOfYear,
		recur.ComponentMonth:           in.Month,
		recur.ComponentWeek:            in.Week,
		recur.ComponentWeekOfYear:      in.WeekOfYear,
		recur.ComponentWeekspanOfYear:  in.WeekspanOfYear,
		recur.ComponentFullWeekOfYear:  in.FullWeekOfYear,
		recur.ComponentWeekOfMonth:     in.WeekOfMonth,
		recur.ComponentWeekspanOfMonth: in.WeekspanOfMonth,
		recur.ComponentFullWeekOfMonth: in.FullWeekOfMonth,
		recur.ComponentYear:            in.Year,
	}
}

// Schedule builds and validates a schedule from its declarative form.
func Schedule(in ScheduleInput) (*recur.Schedule, error) {
	s := recur.New()

	start, err := parseBound(in.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start: %w", err)
	}
	end, err := parseBound(in.End)
	if err != nil {
		return nil, fmt.Errorf("invalid end: %w", err)
	}
	s.SetBounds(start, end)

	if in.Duration != 0 || in.DurationUnit != "" {
		unit, err := date.ParseUnit(in.DurationUnit)
		if err != nil {
			return nil, fmt.Errorf("invalid durationUnit: %w", err)
		}
		duration := in.Duration
		if duration == 0 {
			duration = 1
		}
		if duration < 0 {
			return nil, fmt.Errorf("duration must be positive, got %d", duration)
		}
		s.SetDuration(duration, unit)
	}

	if len(in.Times) > 0 {
		times := make([]date.Time, len(in.Times))
		for i, raw := range in.Times {
			t, err := date.ParseTime(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid time %q: %w", raw, err)
			}
			times[i] = t
		}
		s.SetTimes(times...)
	}

	for _, raw := range in.Exclude {
		d, err := parseDay(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid exclusion: %w", err)
		}
		s.ExcludeDay(d)
	}

	for component, input := range in.frequencies() {
		freq, err := input.Frequency()
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", component, err)
		}
		s.SetFrequency(component, freq)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ScheduleYAML parses a YAML document into a schedule.
func ScheduleYAML(data []byte) (*recur.Schedule, error) {
	var in ScheduleInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("invalid schedule document: %w", err)
	}
	return Schedule(in)
}

func parseBound(raw string) (mo.Option[date.Day], error) {
	if raw == "" {
		return mo.None[date.Day](), nil
	}
	d, err := parseDay(raw)
	if err != nil {
		return mo.None[date.Day](), err
	}
	return mo.Some(d), nil
}

func parseDay(raw string) (date.Day, error) {
	t, err := time.Parse(DayLayout, raw)
	if err != nil {
		return date.Day{}, err
	}
	return date.FromTime(t), nil
}
