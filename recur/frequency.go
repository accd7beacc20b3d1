package recur

import "fmt"

// FrequencyKind discriminates the Frequency variants.
type FrequencyKind int

const (
	// KindAlways matches every value; it is the unconfigured state.
	KindAlways FrequencyKind = iota
	// KindEvery matches values at a fixed interval from an offset.
	KindEvery
	// KindOneOf matches values from an explicit list.
	KindOneOf
)

// Frequency is the declarative rule for one calendar component of a
// schedule. It is a tagged union: Kind selects which of the remaining
// fields are meaningful.
type Frequency struct {
	Kind FrequencyKind

	// Every/Offset are used when Kind is KindEvery: a value v matches
	// iff (v - Offset) mod Every == 0. Every must be >= 1; Offset is
	// the first matching value at or above zero.
	Every  int
	Offset int

	// Values is used when Kind is KindOneOf. The slice is kept exactly
	// as given: not sorted, duplicates not removed. Downstream
	// formatting layers read it back verbatim.
	Values []int
}

// Always returns the unconstrained frequency.
func Always() Frequency {
	return Frequency{Kind: KindAlways}
}

// EveryNth returns a frequency matching every-th value starting at
// offset.
func EveryNth(every, offset int) Frequency {
	return Frequency{Kind: KindEvery, Every: every, Offset: offset}
}

// OneOf returns a frequency matching exactly the given values.
func OneOf(values ...int) Frequency {
	return Frequency{Kind: KindOneOf, Values: values}
}

// IsAlways reports whether the frequency places no constraint.
func (f Frequency) IsAlways() bool {
	return f.Kind == KindAlways
}

// Validate reports structural errors. Matching itself never fails;
// this is for construction-time rejection in the parse layer.
func (f Frequency) Validate() error {
	if f.Kind == KindEvery && f.Every < 1 {
		return fmt.Errorf("every must be >= 1, got %d", f.Every)
	}
	return nil
}

// Check is a compiled Frequency: a closed-form predicate over one
// integer calendar component, retaining the Frequency it was built
// from so rules can round-trip to their declarative form.
type Check struct {
	// Input is the frequency the check was compiled from.
	Input Frequency

	matches func(v int) bool
}

// Compile builds the predicate for a frequency. Compiling an invalid
// Every (every < 1) yields a check that matches nothing; rejecting
// such input is the parse layer's job.
func Compile(f Frequency) Check {
	c := Check{Input: f}
	switch f.Kind {
	case KindEvery:
		every, offset := f.Every, f.Offset
		c.matches = func(v int) bool {
			if every < 1 {
				return false
			}
			return ((v-offset)%every+every)%every == 0
		}
	case KindOneOf:
		values := make(map[int]struct{}, len(f.Values))
		for _, v := range f.Values {
			values[v] = struct{}{}
		}
		c.matches = func(v int) bool {
			_, ok := values[v]
			return ok
		}
	default:
		c.matches = func(int) bool { return true }
	}
	return c
}

// Matches applies the compiled predicate.
func (c Check) Matches(v int) bool {
	if c.matches == nil {
		// zero-value Check behaves like Always
		return true
	}
	return c.matches(v)
}

// IsAlways reports whether the check is a no-op pass.
func (c Check) IsAlways() bool {
	return c.matches == nil || c.Input.IsAlways()
}
