package filter

import (
	"errors"
	"fmt"

	"github.com/hupe1980/neogo/model"
)

var (
	// ErrUnsupportedCriterion is returned when a filter is constructed with
	// an attribute, operator, or value kind outside the supported sets.
	// Hitting it indicates a programming error in filter construction; the
	// Criteria factory only ever produces supported combinations.
	ErrUnsupportedCriterion = errors.New("unsupported filter criterion")
)

// Filter represents a single comparison test against one approach
// attribute: accessor(approach) OP reference value.
//
// Construct filters with New, the convenience constructors, or
// Criteria.Filters; the zero Filter matches nothing.
type Filter struct {
	Attribute Attribute
	Operator  Operator
	Value     Value

	get accessor
}

// New creates a Filter, validating the attribute, the operator, and that
// the reference value's kind matches what the attribute accessor produces.
// Boolean attributes only support OpEqual.
func New(attr Attribute, op Operator, value Value) (Filter, error) {
	get, ok := accessors[attr]
	if !ok {
		return Filter{}, fmt.Errorf("%w: unknown attribute %q", ErrUnsupportedCriterion, attr)
	}
	switch op {
	case OpEqual:
	case OpGreaterEqual, OpLessEqual:
		if kindOf[attr] == KindBool {
			return Filter{}, fmt.Errorf("%w: %q does not support ordering operator %q", ErrUnsupportedCriterion, attr, op)
		}
	default:
		return Filter{}, fmt.Errorf("%w: unknown operator %q", ErrUnsupportedCriterion, op)
	}
	if value.Kind != kindOf[attr] {
		return Filter{}, fmt.Errorf("%w: attribute %q expects a %v value", ErrUnsupportedCriterion, attr, kindOf[attr])
	}
	return Filter{Attribute: attr, Operator: op, Value: value, get: get}, nil
}

// mustNew is the internal constructor for combinations known to be valid.
func mustNew(attr Attribute, op Operator, value Value) Filter {
	f, err := New(attr, op, value)
	if err != nil {
		panic(err)
	}
	return f
}

// Matches checks if the provided approach satisfies this filter.
//
// NaN attribute or reference values compare false under every operator:
// an unknown diameter has no opinion and never matches a diameter bound.
func (f Filter) Matches(a *model.Approach) bool {
	if f.get == nil {
		return false
	}
	value := f.get(a)

	switch f.Operator {
	case OpEqual:
		return compareEqual(value, f.Value)
	case OpGreaterEqual:
		return compareGreater(value, f.Value) || compareEqual(value, f.Value)
	case OpLessEqual:
		return compareLess(value, f.Value) || compareEqual(value, f.Value)
	default:
		return false
	}
}

// String returns a human-readable rendering of the filter.
func (f Filter) String() string {
	return fmt.Sprintf("%s %s %s", f.Attribute, f.Operator, f.Value)
}

// compareEqual compares two values for equality.
func compareEqual(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindDate:
		return a.T.Equal(b.T)
	case KindFloat:
		// NaN == NaN is false by IEEE semantics, which is exactly the
		// "unknown never matches" behavior we want.
		return a.F == b.F
	case KindBool:
		return a.B == b.B
	default:
		return false
	}
}

func compareGreater(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindDate:
		return a.T.After(b.T)
	case KindFloat:
		return a.F > b.F
	default:
		return false
	}
}

func compareLess(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindDate:
		return a.T.Before(b.T)
	case KindFloat:
		return a.F < b.F
	default:
		return false
	}
}

// Set represents a set of filters that must all match (AND logic).
type Set struct {
	Filters []Filter
}

// NewSet creates a new filter set.
func NewSet(filters ...Filter) *Set {
	return &Set{Filters: filters}
}

// Matches checks if the provided approach matches all filters in the set.
// A nil or empty set matches every approach.
func (s *Set) Matches(a *model.Approach) bool {
	if s == nil {
		return true
	}
	for _, f := range s.Filters {
		if !f.Matches(a) {
			return false
		}
	}
	return true
}
