package filter

import (
	"fmt"
	"time"

	"github.com/hupe1980/neogo/model"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindDate represents a calendar-date value (time-of-day discarded).
	KindDate
	// KindFloat represents a float value.
	KindFloat
	// KindBool represents a boolean value.
	KindBool
)

// Value is a small typed value used as the reference side of a filter and
// as the result of attribute accessors.
//
// The representation keeps comparison fast and predictable: no reflection
// and no fmt-based stringification.
type Value struct {
	Kind Kind
	T    time.Time
	F    float64
	B    bool
}

// Date returns a calendar-date Value, truncated to midnight UTC.
func Date(t time.Time) Value {
	y, m, d := t.UTC().Date()
	return Value{Kind: KindDate, T: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Float returns a float64 Value. NaN is allowed and compares false under
// every operator.
func Float(f float64) Value { return Value{Kind: KindFloat, F: f} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{Kind: KindBool, B: b} }

// AsDate returns the date value if Kind is KindDate.
func (v Value) AsDate() (time.Time, bool) {
	if v.Kind != KindDate {
		return time.Time{}, false
	}
	return v.T, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F, true
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// String returns a human-readable rendering of the Value.
func (v Value) String() string {
	switch v.Kind {
	case KindDate:
		return v.T.Format("2006-01-02")
	case KindFloat:
		return fmt.Sprintf("%g", v.F)
	case KindBool:
		return fmt.Sprintf("%t", v.B)
	default:
		return "invalid"
	}
}

// Operator represents a comparison operator for filtering. The set is
// closed: queries only ever need exact matches and inclusive bounds.
type Operator string

const (
	// OpEqual represents the equality operator.
	OpEqual Operator = "eq"
	// OpGreaterEqual represents the greater than or equal operator.
	OpGreaterEqual Operator = "gte"
	// OpLessEqual represents the less than or equal operator.
	OpLessEqual Operator = "lte"
)

// Attribute names the approach attribute a filter compares against.
type Attribute string

const (
	// AttrDate is the calendar date of the approach.
	AttrDate Attribute = "date"
	// AttrDistance is the nominal approach distance in astronomical units.
	AttrDistance Attribute = "distance"
	// AttrVelocity is the relative approach velocity in km/s.
	AttrVelocity Attribute = "velocity"
	// AttrDiameter is the diameter of the linked Body in kilometers.
	AttrDiameter Attribute = "diameter"
	// AttrHazardous is the hazard flag of the linked Body.
	AttrHazardous Attribute = "hazardous"
)

// accessor extracts the attribute of interest from an approach.
type accessor func(a *model.Approach) Value

// accessors is the closed dispatch table from attribute to accessor.
// Diameter and Hazardous dereference the linked Body.
var accessors = map[Attribute]accessor{
	AttrDate:      func(a *model.Approach) Value { return Date(a.Time) },
	AttrDistance:  func(a *model.Approach) Value { return Float(a.Distance) },
	AttrVelocity:  func(a *model.Approach) Value { return Float(a.Velocity) },
	AttrDiameter:  func(a *model.Approach) Value { return Float(a.Body.Diameter) },
	AttrHazardous: func(a *model.Approach) Value { return Bool(a.Body.Hazardous) },
}

// kindOf is the value kind each attribute accessor produces. The reference
// value of a filter must match it.
var kindOf = map[Attribute]Kind{
	AttrDate:      KindDate,
	AttrDistance:  KindFloat,
	AttrVelocity:  KindFloat,
	AttrDiameter:  KindFloat,
	AttrHazardous: KindBool,
}
