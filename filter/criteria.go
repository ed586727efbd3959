package filter

import "time"

// OnDate matches approaches occurring on exactly the given calendar day.
func OnDate(t time.Time) Filter { return mustNew(AttrDate, OpEqual, Date(t)) }

// OnOrAfter matches approaches occurring on or after the given day.
func OnOrAfter(t time.Time) Filter { return mustNew(AttrDate, OpGreaterEqual, Date(t)) }

// OnOrBefore matches approaches occurring on or before the given day.
func OnOrBefore(t time.Time) Filter { return mustNew(AttrDate, OpLessEqual, Date(t)) }

// MinDistance matches approaches at least au astronomical units away.
func MinDistance(au float64) Filter { return mustNew(AttrDistance, OpGreaterEqual, Float(au)) }

// MaxDistance matches approaches at most au astronomical units away.
func MaxDistance(au float64) Filter { return mustNew(AttrDistance, OpLessEqual, Float(au)) }

// MinVelocity matches approaches at least kms km/s fast.
func MinVelocity(kms float64) Filter { return mustNew(AttrVelocity, OpGreaterEqual, Float(kms)) }

// MaxVelocity matches approaches at most kms km/s fast.
func MaxVelocity(kms float64) Filter { return mustNew(AttrVelocity, OpLessEqual, Float(kms)) }

// MinDiameter matches approaches whose object is at least km across.
func MinDiameter(km float64) Filter { return mustNew(AttrDiameter, OpGreaterEqual, Float(km)) }

// MaxDiameter matches approaches whose object is at most km across.
func MaxDiameter(km float64) Filter { return mustNew(AttrDiameter, OpLessEqual, Float(km)) }

// IsHazardous matches approaches whose object's hazard flag equals b.
func IsHazardous(b bool) Filter { return mustNew(AttrHazardous, OpEqual, Bool(b)) }

// Criteria captures user-specified query criteria. Every field is optional;
// a nil field contributes no filter. Pointer fields distinguish "absent"
// from meaningful zero values - in particular Hazardous=false selects
// non-hazardous objects, while a nil Hazardous does not constrain the flag.
type Criteria struct {
	Date      *time.Time // approach occurs on exactly this day
	StartDate *time.Time // approach occurs on or after this day
	EndDate   *time.Time // approach occurs on or before this day

	DistanceMin *float64 // inclusive, astronomical units
	DistanceMax *float64
	VelocityMin *float64 // inclusive, km/s
	VelocityMax *float64
	DiameterMin *float64 // inclusive, kilometers
	DiameterMax *float64

	Hazardous *bool
}

// Filters translates the criteria into the corresponding filter set.
//
// The order is fixed (date, start, end, distance min/max, velocity min/max,
// diameter min/max, hazardous). Filters are conjunctive and commutative, so
// order never affects results; keeping it deterministic helps debugging.
func (c Criteria) Filters() *Set {
	var filters []Filter

	if c.Date != nil {
		filters = append(filters, OnDate(*c.Date))
	}
	if c.StartDate != nil {
		filters = append(filters, OnOrAfter(*c.StartDate))
	}
	if c.EndDate != nil {
		filters = append(filters, OnOrBefore(*c.EndDate))
	}
	if c.DistanceMin != nil {
		filters = append(filters, MinDistance(*c.DistanceMin))
	}
	if c.DistanceMax != nil {
		filters = append(filters, MaxDistance(*c.DistanceMax))
	}
	if c.VelocityMin != nil {
		filters = append(filters, MinVelocity(*c.VelocityMin))
	}
	if c.VelocityMax != nil {
		filters = append(filters, MaxVelocity(*c.VelocityMax))
	}
	if c.DiameterMin != nil {
		filters = append(filters, MinDiameter(*c.DiameterMin))
	}
	if c.DiameterMax != nil {
		filters = append(filters, MaxDiameter(*c.DiameterMax))
	}
	if c.Hazardous != nil {
		filters = append(filters, IsHazardous(*c.Hazardous))
	}

	return NewSet(filters...)
}
