package model

import (
	"fmt"
	"math"
	"time"
)

// TimeLayout is the calendar-date format used by the NASA close-approach
// data set, e.g. "2020-Jan-01 12:30". All times are UTC.
const TimeLayout = "2006-Jan-02 15:04"

// ParseTime parses a timestamp in TimeLayout as UTC.
func ParseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse approach time %q: %w", s, err)
	}
	return t, nil
}

// FormatTime renders t in TimeLayout.
//
// The data set carries no seconds, so neither does the output.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Body is a near-Earth object (NEO).
//
// A Body carries the semantic and physical parameters of the object: its
// primary designation (required, unique), IAU name (optional), diameter in
// kilometers (NaN when unknown), and whether it is marked as potentially
// hazardous.
//
// Approaches starts empty and is populated exactly once by neogo.New. The
// Body does not own the Approach lifetimes; it only references them.
type Body struct {
	Designation string
	Name        string // "" means unnamed
	Diameter    float64
	Hazardous   bool
	Approaches  []*Approach
}

// NewBody creates an unlinked Body. Pass math.NaN() for an unknown diameter
// and "" for an unnamed object.
func NewBody(designation, name string, diameter float64, hazardous bool) *Body {
	return &Body{
		Designation: designation,
		Name:        name,
		Diameter:    diameter,
		Hazardous:   hazardous,
	}
}

// Named reports whether the object has an IAU name.
func (b *Body) Named() bool {
	return b.Name != ""
}

// HasDiameter reports whether the diameter is known.
func (b *Body) HasDiameter() bool {
	return !math.IsNaN(b.Diameter)
}

// Fullname returns the designation together with the name, if any,
// e.g. "433 (Eros)" or "2010 PK9".
func (b *Body) Fullname() string {
	if b.Named() {
		return fmt.Sprintf("%s (%s)", b.Designation, b.Name)
	}
	return b.Designation
}

// String returns a human-readable description of the Body.
func (b *Body) String() string {
	hazard := "is not"
	if b.Hazardous {
		hazard = "is"
	}
	return fmt.Sprintf("NEO %s has a diameter of %.3f km and %s potentially hazardous", b.Fullname(), b.Diameter, hazard)
}

// Approach is one recorded close approach of a Body to Earth.
//
// Designation is the foreign key into Body.Designation and is the only link
// available before neogo.New resolves it. Body is nil until linking
// completes and is set exactly once.
type Approach struct {
	Designation string
	Time        time.Time // UTC
	Distance    float64   // astronomical units
	Velocity    float64   // km/s
	Body        *Body
}

// NewApproach creates an unlinked Approach. Distance and Velocity may be
// NaN when unknown.
func NewApproach(designation string, t time.Time, distance, velocity float64) *Approach {
	return &Approach{
		Designation: designation,
		Time:        t,
		Distance:    distance,
		Velocity:    velocity,
	}
}

// Date returns the calendar day of the approach, truncated to midnight UTC.
func (a *Approach) Date() time.Time {
	y, m, d := a.Time.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TimeString renders the approach time in the data set's format.
func (a *Approach) TimeString() string {
	return FormatTime(a.Time)
}

// Fullname returns the linked Body's full name, falling back to the bare
// designation before linking.
func (a *Approach) Fullname() string {
	if a.Body != nil {
		return a.Body.Fullname()
	}
	return a.Designation
}

// String returns a human-readable description of the Approach.
func (a *Approach) String() string {
	return fmt.Sprintf("On %s, %q approaches Earth at a distance of %.2f au and a velocity of %.2f km/s",
		a.TimeString(), a.Fullname(), a.Distance, a.Velocity)
}
