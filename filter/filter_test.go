package filter

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/hupe1980/neogo/model"
)

// linkedApproach builds an approach with its body reference already set,
// as the store constructor would leave it.
func linkedApproach(t time.Time, distance, velocity, diameter float64, hazardous bool) *model.Approach {
	body := model.NewBody("2000 XX", "", diameter, hazardous)
	a := model.NewApproach("2000 XX", t, distance, velocity)
	a.Body = body
	body.Approaches = append(body.Approaches, a)
	return a
}

func TestFilterMatches(t *testing.T) {
	noon := time.Date(2020, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filter   Filter
		approach *model.Approach
		want     bool
	}{
		{
			name:     "date equal ignores time of day",
			filter:   OnDate(time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC)),
			approach: linkedApproach(noon, 0.5, 10, 1, false),
			want:     true,
		},
		{
			name:     "date equal different day",
			filter:   OnDate(time.Date(2020, time.March, 16, 0, 0, 0, 0, time.UTC)),
			approach: linkedApproach(noon, 0.5, 10, 1, false),
			want:     false,
		},
		{
			name:     "start date inclusive boundary",
			filter:   OnOrAfter(time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC)),
			approach: linkedApproach(noon, 0.5, 10, 1, false),
			want:     true,
		},
		{
			name:     "start date excludes earlier day",
			filter:   OnOrAfter(time.Date(2020, time.March, 16, 0, 0, 0, 0, time.UTC)),
			approach: linkedApproach(noon, 0.5, 10, 1, false),
			want:     false,
		},
		{
			name:     "end date inclusive boundary",
			filter:   OnOrBefore(time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC)),
			approach: linkedApproach(noon, 0.5, 10, 1, false),
			want:     true,
		},
		{
			name:     "distance min inclusive",
			filter:   MinDistance(0.5),
			approach: linkedApproach(noon, 0.5, 10, 1, false),
			want:     true,
		},
		{
			name:     "distance min excludes closer",
			filter:   MinDistance(0.6),
			approach: linkedApproach(noon, 0.5, 10, 1, false),
			want:     false,
		},
		{
			name:     "distance max inclusive",
			filter:   MaxDistance(0.5),
			approach: linkedApproach(noon, 0.5, 10, 1, false),
			want:     true,
		},
		{
			name:     "velocity bounds",
			filter:   MaxVelocity(9.99),
			approach: linkedApproach(noon, 0.5, 10, 1, false),
			want:     false,
		},
		{
			name:     "diameter reaches through body",
			filter:   MinDiameter(0.9),
			approach: linkedApproach(noon, 0.5, 10, 1.2, false),
			want:     true,
		},
		{
			name:     "unknown diameter never matches min",
			filter:   MinDiameter(0),
			approach: linkedApproach(noon, 0.5, 10, math.NaN(), false),
			want:     false,
		},
		{
			name:     "unknown diameter never matches max",
			filter:   MaxDiameter(math.Inf(1)),
			approach: linkedApproach(noon, 0.5, 10, math.NaN(), false),
			want:     false,
		},
		{
			name:     "NaN distance never matches",
			filter:   MaxDistance(1),
			approach: linkedApproach(noon, math.NaN(), 10, 1, false),
			want:     false,
		},
		{
			name:     "hazardous true",
			filter:   IsHazardous(true),
			approach: linkedApproach(noon, 0.5, 10, 1, true),
			want:     true,
		},
		{
			name:     "hazardous false is meaningful",
			filter:   IsHazardous(false),
			approach: linkedApproach(noon, 0.5, 10, 1, true),
			want:     false,
		},
		{
			name:     "zero filter matches nothing",
			filter:   Filter{},
			approach: linkedApproach(noon, 0.5, 10, 1, true),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.approach); got != tt.want {
				t.Errorf("(%s).Matches = %t, want %t", tt.filter, got, tt.want)
			}
		})
	}
}

func TestSetMatches(t *testing.T) {
	noon := time.Date(2020, time.March, 15, 12, 0, 0, 0, time.UTC)
	a := linkedApproach(noon, 0.5, 10, 1.2, true)

	t.Run("empty set matches everything", func(t *testing.T) {
		if !NewSet().Matches(a) {
			t.Error("empty set did not match")
		}
	})

	t.Run("nil set matches everything", func(t *testing.T) {
		var s *Set
		if !s.Matches(a) {
			t.Error("nil set did not match")
		}
	})

	t.Run("conjunctive", func(t *testing.T) {
		all := NewSet(IsHazardous(true), MaxDistance(0.6), MinVelocity(5))
		if !all.Matches(a) {
			t.Error("all-true set did not match")
		}

		oneFalse := NewSet(IsHazardous(true), MaxDistance(0.4), MinVelocity(5))
		if oneFalse.Matches(a) {
			t.Error("set with one false predicate matched")
		}
	})
}

func TestNewUnsupportedCriterion(t *testing.T) {
	tests := []struct {
		name string
		attr Attribute
		op   Operator
		val  Value
	}{
		{"unknown attribute", Attribute("albedo"), OpEqual, Float(0.5)},
		{"unknown operator", AttrDistance, Operator("lt"), Float(0.5)},
		{"ordering on bool", AttrHazardous, OpGreaterEqual, Bool(true)},
		{"kind mismatch", AttrDistance, OpEqual, Bool(true)},
		{"invalid value", AttrDate, OpEqual, Value{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.attr, tt.op, tt.val)
			if !errors.Is(err, ErrUnsupportedCriterion) {
				t.Errorf("New(%q, %q, %v) error = %v, want ErrUnsupportedCriterion", tt.attr, tt.op, tt.val, err)
			}
		})
	}
}

func TestNewValid(t *testing.T) {
	f, err := New(AttrVelocity, OpGreaterEqual, Float(12))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := linkedApproach(time.Now().UTC(), 0.5, 15, 1, false)
	if !f.Matches(a) {
		t.Error("constructed filter did not match")
	}
}
