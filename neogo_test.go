package neogo

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/neogo/filter"
	"github.com/hupe1980/neogo/model"
)

// testRecords returns fresh unlinked fixtures; linking mutates records, so
// every test needs its own copies.
func testRecords() ([]*model.Body, []*model.Approach) {
	bodies := []*model.Body{
		model.NewBody("2000 AB", "Alpha", 1.2, true),
		model.NewBody("2001 CD", "Beta", math.NaN(), false),
		model.NewBody("2002 EF", "", 0.4, false),
	}
	approaches := []*model.Approach{
		model.NewApproach("2000 AB", time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), 0.5, 10.0),
		model.NewApproach("2001 CD", time.Date(2020, time.February, 2, 12, 30, 0, 0, time.UTC), 0.05, 25.0),
		model.NewApproach("2000 AB", time.Date(2021, time.March, 3, 6, 15, 0, 0, time.UTC), 1.5, 5.0),
	}
	return bodies, approaches
}

func TestNew(t *testing.T) {
	t.Run("LinkingCompleteness", func(t *testing.T) {
		bodies, approaches := testRecords()
		store, err := New(bodies, approaches)
		require.NoError(t, err)

		for _, a := range approaches {
			require.NotNil(t, a.Body, "approach %v not linked", a.Designation)
			assert.Equal(t, a.Designation, a.Body.Designation)

			seen := 0
			for _, linked := range a.Body.Approaches {
				if linked == a {
					seen++
				}
			}
			assert.Equal(t, 1, seen, "approach appears %d times on its body", seen)
		}

		assert.Equal(t, 3, store.NumBodies())
		assert.Equal(t, 3, store.NumApproaches())
	})

	t.Run("UnknownDesignationFailsFast", func(t *testing.T) {
		bodies, approaches := testRecords()
		approaches = append(approaches, model.NewApproach("1999 ZZ", time.Now().UTC(), 0.3, 8.0))

		store, err := New(bodies, approaches)
		require.Nil(t, store)

		var unknown *ErrUnknownDesignation
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "1999 ZZ", unknown.Designation)
		assert.ErrorIs(t, err, ErrLinkFailed)
	})

	t.Run("BodyWithoutApproaches", func(t *testing.T) {
		bodies, approaches := testRecords()
		store, err := New(bodies, approaches)
		require.NoError(t, err)

		body, ok := store.LookupByDesignation("2002 EF")
		require.True(t, ok)
		assert.Empty(t, body.Approaches)
	})
}

func TestLookupByDesignation(t *testing.T) {
	bodies, approaches := testRecords()
	store, err := New(bodies, approaches)
	require.NoError(t, err)

	t.Run("Hit", func(t *testing.T) {
		body, ok := store.LookupByDesignation("2000 AB")
		require.True(t, ok)
		assert.Equal(t, "Alpha", body.Name)
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		_, ok := store.LookupByDesignation("2000 ab")
		assert.False(t, ok)
	})

	t.Run("Miss", func(t *testing.T) {
		_, ok := store.LookupByDesignation("9999 XY")
		assert.False(t, ok)
	})
}

func TestLookupByName(t *testing.T) {
	bodies, approaches := testRecords()
	store, err := New(bodies, approaches)
	require.NoError(t, err)

	t.Run("Hit", func(t *testing.T) {
		body, ok := store.LookupByName("Beta")
		require.True(t, ok)
		assert.Equal(t, "2001 CD", body.Designation)
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		_, ok := store.LookupByName("beta")
		assert.False(t, ok)
	})

	t.Run("EmptyNeverMatches", func(t *testing.T) {
		// "2002 EF" is unnamed, but the empty string must not find it.
		_, ok := store.LookupByName("")
		assert.False(t, ok)
	})
}

// Scenario: a single hazardous body with one close approach, reached
// through a name lookup.
func TestLinkedGraphScenario(t *testing.T) {
	bodies := []*model.Body{model.NewBody("2000 AB", "Alpha", 1.2, true)}
	approaches := []*model.Approach{
		model.NewApproach("2000 AB", time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), 0.5, 10.0),
	}
	store, err := New(bodies, approaches)
	require.NoError(t, err)

	body, ok := store.LookupByName("Alpha")
	require.True(t, ok)
	require.Len(t, body.Approaches, 1)
	assert.True(t, body.Approaches[0].Body.Hazardous)

	t.Run("CriteriaMatch", func(t *testing.T) {
		yes := true
		maxDist := 0.6
		got := store.Query().Criteria(filter.Criteria{Hazardous: &yes, DistanceMax: &maxDist}).Execute()
		assert.Len(t, got, 1)
	})

	t.Run("CriteriaMismatch", func(t *testing.T) {
		no := false
		got := store.Query().Criteria(filter.Criteria{Hazardous: &no}).Execute()
		assert.Empty(t, got)
	})
}

func TestStoreMetrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	bodies, approaches := testRecords()
	store, err := New(bodies, approaches, WithMetricsCollector(metrics))
	require.NoError(t, err)

	store.LookupByDesignation("2000 AB")
	store.LookupByDesignation("nope")
	store.Query().Execute()

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.LinkCount)
	assert.Equal(t, int64(0), stats.LinkErrors)
	assert.Equal(t, int64(2), stats.LookupCount)
	assert.Equal(t, int64(1), stats.LookupMisses)
	assert.Equal(t, int64(1), stats.QueryCount)
	assert.Equal(t, int64(3), stats.QueryYielded)
}

func TestErrUnknownDesignationMessage(t *testing.T) {
	err := error(&ErrUnknownDesignation{Designation: "2020 QQ"})
	assert.Contains(t, err.Error(), "2020 QQ")
	assert.True(t, errors.Is(err, ErrLinkFailed))
}
