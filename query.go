// Package neogo provides an embedded close-approach query engine.
//
// This file implements the fluent query API and the result limiter.
package neogo

import (
	"iter"
	"time"

	"github.com/hupe1980/neogo/filter"
	"github.com/hupe1980/neogo/model"
)

// Query creates a new fluent query builder over the store's approaches.
//
// Example:
//
//	results := store.Query().
//	    Filter(filter.IsHazardous(true), filter.MaxDistance(0.05)).
//	    Limit(10).
//	    Execute()
//
//	// Or with streaming:
//	for a := range store.Query().Criteria(c).Stream() {
//	    process(a)
//	}
func (s *Store) Query() *QueryBuilder {
	return &QueryBuilder{store: s}
}

// QueryBuilder is a fluent builder for constructing approach queries.
// Builders are cheap; create one per query.
type QueryBuilder struct {
	store   *Store
	filters *filter.Set
	limit   int
}

// Filter appends filters to the query. All filters must match (AND logic).
func (qb *QueryBuilder) Filter(filters ...filter.Filter) *QueryBuilder {
	if qb.filters == nil {
		qb.filters = filter.NewSet()
	}
	qb.filters.Filters = append(qb.filters.Filters, filters...)
	return qb
}

// FilterSet replaces the query's filter set.
func (qb *QueryBuilder) FilterSet(set *filter.Set) *QueryBuilder {
	qb.filters = set
	return qb
}

// Criteria replaces the query's filter set with one built from the given
// user criteria.
func (qb *QueryBuilder) Criteria(c filter.Criteria) *QueryBuilder {
	qb.filters = c.Filters()
	return qb
}

// Limit caps the number of produced results. n <= 0 means no limit.
func (qb *QueryBuilder) Limit(n int) *QueryBuilder {
	qb.limit = n
	return qb
}

// Stream returns a lazy iterator over matching approaches, in store order.
//
// No filtering work happens until the caller consumes an element, and
// breaking out of the loop stops all further work. Each call produces an
// independent traversal.
func (qb *QueryBuilder) Stream() iter.Seq[*model.Approach] {
	return Limit(qb.stream(), qb.limit)
}

func (qb *QueryBuilder) stream() iter.Seq[*model.Approach] {
	store := qb.store
	set := qb.filters
	numFilters := 0
	if set != nil {
		numFilters = len(set.Filters)
	}

	return func(yield func(*model.Approach) bool) {
		start := time.Now()
		yielded := 0
		defer func() {
			store.metrics.RecordQuery(numFilters, yielded, time.Since(start))
			store.logger.LogQuery(numFilters, yielded, time.Since(start))
		}()

		for _, a := range store.approaches {
			if !set.Matches(a) {
				continue
			}
			yielded++
			if !yield(a) {
				return
			}
		}
	}
}

// Execute runs the query and returns the matching approaches as a slice.
func (qb *QueryBuilder) Execute() []*model.Approach {
	var results []*model.Approach
	for a := range qb.Stream() {
		results = append(results, a)
	}
	return results
}

// First returns the first matching approach in store order.
func (qb *QueryBuilder) First() (*model.Approach, bool) {
	for a := range qb.Stream() {
		return a, true
	}
	return nil, false
}

// Count runs the query and returns the number of matches. The limit, if
// set, still applies.
func (qb *QueryBuilder) Count() int {
	count := 0
	for range qb.Stream() {
		count++
	}
	return count
}

// Exists checks if at least one approach matches the query.
func (qb *QueryBuilder) Exists() bool {
	_, ok := qb.First()
	return ok
}

// Limit wraps a sequence to yield at most the first n elements, preserving
// order. The underlying sequence is not consumed past the nth element, so
// upstream filtering work short-circuits.
//
// n <= 0 means no limit: the input sequence is returned unchanged, not an
// empty one.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return seq
	}
	return func(yield func(T) bool) {
		remaining := n
		for v := range seq {
			if !yield(v) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}
}
