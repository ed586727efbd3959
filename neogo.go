package neogo

import (
	"iter"
	"time"

	"github.com/hupe1980/neogo/model"
)

// Store is an in-memory database of near-Earth objects and their close
// approaches.
//
// New links the two record sets together exactly once; after that the Store
// is read-only, so any number of concurrent readers are safe without
// locking.
type Store struct {
	bodies        []*model.Body
	approaches    []*model.Approach
	byDesignation map[string]*model.Body

	metrics MetricsCollector
	logger  *Logger
}

// New creates a Store from unlinked record sets.
//
// As a precondition, the collections must not yet be linked: every Body's
// Approaches collection is empty and every Approach's Body reference is
// nil. New resolves each Approach's designation against the supplied
// bodies, sets the back-reference, and registers the Approach on its Body.
//
// If an Approach references a designation with no matching Body, New fails
// with *ErrUnknownDesignation rather than leaving a dangling record.
func New(bodies []*model.Body, approaches []*model.Approach, optFns ...Option) (*Store, error) {
	o := applyOptions(optFns)

	s := &Store{
		bodies:        bodies,
		approaches:    approaches,
		byDesignation: make(map[string]*model.Body, len(bodies)),
		metrics:       o.metricsCollector,
		logger:        o.logger,
	}

	start := time.Now()
	err := s.link()
	s.metrics.RecordLink(len(bodies), len(approaches), time.Since(start), err)
	s.logger.LogLink(len(bodies), len(approaches), err)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// link builds the designation index and cross-references the two record
// sets. One pass over bodies, one pass over approaches.
func (s *Store) link() error {
	for _, b := range s.bodies {
		s.byDesignation[b.Designation] = b
	}
	for _, a := range s.approaches {
		body, ok := s.byDesignation[a.Designation]
		if !ok {
			return &ErrUnknownDesignation{Designation: a.Designation}
		}
		a.Body = body
		body.Approaches = append(body.Approaches, a)
	}
	return nil
}

// LookupByDesignation finds a body by its primary designation.
//
// Matching is exact and case-sensitive. The second return value reports
// whether a match was found; a miss is an ordinary outcome, not an error.
func (s *Store) LookupByDesignation(designation string) (*model.Body, bool) {
	start := time.Now()
	body, ok := s.byDesignation[designation]
	s.metrics.RecordLookup(time.Since(start), ok)
	s.logger.LogLookup("designation", designation, ok)
	return body, ok
}

// LookupByName finds a body by its IAU name.
//
// Matching is exact and case-sensitive. Unnamed bodies never match, and
// the empty string never matches anything. Names are queried far less
// often than designations, so this is a linear scan by design.
func (s *Store) LookupByName(name string) (*model.Body, bool) {
	start := time.Now()
	var found *model.Body
	if name != "" {
		for _, b := range s.bodies {
			if b.Name == name {
				found = b
				break
			}
		}
	}
	s.metrics.RecordLookup(time.Since(start), found != nil)
	s.logger.LogLookup("name", name, found != nil)
	return found, found != nil
}

// NumBodies returns the number of bodies in the store.
func (s *Store) NumBodies() int { return len(s.bodies) }

// NumApproaches returns the number of close approaches in the store.
func (s *Store) NumApproaches() int { return len(s.approaches) }

// Bodies iterates over all bodies in store order.
func (s *Store) Bodies() iter.Seq[*model.Body] {
	return func(yield func(*model.Body) bool) {
		for _, b := range s.bodies {
			if !yield(b) {
				return
			}
		}
	}
}

// Approaches iterates over all close approaches in store order. Store
// order is insertion order from ingestion; it is often, but not
// guaranteed, sorted by time. Sort at the boundary if you need an order.
func (s *Store) Approaches() iter.Seq[*model.Approach] {
	return func(yield func(*model.Approach) bool) {
		for _, a := range s.approaches {
			if !yield(a) {
				return
			}
		}
	}
}
