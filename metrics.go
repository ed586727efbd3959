package neogo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordLink is called once after the construction-time linking pass.
	// bodies and approaches are the record counts, err is nil on success.
	RecordLink(bodies, approaches int, duration time.Duration, err error)

	// RecordLookup is called after each lookup operation.
	RecordLookup(duration time.Duration, found bool)

	// RecordQuery is called when a query traversal finishes, whether fully
	// consumed or abandoned early. filters is the number of predicates,
	// yielded the number of approaches produced.
	RecordQuery(filters, yielded int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLink(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordLookup(time.Duration, bool)          {}
func (NoopMetricsCollector) RecordQuery(int, int, time.Duration)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LinkCount        atomic.Int64
	LinkErrors       atomic.Int64
	LookupCount      atomic.Int64
	LookupMisses     atomic.Int64
	QueryCount       atomic.Int64
	QueryYielded     atomic.Int64
	QueryTotalNanos  atomic.Int64
	LookupTotalNanos atomic.Int64
}

// RecordLink implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLink(bodies, approaches int, duration time.Duration, err error) {
	b.LinkCount.Add(1)
	if err != nil {
		b.LinkErrors.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(duration time.Duration, found bool) {
	b.LookupCount.Add(1)
	b.LookupTotalNanos.Add(duration.Nanoseconds())
	if !found {
		b.LookupMisses.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(filters, yielded int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryYielded.Add(int64(yielded))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LinkCount:      b.LinkCount.Load(),
		LinkErrors:     b.LinkErrors.Load(),
		LookupCount:    b.LookupCount.Load(),
		LookupMisses:   b.LookupMisses.Load(),
		LookupAvgNanos: b.avgLookupNanos(),
		QueryCount:     b.QueryCount.Load(),
		QueryYielded:   b.QueryYielded.Load(),
		QueryAvgNanos:  b.avgQueryNanos(),
	}
}

func (b *BasicMetricsCollector) avgLookupNanos() int64 {
	count := b.LookupCount.Load()
	if count == 0 {
		return 0
	}
	return b.LookupTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) avgQueryNanos() int64 {
	count := b.QueryCount.Load()
	if count == 0 {
		return 0
	}
	return b.QueryTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LinkCount      int64
	LinkErrors     int64
	LookupCount    int64
	LookupMisses   int64
	LookupAvgNanos int64
	QueryCount     int64
	QueryYielded   int64
	QueryAvgNanos  int64
}
