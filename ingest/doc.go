// Package ingest extracts near-Earth object and close-approach records from
// NASA data files.
//
// LoadBodies reads the NEO data set (CSV), LoadApproaches reads the close
// approach data set (JSON), and Load reads both concurrently. Files ending
// in ".gz" are decompressed transparently, since NASA distributes both data
// sets gzipped.
//
// Ingest owns malformed input: unparseable rows fail here with row context
// and never cross into the store. Known data-set quirks are normalized
// instead of rejected - a missing name becomes the unnamed sentinel and a
// missing diameter becomes NaN.
package ingest
