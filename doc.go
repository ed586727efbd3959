// Package neogo provides an embedded query engine for near-Earth objects
// and their recorded close approaches to Earth.
//
// A Store links two flat record sets - bodies and close approaches - into a
// navigable in-memory graph and answers ad-hoc queries that filter
// approaches by an arbitrary combination of attribute criteria:
//
//   - Designation-keyed O(1) body lookup and exact name lookup
//   - Conjunctive attribute filters (date, distance, velocity, diameter,
//     hazard flag) with inclusive bounds
//   - Lazy result streaming via iter.Seq with optional result limiting
//   - Read-only after construction; safe for concurrent readers
//
// # Quick Start
//
// Load the data sets and build a store:
//
//	bodies, approaches, err := ingest.Load(ctx, "neos.csv", "cad.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store, err := neogo.New(bodies, approaches)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Look up an object:
//
//	if body, ok := store.LookupByName("Eros"); ok {
//	    fmt.Println(body.Fullname(), len(body.Approaches))
//	}
//
// Query close approaches with the fluent API:
//
//	hazardous := true
//	maxDist := 0.05
//	results := store.Query().
//	    Criteria(filter.Criteria{Hazardous: &hazardous, DistanceMax: &maxDist}).
//	    Limit(10).
//	    Execute()
//
// Streaming for memory efficiency (filtering happens on demand; breaking
// out of the loop stops all further work):
//
//	for a := range store.Query().Filter(filter.MinVelocity(25)).Stream() {
//	    if tooMany() {
//	        break
//	    }
//	    process(a)
//	}
package neogo
