// Package filter implements predicate filtering for close-approach queries.
//
// A Filter is one comparison test over a model.Approach: an attribute
// accessor, a comparison operator, and a reference value. Filters are pure,
// side-effect free, and safe to share and re-evaluate any number of times.
//
// A Set combines filters conjunctively (AND logic); an empty Set matches
// every approach.
//
// # Attribute Dispatch
//
// The attribute of interest is selected by a closed accessor table rather
// than subtyping: each Attribute maps to a function extracting a typed
// Value from an approach. Diameter and Hazardous reach through the linked
// Body, so those filters require linking to have completed.
//
// # Criteria
//
// Criteria is the configuration surface: a struct of independently optional
// options that Filters() translates into the corresponding filter list. It
// distinguishes "absent" from meaningful zero values (in particular
// Hazardous=false) via pointer fields.
package filter
