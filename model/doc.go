// Package model defines core types used throughout neogo.
//
// # Record Types
//
//   - Body: A near-Earth object with a unique primary designation, an
//     optional IAU name, an optional diameter, and a hazard flag
//   - Approach: One recorded close approach of a Body to Earth, with
//     approach time, nominal distance, and relative velocity
//
// A Body maintains the collection of its close approaches and an Approach
// holds a back-reference to its Body. Both sides of the link start empty
// and are populated exactly once by the store constructor.
//
// # Optional Fields
//
// The NASA data set has quirks that these types absorb rather than reject:
// missing names and unknown diameters. An unnamed Body has an empty Name,
// and an unknown diameter is math.NaN(). NaN always means "unknown", never
// an error condition, and every consumer must tolerate it.
package model
