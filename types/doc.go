// Package types contains the core types and interfaces shared across the
// shiftboard library.
//
// Keeping these definitions in a leaf package lets internal packages depend
// on them without importing the root shiftboard package, avoiding import
// cycles. The root package re-exports the public subset via type aliases.
package types
