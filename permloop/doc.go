// Package permloop implements PermLoop, a single canonical disjoint cycle
// over a domain.Domain.
//
// A Loop (a c d) sends a to c, c to d, d back to a, and fixes everything
// else. Loops are always stored with their smallest element first; every
// mutating method re-rotates the internal slice to preserve that
// invariant before returning.
package permloop
