// Package permutation implements Permutation, the canonical disjoint-cycle
// decomposition of a permutation over a domain.Domain, together with the
// group arithmetic on it: application, product, inverse, integer power,
// equality and ordering.
//
// Composition convention: permutations act on points from the right,
// x^g meaning g.Apply(x). Product(a, b) returns the permutation that
// applies a first, then b — implemented as a copy of b left-multiplied
// by a. LMul(other) sets self := other . self; RMul(other) sets
// self := self . other. Every call site in this module holds to this
// convention; transposing lmul/rmul anywhere breaks the Schreier
// generator formula used by the bsgs package.
package permutation
