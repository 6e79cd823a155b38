// Package allelements enumerates the full group generated by a set of
// permutations via breadth-first closure. Intended for small groups only.
package allelements
