// Package randgen implements the product-replacement algorithm for
// drawing pseudo-random elements from the group generated by a set of
// permutations, without ever enumerating the group.
package randgen
