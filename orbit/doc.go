// Package orbit computes the orbit of a point under a permutation
// generating set, in two interchangeable representations.
//
// DirectOrbit stores a coset representative per orbit point explicitly:
// O(|orbit|) space in full permutations, O(1) UBeta. SchreierOrbit stores
// an integer Schreier vector over the whole domain and reconstructs
// representatives on demand: O(n) space, O(depth) UBeta. Both satisfy the
// same Engine contract: they report the same orbit points, and every
// representative either one returns sends the base point to the requested
// point, though the two may choose different representatives for the same
// point. The choice between them is a policy parameter passed into the
// bsgs package via a Factory.
package orbit
