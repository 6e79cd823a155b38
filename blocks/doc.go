// Package blocks computes the primitive block system generated by a seed
// pair of points under a transitive group action.
package blocks
