// Package bsgs builds and consumes a base-and-strong-generating-set: the
// sifting predicate Strip and the Schreier-Sims construction that derives
// a BSGS from an arbitrary generating set.
package bsgs
