// Package domain describes the finite interval of points a permutation
// group acts on.
//
// A Domain is the closed interval [Start, Fin] of some ordinal type T. It
// supplies iteration in order and a zero-based index Idx(x) = x - Start,
// which every other package in this module uses to address per-point
// storage (Schreier vectors, orbit tables, and so on).
package domain
