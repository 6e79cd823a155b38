// Package hcgt is a computational permutation-group library implementing
// the core algorithms of the Handbook of Computational Group Theory:
// orbit computation, Schreier-vector coset transversals,
// orbit-and-stabilizer, primitive block decomposition of transitive
// actions, base-and-strong-generating-set (BSGS) construction via
// Schreier-Sims, membership testing via strip, product-replacement
// random element generation, and BFS enumeration of small groups.
//
// The module is organized as one flat package per concern:
//
//	domain       — the finite ordinal domain a permutation acts on
//	permloop     — a single canonical cyclic permutation
//	permutation  — canonical disjoint-cycle decomposition, composition, power
//	gens         — generator-set factories (cyclic, symmetric, alternating)
//	orbit        — orbit-engine capability interface, DirectOrbit, SchreierOrbit
//	blocks       — primitive block decomposition
//	bsgs         — Strip and SchreierSims, the BSGS type
//	randgen      — product-replacement random element generator
//	allelements  — BFS closure enumeration
//
// cmd/permgroupctl wraps all of the above behind a command-line driver.
package hcgt
