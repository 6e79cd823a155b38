package permutation

import (
	"strings"

	"github.com/permgroup/hcgt/domain"
	"github.com/permgroup/hcgt/permloop"
)

// Permutation is a canonical disjoint-cycle decomposition over a domain:
// every point appears in exactly one loop, and loops are sorted by their
// smallest element in strictly decreasing order.
type Permutation[T domain.Ordinal] struct {
	dom   domain.Domain[T]
	loops []*permloop.Loop[T]
}

// Identity returns the identity permutation over dom: one singleton loop
// per point.
func Identity[T domain.Ordinal](dom domain.Domain[T]) *Permutation[T] {
	return New(dom, nil)
}

// New builds a Permutation over dom from an (unsimplified, possibly
// overlapping) sequence of loops. The loops are reduced to canonical
// disjoint-cycle form via permloop.SimplifyLoops before being sorted. A
// nil or empty loop list yields the identity.
func New[T domain.Ordinal](dom domain.Domain[T], loops []*permloop.Loop[T]) *Permutation[T] {
	simplified := permloop.SimplifyLoops(loops, dom.Start(), dom.Fin())
	p := &Permutation[T]{dom: dom, loops: simplified}
	p.sortLoops()

	return p
}

// Domain returns the domain the permutation acts on.
func (p *Permutation[T]) Domain() domain.Domain[T] { return p.dom }

// Loops returns the permutation's loops in stored (smallest-descending)
// order. The returned slice is owned by the caller; loops themselves must
// not be mutated in place.
func (p *Permutation[T]) Loops() []*permloop.Loop[T] {
	return append([]*permloop.Loop[T](nil), p.loops...)
}

// Clone returns an independent deep copy.
func (p *Permutation[T]) Clone() *Permutation[T] {
	cp := make([]*permloop.Loop[T], len(p.loops))
	for i, l := range p.loops {
		cp[i] = l.Clone()
	}

	return &Permutation[T]{dom: p.dom, loops: cp}
}

// ID returns the identity permutation over the same domain as p.
func (p *Permutation[T]) ID() *Permutation[T] { return Identity(p.dom) }

// Apply folds x through the loops in stored order, returning its image
// under the permutation.
func (p *Permutation[T]) Apply(x T) T {
	for _, l := range p.loops {
		x = l.Apply(x)
	}

	return x
}

// ApplyToTable folds a domain-sized image table through every loop, in
// stored order.
func (p *Permutation[T]) ApplyToTable(t []T) {
	for _, l := range p.loops {
		l.ApplyToTable(t, p.dom.Start())
	}
}

// LMul left-multiplies p by other: p := other . p, meaning other is
// applied first and the previous p second (x^p_new = (x^other)^p_old).
// This is the convention the Schreier generator formula in the bsgs
// package is built on: see doc.go.
func (p *Permutation[T]) LMul(other *Permutation[T]) *Permutation[T] {
	combined := append(append([]*permloop.Loop[T](nil), other.loops...), p.loops...)
	p.loops = permloop.SimplifyLoops(combined, p.dom.Start(), p.dom.Fin())
	p.sortLoops()

	return p
}

// RMul right-multiplies p by other: p := p . other, meaning the previous
// p is applied first and other second.
func (p *Permutation[T]) RMul(other *Permutation[T]) *Permutation[T] {
	combined := append(append([]*permloop.Loop[T](nil), p.loops...), other.loops...)
	p.loops = permloop.SimplifyLoops(combined, p.dom.Start(), p.dom.Fin())
	p.sortLoops()

	return p
}

// Invert replaces p by its inverse: reversing every loop's direction.
// Reversing a loop leaves its smallest element fixed, so the canonical
// sort order is unaffected.
func (p *Permutation[T]) Invert() *Permutation[T] {
	for _, l := range p.loops {
		l.Inverse()
	}

	return p
}

// Inverse returns a fresh permutation equal to p's inverse, leaving p
// unmodified.
func (p *Permutation[T]) Inverse() *Permutation[T] {
	return p.Clone().Invert()
}

// Product returns a . b under the "apply a first" convention: a fresh
// permutation equal to applying a, then b.
func Product[T domain.Ordinal](a, b *Permutation[T]) *Permutation[T] {
	return b.Clone().LMul(a)
}

// Power returns p raised to the integer power k, supporting negative k
// via Inverse. Implemented by repeated multiplication; the domain sizes
// this module targets make repeated squaring unnecessary.
func (p *Permutation[T]) Power(k int) *Permutation[T] {
	base := p
	if k < 0 {
		base = p.Inverse()
		k = -k
	}

	result := Identity(p.dom)
	for i := 0; i < k; i++ {
		result = Product(result, base)
	}

	return result
}

// Equals reports structural equality: same loops in the same order.
func (p *Permutation[T]) Equals(rhs *Permutation[T]) bool {
	if len(p.loops) != len(rhs.loops) {
		return false
	}

	for i := range p.loops {
		if !p.loops[i].Equals(rhs.loops[i]) {
			return false
		}
	}

	return true
}

// Less defines a lexicographic order over the loop list, sufficient to
// put Permutations in ordered containers such as maps keyed by a
// deterministic string form or sorted slices.
func (p *Permutation[T]) Less(rhs *Permutation[T]) bool {
	n := len(p.loops)
	if m := len(rhs.loops); n != m {
		return n < m
	}

	for i := range p.loops {
		if !p.loops[i].Equals(rhs.loops[i]) {
			return p.loops[i].Less(rhs.loops[i])
		}
	}

	return false
}

// NonPrimitiveLoopReverse scans the loops in reverse of stored order
// (i.e. by ascending smallest element, since stored order is descending)
// and returns the first non-primitive loop found. Schreier-Sims uses this
// to pick the next base-extension point when a residual permutation fixes
// every existing base point.
func (p *Permutation[T]) NonPrimitiveLoopReverse() (*permloop.Loop[T], bool) {
	for i := len(p.loops) - 1; i >= 0; i-- {
		if !p.loops[i].IsPrimitive() {
			return p.loops[i], true
		}
	}

	return nil, false
}

// String renders the permutation as the concatenation of its loop prints
// in stored order.
func (p *Permutation[T]) String() string {
	var b strings.Builder
	for _, l := range p.loops {
		b.WriteString(l.String())
	}

	return b.String()
}

func (p *Permutation[T]) sortLoops() {
	// insertion sort: loop counts are small (bounded by domain size) and
	// this keeps the dependency surface to what permloop already exposes.
	for i := 1; i < len(p.loops); i++ {
		for j := i; j > 0 && p.loops[j].Smallest() > p.loops[j-1].Smallest(); j-- {
			p.loops[j], p.loops[j-1] = p.loops[j-1], p.loops[j]
		}
	}
}
