package gens

import (
	"github.com/permgroup/hcgt/domain"
	"github.com/permgroup/hcgt/permloop"
	"github.com/permgroup/hcgt/permutation"
)

// Cyclic returns the single-generator set {(start start+1 ... fin)}
// generating the cyclic group of order n = |D|.
func Cyclic[T domain.Ordinal](d domain.Domain[T]) []*permutation.Permutation[T] {
	loop, _ := permloop.New(d.Points()...)

	return []*permutation.Permutation[T]{
		permutation.New(d, []*permloop.Loop[T]{loop}),
	}
}

// Symmetric returns {(start start+i) : 1 <= i <= n-1}, generating the full
// symmetric group on D. Fails with ErrInvalidDomainSize if n < 2.
func Symmetric[T domain.Ordinal](d domain.Domain[T]) ([]*permutation.Permutation[T], error) {
	n := d.Size()
	if n < 2 {
		return nil, ErrInvalidDomainSize
	}

	pts := d.Points()
	result := make([]*permutation.Permutation[T], 0, n-1)
	for i := 1; i < n; i++ {
		loop, _ := permloop.New(pts[0], pts[i])
		result = append(result, permutation.New(d, []*permloop.Loop[T]{loop}))
	}

	return result, nil
}

// MinSymmetric returns Cyclic(D) plus the transposition (start start+1), a
// minimal two-element generating set for the symmetric group. Fails with
// ErrInvalidDomainSize if n < 2.
func MinSymmetric[T domain.Ordinal](d domain.Domain[T]) ([]*permutation.Permutation[T], error) {
	if d.Size() < 2 {
		return nil, ErrInvalidDomainSize
	}

	pts := d.Points()
	pair, _ := permloop.New(pts[0], pts[1])
	result := Cyclic(d)
	result = append(result, permutation.New(d, []*permloop.Loop[T]{pair}))

	return result, nil
}

// Alternating returns {(start start+1 start+i) : 2 <= i <= n-1}, generating
// the alternating group on D. Fails with ErrInvalidDomainSize if n < 3.
func Alternating[T domain.Ordinal](d domain.Domain[T]) ([]*permutation.Permutation[T], error) {
	n := d.Size()
	if n < 3 {
		return nil, ErrInvalidDomainSize
	}

	pts := d.Points()
	result := make([]*permutation.Permutation[T], 0, n-2)
	for i := 2; i < n; i++ {
		loop, _ := permloop.New(pts[0], pts[1], pts[i])
		result = append(result, permutation.New(d, []*permloop.Loop[T]{loop}))
	}

	return result, nil
}
