package orbit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/permgroup/hcgt/domain"
	"github.com/permgroup/hcgt/permutation"
)

// SchreierOrbit stores the orbit of a point as a Schreier vector over the
// whole domain, plus the generator (and precomputed inverse-generator)
// lists it was built from. Coset representatives are reconstructed on
// demand by walking the vector back to the base point.
type SchreierOrbit[T domain.Ordinal] struct {
	dom     domain.Domain[T]
	beta    T
	orb     map[T]struct{}
	v       []int
	gens    []*permutation.Permutation[T]
	invgens []*permutation.Permutation[T]
}

// NewSchreier computes the full <gens>-orbit of beta as a SchreierOrbit.
func NewSchreier[T domain.Ordinal](dom domain.Domain[T], beta T, initGens []*permutation.Permutation[T]) *SchreierOrbit[T] {
	o := &SchreierOrbit[T]{
		dom: dom,
		beta: beta,
		orb:  map[T]struct{}{beta: {}},
		v:    make([]int, dom.Size()),
	}
	o.v[dom.Idx(beta)] = -1
	for _, g := range initGens {
		o.addGenerator(g)
	}
	o.extendOrbit()

	return o
}

func (o *SchreierOrbit[T]) Beta() T { return o.beta }

func (o *SchreierOrbit[T]) Points() []T {
	pts := make([]T, 0, len(o.orb))
	for x := range o.orb {
		pts = append(pts, x)
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i] < pts[j] })

	return pts
}

func (o *SchreierOrbit[T]) Contains(x T) bool {
	_, ok := o.orb[x]

	return ok
}

func (o *SchreierOrbit[T]) Size() int { return len(o.orb) }

// UBeta reconstructs a coset representative by walking the Schreier
// vector back to beta: while the current point isn't beta, left-multiply
// the accumulator by the generator that discovered it, then step to the
// predecessor via the corresponding inverse generator.
func (o *SchreierOrbit[T]) UBeta(x T) (*permutation.Permutation[T], error) {
	if !o.dom.Contains(x) {
		return nil, ErrContractViolation
	}
	if _, ok := o.orb[x]; !ok {
		return nil, ErrContractViolation
	}

	res := permutation.Identity(o.dom)
	k := o.v[o.dom.Idx(x)]
	for k != -1 {
		gen := o.gens[k-1]
		res.LMul(gen)
		x = o.invgens[k-1].Apply(x)
		k = o.v[o.dom.Idx(x)]
	}

	return res, nil
}

func (o *SchreierOrbit[T]) ExtendOrbit(newGen *permutation.Permutation[T]) {
	if o.addGenerator(newGen) {
		o.extendOrbit()
	}
}

func (o *SchreierOrbit[T]) String() string {
	var b strings.Builder
	b.WriteString("[ ")
	for _, p := range o.Points() {
		u, _ := o.UBeta(p)
		fmt.Fprintf(&b, "%v", p)
		b.WriteString(": ")
		b.WriteString(u.String())
		b.WriteString(" ")
	}
	b.WriteString("]")

	return b.String()
}

func (o *SchreierOrbit[T]) addGenerator(newGen *permutation.Permutation[T]) bool {
	for _, g := range o.gens {
		if g.Equals(newGen) {
			return false
		}
	}
	o.gens = append(o.gens, newGen)
	o.invgens = append(o.invgens, newGen.Inverse())

	return true
}

func (o *SchreierOrbit[T]) extendOrbit() {
	frontier := make([]T, 0, len(o.orb))
	for x := range o.orb {
		frontier = append(frontier, x)
	}

	for len(frontier) > 0 {
		seen := make(map[T]struct{})
		var next []T
		for _, elem := range frontier {
			for k, g := range o.gens {
				newelem := g.Apply(elem)
				if _, in := o.orb[newelem]; in {
					continue
				}
				if _, dup := seen[newelem]; !dup {
					seen[newelem] = struct{}{}
					next = append(next, newelem)
				}
				o.v[o.dom.Idx(newelem)] = k + 1
			}
		}
		for _, x := range next {
			o.orb[x] = struct{}{}
		}
		frontier = next
	}
}
