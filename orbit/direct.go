package orbit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/permgroup/hcgt/domain"
	"github.com/permgroup/hcgt/permutation"
)

// DirectOrbit stores the orbit of a point as an explicit map from orbit
// point to coset representative.
type DirectOrbit[T domain.Ordinal] struct {
	dom  domain.Domain[T]
	beta T
	orb  map[T]*permutation.Permutation[T]
	gens []*permutation.Permutation[T]
}

// NewDirect computes the full <gens>-orbit of beta as a DirectOrbit.
func NewDirect[T domain.Ordinal](dom domain.Domain[T], beta T, initGens []*permutation.Permutation[T]) *DirectOrbit[T] {
	o := &DirectOrbit[T]{
		dom:  dom,
		beta: beta,
		orb:  map[T]*permutation.Permutation[T]{beta: permutation.Identity(dom)},
	}
	for _, g := range initGens {
		o.addGenerator(g)
	}
	o.extendOrbit()

	return o
}

func (o *DirectOrbit[T]) Beta() T { return o.beta }

func (o *DirectOrbit[T]) Points() []T {
	pts := make([]T, 0, len(o.orb))
	for x := range o.orb {
		pts = append(pts, x)
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i] < pts[j] })

	return pts
}

func (o *DirectOrbit[T]) Contains(x T) bool {
	_, ok := o.orb[x]

	return ok
}

func (o *DirectOrbit[T]) Size() int { return len(o.orb) }

func (o *DirectOrbit[T]) UBeta(x T) (*permutation.Permutation[T], error) {
	rep, ok := o.orb[x]
	if !ok {
		return nil, ErrContractViolation
	}

	return rep, nil
}

func (o *DirectOrbit[T]) ExtendOrbit(newGen *permutation.Permutation[T]) {
	if o.addGenerator(newGen) {
		o.extendOrbit()
	}
}

func (o *DirectOrbit[T]) String() string {
	var b strings.Builder
	b.WriteString("[ ")
	for _, p := range o.Points() {
		fmt.Fprintf(&b, "%v", p)
		b.WriteString(": ")
		b.WriteString(o.orb[p].String())
		b.WriteString(" ")
	}
	b.WriteString("]")

	return b.String()
}

// addGenerator appends newGen if an equal generator is not already
// present, reporting whether it was added.
func (o *DirectOrbit[T]) addGenerator(newGen *permutation.Permutation[T]) bool {
	for _, g := range o.gens {
		if g.Equals(newGen) {
			return false
		}
	}
	o.gens = append(o.gens, newGen)

	return true
}

// extendOrbit runs BFS from the current orbit frontier, level by level,
// until no generator produces an unseen point.
func (o *DirectOrbit[T]) extendOrbit() {
	frontier := make(map[T]*permutation.Permutation[T], len(o.orb))
	for k, v := range o.orb {
		frontier[k] = v
	}

	for len(frontier) > 0 {
		next := make(map[T]*permutation.Permutation[T])
		for _, g := range o.gens {
			for elem, curgen := range frontier {
				newelem := g.Apply(elem)
				if _, seen := o.orb[newelem]; seen {
					continue
				}
				if _, dup := next[newelem]; dup {
					continue
				}
				next[newelem] = permutation.Product(curgen, g)
			}
		}
		for k, v := range next {
			o.orb[k] = v
		}
		frontier = next
	}
}
