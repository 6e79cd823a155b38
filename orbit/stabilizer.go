package orbit

import (
	"github.com/permgroup/hcgt/domain"
	"github.com/permgroup/hcgt/permutation"
)

// OrbitStabilizer computes the orbit of beta under gens together with a
// generating set for the point stabilizer of beta, collected as a side
// effect of the same BFS: whenever a generator maps a frontier point to a
// point recorded in an earlier round, the path product times the inverse
// of the recorded coset representative fixes beta and is collected as a
// stabilizer generator (a Schreier generator, HCGT's own name for this
// side output). No check against the identity is made, so the returned
// set may contain identity permutations.
//
// This predates folding the same computation into Schreier-Sims, where
// discrepancies of this kind are stripped through the growing BSGS
// instead of collected wholesale; it is exposed standalone because HCGT
// presents orbit-and-stabilizer as its own numbered algorithm.
func OrbitStabilizer[T domain.Ordinal](dom domain.Domain[T], beta T, gens []*permutation.Permutation[T]) (*DirectOrbit[T], []*permutation.Permutation[T]) {
	delta := map[T]*permutation.Permutation[T]{beta: permutation.Identity(dom)}
	deltaNext := map[T]*permutation.Permutation[T]{beta: permutation.Identity(dom)}
	var stabilizer []*permutation.Permutation[T]

	for len(deltaNext) > 0 {
		tmp := make(map[T]*permutation.Permutation[T])
		for elem, curgen := range deltaNext {
			for _, g := range gens {
				newelem := g.Apply(elem)
				newgen := permutation.Product(curgen, g)
				if existing, ok := delta[newelem]; !ok {
					tmp[newelem] = newgen
				} else {
					stabilizer = append(stabilizer, permutation.Product(newgen, existing.Inverse()))
				}
			}
		}
		for k, v := range tmp {
			delta[k] = v
		}
		deltaNext = tmp
	}

	orbit := &DirectOrbit[T]{
		dom:  dom,
		beta: beta,
		orb:  delta,
		gens: append([]*permutation.Permutation[T](nil), gens...),
	}

	return orbit, stabilizer
}
