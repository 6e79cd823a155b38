package allelements

import (
	"sort"

	"github.com/permgroup/hcgt/domain"
	"github.com/permgroup/hcgt/permutation"
)

// AllElements returns every element of the group generated by gens, found
// by breadth-first closure starting from the identity: each round applies
// every generator to every element first discovered in the previous round
// and keeps whatever hasn't been seen. Intended for small groups — the result grows with
// group order, not with the number of generators.
func AllElements[T domain.Ordinal](dom domain.Domain[T], gens []*permutation.Permutation[T]) []*permutation.Permutation[T] {
	id := permutation.Identity(dom)
	total := map[string]*permutation.Permutation[T]{id.String(): id}
	frontier := []*permutation.Permutation[T]{id}

	for len(frontier) > 0 {
		var next []*permutation.Permutation[T]
		for _, elem := range frontier {
			for _, g := range gens {
				newelem := permutation.Product(elem, g)
				key := newelem.String()
				if _, seen := total[key]; seen {
					continue
				}
				total[key] = newelem
				next = append(next, newelem)
			}
		}
		frontier = next
	}

	result := make([]*permutation.Permutation[T], 0, len(total))
	for _, p := range total {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Less(result[j]) })

	return result
}
