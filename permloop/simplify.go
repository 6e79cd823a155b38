package permloop

import "github.com/permgroup/hcgt/domain"

// CreateLoops decomposes a permutation given by its image table into
// disjoint canonical loops. t must have one entry per domain point in
// order, i.e. t[i] holds the image of domStart+i. Loops are returned in
// order of increasing first element.
func CreateLoops[T domain.Ordinal](t []T, domStart T) []*Loop[T] {
	marked := make([]bool, len(t))
	var loops []*Loop[T]

	for relt := 0; relt < len(t); relt++ {
		if marked[relt] {
			continue
		}

		start := domStart + T(relt)
		elems := []T{start}
		marked[relt] = true

		for nxt := t[relt]; nxt != start; nxt = t[int(nxt-domStart)] {
			elems = append(elems, nxt)
			marked[int(nxt-domStart)] = true
		}

		loops = append(loops, newUnchecked(elems))
	}

	return loops
}

// SimplifyLoops reduces a (possibly overlapping, redundant) sequence of
// loops to its canonical disjoint-cycle decomposition over [domStart,
// domFin]. Loops are applied to an identity table in reverse input order,
// so loops[0] is applied to the table last and therefore acts on a point
// first — the composition reads left to right, matching
// the convention x . (g . h) = (x . g) . h. See TAOCP 1.3.3B.
func SimplifyLoops[T domain.Ordinal](loops []*Loop[T], domStart, domFin T) []*Loop[T] {
	n := int(domFin-domStart) + 1
	table := make([]T, n)
	for i := 0; i < n; i++ {
		table[i] = domStart + T(i)
	}

	for i := len(loops) - 1; i >= 0; i-- {
		loops[i].ApplyToTable(table, domStart)
	}

	return CreateLoops(table, domStart)
}
