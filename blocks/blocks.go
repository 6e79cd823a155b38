package blocks

import (
	"sort"

	"github.com/permgroup/hcgt/domain"
	"github.com/permgroup/hcgt/permutation"
)

// PrimitiveBlocks computes the finest block system of a transitive action
// that puts num1 and num2 in the same block, given the action's
// generators. The result is a partition of dom: every block sorted
// ascending, blocks ordered by ascending smallest element.
//
// The algorithm is union-find over classes of points: num1 and num2 seed
// class 0, every other point starts in its own singleton class, and a
// queue of "recently merged" representatives drives propagation — every
// generator applied to a merged pair may force another pair of classes
// together, which is why a point re-enters the queue whenever its class
// absorbs another.
func PrimitiveBlocks[T domain.Ordinal](dom domain.Domain[T], num1, num2 T, gens []*permutation.Permutation[T]) ([][]T, error) {
	if num1 == num2 {
		return nil, ErrSamePoint
	}

	classes := make(map[T]int)
	reps := make(map[int]T)
	var queue []T

	classes[num1] = 0
	classes[num2] = 0
	reps[0] = num1
	queue = append(queue, num2)

	classnum := 1
	for _, elem := range dom.Points() {
		if elem == num1 || elem == num2 {
			continue
		}
		classes[elem] = classnum
		reps[classnum] = elem
		classnum++
	}

	for len(queue) > 0 {
		gamma := queue[0]
		queue = queue[1:]

		for _, gen := range gens {
			delta := reps[classes[gamma]]
			c1 := classes[gen.Apply(gamma)]
			c2 := classes[gen.Apply(delta)]
			kappa := reps[c1]
			lambda := reps[c2]

			if kappa == lambda {
				continue
			}
			if c1 > c2 {
				c1, c2 = c2, c1
				kappa, lambda = lambda, kappa
			}
			for pt, c := range classes {
				if c == c2 {
					classes[pt] = c1
				}
			}
			reps[c1] = kappa
			queue = append(queue, lambda)
		}
	}

	return groupByClass(classes), nil
}

// groupByClass turns a point->class map into blocks sorted ascending
// within each block, blocks ordered by ascending smallest element.
func groupByClass[T domain.Ordinal](classes map[T]int) [][]T {
	byClass := make(map[int][]T)
	for pt, c := range classes {
		byClass[c] = append(byClass[c], pt)
	}

	blocks := make([][]T, 0, len(byClass))
	for _, pts := range byClass {
		sort.Slice(pts, func(i, j int) bool { return pts[i] < pts[j] })
		blocks = append(blocks, pts)
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i][0] < blocks[j][0] })

	return blocks
}
