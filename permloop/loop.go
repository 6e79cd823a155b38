package permloop

import (
	"fmt"
	"strings"

	"github.com/permgroup/hcgt/domain"
)

// Loop is one disjoint cycle over a domain, stored with its smallest
// element first. A singleton loop (x) is primitive: it fixes x.
type Loop[T domain.Ordinal] struct {
	elems []T
}

// New builds a Loop from a sequence of distinct domain elements, rotating
// the minimum to the front. It fails with ErrEmptyLoop or
// ErrDuplicateElement if the invariants required of a cycle do not hold.
func New[T domain.Ordinal](elems ...T) (*Loop[T], error) {
	if len(elems) == 0 {
		return nil, ErrEmptyLoop
	}

	seen := make(map[T]struct{}, len(elems))
	for _, e := range elems {
		if _, ok := seen[e]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateElement, e)
		}
		seen[e] = struct{}{}
	}

	cp := append([]T(nil), elems...)
	l := &Loop[T]{elems: cp}
	l.reroll()

	return l, nil
}

// newUnchecked builds a Loop without validating uniqueness. Callers must
// already guarantee the invariant; used internally by CreateLoops and
// SimplifyLoops, which construct loops from cycle traces that are
// disjoint and non-empty by construction.
func newUnchecked[T domain.Ordinal](elems []T) *Loop[T] {
	l := &Loop[T]{elems: elems}
	l.reroll()

	return l
}

// Add appends x to the loop and re-canonicalizes.
func (l *Loop[T]) Add(x T) *Loop[T] {
	l.elems = append(l.elems, x)
	l.reroll()

	return l
}

// Inverse reverses the cyclic direction of the loop, leaving the smallest
// element in front. Loops of length <= 2 are their own inverse.
func (l *Loop[T]) Inverse() *Loop[T] {
	if len(l.elems) < 3 {
		return l
	}

	for i, j := 1, len(l.elems)-1; i < j; i, j = i+1, j-1 {
		l.elems[i], l.elems[j] = l.elems[j], l.elems[i]
	}

	return l
}

// Smallest returns the first (minimum) element of the loop.
func (l *Loop[T]) Smallest() T { return l.elems[0] }

// IsPrimitive reports whether the loop is a singleton, i.e. acts as the
// identity on its one element.
func (l *Loop[T]) IsPrimitive() bool { return len(l.elems) < 2 }

// Len returns the number of elements in the loop.
func (l *Loop[T]) Len() int { return len(l.elems) }

// Contains reports whether x is one of the loop's elements.
func (l *Loop[T]) Contains(x T) bool {
	for _, e := range l.elems {
		if e == x {
			return true
		}
	}

	return false
}

// Elements returns a copy of the loop's elements, smallest first.
func (l *Loop[T]) Elements() []T {
	return append([]T(nil), l.elems...)
}

// Clone returns an independent copy of the loop.
func (l *Loop[T]) Clone() *Loop[T] {
	return &Loop[T]{elems: append([]T(nil), l.elems...)}
}

// Apply maps x to its image under the loop: the next element following x,
// wrapping from the last element back to the first. Points not in the
// loop are fixed.
func (l *Loop[T]) Apply(x T) T {
	for i, e := range l.elems {
		if e == x {
			if i+1 < len(l.elems) {
				return l.elems[i+1]
			}

			return l.elems[0]
		}
	}

	return x
}

// ApplyToTable permutes the domain-sized table t in place by this loop,
// where t[Idx(x)] holds the current image of x. This is the hot primitive
// used by SimplifyLoops: it avoids materializing an intermediate
// permutation object per loop application.
func (l *Loop[T]) ApplyToTable(t []T, domStart T) {
	nxt := int(l.elems[0] - domStart)
	tmp := t[nxt]
	for _, e := range l.elems {
		prev := nxt
		nxt = int(e - domStart)
		if e == l.elems[0] {
			continue
		}

		t[prev] = t[nxt]
	}

	t[nxt] = tmp
}

// Equals reports whether l and rhs are the same cycle, element for
// element.
func (l *Loop[T]) Equals(rhs *Loop[T]) bool {
	if len(l.elems) != len(rhs.elems) {
		return false
	}

	for i := range l.elems {
		if l.elems[i] != rhs.elems[i] {
			return false
		}
	}

	return true
}

// Less defines a lexicographic order over loops: shorter loops sort
// first, then elementwise comparison of equal-length loops. It exists so
// Permutations may live in ordered containers.
func (l *Loop[T]) Less(rhs *Loop[T]) bool {
	if len(l.elems) != len(rhs.elems) {
		return len(l.elems) < len(rhs.elems)
	}

	for i := range l.elems {
		if l.elems[i] != rhs.elems[i] {
			return l.elems[i] < rhs.elems[i]
		}
	}

	return false
}

// String renders the loop in "(e0 e1 ... eL-1)" form.
func (l *Loop[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range l.elems {
		if i > 0 {
			b.WriteByte(' ')
		}

		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte(')')

	return b.String()
}

// reroll rotates the internal slice so its smallest element is first.
func (l *Loop[T]) reroll() {
	n := len(l.elems)
	minIdx := 0
	for i := 1; i < n; i++ {
		if l.elems[i] < l.elems[minIdx] {
			minIdx = i
		}
	}

	if minIdx == 0 {
		return
	}

	rotated := make([]T, n)
	for i := 0; i < n; i++ {
		rotated[i] = l.elems[(minIdx+i)%n]
	}
	l.elems = rotated
}
