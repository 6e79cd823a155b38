package permutation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/permgroup/hcgt/domain"
	"github.com/permgroup/hcgt/permloop"
	"github.com/permgroup/hcgt/permutation"
)

func mustDomain(t *testing.T, start, fin int) domain.Domain[int] {
	t.Helper()
	d, err := domain.New(start, fin)
	require.NoError(t, err)

	return d
}

func mustLoop(t *testing.T, elems ...int) *permloop.Loop[int] {
	t.Helper()
	l, err := permloop.New(elems...)
	require.NoError(t, err)

	return l
}

func TestIdentity_IsAllFixedPoints(t *testing.T) {
	d := mustDomain(t, 1, 5)
	id := permutation.Identity(d)
	for _, x := range d.Points() {
		assert.Equal(t, x, id.Apply(x))
	}
}

func TestNew_CanonicalizesAndCoversDomain(t *testing.T) {
	d := mustDomain(t, 1, 5)
	p := permutation.New(d, []*permloop.Loop[int]{mustLoop(t, 1, 3)})
	assert.Len(t, p.Loops(), 4) // (1 3), (2), (4), (5)

	seen := map[int]bool{}
	for _, l := range p.Loops() {
		for _, e := range l.Elements() {
			seen[e] = true
		}
	}
	assert.Len(t, seen, 5)
}

func TestApply_InverseRoundTrip(t *testing.T) {
	d := mustDomain(t, 1, 5)
	p := permutation.New(d, []*permloop.Loop[int]{mustLoop(t, 1, 3, 4), mustLoop(t, 2, 5)})
	inv := p.Inverse()

	for _, x := range d.Points() {
		assert.Equal(t, x, inv.Apply(p.Apply(x)))
		assert.Equal(t, x, p.Apply(inv.Apply(x)))
	}
}

func TestProduct_Associative(t *testing.T) {
	d := mustDomain(t, 1, 5)
	a := permutation.New(d, []*permloop.Loop[int]{mustLoop(t, 1, 2)})
	b := permutation.New(d, []*permloop.Loop[int]{mustLoop(t, 2, 3)})
	c := permutation.New(d, []*permloop.Loop[int]{mustLoop(t, 3, 4)})

	left := permutation.Product(a, permutation.Product(b, c))
	right := permutation.Product(permutation.Product(a, b), c)
	assert.True(t, left.Equals(right))
}

func TestProduct_IdentityLaws(t *testing.T) {
	d := mustDomain(t, 1, 5)
	p := permutation.New(d, []*permloop.Loop[int]{mustLoop(t, 1, 2, 3)})
	id := p.ID()

	assert.True(t, permutation.Product(p, id).Equals(p))
	assert.True(t, permutation.Product(id, p).Equals(p))
	assert.True(t, p.Power(0).Equals(id))
}

func TestPower_Law(t *testing.T) {
	d := mustDomain(t, 1, 5)
	p := permutation.New(d, []*permloop.Loop[int]{mustLoop(t, 1, 2, 3, 4, 5)})

	for k := -3; k <= 3; k++ {
		for m := -3; m <= 3; m++ {
			lhs := p.Power(k + m)
			rhs := permutation.Product(p.Power(k), p.Power(m))
			assert.Truef(t, lhs.Equals(rhs), "k=%d m=%d: %s != %s", k, m, lhs, rhs)
		}
	}
}

func TestLMulRMul_MatchProduct(t *testing.T) {
	d := mustDomain(t, 1, 3)
	a := permutation.New(d, []*permloop.Loop[int]{mustLoop(t, 1, 2)}) // (1 2)
	b := permutation.New(d, []*permloop.Loop[int]{mustLoop(t, 2, 3)}) // (2 3)

	// a first, then b: apply(1)=2 via a, then b(2)=3 -> 1 -> 3
	// apply(2)=1 via a, then b(1)=1 -> 2 -> 1
	// apply(3)=3 via a, then b(3)=2 -> 3 -> 2
	viaLMul := b.Clone().LMul(a)
	viaProduct := permutation.Product(a, b)
	assert.True(t, viaLMul.Equals(viaProduct))

	assert.Equal(t, 3, viaProduct.Apply(1))
	assert.Equal(t, 1, viaProduct.Apply(2))
	assert.Equal(t, 2, viaProduct.Apply(3))

	// self . other via RMul must equal Product(self, other)
	viaRMul := a.Clone().RMul(b)
	assert.True(t, viaRMul.Equals(permutation.Product(a, b)))
}

func TestNonPrimitiveLoopReverse(t *testing.T) {
	d := mustDomain(t, 1, 5)
	p := permutation.New(d, []*permloop.Loop[int]{mustLoop(t, 1, 3), mustLoop(t, 2, 4)})

	l, ok := p.NonPrimitiveLoopReverse()
	require.True(t, ok)
	// stored order (smallest descending): (5), (2 4), (1 3).
	// scanning in reverse hits (1 3) first.
	assert.Equal(t, 1, l.Smallest())
}

func TestString(t *testing.T) {
	d := mustDomain(t, 1, 3)
	p := permutation.New(d, []*permloop.Loop[int]{mustLoop(t, 1, 2)})
	assert.Equal(t, "(3)(1 2)", p.String())
}
