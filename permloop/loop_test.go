package permloop_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/permgroup/hcgt/permloop"
)

func TestNew_RotatesSmallestToFront(t *testing.T) {
	l, err := permloop.New(3, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 3}, l.Elements())
	assert.Equal(t, 1, l.Smallest())
}

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := permloop.New[int]()
	assert.True(t, errors.Is(err, permloop.ErrEmptyLoop))
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := permloop.New(1, 2, 1)
	assert.True(t, errors.Is(err, permloop.ErrDuplicateElement))
}

func TestLoop_IsPrimitive(t *testing.T) {
	single, err := permloop.New(5)
	require.NoError(t, err)
	assert.True(t, single.IsPrimitive())

	pair, err := permloop.New(1, 2)
	require.NoError(t, err)
	assert.False(t, pair.IsPrimitive())
}

func TestLoop_Apply(t *testing.T) {
	l, err := permloop.New(1, 2, 3) // (1 2 3): 1->2, 2->3, 3->1
	require.NoError(t, err)

	assert.Equal(t, 2, l.Apply(1))
	assert.Equal(t, 3, l.Apply(2))
	assert.Equal(t, 1, l.Apply(3))
	assert.Equal(t, 4, l.Apply(4)) // fixed point
}

func TestLoop_Add(t *testing.T) {
	l, err := permloop.New(3, 4)
	require.NoError(t, err)
	l.Add(1)
	assert.Equal(t, []int{1, 3, 4}, l.Elements())
}

func TestLoop_InverseShortLoopsNoOp(t *testing.T) {
	single, _ := permloop.New(1)
	single.Inverse()
	assert.Equal(t, []int{1}, single.Elements())

	pair, _ := permloop.New(1, 2)
	pair.Inverse()
	assert.Equal(t, []int{1, 2}, pair.Elements())
}

func TestLoop_InverseReversesDirection(t *testing.T) {
	l, err := permloop.New(1, 2, 3, 4)
	require.NoError(t, err)
	l.Inverse()
	assert.Equal(t, []int{1, 4, 3, 2}, l.Elements())
}

func TestLoop_EqualsAndLess(t *testing.T) {
	a, _ := permloop.New(1, 2, 3)
	b, _ := permloop.New(2, 3, 1)
	assert.True(t, a.Equals(b))

	shorter, _ := permloop.New(1, 2)
	assert.True(t, shorter.Less(a))
	assert.False(t, a.Less(shorter))
}

func TestLoop_String(t *testing.T) {
	l, err := permloop.New(2, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, "(1 3 2)", l.String())
}

func TestCreateLoops_FromTable(t *testing.T) {
	// domain [a..d] as runes; table maps position i (a+i) to given image.
	// [d, c, e, g, b, f, a] over CharDomain<a,g> from the source comment,
	// restricted here to a smaller, hand-checkable case over [a..d]:
	// a->c, b->b, c->d, d->a  gives loops (a c d) (b)
	table := []rune{'c', 'b', 'd', 'a'}
	loops := permloop.CreateLoops(table, 'a')
	require.Len(t, loops, 2)
	assert.Equal(t, "(a c d)", loops[0].String())
	assert.Equal(t, "(b)", loops[1].String())
}

func TestSimplifyLoops_ScenarioF(t *testing.T) {
	// (a c d) composed with (d a c)^-1 over [a..d] is the identity.
	acd, err := permloop.New('a', 'c', 'd')
	require.NoError(t, err)
	dac, err := permloop.New('d', 'a', 'c')
	require.NoError(t, err)
	dac.Inverse()

	simplified := permloop.SimplifyLoops([]*permloop.Loop[rune]{acd, dac}, 'a', 'd')
	require.Len(t, simplified, 4)
	for _, l := range simplified {
		assert.True(t, l.IsPrimitive())
	}
}
