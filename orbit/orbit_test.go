package orbit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/permgroup/hcgt/domain"
	"github.com/permgroup/hcgt/gens"
	"github.com/permgroup/hcgt/orbit"
	"github.com/permgroup/hcgt/permloop"
	"github.com/permgroup/hcgt/permutation"
)

func sym5(t *testing.T) (domain.Domain[int], []*permutation.Permutation[int]) {
	t.Helper()
	d, err := domain.New(1, 5)
	require.NoError(t, err)
	g, err := gens.Symmetric(d)
	require.NoError(t, err)

	return d, g
}

func loopPerm(t *testing.T, d domain.Domain[int], elems ...int) *permutation.Permutation[int] {
	t.Helper()
	l, err := permloop.New(elems...)
	require.NoError(t, err)

	return permutation.New(d, []*permloop.Loop[int]{l})
}

func TestDirectOrbit_FullDomainForTransitiveGens(t *testing.T) {
	d, g := sym5(t)
	o := orbit.NewDirect(d, 1, g)
	assert.Equal(t, 5, o.Size())
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, o.Points())
}

func TestDirectOrbit_UBetaContractViolation(t *testing.T) {
	dom, err := domain.New(1, 5)
	require.NoError(t, err)
	o := orbit.NewDirect(dom, 1, nil)
	assert.Equal(t, 1, o.Size())

	_, err = o.UBeta(3)
	assert.True(t, errors.Is(err, orbit.ErrContractViolation))
}

func TestDirectOrbit_UBetaIdentityAtBeta(t *testing.T) {
	d, g := sym5(t)
	o := orbit.NewDirect(d, 1, g)
	u, err := o.UBeta(1)
	require.NoError(t, err)
	assert.True(t, u.Equals(permutation.Identity(d)))
}

func TestOrbitEquivalence_DirectAndSchreier(t *testing.T) {
	d, g := sym5(t)
	direct := orbit.NewDirect(d, 1, g)
	schreier := orbit.NewSchreier(d, 1, g)

	assert.ElementsMatch(t, direct.Points(), schreier.Points())

	for _, gamma := range direct.Points() {
		du, err := direct.UBeta(gamma)
		require.NoError(t, err)
		su, err := schreier.UBeta(gamma)
		require.NoError(t, err)

		assert.Equal(t, gamma, du.Apply(1))
		assert.Equal(t, gamma, su.Apply(1))
	}
}

func TestExtendOrbit_GrowsAndIsIdempotent(t *testing.T) {
	d, err := domain.New(1, 5)
	require.NoError(t, err)

	transposition := loopPerm(t, d, 1, 2)
	o := orbit.NewDirect(d, 1, []*permutation.Permutation[int]{transposition})
	assert.Equal(t, 2, o.Size())

	o.ExtendOrbit(transposition) // duplicate: no-op
	assert.Equal(t, 2, o.Size())

	threeCycle := loopPerm(t, d, 1, 3, 5)
	o.ExtendOrbit(threeCycle)
	assert.Equal(t, 4, o.Size())
	assert.ElementsMatch(t, []int{1, 2, 3, 5}, o.Points())
}

func TestSchreierExtendOrbit_MatchesDirect(t *testing.T) {
	d, err := domain.New(1, 5)
	require.NoError(t, err)

	transposition := loopPerm(t, d, 1, 2)
	direct := orbit.NewDirect(d, 1, []*permutation.Permutation[int]{transposition})
	schreier := orbit.NewSchreier(d, 1, []*permutation.Permutation[int]{transposition})

	threeCycle := loopPerm(t, d, 1, 3, 5)
	direct.ExtendOrbit(threeCycle)
	schreier.ExtendOrbit(threeCycle)

	assert.ElementsMatch(t, direct.Points(), schreier.Points())
}

func TestOrbitStabilizer_GeneratorsFixBeta(t *testing.T) {
	d, g := sym5(t)
	o, stab := orbit.OrbitStabilizer[int](d, 1, g)
	assert.Equal(t, 5, o.Size())
	for _, s := range stab {
		assert.Equal(t, 1, s.Apply(1))
	}
}

func TestOrbitStabilizer_OrbitMatchesDirect(t *testing.T) {
	d, g := sym5(t)
	direct := orbit.NewDirect(d, 1, g)
	stabOrbit, _ := orbit.OrbitStabilizer[int](d, 1, g)
	assert.ElementsMatch(t, direct.Points(), stabOrbit.Points())
}
