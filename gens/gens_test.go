package gens_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/permgroup/hcgt/domain"
	"github.com/permgroup/hcgt/gens"
)

func TestCyclic(t *testing.T) {
	d, err := domain.New(1, 5)
	require.NoError(t, err)

	g := gens.Cyclic(d)
	require.Len(t, g, 1)
	assert.Equal(t, 2, g[0].Apply(1))
	assert.Equal(t, 1, g[0].Apply(5))
}

func TestSymmetric(t *testing.T) {
	d, err := domain.New(1, 5)
	require.NoError(t, err)

	g, err := gens.Symmetric(d)
	require.NoError(t, err)
	assert.Len(t, g, 4)
}

func TestSymmetric_TooSmall(t *testing.T) {
	d, err := domain.New(1, 1)
	require.NoError(t, err)

	_, err = gens.Symmetric(d)
	assert.True(t, errors.Is(err, gens.ErrInvalidDomainSize))
}

func TestMinSymmetric(t *testing.T) {
	d, err := domain.New(1, 5)
	require.NoError(t, err)

	g, err := gens.MinSymmetric(d)
	require.NoError(t, err)
	assert.Len(t, g, 2)
}

func TestAlternating(t *testing.T) {
	d, err := domain.New(1, 5)
	require.NoError(t, err)

	g, err := gens.Alternating(d)
	require.NoError(t, err)
	assert.Len(t, g, 3)
	assert.Equal(t, 2, g[0].Apply(1))
	assert.Equal(t, 3, g[0].Apply(2))
	assert.Equal(t, 1, g[0].Apply(3))
}

func TestAlternating_TooSmall(t *testing.T) {
	d, err := domain.New(1, 2)
	require.NoError(t, err)

	_, err = gens.Alternating(d)
	assert.True(t, errors.Is(err, gens.ErrInvalidDomainSize))
}
