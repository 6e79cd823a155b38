package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/permgroup/hcgt/domain"
)

func TestNew_ValidRange(t *testing.T) {
	d, err := domain.New(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Start())
	assert.Equal(t, 5, d.Fin())
	assert.Equal(t, 5, d.Size())
}

func TestNew_SinglePoint(t *testing.T) {
	d, err := domain.New(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Size())
}

func TestNew_EmptyRange(t *testing.T) {
	_, err := domain.New(5, 1)
	assert.True(t, errors.Is(err, domain.ErrEmptyDomain))
}

func TestDomain_IdxAndContains(t *testing.T) {
	d, err := domain.New(10, 15)
	require.NoError(t, err)

	assert.Equal(t, 0, d.Idx(10))
	assert.Equal(t, 5, d.Idx(15))
	assert.True(t, d.Contains(12))
	assert.False(t, d.Contains(9))
	assert.False(t, d.Contains(16))
}

func TestDomain_Points(t *testing.T) {
	d, err := domain.New(1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, d.Points())
}

func TestDomain_CharDomain(t *testing.T) {
	d, err := domain.New[rune]('a', 'd')
	require.NoError(t, err)
	assert.Equal(t, 4, d.Size())
	assert.Equal(t, []rune{'a', 'b', 'c', 'd'}, d.Points())
	assert.Equal(t, 2, d.Idx('c'))
}
