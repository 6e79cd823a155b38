package orbit

import (
	"github.com/permgroup/hcgt/domain"
	"github.com/permgroup/hcgt/permutation"
)

// Engine is the capability set both orbit representations implement:
// iterate orbit points, test membership, report size, produce a coset
// representative for any orbit point, and extend the orbit when a new
// generator is added.
type Engine[T domain.Ordinal] interface {
	// Beta returns the base point this orbit is anchored at.
	Beta() T

	// Points returns every orbit point in ascending order.
	Points() []T

	// Contains reports whether x is in the orbit.
	Contains(x T) bool

	// Size returns the number of orbit points.
	Size() int

	// UBeta returns some u in the generated group with Beta().Apply
	// composed with u sending Beta() to x. Returns ErrContractViolation
	// if x is not in the orbit. Returns the identity when x == Beta().
	UBeta(x T) (*permutation.Permutation[T], error)

	// ExtendOrbit enlarges the orbit after newGen is added to the
	// generating set. A no-op if newGen is already present.
	ExtendOrbit(newGen *permutation.Permutation[T])

	// String renders the orbit as "[ p: u_p ... ]".
	String() string
}

// Factory constructs an Engine of a particular kind (Direct or Schreier)
// for (beta, gens). Schreier-Sims takes a Factory as a policy parameter so
// callers choose the orbit representation without the algorithm caring.
type Factory[T domain.Ordinal] func(dom domain.Domain[T], beta T, gens []*permutation.Permutation[T]) Engine[T]

// DirectFactory builds DirectOrbit engines.
func DirectFactory[T domain.Ordinal](dom domain.Domain[T], beta T, gens []*permutation.Permutation[T]) Engine[T] {
	return NewDirect(dom, beta, gens)
}

// SchreierFactory builds SchreierOrbit engines.
func SchreierFactory[T domain.Ordinal](dom domain.Domain[T], beta T, gens []*permutation.Permutation[T]) Engine[T] {
	return NewSchreier(dom, beta, gens)
}
