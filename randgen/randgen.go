package randgen

import (
	"math/rand/v2"

	"github.com/permgroup/hcgt/domain"
	"github.com/permgroup/hcgt/permutation"
)

// Options configures a Generator.
type Options struct {
	// WordLength is the size of the internal state array x. The
	// effective value is raised to max(10, len(gens)) regardless of
	// what is requested here.
	WordLength int
	// BurnIn is the number of update steps performed before the first
	// call to Next, to mix the initial state.
	BurnIn int
	// Source is the random source driving the walk. Nil defaults to
	// the package-level (process-global) source of math/rand/v2.
	Source *rand.Rand
}

// Option is a functional option for New.
type Option func(*Options)

// WithWordLength sets the requested size of the internal state array.
func WithWordLength(r int) Option {
	return func(o *Options) { o.WordLength = r }
}

// WithBurnIn sets the number of warm-up steps performed before the
// first element is returned.
func WithBurnIn(n int) Option {
	return func(o *Options) { o.BurnIn = n }
}

// WithSource injects a random source, making Generator's output
// deterministic across runs for a fixed seed.
func WithSource(src *rand.Rand) Option {
	return func(o *Options) { o.Source = src }
}

// Generator draws pseudo-random elements from the group generated by a
// fixed set of permutations via product replacement (HCGT §4.9): it
// never enumerates the group, maintaining instead a state array that a
// long random walk keeps well-mixed.
//
// A Generator is stateful and not safe for concurrent use.
type Generator[T domain.Ordinal] struct {
	dom domain.Domain[T]
	x   []*permutation.Permutation[T]
	x0  *permutation.Permutation[T]
	src *rand.Rand
}

// New builds a Generator over dom seeded from gens, and performs the
// configured burn-in. Fails with ErrNoGenerators if gens is empty.
func New[T domain.Ordinal](dom domain.Domain[T], gens []*permutation.Permutation[T], opts ...Option) (*Generator[T], error) {
	if len(gens) == 0 {
		return nil, ErrNoGenerators
	}

	cfg := &Options{WordLength: 10, BurnIn: 10}
	for _, opt := range opts {
		opt(cfg)
	}

	r := cfg.WordLength
	if r < len(gens) {
		r = len(gens)
	}
	if r < 10 {
		r = 10
	}

	x := make([]*permutation.Permutation[T], r)
	for i := range x {
		x[i] = gens[i%len(gens)].Clone()
	}

	g := &Generator[T]{
		dom: dom,
		x:   x,
		x0:  permutation.Identity(dom),
		src: cfg.Source,
	}
	for i := 0; i < cfg.BurnIn; i++ {
		g.step()
	}

	return g, nil
}

// Next advances the walk one step and returns the resulting element.
// The returned permutation is owned by the caller; Generator never
// mutates a value it has already returned.
func (g *Generator[T]) Next() *permutation.Permutation[T] {
	g.step()

	return g.x0
}

func (g *Generator[T]) step() {
	r := len(g.x)
	s := g.intn(r)
	t := g.intn(r - 1)
	if t >= s {
		t++
	}

	b := g.intn(2)
	e := g.intn(2)

	factor := g.x[t]
	if e == 0 {
		factor = factor.Inverse()
	}

	if b == 0 {
		g.x[s] = permutation.Product(g.x[s], factor)
		g.x0 = permutation.Product(g.x0, g.x[s])
	} else {
		g.x[s] = permutation.Product(factor, g.x[s])
		g.x0 = permutation.Product(g.x[s], g.x0)
	}
}

func (g *Generator[T]) intn(n int) int {
	if g.src != nil {
		return g.src.IntN(n)
	}

	return rand.IntN(n)
}
