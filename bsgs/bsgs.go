package bsgs

import (
	"github.com/permgroup/hcgt/domain"
	"github.com/permgroup/hcgt/orbit"
	"github.com/permgroup/hcgt/permutation"
)

// BSGS is a base and strong generating set: a chain of point stabilizers
// Stab(β1) ⊇ Stab(β1,β2) ⊇ ... recorded as a base, one generating set per
// level, and one orbit engine per level, anchored at the corresponding
// base point under the corresponding generating set.
type BSGS[T domain.Ordinal] struct {
	Base   []T
	Gens   [][]*permutation.Permutation[T]
	Orbits []orbit.Engine[T]
}

// Contains reports whether g belongs to the group generated by the
// top-level generating set, via Strip.
func (b *BSGS[T]) Contains(g *permutation.Permutation[T]) bool {
	h, idx, err := Strip(g, b.Base, b.Orbits)
	if err != nil {
		return false
	}

	return idx == len(b.Base) && h.Equals(permutation.Identity(g.Domain()))
}

// Strip sifts g through base and the matching per-level orbit engines,
// returning the residual permutation and the escape index: the first
// level at which the residual sends the base point outside the level's
// orbit. An escape index of len(base) with an identity residual means g
// belongs to the group these levels certify.
func Strip[T domain.Ordinal](g *permutation.Permutation[T], base []T, orbits []orbit.Engine[T]) (*permutation.Permutation[T], int, error) {
	if len(base) != len(orbits) {
		return nil, 0, ErrContractViolation
	}

	h := g.Clone()
	for i, beta := range base {
		gamma := h.Apply(beta)
		if !orbits[i].Contains(gamma) {
			return h, i, nil
		}
		u, err := orbits[i].UBeta(gamma)
		if err != nil {
			return nil, 0, err
		}
		h.RMul(u.Inverse())
	}

	return h, len(base), nil
}

// newgenOutcome is the result of trying to insert a candidate generator
// into an existing BSGS: whether the base/orbit chain needs updating at
// all, whether the base itself needs a new point, the extension point
// when it does, the level the update lands on, and the residual to
// insert there.
type newgenOutcome[T domain.Ordinal] struct {
	needRecalc bool
	needExtend bool
	gamma      T
	newidx     int
	h          *permutation.Permutation[T]
}

// tryNewgen strips newgen through the current (base, orbits) and decides
// how the chain must change to absorb it.
func tryNewgen[T domain.Ordinal](newgen *permutation.Permutation[T], base []T, orbits []orbit.Engine[T]) (newgenOutcome[T], error) {
	h, j, err := Strip(newgen, base, orbits)
	if err != nil {
		return newgenOutcome[T]{}, err
	}

	out := newgenOutcome[T]{h: h, newidx: j}

	if j == len(base) && !h.Equals(permutation.Identity(h.Domain())) {
		out.needExtend = true
		loop, ok := h.NonPrimitiveLoopReverse()
		if !ok {
			return newgenOutcome[T]{}, ErrOrbitOverflow
		}
		out.gamma = loop.Smallest()
		for _, b := range base {
			if b == out.gamma {
				return newgenOutcome[T]{}, ErrDuplicateBaseExtension
			}
		}
	}

	out.needRecalc = j != len(base) || out.needExtend

	return out, nil
}

// extendBaseResult mirrors newgenOutcome but adds the flag for "nothing
// to do at this level", distinct from an error.
type extendBaseResult[T domain.Ordinal] struct {
	found   bool
	outcome newgenOutcome[T]
}

// extendBase looks, at level curidx, for a Schreier generator that isn't
// already accounted for by the current chain: for every orbit point β
// and every generator x at this level, the two ways of reaching β·x
// (via u_β then x, versus via u_{β·x} directly) must agree; when they
// don't, the discrepancy is a new generator to fold into the chain.
func extendBase[T domain.Ordinal](curidx int, base []T, gensPerLevel [][]*permutation.Permutation[T], orbits []orbit.Engine[T]) (extendBaseResult[T], error) {
	delta := orbits[curidx]
	for _, beta := range delta.Points() {
		uBeta, err := delta.UBeta(beta)
		if err != nil {
			return extendBaseResult[T]{}, err
		}
		for _, x := range gensPerLevel[curidx] {
			ubx := permutation.Product(uBeta, x)
			ubxAlt, err := delta.UBeta(x.Apply(beta))
			if err != nil {
				return extendBaseResult[T]{}, err
			}
			if ubx.Equals(ubxAlt) {
				continue
			}

			newgen := permutation.Product(ubx, ubxAlt.Inverse())
			outcome, err := tryNewgen(newgen, base, orbits)
			if err != nil {
				return extendBaseResult[T]{}, err
			}
			if outcome.needRecalc {
				return extendBaseResult[T]{found: true, outcome: outcome}, nil
			}
		}
	}

	return extendBaseResult[T]{}, nil
}

// SchreierSims derives a base and strong generating set from gens. The
// factory chooses the orbit-engine representation used at every level;
// pass orbit.DirectFactory or orbit.SchreierFactory.
func SchreierSims[T domain.Ordinal](dom domain.Domain[T], gens []*permutation.Permutation[T], factory orbit.Factory[T]) (*BSGS[T], error) {
	var beta T
	found := false
	for _, b := range dom.Points() {
		fixed := true
		for _, g := range gens {
			if g.Apply(b) != b {
				fixed = false
				break
			}
		}
		if !fixed {
			beta = b
			found = true
			break
		}
	}
	if !found {
		return nil, ErrTrivialGenerators
	}

	base := []T{beta}
	gensPerLevel := [][]*permutation.Permutation[T]{append([]*permutation.Permutation[T](nil), gens...)}
	orbits := []orbit.Engine[T]{factory(dom, beta, gensPerLevel[0])}

	curidx := 0
	for curidx != -1 {
		result, err := extendBase(curidx, base, gensPerLevel, orbits)
		if err != nil {
			return nil, err
		}
		if !result.found {
			curidx--
			continue
		}

		out := result.outcome
		if (!out.needExtend && out.newidx == len(gensPerLevel)) || out.newidx > len(gensPerLevel) {
			return nil, ErrOrbitOverflow
		}

		for l := curidx; l <= out.newidx; l++ {
			if out.needExtend && l == out.newidx {
				base = append(base, out.gamma)
				gensPerLevel = append(gensPerLevel, []*permutation.Permutation[T]{out.h})
				orbits = append(orbits, factory(dom, out.gamma, gensPerLevel[l]))

				continue
			}

			gensPerLevel[l] = append(gensPerLevel[l], out.h)
			orbits[l].ExtendOrbit(out.h)
		}

		curidx = out.newidx
	}

	return &BSGS[T]{Base: base, Gens: gensPerLevel, Orbits: orbits}, nil
}
