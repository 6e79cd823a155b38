package bsgs

import "errors"

// ErrTrivialGenerators is returned by SchreierSims when every candidate
// base point is fixed by every generator, so no base can be started.
var ErrTrivialGenerators = errors.New("bsgs: no domain point is moved by any generator")

// ErrDuplicateBaseExtension is returned when Schreier-Sims computes a
// base-extension candidate that is already present in the base; this
// signals an inconsistency between the base and the strong generating
// set rather than a normal termination condition.
var ErrDuplicateBaseExtension = errors.New("bsgs: base-extension candidate already in base")

// ErrOrbitOverflow is returned when Schreier-Sims' internal consistency
// check on the next level index fails; this should never happen and
// signals a bug in Strip or the orbit engine.
var ErrOrbitOverflow = errors.New("bsgs: orbit extended beyond possible level")

// ErrContractViolation is returned by Strip when the base and the orbit
// engine slice it is given have mismatched lengths.
var ErrContractViolation = errors.New("bsgs: base and orbit engines have mismatched length")
