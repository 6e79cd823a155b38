package gens

import "errors"

// ErrInvalidDomainSize is returned when a factory is asked for a
// generator set over a domain too small to support it (symmetric and
// min_symmetric require at least 2 points, alternating at least 3).
var ErrInvalidDomainSize = errors.New("gens: domain too small for this generator set")
