package randgen

import "errors"

// ErrNoGenerators is returned by New when called with an empty generator
// set: the state array needs at least one permutation to cycle through.
var ErrNoGenerators = errors.New("randgen: at least one generator is required")
