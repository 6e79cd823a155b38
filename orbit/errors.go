package orbit

import "errors"

// ErrContractViolation is returned when UBeta is called on a point
// outside the orbit.
var ErrContractViolation = errors.New("orbit: point is not in the orbit")
