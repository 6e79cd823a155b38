package domain

import "errors"

// ErrEmptyDomain is returned when a constructor is given a domain with
// Fin < Start, i.e. fewer than one point.
var ErrEmptyDomain = errors.New("domain: fin must be >= start")
