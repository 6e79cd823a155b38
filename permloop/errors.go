package permloop

import "errors"

var (
	// ErrEmptyLoop is returned when New is given zero elements.
	ErrEmptyLoop = errors.New("permloop: loop must be non-empty")

	// ErrDuplicateElement is returned when New is given a repeated element;
	// a cycle cannot visit the same point twice.
	ErrDuplicateElement = errors.New("permloop: loop elements must be unique")
)
