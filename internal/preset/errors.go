package preset

import "errors"

// ErrUnknownPreset is returned by Get when the requested name is not
// present in the embedded group file.
var ErrUnknownPreset = errors.New("preset: unknown group name")
