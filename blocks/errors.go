package blocks

import "errors"

// ErrSamePoint is returned when the two seed points of PrimitiveBlocks
// coincide; a block system needs two distinct points to seed a merge.
var ErrSamePoint = errors.New("blocks: seed points must be distinct")
