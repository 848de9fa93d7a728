package heap

import "errors"

var (
	// ErrInit indicates the arena (or storage sized from it) could not be created.
	ErrInit = errors.New("heap: initialization failed")

	// ErrClosed indicates an operation on a heap after Close.
	ErrClosed = errors.New("heap: closed")

	// ErrCorrupt indicates chunk metadata that fails validation.
	ErrCorrupt = errors.New("heap: corrupt chunk metadata")

	// ErrBadOffset indicates an offset that cannot start a chunk header.
	ErrBadOffset = errors.New("heap: bad chunk offset")
)
