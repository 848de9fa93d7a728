package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a header.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBadStatus indicates a status tag that is neither free nor allocated.
	ErrBadStatus = errors.New("format: unknown status tag")
	// ErrBadSize indicates a declared chunk size that cannot describe a chunk.
	ErrBadSize = errors.New("format: invalid chunk size")
	// ErrChecksum indicates the header check word does not match its fields.
	ErrChecksum = errors.New("format: header check mismatch")
)
