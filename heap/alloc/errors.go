package alloc

import "errors"

var (
	// ErrIntegrity matches every *IntegrityError via errors.Is.
	ErrIntegrity = errors.New("alloc: heap integrity violation")

	// ErrFreeListFull indicates more free chunks than the index was sized for.
	// A heap that satisfies its invariants cannot reach this.
	ErrFreeListFull = errors.New("alloc: free list capacity exceeded")

	// ErrBadPtr indicates a lookup for a pointer that is not a live allocation.
	ErrBadPtr = errors.New("alloc: pointer is not a live allocation")
)
