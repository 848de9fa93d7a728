package heap

import (
	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/alloc"
)

// Ptr is the offset of an allocation's data region from the arena base.
type Ptr = alloc.Ptr

// Null is returned when an allocation cannot be satisfied.
const Null = alloc.Null

type (
	// IntegrityError describes a detected heap-integrity violation.
	IntegrityError = alloc.IntegrityError

	// Kind classifies an integrity violation.
	Kind = alloc.Kind

	// Policy decides what happens once a violation has been detected.
	Policy = alloc.Policy

	// Counters are cumulative allocator counters.
	Counters = alloc.Stats

	// Usage summarizes the current chunk layout.
	Usage = alloc.Usage
)

const (
	KindNullPointer    = alloc.KindNullPointer
	KindForeignPointer = alloc.KindForeignPointer
	KindDoubleFree     = alloc.KindDoubleFree
	KindCorrupt        = alloc.KindCorrupt
)

var (
	// FatalPolicy prints the violation and exits with status 1.
	FatalPolicy Policy = alloc.FatalPolicy

	// ReturnPolicy returns the violation to the caller.
	ReturnPolicy Policy = alloc.ReturnPolicy
)

var (
	ErrInit      = heap.ErrInit
	ErrClosed    = heap.ErrClosed
	ErrIntegrity = alloc.ErrIntegrity
)

// Stats combines the allocator counters with the current layout.
type Stats struct {
	Counters Counters
	Usage    Usage
}
