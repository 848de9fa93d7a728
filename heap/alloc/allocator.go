package alloc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/internal/hostmem"
	"github.com/joshuapare/heapkit/internal/logger"
)

// Ptr is the offset of an allocation's data region from the arena base.
type Ptr uint32

// Null is the pointer returned when an allocation cannot be satisfied. No
// data region starts at offset 0 because every chunk begins with a header.
const Null Ptr = 0

// Allocator serves best-fit allocations from a single heap.
type Allocator struct {
	h      *heap.Heap
	free   *FreeList
	log    *slog.Logger
	policy Policy
	stats  Stats
}

// New creates an allocator over h and indexes its free chunks.
//
// Parameters:
//   - h: The heap to allocate from; may already contain chunks
//   - config: Logger and violation policy (use nil for DefaultConfig)
func New(h *heap.Heap, config *Config) (*Allocator, error) {
	if config == nil {
		config = &DefaultConfig
	}
	if h.Closed() {
		return nil, heap.ErrClosed
	}

	// Worst case: the whole arena is minimal chunks, every one of them free.
	capacity := h.Size() / format.HeaderSize
	if err := hostmem.Check(uint64(capacity) * 4); err != nil {
		return nil, fmt.Errorf("%w: free list of %d entries: %w", heap.ErrInit, capacity, err)
	}

	a := &Allocator{
		h:      h,
		free:   NewFreeList(capacity),
		log:    config.Logger,
		policy: config.Policy,
	}
	if a.log == nil {
		a.log = logger.L
	}
	if a.policy == nil {
		a.policy = FatalPolicy
	}

	if err := a.rebuild(); err != nil {
		return nil, fmt.Errorf("alloc: index heap: %w", err)
	}
	return a, nil
}

// Heap returns the heap this allocator manages.
func (a *Allocator) Heap() *heap.Heap { return a.h }

// FreeList returns the free chunk index as of the last mutation.
func (a *Allocator) FreeList() *FreeList { return a.free }

// Close releases the free list storage and the heap buffer.
func (a *Allocator) Close() error {
	a.free.release()
	return a.h.Close()
}

// Alloc reserves at least size bytes and returns the data offset and the
// payload slice. Null with a nil error means size < 1 or no free chunk fits;
// the heap is unchanged in both cases. A non-nil error is either
// heap.ErrClosed or an integrity violation returned by the Policy.
func (a *Allocator) Alloc(size int) (Ptr, []byte, error) {
	a.stats.AllocCalls++

	if a.h.Closed() {
		return Null, nil, heap.ErrClosed
	}
	if size < 1 {
		a.stats.InvalidRequests++
		return Null, nil, nil
	}
	if size > a.h.Size() {
		a.stats.AllocFailures++
		a.log.Debug("alloc: request larger than heap", "size", size, "heap", a.h.Size())
		return Null, nil, nil
	}

	required := format.Align4(size) + format.HeaderSize

	best, found, err := a.bestFit(required)
	if err != nil {
		return Null, nil, err
	}
	if !found {
		a.stats.AllocFailures++
		a.log.Debug("alloc: no free chunk fits", "size", size, "required", required)
		return Null, nil, nil
	}

	if best.Size >= required+format.HeaderSize+format.MinSplitRemainder {
		rem := best.Size - required
		if err := a.h.SetChunk(best.Offset+required, format.StatusFree, rem); err != nil {
			return Null, nil, a.violation("alloc", KindCorrupt, Null, best.Offset+required, err)
		}
		a.stats.Splits++
		a.log.Debug("alloc: split chunk", "offset", best.Offset, "size", best.Size, "remainder", rem)
		best.Size = required
	}
	if err := a.h.SetChunk(best.Offset, format.StatusAllocated, best.Size); err != nil {
		return Null, nil, a.violation("alloc", KindCorrupt, Null, best.Offset, err)
	}
	best.Status = format.StatusAllocated
	a.stats.BytesAllocated += int64(best.Size)

	if err := a.rebuild(); err != nil {
		return Null, nil, a.violation("alloc", KindCorrupt, Null, -1, err)
	}

	return Ptr(best.DataOffset()), a.h.Payload(best), nil
}

// bestFit scans every chunk once and returns the smallest free chunk of at
// least required bytes. A strictly smaller size is needed to replace the
// current candidate, so equal sizes keep the lowest address.
func (a *Allocator) bestFit(required int) (heap.Chunk, bool, error) {
	var best heap.Chunk
	found := false

	it := a.h.Chunks()
	for {
		c, err := it.Next()
		if errors.Is(err, io.EOF) {
			return best, found, nil
		}
		if err != nil {
			return heap.Chunk{}, false, a.violation("alloc", KindCorrupt, Null, it.Offset(), err)
		}
		if c.IsFree() && c.Size >= required && (!found || c.Size < best.Size) {
			best = c
			found = true
		}
	}
}

// Payload returns the data region of the live allocation at p.
func (a *Allocator) Payload(p Ptr) ([]byte, error) {
	if a.h.Closed() {
		return nil, heap.ErrClosed
	}
	if !a.h.Contains(int(p)) {
		return nil, fmt.Errorf("%w: %d outside heap", ErrBadPtr, p)
	}
	it := a.h.Chunks()
	for {
		c, err := it.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %d", ErrBadPtr, p)
		}
		if err != nil {
			return nil, err
		}
		if c.DataOffset() == int(p) {
			if !c.IsAllocated() {
				return nil, fmt.Errorf("%w: %d is free", ErrBadPtr, p)
			}
			return a.h.Payload(c), nil
		}
	}
}

func (a *Allocator) rebuild() error {
	a.stats.Rebuilds++
	return a.free.Rebuild(a.h)
}

// violation records a detected integrity violation and hands it to the policy.
func (a *Allocator) violation(op string, kind Kind, p Ptr, off int, cause error) error {
	a.stats.Violations++
	e := &IntegrityError{Kind: kind, Op: op, Ptr: p, Offset: off, Err: cause}
	a.log.Error("heap integrity violation",
		"op", op,
		"kind", kind.String(),
		"ptr", uint32(p),
		"offset", off,
		"error", cause,
	)
	return a.policy(e)
}
