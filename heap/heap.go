package heap

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/internal/hostmem"
)

// Heap is a fixed-size arena tiled by chunks.
type Heap struct {
	data []byte
	size int
}

// New creates a heap of at least requested bytes. The size is clamped up to
// format.MinHeapSize and rounded up to a multiple of format.Granularity. The
// buffer starts as a single free chunk covering all of it.
func New(requested int) (*Heap, error) {
	size, ok := format.HeapSize(requested)
	if !ok {
		return nil, fmt.Errorf("%w: size %d exceeds maximum %d", ErrInit, requested, uint64(format.MaxHeapSize))
	}
	if err := hostmem.Check(uint64(size)); err != nil {
		return nil, fmt.Errorf("%w: arena of %d bytes: %w", ErrInit, size, err)
	}

	h := &Heap{
		data: make([]byte, size),
		size: size,
	}
	if err := h.SetChunk(0, format.StatusFree, size); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}
	return h, nil
}

// Size returns the arena size in bytes. It keeps reporting the original size
// after Close.
func (h *Heap) Size() int { return h.size }

// Bytes returns the backing buffer, or nil after Close.
func (h *Heap) Bytes() []byte { return h.data }

// Closed reports whether Close has been called.
func (h *Heap) Closed() bool { return h.data == nil }

// Close releases the backing buffer. Every later chunk access fails with ErrClosed.
func (h *Heap) Close() error {
	if h.data == nil {
		return ErrClosed
	}
	h.data = nil
	return nil
}

// Contains reports whether off lies inside the arena.
func (h *Heap) Contains(off int) bool {
	return off >= 0 && off < h.size
}
