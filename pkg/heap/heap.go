package heap

import (
	"fmt"
	"io"

	arena "github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/heap/printer"
	"github.com/joshuapare/heapkit/heap/verify"
)

// Heap is a handle to one arena and its allocator.
type Heap struct {
	a *alloc.Allocator
}

// Init creates a heap of at least size bytes. Sizes below 4096 are raised to
// 4096 and every size is rounded up to a multiple of 4. The error wraps
// ErrInit when the arena cannot be created.
func Init(size int, opts ...Option) (*Heap, error) {
	cfg := alloc.DefaultConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	h, err := arena.New(size)
	if err != nil {
		return nil, err
	}
	a, err := alloc.New(h, &cfg)
	if err != nil {
		_ = h.Close()
		return nil, err
	}
	return &Heap{a: a}, nil
}

// Size returns the arena size in bytes.
func (h *Heap) Size() int { return h.a.Heap().Size() }

// Allocate reserves at least size bytes. It returns Null with a nil error
// when size < 1 or no free chunk is large enough.
func (h *Heap) Allocate(size int) (Ptr, error) {
	p, _, err := h.a.Alloc(size)
	return p, err
}

// Release returns the allocation at p to the heap.
func (h *Heap) Release(p Ptr) error {
	return h.a.Free(p)
}

// Payload returns the writable data region of the live allocation at p. The
// slice is only valid until p is released.
func (h *Heap) Payload(p Ptr) ([]byte, error) {
	return h.a.Payload(p)
}

// Dump writes one line per chunk to w. verbosity is accepted for
// compatibility and does not change the output.
func (h *Heap) Dump(w io.Writer, verbosity int) error {
	if h.a.Heap().Closed() {
		return ErrClosed
	}
	return printer.Dump(w, h.a.Heap(), verbosity)
}

// DumpJSON writes the chunk layout to w as one JSON document.
func (h *Heap) DumpJSON(w io.Writer) error {
	if h.a.Heap().Closed() {
		return ErrClosed
	}
	return printer.New(w, printer.Options{Format: printer.FormatJSON}).Print(h.a.Heap())
}

// Stats returns the allocator counters and a fresh walk of the layout.
func (h *Heap) Stats() (Stats, error) {
	if h.a.Heap().Closed() {
		return Stats{}, ErrClosed
	}
	u, err := h.a.Usage()
	if err != nil {
		return Stats{}, fmt.Errorf("heap: stats: %w", err)
	}
	return Stats{Counters: h.a.Stats(), Usage: u}, nil
}

// Validate checks the chunk tiling, the absence of adjacent free chunks, and
// the free chunk index. It returns a *verify.ValidationError on failure.
func (h *Heap) Validate() error {
	if h.a.Heap().Closed() {
		return ErrClosed
	}
	return verify.AllInvariants(h.a.Heap(), h.a.FreeList().Offsets())
}

// FreeOffsets returns the ascending offsets of every free chunk.
func (h *Heap) FreeOffsets() []int {
	return h.a.FreeList().Offsets()
}

// Teardown releases the arena. Later calls on h return ErrClosed.
func (h *Heap) Teardown() {
	if h.a.Heap().Closed() {
		return
	}
	_ = h.a.Close()
}
