package alloc

import (
	"errors"
	"io"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/internal/format"
)

// Free returns the allocation at p to the heap and merges it with free
// neighbors. Null, a pointer that does not start an allocation's data region,
// and an already-free chunk are integrity violations handled by the Policy.
func (a *Allocator) Free(p Ptr) error {
	a.stats.FreeCalls++

	if a.h.Closed() {
		return heap.ErrClosed
	}
	if p == Null {
		return a.violation("free", KindNullPointer, p, -1, nil)
	}

	var prev *heap.Chunk
	it := a.h.Chunks()
	for {
		c, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return a.violation("free", KindCorrupt, p, it.Offset(), err)
		}

		if c.DataOffset() == int(p) {
			if !c.IsAllocated() {
				return a.violation("free", KindDoubleFree, p, c.Offset, nil)
			}
			return a.release(p, prev, c)
		}

		prevChunk := c
		prev = &prevChunk
	}

	return a.violation("free", KindForeignPointer, p, -1, nil)
}

// release marks c free, absorbing a free prev and a free next chunk.
func (a *Allocator) release(p Ptr, prev *heap.Chunk, c heap.Chunk) error {
	var next *heap.Chunk
	if c.End() < a.h.Size() {
		n, err := a.h.ChunkAt(c.End())
		if err != nil {
			return a.violation("free", KindCorrupt, p, c.End(), err)
		}
		next = &n
	}

	merged := c
	if prev != nil && prev.IsFree() {
		merged.Offset = prev.Offset
		merged.Size += prev.Size
		a.stats.CoalesceBackward++
	}
	if next != nil && next.IsFree() {
		merged.Size += next.Size
		a.stats.CoalesceForward++
	}
	if merged.Size != c.Size {
		a.log.Debug("free: coalesced", "offset", merged.Offset, "size", merged.Size, "freed", c.Size)
	}

	if err := a.h.SetChunk(merged.Offset, format.StatusFree, merged.Size); err != nil {
		return a.violation("free", KindCorrupt, p, merged.Offset, err)
	}
	a.stats.BytesFreed += int64(c.Size)

	if err := a.rebuild(); err != nil {
		return a.violation("free", KindCorrupt, p, -1, err)
	}
	return nil
}
