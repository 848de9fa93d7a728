// Package testutil builds hand-crafted heap layouts for tests.
package testutil

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/internal/format"
)

// Span describes one chunk of a layout.
type Span struct {
	Size int
	Free bool
}

// Free returns a free span of size bytes.
func Free(size int) Span { return Span{Size: size, Free: true} }

// Used returns an allocated span of size bytes.
func Used(size int) Span { return Span{Size: size} }

// PayloadChunk returns the chunk size needed to hold n payload bytes.
func PayloadChunk(n int) int {
	return format.Align4(n) + format.HeaderSize
}

// NewHeap creates a heap of heapSize bytes and writes layout from offset 0.
// Whatever the layout leaves uncovered becomes one allocated chunk, so
// leftover space never competes in best-fit searches. It returns the heap and
// the offset of each layout entry.
//
// Example:
//
//	h, offs := testutil.NewHeap(t, 4096, testutil.Free(64), testutil.Used(112))
func NewHeap(t testing.TB, heapSize int, layout ...Span) (*heap.Heap, []int) {
	t.Helper()

	h, err := heap.New(heapSize)
	require.NoError(t, err)

	offsets := make([]int, len(layout))
	off := 0
	for i, s := range layout {
		st := format.StatusAllocated
		if s.Free {
			st = format.StatusFree
		}
		require.NoError(t, h.SetChunk(off, st, s.Size), "layout entry %d", i)
		offsets[i] = off
		off += s.Size
	}
	if len(layout) > 0 && off < h.Size() {
		require.GreaterOrEqual(t, h.Size()-off, format.HeaderSize, "layout leaves a sliver")
		require.NoError(t, h.SetChunk(off, format.StatusAllocated, h.Size()-off))
	}
	return h, offsets
}

// Chunks returns the current layout of h in address order.
func Chunks(t testing.TB, h *heap.Heap) []heap.Chunk {
	t.Helper()
	var out []heap.Chunk
	it := h.Chunks()
	for {
		c, err := it.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, c)
	}
}

// Snapshot copies the arena so a test can assert it was not modified.
func Snapshot(h *heap.Heap) []byte {
	return append([]byte(nil), h.Bytes()...)
}
