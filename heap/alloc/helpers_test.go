package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/verify"
	"github.com/joshuapare/heapkit/internal/logger"
	"github.com/joshuapare/heapkit/internal/testutil"
)

// span describes one chunk of a hand-built layout.
type span = testutil.Span

func payloadChunk(n int) int { return testutil.PayloadChunk(n) }

func newTestHeapWithLayout(t testing.TB, heapSize int, layout []span) (*heap.Heap, []int) {
	t.Helper()
	return testutil.NewHeap(t, heapSize, layout...)
}

// newTestAllocator builds an allocator that returns violations instead of exiting.
func newTestAllocator(t testing.TB, h *heap.Heap) *Allocator {
	t.Helper()
	a, err := New(h, &Config{Logger: logger.Discard(), Policy: ReturnPolicy})
	require.NoError(t, err)
	return a
}

// newFreshAllocator builds a heap of size bytes and an allocator over it.
func newFreshAllocator(t testing.TB, size int) *Allocator {
	t.Helper()
	h, err := heap.New(size)
	require.NoError(t, err)
	return newTestAllocator(t, h)
}

func chunksOf(t testing.TB, h *heap.Heap) []heap.Chunk {
	t.Helper()
	return testutil.Chunks(t, h)
}

// chunkAt fetches the chunk at off or fails the test.
func chunkAt(t testing.TB, h *heap.Heap, off int) heap.Chunk {
	t.Helper()
	c, err := h.ChunkAt(off)
	require.NoError(t, err)
	return c
}

// assertInvariants checks tiling, coalescing, and free list consistency.
func assertInvariants(t testing.TB, a *Allocator) {
	t.Helper()
	require.NoError(t, verify.AllInvariants(a.Heap(), a.FreeList().Offsets()))
}

func snapshot(h *heap.Heap) []byte { return testutil.Snapshot(h) }
