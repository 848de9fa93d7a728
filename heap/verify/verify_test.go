package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/internal/testutil"
)

func newLayout(t *testing.T, sizes []int, free []bool) *heap.Heap {
	t.Helper()
	layout := make([]testutil.Span, len(sizes))
	for i, sz := range sizes {
		layout[i] = testutil.Span{Size: sz, Free: free[i]}
	}
	h, _ := testutil.NewHeap(t, 4096, layout...)
	return h
}

func TestAllInvariants_FreshHeap(t *testing.T) {
	h, err := heap.New(4096)
	require.NoError(t, err)
	require.NoError(t, AllInvariants(h, []int{0}))
}

func TestAllInvariants_MixedLayout(t *testing.T) {
	h := newLayout(t, []int{112, 64, 4096 - 176}, []bool{false, true, false})
	require.NoError(t, AllInvariants(h, []int{112}))
}

func TestTiling_ReportsCorruption(t *testing.T) {
	h := newLayout(t, []int{112, 4096 - 112}, []bool{false, true})
	h.Bytes()[112+format.SizeOffset] ^= 0xFF

	_, err := Tiling(h)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Tiling", ve.Type)
	assert.Equal(t, 112, ve.Offset)
}

func TestTiling_Closed(t *testing.T) {
	h, err := heap.New(4096)
	require.NoError(t, err)
	require.NoError(t, h.Close())
	_, err = Tiling(h)
	assert.Error(t, err)
}

func TestNoAdjacentFree(t *testing.T) {
	h := newLayout(t, []int{64, 64, 4096 - 128}, []bool{true, true, false})
	err := NoAdjacentFree(h)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Coalescing", ve.Type)
	assert.Equal(t, 64, ve.Offset)
}

func TestFreeList(t *testing.T) {
	h := newLayout(t, []int{64, 64, 64, 4096 - 192}, []bool{true, false, true, false})

	require.NoError(t, FreeList(h, []int{0, 128}))
	assert.Error(t, FreeList(h, []int{128, 0}), "order matters")
	assert.Error(t, FreeList(h, []int{0}), "missing entry")
	assert.Error(t, FreeList(h, []int{0, 64}), "allocated chunk listed")
}

func TestValidationErrorMessage(t *testing.T) {
	e := &ValidationError{Type: "FreeList", Message: "bad", Offset: -1}
	assert.Equal(t, "FreeList: bad", e.Error())
	e.Offset = 12
	assert.Equal(t, "FreeList at offset 12: bad", e.Error())
}
