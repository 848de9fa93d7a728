package alloc

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/joshuapare/heapkit/heap"
)

// FreeList is the ascending index of free chunk offsets. Its storage is
// allocated once, sized for the worst case, and never grows.
type FreeList struct {
	offs []uint32
}

// NewFreeList returns an empty index able to hold capacity entries.
func NewFreeList(capacity int) *FreeList {
	return &FreeList{offs: make([]uint32, 0, capacity)}
}

// Rebuild replaces the index contents with the free chunks of h. It scans the
// whole arena once and sorts the result even though the scan already yields
// ascending offsets.
func (fl *FreeList) Rebuild(h *heap.Heap) error {
	fl.offs = fl.offs[:0]

	it := h.Chunks()
	for {
		c, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if !c.IsFree() {
			continue
		}
		if len(fl.offs) == cap(fl.offs) {
			return fmt.Errorf("%w: %d entries", ErrFreeListFull, cap(fl.offs))
		}
		fl.offs = append(fl.offs, uint32(c.Offset))
	}

	slices.Sort(fl.offs)
	return nil
}

// Len returns the number of free chunks recorded by the last Rebuild.
func (fl *FreeList) Len() int { return len(fl.offs) }

// Cap returns the fixed capacity of the index.
func (fl *FreeList) Cap() int { return cap(fl.offs) }

// At returns the i-th free chunk offset.
func (fl *FreeList) At(i int) int { return int(fl.offs[i]) }

// Offsets returns a copy of the index.
func (fl *FreeList) Offsets() []int {
	out := make([]int, len(fl.offs))
	for i, off := range fl.offs {
		out[i] = int(off)
	}
	return out
}

func (fl *FreeList) release() { fl.offs = nil }
