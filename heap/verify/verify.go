package verify

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/heapkit/heap"
)

// ValidationError reports a broken invariant.
type ValidationError struct {
	Type    string
	Message string
	Offset  int
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// AllInvariants validates every heap invariant in one call.
// Returns the first error encountered, or nil if all checks pass.
func AllInvariants(h *heap.Heap, freeList []int) error {
	chunks, err := Tiling(h)
	if err != nil {
		return err
	}
	if err := noAdjacentFree(chunks); err != nil {
		return err
	}
	return freeListMatches(chunks, freeList)
}

// Tiling walks the heap and checks that its chunks exactly cover the arena.
// On success it returns the chunks in address order.
func Tiling(h *heap.Heap) ([]heap.Chunk, error) {
	if h.Closed() {
		return nil, &ValidationError{Type: "Tiling", Message: "heap is closed", Offset: -1}
	}

	var chunks []heap.Chunk
	total := 0
	it := h.Chunks()
	for {
		c, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ValidationError{
				Type:    "Tiling",
				Message: err.Error(),
				Offset:  it.Offset(),
			}
		}
		if c.Offset != total {
			return nil, &ValidationError{
				Type:    "Tiling",
				Message: fmt.Sprintf("chunk starts at %d, expected %d", c.Offset, total),
				Offset:  c.Offset,
			}
		}
		total += c.Size
		chunks = append(chunks, c)
	}

	if total != h.Size() {
		return nil, &ValidationError{
			Type:    "Tiling",
			Message: fmt.Sprintf("chunk sizes sum to %d, heap size is %d", total, h.Size()),
			Offset:  -1,
		}
	}
	return chunks, nil
}

// NoAdjacentFree checks that coalescing left no two neighboring free chunks.
func NoAdjacentFree(h *heap.Heap) error {
	chunks, err := Tiling(h)
	if err != nil {
		return err
	}
	return noAdjacentFree(chunks)
}

// FreeList checks that offsets is exactly the ascending list of free chunk offsets.
func FreeList(h *heap.Heap, offsets []int) error {
	chunks, err := Tiling(h)
	if err != nil {
		return err
	}
	return freeListMatches(chunks, offsets)
}

func noAdjacentFree(chunks []heap.Chunk) error {
	for i := 1; i < len(chunks); i++ {
		if chunks[i-1].IsFree() && chunks[i].IsFree() {
			return &ValidationError{
				Type: "Coalescing",
				Message: fmt.Sprintf("free chunk at %d is followed by free chunk at %d",
					chunks[i-1].Offset, chunks[i].Offset),
				Offset: chunks[i].Offset,
			}
		}
	}
	return nil
}

func freeListMatches(chunks []heap.Chunk, offsets []int) error {
	var want []int
	for _, c := range chunks {
		if c.IsFree() {
			want = append(want, c.Offset)
		}
	}
	if len(want) != len(offsets) {
		return &ValidationError{
			Type:    "FreeList",
			Message: fmt.Sprintf("index holds %d entries, heap has %d free chunks", len(offsets), len(want)),
			Offset:  -1,
		}
	}
	for i := range want {
		if offsets[i] != want[i] {
			return &ValidationError{
				Type:    "FreeList",
				Message: fmt.Sprintf("entry %d is %d, expected free chunk at %d", i, offsets[i], want[i]),
				Offset:  offsets[i],
			}
		}
	}
	return nil
}
