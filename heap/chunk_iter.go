package heap

import "io"

// ChunkIterator walks the chunks of a heap in address order.
type ChunkIterator struct {
	h    *Heap
	off  int
	done bool
}

// Chunks returns an iterator positioned at the first chunk.
func (h *Heap) Chunks() *ChunkIterator {
	return &ChunkIterator{h: h}
}

// Offset returns where the next call to Next will read.
func (it *ChunkIterator) Offset() int { return it.off }

// Next returns the next chunk, io.EOF once the end of the arena is reached,
// or the validation error of the first bad header. The iterator stops after
// the first error.
func (it *ChunkIterator) Next() (Chunk, error) {
	if it.done {
		return Chunk{}, io.EOF
	}
	if it.off == it.h.size {
		it.done = true
		return Chunk{}, io.EOF
	}

	c, err := it.h.ChunkAt(it.off)
	if err != nil {
		it.done = true
		return Chunk{}, err
	}
	it.off = c.End()
	return c, nil
}
