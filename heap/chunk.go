package heap

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/buf"
	"github.com/joshuapare/heapkit/internal/format"
)

// Chunk is a decoded view of one chunk. It holds no reference to the buffer;
// re-read it after any mutation.
type Chunk struct {
	Offset int           // Offset of the header from the arena base
	Size   int           // Total size including the header
	Status format.Status // Free or allocated
}

// IsFree reports whether the chunk is free.
func (c Chunk) IsFree() bool { return c.Status == format.StatusFree }

// IsAllocated reports whether the chunk is in use.
func (c Chunk) IsAllocated() bool { return c.Status == format.StatusAllocated }

// DataOffset is the offset of the first byte after the header.
func (c Chunk) DataOffset() int { return c.Offset + format.HeaderSize }

// End is the offset one past the last byte of the chunk, where the next chunk starts.
func (c Chunk) End() int { return c.Offset + c.Size }

// ChunkAt decodes the chunk whose header starts at off.
func (h *Heap) ChunkAt(off int) (Chunk, error) {
	if h.data == nil {
		return Chunk{}, ErrClosed
	}
	if off%format.Granularity != 0 || !buf.Has(h.data, off, format.HeaderSize) {
		return Chunk{}, fmt.Errorf("%w: %d", ErrBadOffset, off)
	}
	hdr, err := format.ReadHeader(h.data, off)
	if err != nil {
		return Chunk{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	c := Chunk{Offset: off, Size: int(hdr.Size), Status: hdr.Status}
	if _, err := buf.CheckRange(h.size, off, c.Size); err != nil {
		return Chunk{}, fmt.Errorf("%w: chunk at %d: %w", ErrCorrupt, off, err)
	}
	return c, nil
}

// SetChunk writes a header at off describing a chunk of size bytes.
// The chunk must fit inside the arena.
func (h *Heap) SetChunk(off int, status format.Status, size int) error {
	if h.data == nil {
		return ErrClosed
	}
	if off%format.Granularity != 0 || !buf.Has(h.data, off, format.HeaderSize) {
		return fmt.Errorf("%w: %d", ErrBadOffset, off)
	}
	if size < format.HeaderSize {
		return fmt.Errorf("%w: chunk at %d: size %d below header size", ErrCorrupt, off, size)
	}
	if _, err := buf.CheckRange(h.size, off, size); err != nil {
		return fmt.Errorf("%w: chunk at %d: %w", ErrCorrupt, off, err)
	}
	return format.PutHeader(h.data, off, format.Header{Status: status, Size: uint32(size)})
}

// SetStatus rewrites only the status of the chunk at off, keeping its size.
func (h *Heap) SetStatus(off int, status format.Status) error {
	c, err := h.ChunkAt(off)
	if err != nil {
		return err
	}
	return h.SetChunk(off, status, c.Size)
}

// Payload returns the data region of c, aliasing the arena.
func (h *Heap) Payload(c Chunk) []byte {
	if c.Size < format.HeaderSize || !buf.Has(h.data, c.Offset, c.Size) {
		return nil
	}
	return h.data[c.DataOffset():c.End():c.End()]
}
