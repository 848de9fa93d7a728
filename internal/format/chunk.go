package format

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/joshuapare/heapkit/internal/buf"
)

// Status tags a chunk as free or allocated. The two values are alternating
// bit patterns so a stray write is unlikely to turn one into the other.
type Status uint32

const (
	StatusFree      Status = 0xAAAAAAAA
	StatusAllocated Status = 0x55555555
)

// Valid reports whether s is one of the two known tags.
func (s Status) Valid() bool {
	return s == StatusFree || s == StatusAllocated
}

func (s Status) String() string {
	switch s {
	case StatusFree:
		return "Free"
	case StatusAllocated:
		return "Allocated"
	default:
		return fmt.Sprintf("Status(0x%08X)", uint32(s))
	}
}

// Header is the decoded form of a chunk header.
type Header struct {
	Status Status
	Size   uint32 // Total size including the header
}

// Check returns the check word stored alongside status and size: the low
// 32 bits of the xxHash64 of the first eight header bytes.
func Check(status Status, size uint32) uint32 {
	var b [8]byte
	binary.LittleEndian.PutUint32(b[StatusOffset:], uint32(status))
	binary.LittleEndian.PutUint32(b[SizeOffset:], size)
	return uint32(xxhash.Sum64(b[:]))
}

// ReadHeader decodes and validates the header at off. The check word, the
// status tag, and the size field are all verified; the caller is responsible
// for checking that the chunk fits its arena.
func ReadHeader(b []byte, off int) (Header, error) {
	raw, ok := buf.Slice(b, off, HeaderSize)
	if !ok {
		return Header{}, fmt.Errorf("header at %d: %w", off, ErrTruncated)
	}
	h := Header{
		Status: Status(buf.U32LE(raw[StatusOffset:])),
		Size:   buf.U32LE(raw[SizeOffset:]),
	}
	if check := buf.U32LE(raw[CheckOffset:]); check != Check(h.Status, h.Size) {
		return Header{}, fmt.Errorf("header at %d: %w", off, ErrChecksum)
	}
	if !h.Status.Valid() {
		return Header{}, fmt.Errorf("header at %d: %w (0x%08X)", off, ErrBadStatus, uint32(h.Status))
	}
	if h.Size < HeaderSize || h.Size%Granularity != 0 {
		return Header{}, fmt.Errorf("header at %d: %w (%d)", off, ErrBadSize, h.Size)
	}
	return h, nil
}

// PutHeader encodes h at off, including its check word.
func PutHeader(b []byte, off int, h Header) error {
	raw, ok := buf.Slice(b, off, HeaderSize)
	if !ok {
		return fmt.Errorf("header at %d: %w", off, ErrTruncated)
	}
	if !h.Status.Valid() {
		return fmt.Errorf("header at %d: %w (0x%08X)", off, ErrBadStatus, uint32(h.Status))
	}
	if h.Size < HeaderSize || h.Size%Granularity != 0 {
		return fmt.Errorf("header at %d: %w (%d)", off, ErrBadSize, h.Size)
	}
	buf.PutU32LE(raw[StatusOffset:], uint32(h.Status))
	buf.PutU32LE(raw[SizeOffset:], h.Size)
	buf.PutU32LE(raw[CheckOffset:], Check(h.Status, h.Size))
	return nil
}
