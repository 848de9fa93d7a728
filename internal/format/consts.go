// Package format houses the in-band chunk header encoding shared by the heap
// and its allocator. It knows nothing about arenas or free lists: it only
// reads, writes, and validates the fixed-size header that precedes every
// chunk's data region.
package format

const (
	// HeaderSize is the number of bytes used by the header preceding every
	// chunk (free or allocated).
	//
	// Layout (little-endian):
	//
	//	Offset  Size  Description
	//	0x00    4     Status tag (StatusFree or StatusAllocated)
	//	0x04    4     Total chunk size, including this header
	//	0x08    4     Check word over bytes 0x00..0x07
	HeaderSize = 12

	// StatusOffset is the offset of the status tag within a chunk header.
	StatusOffset = 0x00

	// SizeOffset is the offset of the total chunk size within a chunk header.
	SizeOffset = 0x04

	// CheckOffset is the offset of the check word within a chunk header.
	CheckOffset = 0x08

	// Granularity is the alignment of every chunk size and data offset.
	Granularity = 4

	// GranularityMask is used by Align4 to round up to Granularity.
	GranularityMask = Granularity - 1

	// MinHeapSize is the smallest arena the heap will create. Smaller
	// requests are clamped up to it.
	MinHeapSize = 4096

	// MaxHeapSize is the largest arena whose size still fits the 32-bit size
	// field once rounded to Granularity.
	MaxHeapSize = 0xFFFFFFFC

	// MinSplitRemainder is the smallest payload a split may leave behind in
	// the free remainder. A candidate is split only when it holds at least
	// required + HeaderSize + MinSplitRemainder bytes.
	MinSplitRemainder = 32
)
