package format

// Align4 returns n aligned up to the next 4-byte boundary.
//
// Example:
//
//	Align4(1)   = 4
//	Align4(4)   = 4
//	Align4(101) = 104
func Align4(n int) int {
	return (n + GranularityMask) &^ GranularityMask
}

// HeapSize converts a requested arena size into the size actually used:
// clamped up to MinHeapSize and rounded up to Granularity. ok is false when
// the result would not fit the 32-bit size field.
func HeapSize(requested int) (size int, ok bool) {
	if requested < MinHeapSize {
		requested = MinHeapSize
	}
	if uint64(requested) > MaxHeapSize {
		return 0, false
	}
	return Align4(requested), true
}
