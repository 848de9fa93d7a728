// Package alloc implements best-fit allocation over a heap.Heap.
//
// # Overview
//
// An Allocator hands out chunks of a fixed arena. Every request is served by
// a single linear scan of the arena in address order that picks the smallest
// free chunk large enough for it; ties go to the lowest address. Large
// candidates are split so the unused tail stays free, and freed chunks merge
// with free neighbors on both sides, so two free chunks are never adjacent.
//
// After every mutation the allocator rebuilds its FreeList, an ascending
// index of free chunk offsets sized for the worst case. The index is kept for
// diagnostics; allocation itself does not consult it.
//
// # Usage Example
//
//	h, err := heap.New(4096)
//	if err != nil {
//	    return err
//	}
//	a, err := alloc.New(h, nil)
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	p, payload, err := a.Alloc(100)
//	if err != nil {
//	    return err // only possible under a non-fatal Policy
//	}
//	if p == alloc.Null {
//	    return errOutOfMemory // no free chunk fits
//	}
//	copy(payload, data)
//
//	_ = a.Free(p)
//
// # Sizes
//
// Requests are rounded up to 4 bytes and charged format.HeaderSize extra:
//
//	required = Align4(size) + format.HeaderSize
//
// A candidate of at least required + format.HeaderSize + 32 bytes is split;
// anything smaller is handed out whole.
//
// # Integrity Violations
//
// Freeing Null, freeing a pointer this heap never returned, freeing twice, or
// meeting a header that fails validation are integrity violations. Each is
// reported as an *IntegrityError and passed to the configured Policy. The
// default, FatalPolicy, prints the error and exits the process with status 1.
// ReturnPolicy hands the error back to the caller instead.
//
// # Thread Safety
//
// Allocator instances are not thread-safe.
package alloc
