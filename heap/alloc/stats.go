package alloc

import (
	"errors"
	"io"
)

// Stats counts allocator activity since New.
type Stats struct {
	AllocCalls       int   // Total Alloc() calls
	AllocFailures    int   // Alloc() calls that found no fitting chunk
	InvalidRequests  int   // Alloc() calls with size < 1
	FreeCalls        int   // Total Free() calls
	Splits           int   // Candidates split into allocated + free remainder
	CoalesceBackward int   // Frees merged into the preceding chunk
	CoalesceForward  int   // Frees that absorbed the following chunk
	Rebuilds         int   // Free list rebuilds
	Violations       int   // Integrity violations detected
	BytesAllocated   int64 // Chunk bytes handed out, headers included
	BytesFreed       int64 // Chunk bytes returned, headers included
}

// Usage summarizes the current chunk layout.
type Usage struct {
	HeapSize        int
	Chunks          int
	FreeChunks      int
	AllocatedChunks int
	FreeBytes       int64 // Sum of free chunk sizes, headers included
	AllocatedBytes  int64 // Sum of allocated chunk sizes, headers included
	LargestFree     int   // Size of the largest free chunk
}

// Stats returns a snapshot of the allocator counters.
func (a *Allocator) Stats() Stats {
	return a.stats
}

// Usage walks the heap and summarizes its layout.
func (a *Allocator) Usage() (Usage, error) {
	u := Usage{HeapSize: a.h.Size()}
	it := a.h.Chunks()
	for {
		c, err := it.Next()
		if errors.Is(err, io.EOF) {
			return u, nil
		}
		if err != nil {
			return Usage{}, err
		}
		u.Chunks++
		if c.IsFree() {
			u.FreeChunks++
			u.FreeBytes += int64(c.Size)
			u.LargestFree = max(u.LargestFree, c.Size)
		} else {
			u.AllocatedChunks++
			u.AllocatedBytes += int64(c.Size)
		}
	}
}
