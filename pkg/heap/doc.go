/*
Package heap provides a best-fit allocator over a single fixed-size arena.

# Quick Start

Create a 4 KiB heap, allocate, and release:

	h, err := heap.Init(4096)
	if err != nil {
	    log.Fatal(err)
	}
	defer h.Teardown()

	p, err := h.Allocate(100)
	if err != nil {
	    log.Fatal(err)
	}
	if p == heap.Null {
	    // no free chunk large enough
	}
	_ = h.Release(p)

# Layout

Every chunk starts with a 12-byte header (status tag, total size, check
word) followed by its data region. Chunks tile the arena with no gaps, and
two free chunks are never adjacent once an operation has returned. A Ptr is
the offset of a data region from the start of the arena.

# Integrity Violations

Releasing Null, a pointer the heap never returned, or an already released
pointer is a programming error. By default the process prints the violation
to stderr and exits with status 1. Tests and tools that want to inspect the
violation instead can install ReturnPolicy:

	h, _ := heap.Init(4096, heap.WithPolicy(heap.ReturnPolicy))
	err := h.Release(heap.Null)
	var ie *heap.IntegrityError
	if errors.As(err, &ie) {
	    fmt.Println(ie.Kind) // null pointer
	}

# Diagnostics

Dump writes one line per chunk in address order:

	Chunk 0: [Allocated] Size: 112, Offset: 0
	Chunk 1: [Free] Size: 3984, Offset: 112

Validate re-checks the layout invariants and the free chunk index.

# Concurrency

A Heap is not safe for concurrent use.
*/
package heap
