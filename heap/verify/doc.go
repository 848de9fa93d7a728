// Package verify checks the structural invariants of a heap.
//
// # Overview
//
// The allocator promises that, between public operations:
//
//   - Tiling: chunks laid out from offset 0 exactly cover the arena, so the
//     sizes sum to the heap size, and every header decodes and validates.
//   - Coalescing: no two address-adjacent chunks are both free.
//   - Free list: the free-list index holds exactly the free chunk offsets,
//     ascending.
//
// Each check returns a *ValidationError describing the first violation found.
//
// # Quick Start
//
//	if err := verify.AllInvariants(h, a.FreeList().Offsets()); err != nil {
//	    fmt.Printf("heap invalid: %v\n", err)
//	}
//
// The package is used by the allocator tests after every step of the
// randomized property test, and by `heapctl run` for the `validate` command.
package verify
