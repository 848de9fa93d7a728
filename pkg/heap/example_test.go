package heap_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/joshuapare/heapkit/pkg/heap"
)

// Example allocates and releases one block.
func Example() {
	h, err := heap.Init(4096)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer h.Teardown()

	p, _ := h.Allocate(100)
	_ = h.Dump(os.Stdout, 0)

	_ = h.Release(p)
	_ = h.Dump(os.Stdout, 0)
	// Output:
	// Chunk 0: [Allocated] Size: 112, Offset: 0
	// Chunk 1: [Free] Size: 3984, Offset: 112
	// Chunk 0: [Free] Size: 4096, Offset: 0
}

// ExampleWithPolicy inspects a double free instead of exiting.
func ExampleWithPolicy() {
	h, _ := heap.Init(4096, heap.WithPolicy(heap.ReturnPolicy))
	defer h.Teardown()

	p, _ := h.Allocate(8)
	_ = h.Release(p)

	err := h.Release(p)
	var ie *heap.IntegrityError
	if errors.As(err, &ie) {
		fmt.Println(ie.Kind)
	}
	// Output:
	// double free
}

// ExampleHeap_Payload writes into an allocation.
func ExampleHeap_Payload() {
	h, _ := heap.Init(4096)
	defer h.Teardown()

	p, _ := h.Allocate(5)
	data, _ := h.Payload(p)
	copy(data, "bytes")
	fmt.Println(len(data), string(data[:5]))
	// Output:
	// 8 bytes
}
