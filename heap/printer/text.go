package printer

import (
	"fmt"

	"github.com/joshuapare/heapkit/heap"
)

func (p *Printer) printText(h *heap.Heap) error {
	return walk(h, func(i int, c heap.Chunk) error {
		_, err := fmt.Fprintf(p.w, "Chunk %d: [%s] Size: %d, Offset: %d\n", i, c.Status, c.Size, c.Offset)
		return err
	})
}
