package printer

import (
	"encoding/json"

	"github.com/joshuapare/heapkit/heap"
)

type jsonChunk struct {
	Index  int    `json:"index"`
	Status string `json:"status"`
	Size   int    `json:"size"`
	Offset int    `json:"offset"`
}

type jsonHeap struct {
	Size   int         `json:"size"`
	Chunks []jsonChunk `json:"chunks"`
}

func (p *Printer) printJSON(h *heap.Heap) error {
	doc := jsonHeap{Size: h.Size(), Chunks: []jsonChunk{}}
	err := walk(h, func(i int, c heap.Chunk) error {
		doc.Chunks = append(doc.Chunks, jsonChunk{
			Index:  i,
			Status: c.Status.String(),
			Size:   c.Size,
			Offset: c.Offset,
		})
		return nil
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
