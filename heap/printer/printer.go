// Package printer renders a heap's chunk layout for people and tools.
package printer

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/heapkit/heap"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs one line per chunk.
	FormatText Format = "text"

	// FormatJSON outputs a single JSON document.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// Verbosity is accepted for callers that pass a level through. It does
	// not change the output.
	Verbosity int
}

// DefaultOptions returns the text format.
func DefaultOptions() Options {
	return Options{Format: FormatText}
}

// Printer writes heap layouts to a writer.
type Printer struct {
	w    io.Writer
	opts Options
}

// New creates a printer for w.
func New(w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	return &Printer{w: w, opts: opts}
}

// Dump writes the text layout of h to w. verbosity has no effect on the output.
func Dump(w io.Writer, h *heap.Heap, verbosity int) error {
	return New(w, Options{Format: FormatText, Verbosity: verbosity}).Print(h)
}

// Print walks h once in address order and renders every chunk.
func (p *Printer) Print(h *heap.Heap) error {
	switch p.opts.Format {
	case FormatText:
		return p.printText(h)
	case FormatJSON:
		return p.printJSON(h)
	default:
		return fmt.Errorf("printer: unsupported format %q", p.opts.Format)
	}
}

// walk calls fn for each chunk in address order.
func walk(h *heap.Heap, fn func(i int, c heap.Chunk) error) error {
	it := h.Chunks()
	for i := 0; ; i++ {
		c, err := it.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("printer: chunk %d: %w", i, err)
		}
		if err := fn(i, c); err != nil {
			return err
		}
	}
}
