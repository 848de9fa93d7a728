package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/internal/logger"
	"github.com/joshuapare/heapkit/pkg/heap"
)

var demoSize int

func init() {
	cmd := newDemoCmd()
	cmd.Flags().IntVar(&demoSize, "size", 4096, "Heap size in bytes")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Allocate and release one block, dumping the heap after each step",
		Long: `The demo command creates a heap, allocates 100 bytes, releases them, and
prints the chunk layout after every step.

Example:
  heapctl demo
  heapctl demo --size 8192 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), demoSize)
		},
	}
}

type demoStep struct {
	Op     string          `json:"op"`
	Ptr    uint32          `json:"ptr,omitempty"`
	Layout json.RawMessage `json:"layout"`
}

func runDemo(out io.Writer, size int) error {
	h, err := heap.Init(size, heap.WithLogger(logger.L))
	if err != nil {
		return err
	}
	defer h.Teardown()

	var steps []demoStep
	step := func(op string, p heap.Ptr) error {
		if !jsonOut {
			printInfo(out, "== %s\n", op)
			return h.Dump(out, 0)
		}
		var buf bytes.Buffer
		if err := h.DumpJSON(&buf); err != nil {
			return err
		}
		steps = append(steps, demoStep{Op: op, Ptr: uint32(p), Layout: buf.Bytes()})
		return nil
	}

	if err := step(fmt.Sprintf("init %d", h.Size()), heap.Null); err != nil {
		return err
	}

	p, err := h.Allocate(100)
	if err != nil {
		return err
	}
	if p == heap.Null {
		return fmt.Errorf("allocate 100: heap exhausted")
	}
	if err := step(fmt.Sprintf("allocate 100 -> %d", p), p); err != nil {
		return err
	}

	if err := h.Release(p); err != nil {
		return err
	}
	if err := step(fmt.Sprintf("release %d", p), p); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(out, steps)
	}
	return nil
}
