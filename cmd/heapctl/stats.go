package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/heapkit/internal/logger"
	"github.com/joshuapare/heapkit/pkg/heap"
)

var (
	statsSize    int
	statsAllocs  []int
	statsRelease []int
	statsLang    string
)

func init() {
	cmd := newStatsCmd()
	cmd.Flags().IntVar(&statsSize, "size", 4096, "Heap size in bytes")
	cmd.Flags().IntSliceVar(&statsAllocs, "alloc", nil, "Sizes to allocate, in order")
	cmd.Flags().
		IntSliceVar(&statsRelease, "release", nil, "Indexes into --alloc to release afterwards")
	cmd.Flags().StringVar(&statsLang, "lang", "en", "Language tag used to format numbers")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show usage statistics after a sequence of allocations",
		Long: `The stats command allocates the given sizes, optionally releases some of
them, and prints the resulting chunk usage and allocator counters.

Example:
  heapctl stats --alloc 100,200,300
  heapctl stats --size 65536 --alloc 100,200,300 --release 1
  heapctl stats --alloc 5000 --lang de --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.OutOrStdout(), statsSize, statsAllocs, statsRelease, statsLang)
		},
	}
}

func runStats(out io.Writer, size int, allocs, release []int, lang string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("invalid --lang %q: %w", lang, err)
	}

	h, err := heap.Init(size, heap.WithLogger(logger.L))
	if err != nil {
		return err
	}
	defer h.Teardown()

	ptrs := make([]heap.Ptr, len(allocs))
	for i, n := range allocs {
		if ptrs[i], err = h.Allocate(n); err != nil {
			return err
		}
		if ptrs[i] == heap.Null {
			logger.Info("stats: allocation did not fit", "index", i, "size", n)
		}
	}
	for _, i := range release {
		if i < 0 || i >= len(ptrs) {
			return fmt.Errorf("--release index %d out of range (have %d allocations)", i, len(ptrs))
		}
		if ptrs[i] == heap.Null {
			continue
		}
		if err := h.Release(ptrs[i]); err != nil {
			return err
		}
		ptrs[i] = heap.Null
	}

	st, err := h.Stats()
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(out, st)
	}
	return writeStats(out, message.NewPrinter(tag), st)
}

// writeStats prints st with numbers grouped according to p's language.
func writeStats(out io.Writer, p *message.Printer, st heap.Stats) error {
	u, c := st.Usage, st.Counters
	lines := []struct {
		label string
		value string
	}{
		{"Heap size", p.Sprintf("%d bytes", u.HeapSize)},
		{"Chunks", p.Sprintf("%d (%d allocated, %d free)", u.Chunks, u.AllocatedChunks, u.FreeChunks)},
		{"Allocated bytes", p.Sprintf("%d", u.AllocatedBytes)},
		{"Free bytes", p.Sprintf("%d", u.FreeBytes)},
		{"Largest free", p.Sprintf("%d", u.LargestFree)},
		{"Allocations", p.Sprintf("%d (%d failed, %d invalid)", c.AllocCalls, c.AllocFailures, c.InvalidRequests)},
		{"Releases", p.Sprintf("%d", c.FreeCalls)},
		{"Splits", p.Sprintf("%d", c.Splits)},
		{"Coalesces", p.Sprintf("%d backward, %d forward", c.CoalesceBackward, c.CoalesceForward)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(out, "%-16s %s\n", l.label+":", l.value); err != nil {
			return err
		}
	}
	return nil
}
