package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/heapkit/internal/logger"
	"github.com/joshuapare/heapkit/pkg/heap"
)

var runSize int

func init() {
	cmd := newRunCmd()
	cmd.Flags().IntVar(&runSize, "size", 4096, "Heap size in bytes")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [script]",
		Short: "Execute an allocation script",
		Long: `The run command executes a script against a fresh heap, one command per
line. The script is read from the named file, or from stdin when omitted.

Commands:
  alloc <name> <bytes>   allocate and bind the pointer to name
  free <name>            release the pointer bound to name
  dump                   print the chunk layout
  stats                  print usage statistics
  validate               check the heap invariants
  # ...                  comment

Releasing a name twice is a double free: the violation is printed and the
process exits with status 1.

Example:
  heapctl run script.txt
  printf 'alloc a 100\ndump\nfree a\ndump\n' | heapctl run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runScript(in, cmd.OutOrStdout(), runSize)
		},
	}
}

// interpreter executes script commands against one heap.
type interpreter struct {
	h     *heap.Heap
	out   io.Writer
	names map[string]heap.Ptr
}

func runScript(in io.Reader, out io.Writer, size int) error {
	h, err := heap.Init(size, heap.WithLogger(logger.L))
	if err != nil {
		return err
	}
	defer h.Teardown()

	ip := &interpreter{h: h, out: out, names: make(map[string]heap.Ptr)}
	logger.Debug("run: heap ready", "size", h.Size())

	sc := bufio.NewScanner(in)
	for n := 1; sc.Scan(); n++ {
		if err := ip.exec(sc.Text()); err != nil {
			logger.Warn("run: script stopped", "line", n, "error", err)
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}

func (ip *interpreter) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	switch cmd, args := fields[0], fields[1:]; cmd {
	case "alloc":
		if len(args) != 2 {
			return fmt.Errorf("usage: alloc <name> <bytes>")
		}
		size, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("alloc %s: invalid size %q", args[0], args[1])
		}
		p, err := ip.h.Allocate(size)
		if err != nil {
			return err
		}
		ip.names[args[0]] = p
		if p == heap.Null {
			printInfo(ip.out, "%s = NULL\n", args[0])
		} else {
			printInfo(ip.out, "%s = %d\n", args[0], p)
		}
		return nil

	case "free":
		if len(args) != 1 {
			return fmt.Errorf("usage: free <name>")
		}
		p, ok := ip.names[args[0]]
		if !ok {
			return fmt.Errorf("free: unknown name %q", args[0])
		}
		// The binding is kept so a second free of the same name reaches the heap.
		return ip.h.Release(p)

	case "dump":
		if jsonOut {
			return ip.h.DumpJSON(ip.out)
		}
		return ip.h.Dump(ip.out, 0)

	case "stats":
		st, err := ip.h.Stats()
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(ip.out, st)
		}
		return writeStats(ip.out, message.NewPrinter(language.English), st)

	case "validate":
		if err := ip.h.Validate(); err != nil {
			return err
		}
		printInfo(ip.out, "ok\n")
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}
