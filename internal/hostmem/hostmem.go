// Package hostmem answers whether the host can plausibly back a buffer of a
// given size before the heap asks the Go runtime for it. An allocation the
// runtime cannot satisfy is a fatal "out of memory" crash rather than an
// error, so the heap checks first and reports a recoverable init error.
package hostmem

import (
	"errors"
	"fmt"
)

// ErrUnavailable indicates the host cannot provide the requested number of bytes.
var ErrUnavailable = errors.New("hostmem: requested size exceeds host memory")

// Limits describes the memory ceilings reported by the host. Zero means the
// host did not report that limit.
type Limits struct {
	TotalRAM     uint64 // Physical memory
	AddressSpace uint64 // Soft RLIMIT_AS, where supported
}

// Check reports whether n bytes fit under every known host limit.
func Check(n uint64) error {
	lim, err := Query()
	if err != nil {
		// No information is not a refusal.
		return nil
	}
	return lim.Allow(n)
}

// Allow reports whether n bytes fit under the limits in l.
func (l Limits) Allow(n uint64) error {
	if l.TotalRAM != 0 && n > l.TotalRAM {
		return fmt.Errorf("%w: %d bytes > %d bytes of RAM", ErrUnavailable, n, l.TotalRAM)
	}
	if l.AddressSpace != 0 && n > l.AddressSpace {
		return fmt.Errorf("%w: %d bytes > address space limit %d", ErrUnavailable, n, l.AddressSpace)
	}
	return nil
}
