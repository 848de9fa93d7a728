//go:build linux

package hostmem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Query reads physical memory from sysinfo(2) and the soft address-space
// limit from getrlimit(2).
func Query() (Limits, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return Limits{}, fmt.Errorf("hostmem: sysinfo: %w", err)
	}
	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	lim := Limits{TotalRAM: uint64(info.Totalram) * unit}

	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_AS, &rl); err == nil && rl.Cur != unix.RLIM_INFINITY {
		lim.AddressSpace = rl.Cur
	}
	return lim, nil
}
