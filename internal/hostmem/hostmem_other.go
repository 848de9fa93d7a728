//go:build !linux

package hostmem

import "errors"

// Query is not implemented on this platform; Check treats that as no limit.
func Query() (Limits, error) {
	return Limits{}, errors.New("hostmem: not supported on this platform")
}
