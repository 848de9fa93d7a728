package heap

import (
	"log/slog"

	"github.com/joshuapare/heapkit/heap/alloc"
)

// Option configures Init.
type Option func(*alloc.Config)

// WithLogger routes allocator records to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *alloc.Config) { c.Logger = l }
}

// WithPolicy sets how integrity violations are handled. The default is
// FatalPolicy.
func WithPolicy(p Policy) Option {
	return func(c *alloc.Config) { c.Policy = p }
}
