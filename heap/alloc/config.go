package alloc

import "log/slog"

// Config controls allocator behavior.
type Config struct {
	// Logger receives split, coalesce, and violation records. Nil uses logger.L.
	Logger *slog.Logger

	// Policy handles integrity violations. Nil uses FatalPolicy.
	Policy Policy
}

// DefaultConfig is used when New is given a nil config.
var DefaultConfig = Config{}
