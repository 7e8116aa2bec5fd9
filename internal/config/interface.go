package config

import "context"

// Loader is the interface for a format-specific script loader.
type Loader interface {
	// Load reads a single script file and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Script, error)

	// Extensions lists the file suffixes this loader understands,
	// including the leading dot.
	Extensions() []string
}
