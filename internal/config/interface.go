package config

import "context"

// Loader is the interface for a format-specific configuration file reader.
type Loader interface {
	// Load reads the file at path and returns the settings it overrides.
	Load(ctx context.Context, path string) (*Patch, error)
}
