package ports

import (
	"context"
	"time"
)

// ContentRepository defines the port for reading and writing generated content files
type ContentRepository interface {
	// Write creates or overwrites the file at path with data.
	// Parent directories are never created.
	Write(ctx context.Context, path string, data []byte) error

	// Read returns the contents of the file at path
	Read(ctx context.Context, path string) ([]byte, error)

	// Exists checks if a file exists at path
	Exists(ctx context.Context, path string) bool
}

// Clock defines the port for reading the current time
type Clock interface {
	// Now returns the current local time
	Now() time.Time
}
