package repository

import (
	"context"
	"os"
	"sync"

	"github.com/kamal-hamza/sitegen/internal/core/ports"
)

// FileRepository reads and writes content files on the local filesystem
type FileRepository struct {
	mu sync.RWMutex
}

// NewFileRepository creates a new file-based repository
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// Ensure it implements the interface
var _ ports.ContentRepository = (*FileRepository)(nil)

// Write creates or truncates the file at path. The parent directory must
// already exist; OS errors are returned unchanged as *fs.PathError.
func (r *FileRepository) Write(ctx context.Context, path string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return os.WriteFile(path, data, 0644)
}

// Read returns the contents of the file at path
func (r *FileRepository) Read(ctx context.Context, path string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return os.ReadFile(path)
}

// Exists checks if a regular file exists at path
func (r *FileRepository) Exists(ctx context.Context, path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
