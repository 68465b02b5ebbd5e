package mocks

import (
	"context"
	"fmt"
	"io/fs"
	"sync"
	"time"
)

// MockRepository is an in-memory implementation of ports.ContentRepository for testing
type MockRepository struct {
	mu       sync.RWMutex
	files    map[string][]byte
	writeErr error
	writes   int
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{
		files: make(map[string][]byte),
	}
}

// FailWrites makes every subsequent Write return err
func (m *MockRepository) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// Write stores a copy of data under path
func (m *MockRepository) Write(ctx context.Context, path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return m.writeErr
	}

	m.files[path] = append([]byte(nil), data...)
	m.writes++
	return nil
}

// Read returns the data stored under path
func (m *MockRepository) Read(ctx context.Context, path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return data, nil
}

// Exists checks if a file was written to path
func (m *MockRepository) Exists(ctx context.Context, path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.files[path]
	return ok
}

// Writes returns how many successful writes happened
func (m *MockRepository) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

// --- MockClock ---

// MockClock always returns the same instant
type MockClock struct {
	Time time.Time
}

// NewMockClock returns a clock frozen at the given calendar date
func NewMockClock(year int, month time.Month, day int) *MockClock {
	return &MockClock{Time: time.Date(year, month, day, 9, 30, 0, 0, time.Local)}
}

func (c *MockClock) Now() time.Time {
	return c.Time
}
