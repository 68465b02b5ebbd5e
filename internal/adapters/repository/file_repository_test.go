package repository

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestFileRepository_WriteAndRead(t *testing.T) {
	repo := NewFileRepository()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "post.mdx")

	if err := repo.Write(ctx, path, []byte("first")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := repo.Write(ctx, path, []byte("second")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	data, err := repo.Read(ctx, path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("Read = %q, want %q", data, "second")
	}

	if !repo.Exists(ctx, path) {
		t.Error("Exists should be true after Write")
	}
}

func TestFileRepository_MissingParentDirectory(t *testing.T) {
	repo := NewFileRepository()
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	path := filepath.Join(dir, "usecase.json")

	err := repo.Write(context.Background(), path, []byte("{}"))
	if err == nil {
		t.Fatal("expected error writing into a missing directory")
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
	pathErr, ok := err.(*fs.PathError)
	if !ok {
		t.Fatalf("expected *fs.PathError returned as is, got %T", err)
	}
	if pathErr.Path != path {
		t.Errorf("PathError.Path = %q, want %q", pathErr.Path, path)
	}

	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Error("Write must not create parent directories")
	}
}

func TestFileRepository_ExistsIgnoresDirectories(t *testing.T) {
	repo := NewFileRepository()
	if repo.Exists(context.Background(), t.TempDir()) {
		t.Error("Exists should be false for a directory")
	}
}
