package ports

import (
	"context"
	"io"
)

// SourceStorage gives read access to the folder holding measurement files.
type SourceStorage interface {
	// IsDir reports whether folder exists and is a directory.
	IsDir(ctx context.Context, folder string) (bool, error)
	// List returns names of regular files in folder ending in ext, sorted by name.
	List(ctx context.Context, folder, ext string) ([]string, error)
	// Open returns a decoded text reader over one file.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}
