package storage

import (
	"context"
	"errors"
	"time"
)

// ErrDestinationExists is returned by Move when the destination path
// already exists. Callers treat this as a recoverable collision.
var ErrDestinationExists = errors.New("destination already exists")

// FileInfo represents metadata about a file
type FileInfo struct {
	Name        string
	Path        string
	Size        int64
	ModTime     time.Time
	IsDir       bool
	Permissions uint32
}

// Backend defines the interface for filesystem operations
// Implementations include local filesystem, SMB, NFS, etc.
type Backend interface {
	// List returns the entries directly inside the specified directory
	// (one level, non-recursive)
	List(ctx context.Context, path string) ([]FileInfo, error)

	// Move renames a file from src to dst. If dst already exists the
	// move is refused and ErrDestinationExists is returned.
	Move(ctx context.Context, src, dst string) error

	// Exists checks if a file or directory exists
	Exists(ctx context.Context, path string) (bool, error)

	// Stat returns file metadata
	Stat(ctx context.Context, path string) (*FileInfo, error)

	// MkdirAll creates a directory and all necessary parents
	MkdirAll(ctx context.Context, path string) error

	// Close releases any resources held by the backend
	Close() error
}
