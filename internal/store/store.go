package store

import (
	"context"

	"github.com/nulzo/aimind/internal/store/model"
)

// Repository is the main contract for the data layer.
type Repository interface {
	RecentFiles() RecentFileRepository

	// transaction support
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	Close() error
}

type RecentFileRepository interface {
	// Touch records path as the most recently used file.
	Touch(ctx context.Context, file *model.RecentFile) error
	// List returns up to limit files, newest first.
	List(ctx context.Context, limit int) ([]model.RecentFile, error)
	// Prune keeps only the newest keep entries.
	Prune(ctx context.Context, keep int) error
	// Remove forgets a path.
	Remove(ctx context.Context, path string) error
	// Clear forgets every path.
	Clear(ctx context.Context) error
}
