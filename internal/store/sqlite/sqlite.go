package sqlite

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/nulzo/aimind/internal/store"
	"github.com/nulzo/aimind/internal/store/model"
)

// DB defines the interface for database operations (satisfied by *sqlx.DB and *sqlx.Tx)
type DB interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// SqliteRepository implements store.Repository
type SqliteRepository struct {
	db       *sqlx.DB // Required for starting new transactions
	executor DB       // Used for actual queries (can be *sqlx.DB or *sqlx.Tx)
}

func NewSqliteRepository(db *sqlx.DB) *SqliteRepository {
	return &SqliteRepository{
		db:       db,
		executor: db,
	}
}

func (r *SqliteRepository) Close() error {
	return r.db.Close()
}

func (r *SqliteRepository) WithTx(ctx context.Context, fn func(repo store.Repository) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	txRepo := &SqliteRepository{
		db:       r.db,
		executor: tx,
	}

	if err := fn(txRepo); err != nil {
		// attempt rollback, but prioritize original error
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (r *SqliteRepository) RecentFiles() store.RecentFileRepository {
	return &recentFileRepo{db: r.executor}
}

type recentFileRepo struct {
	db DB
}

func (r *recentFileRepo) Touch(ctx context.Context, file *model.RecentFile) error {
	// path is unique, so re-opening a file only bumps its timestamp
	query := `
	INSERT INTO recent_files (id, path, title, opened_at)
	VALUES (:id, :path, :title, :opened_at)
	ON CONFLICT(path) DO UPDATE SET title = excluded.title, opened_at = excluded.opened_at`
	_, err := r.db.NamedExecContext(ctx, query, file)
	return err
}

func (r *recentFileRepo) List(ctx context.Context, limit int) ([]model.RecentFile, error) {
	files := []model.RecentFile{}
	err := r.db.SelectContext(ctx, &files,
		`SELECT id, path, title, opened_at FROM recent_files ORDER BY opened_at DESC LIMIT ?`, limit)
	return files, err
}

func (r *recentFileRepo) Prune(ctx context.Context, keep int) error {
	query := `
	DELETE FROM recent_files WHERE id NOT IN (
		SELECT id FROM recent_files ORDER BY opened_at DESC LIMIT ?
	)`
	_, err := r.db.ExecContext(ctx, query, keep)
	return err
}

func (r *recentFileRepo) Remove(ctx context.Context, path string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM recent_files WHERE path = ?`, path)
	return err
}

func (r *recentFileRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM recent_files`)
	return err
}
