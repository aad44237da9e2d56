// Package sqlite persists editing sessions to an embedded SQLite file as
// JSON blobs, one bucket per snapshot section.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"rankcore/pkg/domain"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Compile-time contract assertion.
var _ domain.SessionStore = (*Store)(nil)

// Store snapshots the full session state after every save.
type Store struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// NewStore opens (creating if needed) a SQLite-backed session store.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "rankcore.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

const (
	bucketRanks      = "ranks"
	bucketDismissals = "dismissals"
	bucketSettings   = "settings"
)

// SaveSnapshot writes all buckets inside one transaction.
func (s *Store) SaveSnapshot(ctx context.Context, snapshot domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buckets := map[string]any{
		bucketRanks:      snapshot.Ranks,
		bucketDismissals: snapshot.Dismissals,
		bucketSettings:   snapshot.Settings,
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	for bucket, value := range buckets {
		payload, err := json.Marshal(value)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("encode %s: %w", bucket, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO state (bucket, payload) VALUES (?, ?)
			 ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`,
			bucket, payload); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("upsert %s: %w", bucket, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LoadSnapshot reads all buckets, reporting false when none exist.
func (s *Store) LoadSnapshot(ctx context.Context) (domain.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `SELECT bucket, payload FROM state`)
	if err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("select state: %w", err)
	}
	defer func() { _ = rows.Close() }()

	snapshot := domain.Snapshot{}
	found := false
	for rows.Next() {
		var bucket string
		var payload []byte
		if err := rows.Scan(&bucket, &payload); err != nil {
			return domain.Snapshot{}, false, fmt.Errorf("scan: %w", err)
		}
		found = true
		switch bucket {
		case bucketRanks:
			if err := json.Unmarshal(payload, &snapshot.Ranks); err != nil {
				return domain.Snapshot{}, false, fmt.Errorf("decode ranks: %w", err)
			}
		case bucketDismissals:
			if err := json.Unmarshal(payload, &snapshot.Dismissals); err != nil {
				return domain.Snapshot{}, false, fmt.Errorf("decode dismissals: %w", err)
			}
		case bucketSettings:
			if err := json.Unmarshal(payload, &snapshot.Settings); err != nil {
				return domain.Snapshot{}, false, fmt.Errorf("decode settings: %w", err)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("iterate state: %w", err)
	}
	return snapshot, found, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }
