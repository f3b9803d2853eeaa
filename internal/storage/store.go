package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/saportinsta65/life-rpg/internal/engine"
)

// DefaultSnapshotKey is the storage name the whole state tree is persisted
// under.
const DefaultSnapshotKey = "life-rpg-storage"

// DefaultDBPath returns the default database location.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".liferpg.db"), nil
}

// Open opens (and creates if missing) the SQLite database at path and
// ensures the snapshot schema exists.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			name TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SnapshotStore persists the state tree wholesale as one JSON blob keyed
// by a fixed name. It implements engine.SnapshotStore.
type SnapshotStore struct {
	db   *sql.DB
	name string
}

func NewSnapshotStore(db *sql.DB, name string) *SnapshotStore {
	if name == "" {
		name = DefaultSnapshotKey
	}
	return &SnapshotStore{db: db, name: name}
}

// Load returns the persisted tree, or nil when nothing has been saved yet.
func (s *SnapshotStore) Load(ctx context.Context) (*engine.State, error) {
	row := s.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE name = ?`, s.name)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("snapshot load: %w", err)
	}

	var st engine.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("snapshot decode: %w", err)
	}
	return &st, nil
}

// Save upserts the tree under the store's name.
func (s *SnapshotStore) Save(ctx context.Context, st *engine.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("snapshot encode: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, s.name, data)
	if err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	return nil
}
