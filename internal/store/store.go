package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// Record keys. Each key holds one JSON document; settings is tool-local.
const (
	KeyProfile  = "userHealthData"
	KeyFoodLog  = "foodLog"
	KeyWater    = "waterIntake"
	KeySettings = "settings"
)

// Store is the persistence contract the tracker depends on. Implementations
// hold opaque JSON values under string keys.
type Store interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, value []byte) error
}

// RecordStore is the SQLite-backed Store used by the CLI.
type RecordStore struct {
	db   *sql.DB
	path string
}

func Open(path string) (*RecordStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite store: %w", err)
	}
	return &RecordStore{db: db, path: path}, nil
}

func (s *RecordStore) Close() error {
	return s.db.Close()
}

// Path returns the store file location, used by backup.
func (s *RecordStore) Path() string {
	return s.path
}

func (s *RecordStore) Migrate() error {
	return applyMigrations(s.db)
}

func (s *RecordStore) Load(key string) ([]byte, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false, fmt.Errorf("record key is required")
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load record %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *RecordStore) Save(key string, value []byte) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("record key is required")
	}
	_, err := s.db.Exec(`
INSERT INTO records(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, string(value))
	if err != nil {
		return fmt.Errorf("save record %q: %w", key, err)
	}
	return nil
}

func (s *RecordStore) Delete(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("record key is required")
	}
	if _, err := s.db.Exec(`DELETE FROM records WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}

func (s *RecordStore) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM records ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list record keys: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan record key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate record keys: %w", err)
	}
	return keys, nil
}
