package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const dbFileName = "contactup.db"

// OpenContactupDB opens (creating if needed) the settings database inside dataDir.
func OpenContactupDB(dataDir string) (*sql.DB, error) {
	if dataDir == "" {
		return nil, errors.New("data directory not configured")
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return db, nil
}

// GetSetting returns the stored value for key. ok is false when the key was never written.
func GetSetting(db *sql.DB, key string) (value string, ok bool, err error) {
	err = db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func PutSetting(db *sql.DB, key, value string, nowUnix int64) error {
	_, err := db.Exec(
		`INSERT INTO settings(key, value, updated_at) VALUES(?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key,
		value,
		nowUnix,
	)
	return err
}

// Settings adapts the settings table to a simple key-value store.
type Settings struct {
	DB *sql.DB
}

func (s Settings) Get(key string) (string, bool, error) {
	if s.DB == nil {
		return "", false, errors.New("settings database not initialized")
	}
	return GetSetting(s.DB, key)
}

func (s Settings) Set(key, value string) error {
	if s.DB == nil {
		return errors.New("settings database not initialized")
	}
	return PutSetting(s.DB, key, value, time.Now().Unix())
}
