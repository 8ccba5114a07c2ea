package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

var (
	db     *sql.DB
	dbPath string
	mu     sync.Mutex
)

// SetPath selects the database file used by GetDB. It must be called
// before the first GetDB; an empty path keeps the default.
func SetPath(path string) {
	mu.Lock()
	defer mu.Unlock()
	dbPath = path
}

// GetDB returns the database connection, initializing if needed
func GetDB() (*sql.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if db != nil {
		return db, nil
	}

	path := dbPath
	if path == "" {
		var err error
		path, err = GetDBPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
	}

	conn, err := Open(path)
	if err != nil {
		return nil, err
	}
	db = conn
	return db, nil
}

// Open opens the SQLite database at path, creating the parent directory
// and schema as needed. ":memory:" opens a private in-memory database.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise get its own empty database.
		conn.SetMaxOpenConns(1)
	}

	if err := InitSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return conn, nil
}

// Close closes the database connection
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if db != nil {
		err := db.Close()
		db = nil
		return err
	}
	return nil
}

// GetDBPath returns the default path to the database file
func GetDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mclock", "mclock.db"), nil
}
