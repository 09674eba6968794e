package db

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

// OpenReadOnly opens an existing sqlite database without creating it.
// The connection is verified with a ping so a missing file fails here
// rather than on the first query.
func OpenReadOnly(path string) (*sql.DB, error) {
	return open(fmt.Sprintf("file:%s?mode=ro", path), path)
}

// Open opens (creating if needed) a writable sqlite database.
func Open(path string) (*sql.DB, error) {
	return open(path, path)
}

func open(dsn, path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	// Test the connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", path, err)
	}

	log.Printf("[db] Database opened: %s", path)
	return conn, nil
}
