package dataset

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
)

// Source reads the full dataset from storage. Key identifies the resource
// for memoization and must be stable for the process lifetime.
type Source interface {
	Key() string
	Read(ctx context.Context) (Table, error)
}

// CSVSource reads a delimited text file with a header row.
type CSVSource struct {
	Path string
}

func (s CSVSource) Key() string {
	return "csv:" + s.Path
}

func (s CSVSource) Read(ctx context.Context) (Table, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return Table{}, &DataNotFoundError{Path: s.Path, Err: err}
	}
	defer f.Close()
	return ReadCSV(f, s.Path)
}

// IsSQLitePath reports whether path names a sqlite database rather than CSV.
func IsSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// OpenFunc opens a database at path. db.OpenReadOnly satisfies it.
type OpenFunc func(path string) (*sql.DB, error)

// NewSource picks the source for path: a sqlite table when the extension
// names a database, otherwise CSV. The database is opened lazily so a
// missing file surfaces as DataNotFoundError on Load.
func NewSource(path, table string, open OpenFunc) Source {
	if IsSQLitePath(path) {
		return &SQLSource{Path: path, Table: table, open: open}
	}
	return CSVSource{Path: path}
}
