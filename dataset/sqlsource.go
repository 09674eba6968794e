package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLSource reads every row of a sqlite table. Either DB is set, or the
// database at Path is opened on first Read.
type SQLSource struct {
	DB    *sql.DB
	Path  string
	Table string

	open OpenFunc
}

func (s *SQLSource) Key() string {
	return fmt.Sprintf("sqlite:%s#%s", s.Path, s.Table)
}

func (s *SQLSource) Read(ctx context.Context) (Table, error) {
	if !identifierPattern.MatchString(s.Table) {
		return Table{}, fmt.Errorf("invalid table name %q", s.Table)
	}

	conn, err := s.conn()
	if err != nil {
		return Table{}, err
	}

	rows, err := conn.QueryContext(ctx, "SELECT * FROM "+s.Table)
	if err != nil {
		if strings.Contains(err.Error(), "no such table") {
			return Table{}, &DataNotFoundError{Path: s.Key(), Err: err}
		}
		return Table{}, fmt.Errorf("failed to query %s: %w", s.Table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Table{}, fmt.Errorf("failed to read columns of %s: %w", s.Table, err)
	}

	records := [][]string{cols}
	values := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return Table{}, fmt.Errorf("failed to scan %s row: %w", s.Table, err)
		}
		record := make([]string, len(cols))
		for i, v := range values {
			if v.Valid {
				record[i] = v.String
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return Table{}, fmt.Errorf("failed to iterate %s: %w", s.Table, err)
	}

	return FromRecords(records, s.Key())
}

func (s *SQLSource) conn() (*sql.DB, error) {
	if s.DB != nil {
		return s.DB, nil
	}
	if _, err := os.Stat(s.Path); err != nil {
		return nil, &DataNotFoundError{Path: s.Path, Err: err}
	}
	if s.open == nil {
		return nil, fmt.Errorf("no database opener configured for %s", s.Path)
	}
	conn, err := s.open(s.Path)
	if err != nil {
		return nil, &DataNotFoundError{Path: s.Path, Err: err}
	}
	s.DB = conn
	return conn, nil
}
