// import_listings copies the cleaned listings CSV into a sqlite table so the
// dashboard can be pointed at the database instead.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/carprice/dashboard/config"
	"github.com/carprice/dashboard/dataset"
	"github.com/carprice/dashboard/db"
)

func main() {
	config.Init()

	csvPath := flag.String("csv", "data/processed/cleaned_cars.csv", "listings CSV to import")
	dbPath := flag.String("db", "data/processed/cars.db", "sqlite database to write")
	tableName := flag.String("table", config.DataTable, "destination table, replaced if it exists")
	flag.Parse()

	ctx := context.Background()
	table, err := dataset.CSVSource{Path: *csvPath}.Read(ctx)
	if err != nil {
		log.Fatalf("Failed to read listings: %v", err)
	}

	conn, err := db.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	n, err := importTable(ctx, conn, *tableName, table)
	if err != nil {
		log.Fatalf("Failed to import listings: %v", err)
	}
	log.Printf("Imported %d listings into %s (%s)", n, *tableName, *dbPath)
}

// importTable replaces table name with the rows of t in one transaction.
func importTable(ctx context.Context, conn *sql.DB, name string, t dataset.Table) (int, error) {
	cols := t.Columns()
	quoted := make([]string, len(cols))
	defs := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, col := range cols {
		quoted[i] = quoteIdent(col)
		defs[i] = quoted[i] + " " + columnType(col)
		marks[i] = "?"
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(name)); err != nil {
		return 0, fmt.Errorf("failed to drop %s: %w", name, err)
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(name), strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", name, err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(name), strings.Join(quoted, ", "), strings.Join(marks, ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	rows := t.Rows()
	for i, row := range rows {
		args := make([]any, len(row))
		for j, cell := range row {
			args[j] = cellValue(cols[j], cell)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return len(rows), nil
}

func columnType(col string) string {
	switch col {
	case dataset.ColPrice, dataset.ColMileage:
		return "REAL"
	}
	return "TEXT"
}

// cellValue maps blank cells to NULL and numeric columns to float64.
func cellValue(col, cell string) any {
	if cell == "" {
		return nil
	}
	if columnType(col) == "REAL" {
		if f, err := strconv.ParseFloat(cell, 64); err == nil {
			return f
		}
	}
	return cell
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
