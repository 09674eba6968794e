// Package dataset loads the cleaned car listings and derives filtered views
// from them. A Table is immutable: every operation returns a new Table.
package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Required column names.
const (
	ColBrand        = "brand"
	ColTransmission = "transmission"
	ColPrice        = "price"
	ColMileage      = "mileage"
)

// RequiredColumns lists the columns every dataset must provide. Other
// columns are kept and passed through to the raw table view.
var RequiredColumns = []string{ColBrand, ColTransmission, ColPrice, ColMileage}

var columnTypes = map[string]series.Type{
	ColBrand:        series.String,
	ColTransmission: series.String,
	ColPrice:        series.Float,
	ColMileage:      series.Float,
}

var utf8BOM = []byte("\xef\xbb\xbf")

// Table is an ordered collection of listing rows.
type Table struct {
	df dataframe.DataFrame
}

// ReadCSV parses delimited text with a header row into a Table. name is used
// in error messages.
func ReadCSV(r io.Reader, name string) (Table, error) {
	records, err := csv.NewReader(stripBOM(r)).ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return FromRecords(records, name)
}

// FromRecords builds a Table from a header row followed by data rows. A
// header with no rows is a valid empty table.
func FromRecords(records [][]string, name string) (Table, error) {
	if len(records) == 1 {
		header := records[0]
		types := make([]series.Type, len(header))
		for i, col := range header {
			types[i] = columnType(col)
		}
		return newTable(emptyFrame(header, types), name)
	}
	df := dataframe.LoadRecords(records, dataframe.WithTypes(columnTypes))
	return newTable(df, name)
}

func columnType(name string) series.Type {
	if typ, ok := columnTypes[name]; ok {
		return typ
	}
	return series.String
}

func newTable(df dataframe.DataFrame, name string) (Table, error) {
	if df.Err != nil {
		return Table{}, fmt.Errorf("failed to parse %s: %w", name, df.Err)
	}
	names := df.Names()
	for _, col := range RequiredColumns {
		if !slices.Contains(names, col) {
			return Table{}, &SchemaError{Source: name, Column: col}
		}
	}
	return Table{df: df}, nil
}

// stripBOM drops a UTF-8 byte order mark so the first header cell matches
// its column name.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return br
}

// Len returns the number of rows.
func (t Table) Len() int {
	return t.df.Nrow()
}

// Columns returns the column names in file order.
func (t Table) Columns() []string {
	if t.df.Ncol() == 0 {
		return nil
	}
	return t.df.Names()
}

func (t Table) col(name string) (series.Series, bool) {
	if !slices.Contains(t.Columns(), name) {
		return series.Series{}, false
	}
	return t.df.Col(name), true
}

// Strings returns a column rendered as text.
func (t Table) Strings(name string) []string {
	s, ok := t.col(name)
	if !ok {
		return nil
	}
	return s.Records()
}

// Floats returns a numeric column. Unparseable cells are NaN.
func (t Table) Floats(name string) []float64 {
	s, ok := t.col(name)
	if !ok {
		return nil
	}
	return s.Float()
}

func (t Table) Prices() []float64 {
	return t.Floats(ColPrice)
}

func (t Table) Mileages() []float64 {
	return t.Floats(ColMileage)
}

// Rows returns every row as text, without the header. Numbers use their
// shortest form and missing cells are blank.
func (t Table) Rows() [][]string {
	if t.df.Ncol() == 0 {
		return nil
	}
	names := t.df.Names()
	cols := make([][]string, len(names))
	for j, name := range names {
		cols[j] = cellText(t.df.Col(name))
	}
	rows := make([][]string, t.df.Nrow())
	for i := range rows {
		row := make([]string, len(names))
		for j := range names {
			row[j] = cols[j][i]
		}
		rows[i] = row
	}
	return rows
}

func cellText(s series.Series) []string {
	if s.Type() != series.Float {
		out := s.Records()
		for i, v := range out {
			if v == "NaN" {
				out[i] = ""
			}
		}
		return out
	}
	values := s.Float()
	out := make([]string, len(values))
	for i, v := range values {
		if !math.IsNaN(v) {
			out[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return out
}

// WriteCSV writes the table, header included.
func (t Table) WriteCSV(w io.Writer) error {
	if t.df.Ncol() == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(t.df.Names()); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows()); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// emptyLike returns a zero-row table with the same columns and types.
func (t Table) emptyLike() Table {
	return Table{df: emptyFrame(t.df.Names(), t.df.Types())}
}

func emptyFrame(names []string, types []series.Type) dataframe.DataFrame {
	cols := make([]series.Series, len(names))
	for i, name := range names {
		cols[i] = series.New([]string{}, types[i], name)
	}
	return dataframe.New(cols...)
}
