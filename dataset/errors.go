package dataset

import "fmt"

// DataNotFoundError reports that the dataset resource is absent or cannot be
// opened. Callers stop the pipeline and show a fixed message instead.
type DataNotFoundError struct {
	Path string
	Err  error
}

func (e *DataNotFoundError) Error() string {
	return fmt.Sprintf("dataset not found at %s: %v", e.Path, e.Err)
}

func (e *DataNotFoundError) Unwrap() error {
	return e.Err
}

// SchemaError reports a dataset that lacks a required column.
type SchemaError struct {
	Source string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset %s is missing required column %q", e.Source, e.Column)
}
