package ports

import (
	"github.com/ontoforge/ontoforge/internal/core/domain"
)

// TableOpener opens tabular input files, choosing a reader implementation
// from the file extension.
//
//go:generate go run go.uber.org/mock/mockgen -source=table.go -destination=mocks/mock_table.go -package=mocks
type TableOpener interface {
	Open(path string) (TableReader, error)
}

// TableReader iterates the tables of one input document. Single-table
// formats such as CSV expose exactly one table.
type TableReader interface {
	// FileName returns the path of the underlying document.
	FileName() string

	// TableCount returns the number of tables in the document.
	TableCount() int

	// NextTable returns the next table, or io.EOF after the last one.
	NextTable() (Table, error)

	// Close releases the underlying document.
	Close() error
}

// Table iterates the data rows of a single table under a column schema.
type Table interface {
	// Name returns the table name (sheet name for workbook formats).
	Name() string

	// SetSchema declares the column contract applied to rows returned by
	// NextRow.
	SetSchema(schema domain.TableSchema)

	// NextRow returns the next data row, or io.EOF after the last one.
	NextRow() (domain.TableRow, error)
}
