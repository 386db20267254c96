// Package table implements readers for tabular term description files.
package table

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// csvReader reads a CSV document as a single table.
type csvReader struct {
	path   string
	file   *os.File
	served bool
}

func newCSVReader(path string) (*csvReader, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from project configuration
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open input file")
	}
	return &csvReader{path: path, file: f}, nil
}

func (r *csvReader) FileName() string {
	return r.path
}

func (r *csvReader) TableCount() int {
	return 1
}

func (r *csvReader) NextTable() (ports.Table, error) {
	if r.served {
		return nil, io.EOF
	}
	r.served = true

	cr := csv.NewReader(r.file)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrTableRow, "the input file contains no header row"),
			"file", r.path,
		)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read header row"), "file", r.path)
	}

	return &csvTable{path: r.path, reader: cr, header: header, rownum: 1}, nil
}

func (r *csvReader) Close() error {
	return r.file.Close()
}

// csvTable serves the data rows of a CSV document under a column schema.
type csvTable struct {
	path   string
	reader *csv.Reader
	header []string
	schema domain.TableSchema
	rownum int
}

func (t *csvTable) Name() string {
	return "table"
}

func (t *csvTable) SetSchema(schema domain.TableSchema) {
	t.schema = schema
}

func (t *csvTable) NextRow() (domain.TableRow, error) {
	for {
		record, err := t.reader.Read()
		if err == io.EOF {
			return domain.TableRow{}, io.EOF
		}
		if err != nil {
			return domain.TableRow{}, zerr.With(
				zerr.Wrap(err, "failed to read table row"), "file", t.path,
			)
		}
		t.rownum++
		if isBlank(record) {
			continue
		}
		return domain.NewTableRow(t.path, "", t.rownum, t.schema, zipRow(t.header, record)), nil
	}
}

// isBlank reports whether all cells of a record are empty after trimming.
func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// zipRow pairs header names with cell values. Cells beyond the header are
// dropped; missing trailing cells are treated as empty.
func zipRow(header, record []string) map[string]string {
	values := make(map[string]string, len(header))
	for i, col := range header {
		col = strings.TrimSpace(col)
		if col == "" {
			continue
		}
		if i < len(record) {
			values[col] = record[i]
		} else {
			values[col] = ""
		}
	}
	return values
}

var _ ports.TableReader = (*csvReader)(nil)
