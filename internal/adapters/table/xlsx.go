package table

import (
	"io"

	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/core/ports"
	"github.com/xuri/excelize/v2"
	"go.trai.ch/zerr"
)

// xlsxReader reads an Excel workbook, serving one table per sheet.
type xlsxReader struct {
	path   string
	file   *excelize.File
	sheets []string
	next   int
}

func newXLSXReader(path string) (*xlsxReader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open input workbook")
	}
	return &xlsxReader{path: path, file: f, sheets: f.GetSheetList()}, nil
}

func (r *xlsxReader) FileName() string {
	return r.path
}

func (r *xlsxReader) TableCount() int {
	return len(r.sheets)
}

func (r *xlsxReader) NextTable() (ports.Table, error) {
	if r.next >= len(r.sheets) {
		return nil, io.EOF
	}
	sheet := r.sheets[r.next]
	r.next++

	rows, err := r.file.GetRows(sheet)
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "failed to read worksheet"), "file", r.path)
		return nil, zerr.With(wrapped, "table", sheet)
	}
	if len(rows) == 0 {
		wrapped := zerr.With(
			zerr.Wrap(domain.ErrTableRow, "the worksheet contains no header row"), "file", r.path,
		)
		return nil, zerr.With(wrapped, "table", sheet)
	}

	return &xlsxTable{path: r.path, sheet: sheet, header: rows[0], rows: rows[1:]}, nil
}

func (r *xlsxReader) Close() error {
	return r.file.Close()
}

// xlsxTable serves the data rows of one worksheet under a column schema.
type xlsxTable struct {
	path   string
	sheet  string
	header []string
	rows   [][]string
	schema domain.TableSchema
	next   int
}

func (t *xlsxTable) Name() string {
	return t.sheet
}

func (t *xlsxTable) SetSchema(schema domain.TableSchema) {
	t.schema = schema
}

func (t *xlsxTable) NextRow() (domain.TableRow, error) {
	for t.next < len(t.rows) {
		record := t.rows[t.next]
		t.next++
		if isBlank(record) {
			continue
		}
		// Row numbers are 1-based with the header on row 1.
		num := t.next + 1
		return domain.NewTableRow(t.path, t.sheet, num, t.schema, zipRow(t.header, record)), nil
	}
	return domain.TableRow{}, io.EOF
}

var _ ports.TableReader = (*xlsxReader)(nil)
