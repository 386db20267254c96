package table_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ontoforge/ontoforge/internal/adapters/table"
	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var testSchema = domain.TableSchema{
	Required: []string{"Type", "ID"},
	Optional: []string{"Parent"},
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "terms.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// readAll drains a table into row views.
func readAll(t *testing.T, tbl ports.Table) []domain.TableRow {
	t.Helper()
	tbl.SetSchema(testSchema)
	var rows []domain.TableRow
	for {
		row, err := tbl.NextRow()
		if err == io.EOF {
			return rows
		}
		require.NoError(t, err)
		rows = append(rows, row)
	}
}

func TestCSVReader(t *testing.T) {
	path := writeCSV(t, "Type,ID,Parent\nclass,OBTO:0001,\n\n , ,\nclass,OBTO:0002,OBTO:0001\n")

	reader, err := table.NewOpener().Open(path)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, path, reader.FileName())
	assert.Equal(t, 1, reader.TableCount())

	tbl, err := reader.NextTable()
	require.NoError(t, err)
	assert.Equal(t, "table", tbl.Name())

	rows := readAll(t, tbl)
	require.Len(t, rows, 2, "blank rows are skipped")

	id, err := rows[0].Get("id")
	require.NoError(t, err)
	assert.Equal(t, "OBTO:0001", id)
	assert.Equal(t, 2, rows[0].Num, "the header occupies row 1")

	parent, err := rows[1].Get("Parent")
	require.NoError(t, err)
	assert.Equal(t, "OBTO:0001", parent)
	assert.Equal(t, 4, rows[1].Num, "whitespace-only rows advance the row counter")

	_, err = reader.NextTable()
	assert.Equal(t, io.EOF, err)
}

func TestCSVReader_RaggedRows(t *testing.T) {
	path := writeCSV(t, "Type,ID,Parent\nclass,OBTO:0001\nclass,OBTO:0002,OBTO:0001,extra\n")

	reader, err := table.NewOpener().Open(path)
	require.NoError(t, err)
	defer reader.Close()

	tbl, err := reader.NextTable()
	require.NoError(t, err)

	rows := readAll(t, tbl)
	require.Len(t, rows, 2)

	parent, err := rows[0].Get("Parent")
	require.NoError(t, err)
	assert.Empty(t, parent, "missing trailing cells read as empty")

	id, err := rows[1].Get("ID")
	require.NoError(t, err)
	assert.Equal(t, "OBTO:0002", id, "cells beyond the header are dropped")
}

func TestCSVReader_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	reader, err := table.NewOpener().Open(path)
	require.NoError(t, err)
	defer reader.Close()

	_, err = reader.NextTable()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTableRow)
}

func TestXLSXReader(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "classes"))
	require.NoError(t, f.SetSheetRow("classes", "A1", &[]string{"Type", "ID", "Parent"}))
	require.NoError(t, f.SetSheetRow("classes", "A2", &[]string{"class", "OBTO:0001"}))
	require.NoError(t, f.SetSheetRow("classes", "A4", &[]string{"class", "OBTO:0002", "OBTO:0001"}))
	_, err := f.NewSheet("properties")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("properties", "A1", &[]string{"Type", "ID"}))
	require.NoError(t, f.SetSheetRow("properties", "A2", &[]string{"objectproperty", "OBTO:1000"}))

	path := filepath.Join(t.TempDir(), "terms.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	reader, err := table.NewOpener().Open(path)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, 2, reader.TableCount())

	tbl, err := reader.NextTable()
	require.NoError(t, err)
	assert.Equal(t, "classes", tbl.Name())

	rows := readAll(t, tbl)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Num)
	assert.Equal(t, 4, rows[1].Num, "empty spreadsheet rows are skipped")
	assert.Equal(t, "classes", rows[0].Table)

	tbl, err = reader.NextTable()
	require.NoError(t, err)
	assert.Equal(t, "properties", tbl.Name())

	rows = readAll(t, tbl)
	require.Len(t, rows, 1)
	id, err := rows[0].Get("ID")
	require.NoError(t, err)
	assert.Equal(t, "OBTO:1000", id)

	_, err = reader.NextTable()
	assert.Equal(t, io.EOF, err)
}

func TestOpener_UnsupportedFormat(t *testing.T) {
	_, err := table.NewOpener().Open("terms.ods")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestOpener_MissingFile(t *testing.T) {
	_, err := table.NewOpener().Open(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
