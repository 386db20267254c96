package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// TableSchema declares the column contract for reading a table: the set of
// required columns, the set of optional columns, and per-column default
// values for optional columns. Column lookups are case-insensitive.
type TableSchema struct {
	Required []string
	Optional []string
	Defaults map[string]string
}

func normalize(cols []string) map[string]bool {
	m := make(map[string]bool, len(cols))
	for _, c := range cols {
		m[strings.ToLower(c)] = true
	}
	return m
}

// TableRow is a typed view of one row of an input table. Cell values are
// whitespace-trimmed and columns are looked up case-insensitively against
// the row's schema.
type TableRow struct {
	File  string
	Table string
	Num   int

	values   map[string]string
	required map[string]bool
	defaults map[string]string
}

// NewTableRow builds a row view from raw column values. Keys are
// case-normalized and values trimmed.
func NewTableRow(file, table string, num int, schema TableSchema, values map[string]string) TableRow {
	norm := make(map[string]string, len(values))
	for k, v := range values {
		norm[strings.ToLower(k)] = strings.TrimSpace(v)
	}
	defaults := make(map[string]string, len(schema.Defaults))
	for k, v := range schema.Defaults {
		defaults[strings.ToLower(k)] = v
	}
	return TableRow{
		File:     file,
		Table:    table,
		Num:      num,
		values:   norm,
		required: normalize(schema.Required),
		defaults: defaults,
	}
}

// Get returns the value of the named column. A missing required column is an
// error carrying the row context; a missing optional column yields its
// declared default, or the empty string.
func (r *TableRow) Get(col string) (string, error) {
	key := strings.ToLower(col)
	if v, ok := r.values[key]; ok {
		return v, nil
	}
	if r.required[key] {
		return "", r.WithContext(zerr.With(
			zerr.Wrap(ErrColumnMissing, "the row is missing a required column"), "column", col,
		))
	}
	return r.defaults[key], nil
}

// Has reports whether the row contains a value for the named column.
func (r *TableRow) Has(col string) bool {
	_, ok := r.values[strings.ToLower(col)]
	return ok
}

// Columns returns the normalized column names present in the row.
func (r *TableRow) Columns() []string {
	cols := make([]string, 0, len(r.values))
	for k := range r.values {
		cols = append(cols, k)
	}
	return cols
}

// WithContext annotates err with this row's source location so the user can
// find and fix the offending line.
func (r *TableRow) WithContext(err error) error {
	err = zerr.With(err, "file", r.File)
	err = zerr.With(err, "row", r.Num)
	if r.Table != "" {
		err = zerr.With(err, "table", r.Table)
	}
	return err
}
