package table

import (
	"path/filepath"
	"strings"

	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Opener opens tabular input files, choosing the reader implementation from
// the file extension.
type Opener struct{}

// NewOpener returns a table opener supporting CSV and Excel workbooks.
func NewOpener() Opener {
	return Opener{}
}

// Open opens the tabular document at path.
func (Opener) Open(path string) (ports.TableReader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return newCSVReader(path)
	case ".xlsx", ".xlsm":
		return newXLSXReader(path)
	default:
		err := zerr.Wrap(domain.ErrUnsupportedFormat, "no table reader exists for the file extension")
		err = zerr.With(err, "file", path)
		return nil, zerr.With(err, "supported_formats", ".csv, .xlsx, .xlsm")
	}
}

var _ ports.TableOpener = Opener{}
