// Package pipeline implements the concrete ontology build steps that run
// inside the incremental target graph.
package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ontoforge/ontoforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Deps bundles the collaborators shared by all build steps.
type Deps struct {
	Logger     ports.Logger
	Tables     ports.TableOpener
	Ontologies ports.OntologyLoader
	Fetcher    ports.Fetcher
	Mapper     ports.IRIMapper
	Finder     ports.EntityFinder
	Scaffolder ports.ProjectScaffolder
	Stdin      io.Reader
	Stdout     io.Writer
}

// isFile reports whether path names an existing regular file.
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// isDir reports whether path names an existing directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// outputStale reports whether output is missing or older than any of the
// inputs. A missing input is an error: staleness cannot be judged against a
// file that does not exist.
func outputStale(output string, inputs ...string) (bool, error) {
	outInfo, err := os.Stat(output)
	if err != nil {
		return true, nil
	}

	for _, input := range inputs {
		inInfo, err := os.Stat(input)
		if err != nil {
			return false, zerr.With(
				zerr.Wrap(err, "a build input file could not be found"), "file", input,
			)
		}
		if outInfo.ModTime().Before(inInfo.ModTime()) {
			return true, nil
		}
	}
	return false, nil
}

// splitExt splits a file name into its stem and extension.
func splitExt(name string) (string, string) {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}

// fileIRI converts a local path into a file IRI.
func fileIRI(pathstr string) string {
	abs, err := filepath.Abs(pathstr)
	if err != nil {
		abs = pathstr
	}
	return "file://" + filepath.ToSlash(abs)
}

// ensureDir creates dir if it does not yet exist.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerr.Wrap(err, "failed to create an output directory")
	}
	return nil
}
