package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/ontoforge/ontoforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// sourceCache stores downloaded source ontology documents under the build
// directory, keyed by source IRI. File names keep the IRI's base name for
// readability and add an IRI digest so distinct sources with equal base
// names cannot collide.
type sourceCache struct {
	dir     string
	fetcher ports.Fetcher
}

// newSourceCache returns a cache rooted at the build directory's
// source_ontologies folder.
func newSourceCache(buildDir string, fetcher ports.Fetcher) *sourceCache {
	return &sourceCache{dir: filepath.Join(buildDir, "source_ontologies"), fetcher: fetcher}
}

// path returns the local cache path for a source IRI.
func (c *sourceCache) path(iri string) string {
	base := "document"
	ext := ""
	if u, err := url.Parse(iri); err == nil && u.Path != "" {
		base = path.Base(u.Path)
		ext = path.Ext(base)
		base = strings.TrimSuffix(base, ext)
	}
	digest := fmt.Sprintf("%016x", xxhash.Sum64String(iri))
	return filepath.Join(c.dir, base+"-"+digest+ext)
}

// ensure makes sure the document for iri is cached locally and returns its
// path together with the final document IRI after any redirect chain. An
// already cached document is not fetched again and keeps its original IRI.
func (c *sourceCache) ensure(ctx context.Context, iri string) (string, string, error) {
	dest := c.path(iri)
	if isFile(dest) {
		return dest, iri, nil
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", "", zerr.Wrap(err, "failed to create the source ontology cache directory")
	}
	finalIRI, err := c.fetcher.Resolve(ctx, iri)
	if err != nil {
		return "", "", zerr.With(
			zerr.Wrap(err, "unable to locate the external ontology"), "iri", iri,
		)
	}
	if err := c.fetcher.Download(ctx, finalIRI, dest); err != nil {
		return "", "", zerr.With(
			zerr.Wrap(err, "unable to download the external ontology"), "iri", finalIRI,
		)
	}
	return dest, finalIRI, nil
}
