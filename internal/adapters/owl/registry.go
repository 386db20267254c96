package owl

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry implements ports.IRIMapper. Mappings are written to an OASIS XML
// catalog that the toolkit consults when resolving import IRIs, so compiled
// local modules are used instead of their remote originals.
type Registry struct {
	mu       sync.Mutex
	mappings map[string]string
	path     string
}

// NewRegistry creates an empty IRI mapping registry.
func NewRegistry() *Registry {
	return &Registry{mappings: make(map[string]string)}
}

// AddMapping maps ontologyIRI to documentIRI. Remapping an IRI to a
// different document is an error; an identical remapping is a no-op.
func (r *Registry) AddMapping(ontologyIRI, documentIRI string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.mappings[ontologyIRI]; ok {
		if existing == documentIRI {
			return nil
		}
		err := zerr.Wrap(domain.ErrIRIMappingConflict, "the ontology IRI is already mapped to another document")
		err = zerr.With(err, "ontology_iri", ontologyIRI)
		err = zerr.With(err, "document_iri", documentIRI)
		return zerr.With(err, "existing_document_iri", existing)
	}
	r.mappings[ontologyIRI] = documentIRI

	if r.path != "" {
		return r.writeCatalogLocked()
	}
	return nil
}

// SetCatalogPath sets the catalog file location and writes the current
// mappings to it.
func (r *Registry) SetCatalogPath(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = path
	return r.writeCatalogLocked()
}

// CatalogPath returns the catalog file location, or the empty string when
// none has been set.
func (r *Registry) CatalogPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

type catalogURI struct {
	XMLName xml.Name `xml:"uri"`
	Name    string   `xml:"name,attr"`
	URI     string   `xml:"uri,attr"`
}

type catalogDoc struct {
	XMLName xml.Name     `xml:"catalog"`
	Xmlns   string       `xml:"xmlns,attr"`
	Prefer  string       `xml:"prefer,attr"`
	URIs    []catalogURI `xml:"uri"`
}

func (r *Registry) writeCatalogLocked() error {
	iris := make([]string, 0, len(r.mappings))
	for iri := range r.mappings {
		iris = append(iris, iri)
	}
	sort.Strings(iris)

	doc := catalogDoc{
		Xmlns:  "urn:oasis:names:tc:entity:xmlns:xml:catalog",
		Prefer: "public",
	}
	for _, iri := range iris {
		doc.URIs = append(doc.URIs, catalogURI{Name: iri, URI: r.mappings[iri]})
	}

	data, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return zerr.Wrap(err, "failed to serialize IRI catalog")
	}
	data = append([]byte(xml.Header), data...)

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return zerr.Wrap(err, "failed to create catalog directory")
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write IRI catalog")
	}
	return nil
}

var _ ports.IRIMapper = (*Registry)(nil)
