package ports

import (
	"context"
	"io"

	"github.com/ontoforge/ontoforge/internal/core/domain"
)

// Ontology is the narrow contract of the external ontology document model.
// Implementations coordinate an OWL API toolkit; OWL semantics are not part
// of this codebase.
//
//go:generate go run go.uber.org/mock/mockgen -source=ontology.go -destination=mocks/mock_ontology.go -package=mocks
type Ontology interface {
	// AddImport adds an import declaration for the given ontology IRI.
	AddImport(iri string) error

	// Imports returns the IRIs of all directly imported ontologies.
	Imports(ctx context.Context) ([]string, error)

	// HasImport reports whether the ontology declares an import of iri.
	HasImport(ctx context.Context, iri string) (bool, error)

	// UpdateImportIRI rewrites an import declaration from oldIRI to newIRI.
	UpdateImportIRI(oldIRI, newIRI string) error

	// MergeImport merges the axioms of the imported ontology identified by
	// iri directly into this ontology, removing the import declaration. When
	// annotate is true the merged axioms are tagged with their origin.
	MergeImport(iri string, annotate bool) error

	// SetOntologyID sets the ontology IRI and, if versionIRI is non-empty,
	// the version IRI.
	SetOntologyID(ontologyIRI, versionIRI string) error

	// AddInferredAxioms runs the named reasoner and materializes inferred
	// axioms into the ontology according to spec.
	AddInferredAxioms(reasoner string, spec domain.InferenceSpec) error

	// CheckEntailments runs the named reasoner and reports consistency and
	// unsatisfiable classes. Inconsistency is a result, not an error.
	CheckEntailments(ctx context.Context, reasoner string) (domain.EntailmentReport, error)

	// SaveAs applies all pending modifications and writes the ontology
	// document to path in the given serialization format.
	SaveAs(ctx context.Context, path, format string) error

	// Write applies all pending modifications and streams the ontology
	// document to w in the given serialization format.
	Write(ctx context.Context, w io.Writer, format string) error
}

// OntologyLoader opens ontology documents and derived builders.
type OntologyLoader interface {
	// Load opens the ontology document at path.
	Load(path string) (Ontology, error)

	// LoadFrom reads an ontology document from r.
	LoadFrom(r io.Reader) (Ontology, error)

	// NewBuilder starts an ontology build on top of the base ontology
	// document at basePath.
	NewBuilder(basePath string) (OntologyBuilder, error)

	// ExtractModule builds an import module holding the given terms from the
	// source ontology document at sourcePath, identified by moduleIRI.
	ExtractModule(ctx context.Context, sourcePath string, terms []domain.ImportTerm, moduleIRI string) (Ontology, error)
}

// OntologyBuilder accumulates entity descriptions from term tables and
// compiles them onto a base ontology. Axioms referencing other entities are
// deferred until Finish so that rows may forward-reference labels.
type OntologyBuilder interface {
	// AddEntity records one entity description for compilation.
	AddEntity(desc domain.EntityDescription) error

	// Finish compiles all recorded entities and their deferred axioms.
	// expandDefs controls whether term labels in text definitions are
	// expanded with their identifiers.
	Finish(ctx context.Context, expandDefs bool) error

	// Ontology returns the compiled ontology. Valid only after Finish.
	Ontology() Ontology
}

// EntityFinder indexes ontology entities and matches search terms against
// their labels and annotations.
type EntityFinder interface {
	// AddOntology indexes all entities of the ontology document at path.
	AddOntology(ctx context.Context, path string) error

	// Find returns all entities matching the search term, either fully or as
	// a subphrase.
	Find(ctx context.Context, term string) ([]domain.EntityMatch, error)
}

// IRIMapper records process-scoped mappings from ontology IRIs to local
// document IRIs, applied to every ontology catalog in use.
type IRIMapper interface {
	// AddMapping maps ontologyIRI to documentIRI. Remapping an IRI to a
	// different document is an error; an identical remapping is a no-op.
	AddMapping(ontologyIRI, documentIRI string) error

	// SetCatalogPath sets the file the mappings are materialized into and
	// writes the current mapping set to it.
	SetCatalogPath(path string) error
}
