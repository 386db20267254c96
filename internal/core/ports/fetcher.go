package ports

import "context"

// Fetcher retrieves remote ontology documents. Implementations follow
// redirect chains and retry a fixed number of times on transient TLS
// failures; there is no general timeout or backoff policy.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Resolve issues a HEAD request for iri and returns the final IRI after
	// following any redirect chain.
	Resolve(ctx context.Context, iri string) (string, error)

	// Download retrieves the document at iri into the file at dest.
	Download(ctx context.Context, iri, dest string) error
}
