// Package fetch retrieves remote ontology documents over HTTP.
package fetch

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/ontoforge/ontoforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxRetries bounds the attempts for one request when transient TLS or
// timeout failures occur.
const maxRetries = 6

// retryDelay is the pause between retry attempts.
const retryDelay = 100 * time.Millisecond

// Client implements ports.Fetcher on net/http.
type Client struct {
	http *http.Client
}

// NewClient returns a fetcher using the given HTTP client, or a default one
// when httpClient is nil.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{http: httpClient}
}

// Resolve issues a HEAD request for iri and returns the final IRI after
// following any redirect chain.
func (c *Client) Resolve(ctx context.Context, iri string) (string, error) {
	resp, err := c.do(ctx, http.MethodHead, iri)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck
	return resp.Request.URL.String(), nil
}

// Download retrieves the document at iri into the file at dest. The document
// is staged in a temporary file and renamed into place so a failed download
// never leaves a truncated destination.
func (c *Client) Download(ctx context.Context, iri, dest string) error {
	resp, err := c.do(ctx, http.MethodGet, iri)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".tmp*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary download file")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close() //nolint:errcheck
		return zerr.With(zerr.Wrap(err, "failed to download document"), "iri", iri)
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to finish temporary download file")
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return zerr.Wrap(err, "failed to move downloaded document into place")
	}
	return nil
}

// do performs one HTTP request with the fixed retry policy for transient
// failures.
func (c *Client) do(ctx context.Context, method, iri string) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, zerr.Wrap(ctx.Err(), "request cancelled")
			case <-time.After(retryDelay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, iri, nil)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid resource IRI"), "iri", iri)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if isTransient(err) {
				lastErr = err
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to reach remote resource"), "iri", iri)
		}

		if resp.StatusCode == http.StatusNotFound {
			resp.Body.Close() //nolint:errcheck
			return nil, zerr.With(
				zerr.Wrap(domain.ErrNotFound, "no document exists at the remote IRI"), "iri", iri,
			)
		}
		if resp.StatusCode >= 400 {
			status := resp.Status
			resp.Body.Close() //nolint:errcheck
			err := zerr.Wrap(domain.ErrConnectionFailed, "remote resource answered with an error status")
			err = zerr.With(err, "iri", iri)
			return nil, zerr.With(err, "status", status)
		}
		return resp, nil
	}

	err := zerr.Wrap(domain.ErrConnectionFailed, "retries exhausted")
	err = zerr.With(err, "iri", iri)
	err = zerr.With(err, "attempts", maxRetries)
	return nil, zerr.With(err, "cause", lastErr.Error())
}

// isTransient reports whether a request failure is worth retrying: TLS
// handshake hiccups and network timeouts.
func isTransient(err error) bool {
	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return true
	}
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

var _ ports.Fetcher = (*Client)(nil)
