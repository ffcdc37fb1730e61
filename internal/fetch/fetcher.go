// Package fetch retrieves external content over an ordered chain of
// retrieval strategies.
//
// Some upstream sources have no directly-reachable API, so the same logical
// resource is requested through alternate relay endpoints until one yields
// usable data. None of the relays is authoritative; the order of a chain
// encodes preference, historically most-reliable first.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iggydv/folio/internal/logging"
	"github.com/iggydv/folio/internal/model"
)

// userAgent identifies folio to upstream servers.
const userAgent = "folio/1.0 (https://github.com/iggydv/folio)"

// maxBodyBytes caps how much of a response is read. The Goodreads "read"
// shelf at its maximum page size stays well under this.
const maxBodyBytes = 8 << 20

// ErrSourceExhausted is returned when every strategy in a chain has failed.
// Callers treat it as "no data", never as a crash.
var ErrSourceExhausted = errors.New("all fetch strategies exhausted")

// Strategy is one way to retrieve a logical resource: a concrete request
// URL plus an optional extractor that unwraps the relay's response
// envelope. A nil Extract means the body is the raw document.
type Strategy struct {
	Name    string
	URL     string
	Extract func(body []byte) ([]byte, error)
}

// ParseFunc turns a raw document into normalized display items. Returning
// zero items (or an error) marks the strategy as failed.
type ParseFunc func(raw []byte) ([]model.Item, error)

// Fetcher tries strategies in order until one yields usable records.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// New creates a Fetcher with the given per-attempt timeout.
func New(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:  &http.Client{},
		timeout: timeout,
	}
}

// FetchFirst attempts each strategy in order and returns the records of the
// first one that parses into at least one item, truncated to limit
// (limit <= 0 means no truncation). Attempts are strictly sequential: each
// fully resolves before the next begins, so quota is not wasted on
// strategies that may never be needed.
//
// Transport failures, timeouts, envelope and parse failures are all
// recovered locally by advancing to the next strategy. When the whole chain
// fails, the result is (nil, ErrSourceExhausted).
func (f *Fetcher) FetchFirst(ctx context.Context, strategies []Strategy, parse ParseFunc, limit int) ([]model.Item, error) {
	for _, s := range strategies {
		items, err := f.attempt(ctx, s, parse)
		if err != nil {
			logging.Warn("fetch strategy failed", "strategy", s.Name, "error", err)
			continue
		}
		if len(items) == 0 {
			logging.Warn("fetch strategy returned no records", "strategy", s.Name)
			continue
		}

		logging.Debug("fetch strategy succeeded", "strategy", s.Name, "records", len(items))
		if limit > 0 && len(items) > limit {
			items = items[:limit]
		}
		return items, nil
	}

	return nil, ErrSourceExhausted
}

// FetchOne issues a single strategy against an authoritative endpoint.
// Unlike FetchFirst, a successfully parsed empty document is a real
// answer, not a reason to fail: there is no other strategy that could
// contradict it. Transport, envelope, and parse failures still error.
func (f *Fetcher) FetchOne(ctx context.Context, s Strategy, parse ParseFunc, limit int) ([]model.Item, error) {
	items, err := f.attempt(ctx, s, parse)
	if err != nil {
		logging.Warn("fetch failed", "strategy", s.Name, "error", err)
		return nil, err
	}

	logging.Debug("fetch succeeded", "strategy", s.Name, "records", len(items))
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// attempt issues one request under the per-attempt timeout. Timeout expiry
// cancels the in-flight request and surfaces like any transport failure.
func (f *Fetcher) attempt(ctx context.Context, s Strategy, parse ParseFunc) ([]model.Item, error) {
	actx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(actx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	raw := body
	if s.Extract != nil {
		raw, err = s.Extract(body)
		if err != nil {
			return nil, fmt.Errorf("failed to unwrap envelope: %w", err)
		}
	}

	items, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return items, nil
}
