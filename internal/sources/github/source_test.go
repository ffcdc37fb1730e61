package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iggydv/folio/internal/fetch"
	"github.com/iggydv/folio/internal/ratelimit"
)

const reposJSON = `[
	{"name": "quiet", "html_url": "https://github.com/u/quiet", "description": "a small thing", "fork": false, "stargazers_count": 3, "forks_count": 1, "language": "Go"},
	{"name": "forked", "html_url": "https://github.com/u/forked", "description": null, "fork": true, "stargazers_count": 900, "forks_count": 40, "language": "C"},
	{"name": "popular", "html_url": "https://github.com/u/popular", "description": "the big one", "fork": false, "stargazers_count": 120, "forks_count": 12, "language": "Go"},
	{"name": "nolang", "html_url": "https://github.com/u/nolang", "description": "dotfiles", "fork": false, "stargazers_count": 7, "forks_count": 0, "language": null}
]`

func newTestLister(t *testing.T, handler http.HandlerFunc, maxRepos int) *Lister {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	l := New("u", 20, maxRepos, fetch.New(time.Second), ratelimit.New("test", 10, time.Minute))
	l.apiURL = server.URL
	return l
}

func TestListFiltersForksAndSortsByStars(t *testing.T) {
	l := newTestLister(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(reposJSON))
	}, 10)

	items, err := l.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("expected 3 items after fork filter, got %d", len(items))
	}
	if items[0].Title != "popular" || items[1].Title != "nolang" || items[2].Title != "quiet" {
		t.Errorf("unexpected star ordering: %s, %s, %s", items[0].Title, items[1].Title, items[2].Title)
	}
	if items[0].Stars != 120 || items[0].Forks != 12 || items[0].Language != "Go" {
		t.Errorf("unexpected fields on first item: %+v", items[0])
	}
	if items[1].Language != "" {
		t.Errorf("expected empty language for null field, got %q", items[1].Language)
	}
}

func TestListCapsAtMaxRepos(t *testing.T) {
	l := newTestLister(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(reposJSON))
	}, 2)

	items, err := l.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected cap at 2 items, got %d", len(items))
	}
}

func TestListEmptyRepositoryArrayIsSuccess(t *testing.T) {
	l := newTestLister(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}, 10)

	items, err := l.List(context.Background())
	if err != nil {
		t.Fatalf("an empty repository list is not a failure: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestListOnlyForksIsSuccess(t *testing.T) {
	l := newTestLister(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name": "forked", "fork": true, "stargazers_count": 5}]`))
	}, 10)

	items, err := l.List(context.Background())
	if err != nil {
		t.Fatalf("a fork-only listing is not a failure: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected forks to be dropped, got %d items", len(items))
	}
}

func TestListRateLimited(t *testing.T) {
	var hit bool
	l := newTestLister(t, func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}, 10)
	l.gate = ratelimit.New("test", 1, time.Minute)
	l.gate.TryAcquire() // consume the only slot

	_, err := l.List(context.Background())
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
	if hit {
		t.Error("rate-limited call must not reach the network")
	}
}

func TestListUnavailableOnServerError(t *testing.T) {
	l := newTestLister(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, 10)

	_, err := l.List(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
	if errors.Is(err, ErrRateLimited) {
		t.Error("server failure must be distinguishable from rate limiting")
	}
}

func TestListUnavailableOnMalformedBody(t *testing.T) {
	l := newTestLister(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "Not Found"}`))
	}, 10)

	_, err := l.List(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable for non-array response, got %v", err)
	}
}
