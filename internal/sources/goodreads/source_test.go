package goodreads

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/iggydv/folio/internal/fetch"
)

const shelfRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Someone's bookshelf: read</title>
    <item>
      <title>The Left Hand of Darkness</title>
      <link>https://www.goodreads.com/review/show/1</link>
      <author_name>Ursula K. Le Guin</author_name>
      <user_rating>5</user_rating>
      <book_large_image_url>https://images.gr-assets.com/books/large1.jpg</book_large_image_url>
      <book_medium_image_url>https://images.gr-assets.com/books/medium1.jpg</book_medium_image_url>
      <book_image_url>https://images.gr-assets.com/books/small1.jpg</book_image_url>
    </item>
    <item>
      <title>Piranesi</title>
      <link>https://www.goodreads.com/review/show/2</link>
      <author_name>Susanna Clarke</author_name>
      <user_rating></user_rating>
      <book_image_url>https://images.gr-assets.com/books/small2.jpg</book_image_url>
    </item>
    <item>
      <title>Untitled Draft</title>
      <link>https://www.goodreads.com/review/show/3</link>
      <author_name>Anonymous</author_name>
      <user_rating>not-a-number</user_rating>
    </item>
  </channel>
</rss>`

// singleRelay routes every shelf fetch at one test server.
func singleRelay(url string) func(string) []fetch.Strategy {
	return func(feedURL string) []fetch.Strategy {
		return []fetch.Strategy{{Name: "test", URL: url + "?feed=" + feedURL}}
	}
}

func newTestReader(t *testing.T, handler http.HandlerFunc) *Reader {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	r := New("42", 50, 1000, fetch.New(time.Second))
	r.relays = singleRelay(server.URL)
	return r
}

func TestFetchShelfParsesBooks(t *testing.T) {
	r := newTestReader(t, func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, shelfRSS)
	})

	items, err := r.FetchShelf(context.Background(), ShelfRead, 100)
	if err != nil {
		t.Fatalf("FetchShelf failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 books, got %d", len(items))
	}

	first := items[0]
	if first.Title != "The Left Hand of Darkness" {
		t.Errorf("unexpected title: %s", first.Title)
	}
	if first.Author != "Ursula K. Le Guin" {
		t.Errorf("unexpected author: %s", first.Author)
	}
	if first.Rating != 5 {
		t.Errorf("unexpected rating: %d", first.Rating)
	}
	if first.ImageURL != "https://images.gr-assets.com/books/large1.jpg" {
		t.Errorf("expected large cover preferred, got %s", first.ImageURL)
	}
	if first.CurrentlyReading {
		t.Error("read-shelf book must not be flagged currently reading")
	}
}

func TestFetchShelfCoverAndRatingFallbacks(t *testing.T) {
	r := newTestReader(t, func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, shelfRSS)
	})

	items, err := r.FetchShelf(context.Background(), ShelfRead, 100)
	if err != nil {
		t.Fatalf("FetchShelf failed: %v", err)
	}

	// Second book has no large/medium cover and an empty rating.
	if items[1].ImageURL != "https://images.gr-assets.com/books/small2.jpg" {
		t.Errorf("expected small cover fallback, got %s", items[1].ImageURL)
	}
	if items[1].Rating != 0 {
		t.Errorf("expected unrated default 0, got %d", items[1].Rating)
	}

	// Third book has no cover at all and a garbage rating.
	if items[2].ImageURL != "" {
		t.Errorf("expected empty cover, got %s", items[2].ImageURL)
	}
	if items[2].Rating != 0 {
		t.Errorf("expected rating 0 for unparseable value, got %d", items[2].Rating)
	}
}

func TestFetchShelfFlagsCurrentlyReading(t *testing.T) {
	r := newTestReader(t, func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, shelfRSS)
	})

	items, err := r.FetchShelf(context.Background(), ShelfCurrentlyReading, 100)
	if err != nil {
		t.Fatalf("FetchShelf failed: %v", err)
	}
	for _, item := range items {
		if !item.CurrentlyReading {
			t.Errorf("book %q should be flagged currently reading", item.Title)
		}
	}
}

func TestFetchShelfRespectsLimit(t *testing.T) {
	r := newTestReader(t, func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, shelfRSS)
	})

	items, err := r.FetchShelf(context.Background(), ShelfRead, 2)
	if err != nil {
		t.Fatalf("FetchShelf failed: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected limit of 2, got %d", len(items))
	}
}

func TestFetchShelfEnvelopeRelay(t *testing.T) {
	// The first relay wraps the feed in a JSON envelope; the reader must
	// unwrap it before parsing.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		env := fmt.Sprintf(`{"contents": %q, "status": {"http_code": 200}}`, shelfRSS)
		fmt.Fprint(w, env)
	}))
	defer server.Close()

	r := New("42", 50, 1000, fetch.New(time.Second))
	r.relays = func(feedURL string) []fetch.Strategy {
		return []fetch.Strategy{{Name: "envelope", URL: server.URL, Extract: extractContents}}
	}

	items, err := r.FetchShelf(context.Background(), ShelfRead, 100)
	if err != nil {
		t.Fatalf("FetchShelf failed: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("expected 3 books through envelope relay, got %d", len(items))
	}
}

func TestFetchAllConcurrentShelves(t *testing.T) {
	r := newTestReader(t, func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.URL.RawQuery, ShelfCurrentlyReading) {
			fmt.Fprint(w, strings.Replace(shelfRSS, "read</title>", "currently-reading</title>", 1))
			return
		}
		fmt.Fprint(w, shelfRSS)
	})

	shelves, err := r.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(shelves.CurrentlyReading) == 0 {
		t.Error("expected currently-reading books")
	}
	if len(shelves.Read) == 0 {
		t.Error("expected read books")
	}
	for _, item := range shelves.CurrentlyReading {
		if !item.CurrentlyReading {
			t.Error("currently-reading shelf items must carry the flag")
		}
	}
}

func TestFetchAllTotalFailure(t *testing.T) {
	r := newTestReader(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := r.FetchAll(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable when both shelves fail, got %v", err)
	}
}
