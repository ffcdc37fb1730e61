// Package goodreads reads a user's public bookshelves for the bookshelf
// panel.
//
// Goodreads exposes shelves only as an RSS feed with no CORS-friendly API,
// so the feed is fetched through a chain of third-party relay endpoints.
// One relay wraps the document in a JSON envelope; the other two forward it
// as-is.
package goodreads

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/iggydv/folio/internal/fetch"
	"github.com/iggydv/folio/internal/model"
)

// Shelf names understood by the Goodreads feed.
const (
	ShelfRead             = "read"
	ShelfCurrentlyReading = "currently-reading"
)

const feedURLTemplate = "https://www.goodreads.com/review/list_rss/%s?shelf=%s&sort=date_read"

// ErrUnavailable means every relay failed for every shelf. The UI shows a
// static fallback summary instead of the bookshelf.
var ErrUnavailable = errors.New("goodreads: unavailable")

// coverFields are tried in descending-quality order; the first present wins.
var coverFields = []string{
	"book_large_image_url",
	"book_medium_image_url",
	"book_image_url",
}

// Shelves carries the result of one startup fetch: the currently-reading
// shelf is shown ahead of the read backlog.
type Shelves struct {
	CurrentlyReading []model.Item
	Read             []model.Item
}

// Reader fetches and normalizes a user's shelves.
type Reader struct {
	userID       string
	currentLimit int
	readLimit    int
	fetcher      *fetch.Fetcher
	relays       func(feedURL string) []fetch.Strategy
}

// New creates a Reader for the given Goodreads user id.
func New(userID string, currentLimit, readLimit int, fetcher *fetch.Fetcher) *Reader {
	return &Reader{
		userID:       userID,
		currentLimit: currentLimit,
		readLimit:    readLimit,
		fetcher:      fetcher,
		relays:       defaultRelays,
	}
}

// ShelfURL returns the public profile URL used as a fallback link when
// every relay fails.
func (r *Reader) ShelfURL() string {
	return "https://www.goodreads.com/user/show/" + r.userID
}

// defaultRelays builds the attempt plan for one feed URL, historically
// most-reliable relay first.
func defaultRelays(feedURL string) []fetch.Strategy {
	enc := url.QueryEscape(feedURL)
	return []fetch.Strategy{
		{
			Name:    "allorigins",
			URL:     "https://api.allorigins.win/get?url=" + enc,
			Extract: extractContents,
		},
		{
			Name: "corsproxy",
			URL:  "https://corsproxy.io/?" + enc,
		},
		{
			Name: "codetabs",
			URL:  "https://api.codetabs.com/v1/proxy?quest=" + enc,
		},
	}
}

// extractContents unwraps the allorigins JSON envelope, which nests the raw
// feed document under "contents".
func extractContents(body []byte) ([]byte, error) {
	contents := gjson.GetBytes(body, "contents")
	if !contents.Exists() {
		return nil, errors.New("envelope has no contents field")
	}
	return []byte(contents.String()), nil
}

// FetchShelf returns up to limit books from one named shelf, in the feed's
// read-date-descending order.
func (r *Reader) FetchShelf(ctx context.Context, shelf string, limit int) ([]model.Item, error) {
	feedURL := fmt.Sprintf(feedURLTemplate, r.userID, shelf)
	return r.fetcher.FetchFirst(ctx, r.relays(feedURL), parseShelf(shelf), limit)
}

// FetchAll fetches the currently-reading and read shelves concurrently.
// A shelf whose whole relay chain fails contributes an empty list; only
// when both come back empty does FetchAll report ErrUnavailable.
func (r *Reader) FetchAll(ctx context.Context) (Shelves, error) {
	var shelves Shelves

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := r.FetchShelf(gctx, ShelfCurrentlyReading, r.currentLimit)
		if err == nil {
			shelves.CurrentlyReading = items
		}
		return nil
	})
	g.Go(func() error {
		items, err := r.FetchShelf(gctx, ShelfRead, r.readLimit)
		if err == nil {
			shelves.Read = items
		}
		return nil
	})
	g.Wait()

	if len(shelves.CurrentlyReading) == 0 && len(shelves.Read) == 0 {
		return Shelves{}, ErrUnavailable
	}
	return shelves, nil
}

// parseShelf builds the parser for one shelf's feed document. Books on the
// currently-reading shelf are flagged so the UI can pin them first.
func parseShelf(shelf string) fetch.ParseFunc {
	reading := shelf == ShelfCurrentlyReading
	return func(raw []byte) ([]model.Item, error) {
		feed, err := gofeed.NewParser().ParseString(string(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to parse shelf feed: %w", err)
		}

		items := make([]model.Item, 0, len(feed.Items))
		for _, entry := range feed.Items {
			items = append(items, model.Item{
				Kind:             model.KindBook,
				Title:            strings.TrimSpace(entry.Title),
				Link:             entry.Link,
				Author:           custom(entry, "author_name"),
				Rating:           parseRating(custom(entry, "user_rating")),
				ImageURL:         coverImage(entry),
				CurrentlyReading: reading,
			})
		}
		return items, nil
	}
}

// custom reads a Goodreads extension element from a feed entry.
func custom(entry *gofeed.Item, field string) string {
	if entry.Custom == nil {
		return ""
	}
	return strings.TrimSpace(entry.Custom[field])
}

// parseRating converts the feed's user_rating field, defaulting to 0
// (unrated) when absent or unparseable.
func parseRating(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 5 {
		return 0
	}
	return n
}

// coverImage picks the best available cover URL, empty if none is present.
func coverImage(entry *gofeed.Item) string {
	for _, field := range coverFields {
		if u := custom(entry, field); u != "" {
			return u
		}
	}
	return ""
}
