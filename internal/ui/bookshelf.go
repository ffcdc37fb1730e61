package ui

import (
	"fmt"
	"strings"

	"github.com/iggydv/folio/internal/model"
)

// BookshelfState describes what the bookshelf panel should show.
type BookshelfState int

const (
	BookshelfLoading BookshelfState = iota
	BookshelfLoaded
	BookshelfUnavailable
)

// bookshelfViewport is how many rows of books are rendered around the
// cursor at once.
const bookshelfViewport = 8

// RenderBookshelf renders the reading-list panel. cursor is the index
// of the highlighted book within books; remaining is how many books are
// still in the backlog; frame is the current spinner frame for the
// loading state.
func RenderBookshelf(state BookshelfState, books []model.Item, cursor int, remaining int, shelfURL, frame string) string {
	switch state {
	case BookshelfLoading:
		return Masked.Render(frame + " Fetching bookshelf...")
	case BookshelfUnavailable:
		return Fallback.Render("Couldn't load the bookshelf. Find it at " + shelfURL)
	}

	if len(books) == 0 {
		return Fallback.Render("The shelves are empty. See " + shelfURL)
	}

	start, end := viewportBounds(cursor, len(books))

	lines := make([]string, 0, (end-start)*2+2)
	if start > 0 {
		lines = append(lines, ItemMeta.Render(fmt.Sprintf("  ↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, renderBook(books[i], i == cursor))
	}
	switch {
	case remaining > 0:
		lines = append(lines, ItemMeta.Render(fmt.Sprintf("  ↓ %d more on the shelf", remaining+len(books)-end)))
	case end < len(books):
		lines = append(lines, ItemMeta.Render(fmt.Sprintf("  ↓ %d more", len(books)-end)))
	}
	return strings.Join(lines, "\n")
}

func viewportBounds(cursor, total int) (start, end int) {
	start = cursor - bookshelfViewport/2
	if start < 0 {
		start = 0
	}
	end = start + bookshelfViewport
	if end > total {
		end = total
		start = end - bookshelfViewport
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

func renderBook(b model.Item, selected bool) string {
	marker := "  "
	title := ItemTitle.Render(b.Title)
	if selected {
		marker = SectionTitleSelected.Render(">") + " "
	}
	var parts []string
	parts = append(parts, marker+title)
	if b.Author != "" {
		parts = append(parts, ItemMeta.Render(" by "+b.Author))
	}
	if b.CurrentlyReading {
		parts = append(parts, " "+ReadingBadge.Render("[reading]"))
	} else if b.Rating > 0 {
		parts = append(parts, " "+Stars.Render(renderStars(b.Rating)))
	}
	return strings.Join(parts, "")
}

func renderStars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
