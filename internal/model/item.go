// Package model defines the normalized display items that flow from the
// content sources to the UI.
package model

// Kind identifies which external source produced an item.
type Kind string

const (
	KindRepository Kind = "repository"
	KindBook       Kind = "book"
)

// Item is a single piece of external content, normalized for display.
// The shared fields (Title, Link, ImageURL) are meaningful for every kind;
// the remaining fields belong to one kind and are zero for the other.
// Items are immutable once constructed from a source response.
type Item struct {
	Kind     Kind
	Title    string
	Link     string
	ImageURL string

	// Repository fields
	Description string
	Stars       int
	Forks       int
	Language    string

	// Book fields
	Author           string
	Rating           int // 0-5, 0 meaning unrated
	CurrentlyReading bool
}
