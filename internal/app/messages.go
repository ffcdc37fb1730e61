// Package app wires the core packages into the root Bubble Tea model.
package app

import (
	"github.com/iggydv/folio/internal/model"
	"github.com/iggydv/folio/internal/sources/goodreads"
)

// ReposLoaded is sent when the background repository fetch finishes.
type ReposLoaded struct {
	Repos []model.Item
	Err   error
}

// ShelfLoaded is sent when the background bookshelf fetch finishes.
type ShelfLoaded struct {
	Shelves goodreads.Shelves
	Err     error
}

// SectionsComplete is sent when every section has been discovered and
// the completion side effects should run. Silent completions (export
// path) never produce this message.
type SectionsComplete struct{}

// CelebrationTick drives the confetti animation.
type CelebrationTick struct{}

// Exported is sent when the markdown export finishes.
type Exported struct {
	Path string
	Err  error
}
