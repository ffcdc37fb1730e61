// Package github lists a user's public repositories for the projects panel.
package github

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/iggydv/folio/internal/fetch"
	"github.com/iggydv/folio/internal/model"
	"github.com/iggydv/folio/internal/ratelimit"
)

const apiURLTemplate = "https://api.github.com/users/%s/repos?sort=updated&per_page=%d"

var (
	// ErrRateLimited means the session-local gate denied the call before
	// any network traffic. The UI shows a "retry shortly" hint.
	ErrRateLimited = errors.New("github: rate limited")

	// ErrUnavailable means the request was made but produced no usable
	// data. The UI shows a link-out to the profile instead.
	ErrUnavailable = errors.New("github: unavailable")
)

// Lister fetches and normalizes a user's repository list.
type Lister struct {
	username string
	maxRepos int
	apiURL   string
	fetcher  *fetch.Fetcher
	gate     *ratelimit.Gate
}

// New creates a Lister for username. fetchCount is how many
// recently-updated repositories to request; maxRepos caps the result after
// fork-filtering and star-sorting.
func New(username string, fetchCount, maxRepos int, fetcher *fetch.Fetcher, gate *ratelimit.Gate) *Lister {
	return &Lister{
		username: username,
		maxRepos: maxRepos,
		apiURL:   fmt.Sprintf(apiURLTemplate, username, fetchCount),
		fetcher:  fetcher,
		gate:     gate,
	}
}

// ProfileURL returns the public profile the UI links out to on failure.
func (l *Lister) ProfileURL() string {
	return "https://github.com/" + l.username
}

// List returns up to maxRepos non-fork repositories, most-starred first.
//
// A gate denial returns ErrRateLimited without touching the network; a
// non-200 response or transport error returns ErrUnavailable. Both surface
// as an empty list plus a distinguishable indicator, never a crash. A user
// with no public repositories (or only forks) is a successful empty list,
// not a failure.
func (l *Lister) List(ctx context.Context) ([]model.Item, error) {
	if !l.gate.TryAcquire() {
		return nil, ErrRateLimited
	}

	strategy := fetch.Strategy{
		Name: "github-api",
		URL:  l.apiURL,
	}

	items, err := l.fetcher.FetchOne(ctx, strategy, parseRepos, l.maxRepos)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return items, nil
}

// parseRepos decodes the repository listing, drops forks, and sorts the
// remainder by descending star count.
func parseRepos(raw []byte) ([]model.Item, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("response is not valid JSON")
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsArray() {
		return nil, errors.New("response is not a repository array")
	}

	var items []model.Item
	for _, repo := range doc.Array() {
		if repo.Get("fork").Bool() {
			continue
		}
		items = append(items, model.Item{
			Kind:        model.KindRepository,
			Title:       repo.Get("name").String(),
			Link:        repo.Get("html_url").String(),
			Description: repo.Get("description").String(),
			Stars:       int(repo.Get("stargazers_count").Int()),
			Forks:       int(repo.Get("forks_count").Int()),
			Language:    repo.Get("language").String(),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Stars > items[j].Stars
	})
	return items, nil
}
