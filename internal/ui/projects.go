package ui

import (
	"fmt"
	"strings"

	"github.com/iggydv/folio/internal/model"
)

// ProjectsState describes what the projects panel should show.
type ProjectsState int

const (
	ProjectsLoading ProjectsState = iota
	ProjectsLoaded
	ProjectsRateLimited
	ProjectsUnavailable
)

// RenderProjects renders the pinned-repositories panel. profileURL is
// the link-out target shown when the listing is unavailable; frame is
// the current spinner frame for the loading state.
func RenderProjects(state ProjectsState, repos []model.Item, profileURL, frame string) string {
	switch state {
	case ProjectsLoading:
		return Masked.Render(frame + " Fetching repositories...")
	case ProjectsRateLimited:
		return Hint.Render("GitHub is rate limited - press r to retry shortly")
	case ProjectsUnavailable:
		return Fallback.Render("Couldn't load repositories. Browse them at " + profileURL)
	}

	if len(repos) == 0 {
		return Fallback.Render("No public repositories to show. See " + profileURL)
	}

	lines := make([]string, 0, len(repos)*3)
	for i, r := range repos {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "  "+ItemTitle.Render(r.Title))
		if r.Description != "" {
			lines = append(lines, SectionBody.Render(r.Description))
		}
		meta := fmt.Sprintf("★ %d  ⑂ %d", r.Stars, r.Forks)
		if r.Language != "" {
			meta += "  " + r.Language
		}
		lines = append(lines, ItemMeta.Render("  "+meta))
	}
	return strings.Join(lines, "\n")
}
