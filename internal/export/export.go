// Package export renders the full portfolio to a Markdown file, the
// terminal counterpart of the page's print/download button.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/iggydv/folio/internal/model"
	"github.com/iggydv/folio/internal/portfolio"
)

// Markdown renders the complete portfolio. The caller is expected to have
// silently revealed every section first; the export never shows teasers.
func Markdown(p portfolio.Profile, repos, books []model.Item) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	fmt.Fprintf(&b, "%s — %s\n\n", p.Tagline, p.Location)

	b.WriteString("## About Me\n\n")
	for _, line := range p.About {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	b.WriteString("## Skills\n\n")
	for _, s := range p.Skills {
		fmt.Fprintf(&b, "- %s (%d%%)\n", s.Name, s.Level)
	}
	b.WriteByte('\n')

	b.WriteString("## Experience\n\n")
	for _, e := range p.Experience {
		fmt.Fprintf(&b, "### %s, %s (%s)\n\n%s\n\n", e.Role, e.Company, e.Period, e.Summary)
	}

	if len(repos) > 0 {
		b.WriteString("## Projects\n\n")
		for _, r := range repos {
			fmt.Fprintf(&b, "- [%s](%s)", r.Title, r.Link)
			if r.Description != "" {
				fmt.Fprintf(&b, " — %s", r.Description)
			}
			fmt.Fprintf(&b, " (★ %d", r.Stars)
			if r.Language != "" {
				fmt.Fprintf(&b, ", %s", r.Language)
			}
			b.WriteString(")\n")
		}
		b.WriteByte('\n')
	}

	if len(books) > 0 {
		b.WriteString("## Bookshelf\n\n")
		for _, bk := range books {
			fmt.Fprintf(&b, "- [%s](%s) by %s", bk.Title, bk.Link, bk.Author)
			if bk.CurrentlyReading {
				b.WriteString(" (currently reading)")
			} else if bk.Rating > 0 {
				fmt.Fprintf(&b, " %s", strings.Repeat("★", bk.Rating))
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	b.WriteString("## Contact\n\n")
	fmt.Fprintf(&b, "- Email: %s\n", p.Email)
	fmt.Fprintf(&b, "- GitHub: %s\n", p.GitHubURL)
	fmt.Fprintf(&b, "- LinkedIn: %s\n", p.LinkedIn)

	return b.String()
}

// WriteFile renders the portfolio and writes it to path.
func WriteFile(path string, p portfolio.Profile, repos, books []model.Item) error {
	if err := os.WriteFile(path, []byte(Markdown(p, repos, books)), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
