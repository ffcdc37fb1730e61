package ui

import (
	"fmt"
	"strings"

	"github.com/iggydv/folio/internal/portfolio"
)

const skillBarWidth = 24

// RenderSectionTitle renders a section heading, highlighted when it is
// under the cursor.
func RenderSectionTitle(title string, selected bool) string {
	if selected {
		return SectionTitleSelected.Render("> " + title)
	}
	return SectionTitle.Render("  " + title)
}

// RenderMasked renders the placeholder block for an undiscovered section.
func RenderMasked(sec portfolio.Section) string {
	var b strings.Builder
	b.WriteString(Masked.Render("░░░░░░░░░░░░░░░░░░░░░░░░░░░░"))
	b.WriteString("\n")
	b.WriteString(Teaser.Render(sec.Teaser))
	return b.String()
}

// RenderAbout renders the about paragraphs.
func RenderAbout(p portfolio.Profile) string {
	lines := make([]string, 0, len(p.About))
	for _, para := range p.About {
		lines = append(lines, SectionBody.Render(para))
	}
	return strings.Join(lines, "\n\n")
}

// RenderSkills renders one bar per skill.
func RenderSkills(skills []portfolio.Skill) string {
	lines := make([]string, 0, len(skills))
	for _, s := range skills {
		fill := s.Level * skillBarWidth / 100
		if fill < 0 {
			fill = 0
		}
		if fill > skillBarWidth {
			fill = skillBarWidth
		}
		bar := SkillBarFill.Render(strings.Repeat("█", fill)) +
			SkillBarEmpty.Render(strings.Repeat("░", skillBarWidth-fill))
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			SkillName.Render(s.Name), bar,
			ItemMeta.Render(fmt.Sprintf("%d%%", s.Level))))
	}
	return strings.Join(lines, "\n")
}

// RenderExperience renders the work history entries, newest first.
func RenderExperience(entries []portfolio.Experience) string {
	lines := make([]string, 0, len(entries)*3)
	for i, e := range entries {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			"  "+ItemTitle.Render(e.Role)+ItemMeta.Render(" @ "+e.Company),
			ItemMeta.Render("  "+e.Period),
			SectionBody.Render(e.Summary))
	}
	return strings.Join(lines, "\n")
}

// RenderContact renders the contact links.
func RenderContact(p portfolio.Profile) string {
	lines := []string{
		SectionBody.Render("Email:    " + p.Email),
		SectionBody.Render("GitHub:   " + p.GitHubURL),
	}
	if p.LinkedIn != "" {
		lines = append(lines, SectionBody.Render("LinkedIn: "+p.LinkedIn))
	}
	return strings.Join(lines, "\n")
}
