package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/iggydv/folio/internal/discovery"
)

// ProgressView renders the discovery progress line and bar.
type ProgressView struct {
	bar progress.Model
}

// NewProgressView creates the discovery progress bar.
func NewProgressView() ProgressView {
	p := progress.New(
		progress.WithGradient(string(ColorPrimary), string(ColorHighlight)),
		progress.WithoutPercentage(),
	)
	p.Width = 40
	return ProgressView{bar: p}
}

// SetWidth resizes the bar.
func (v *ProgressView) SetWidth(w int) {
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	v.bar.Width = w
}

// View renders the progress line for the given discovery progress.
func (v ProgressView) View(p discovery.Progress) string {
	if p.State == discovery.Complete {
		return CompleteBanner.Render("All discovered!")
	}

	label := ProgressLabel.Render(
		fmt.Sprintf("Discovered %d/%d sections", p.Count, p.Total))
	return lipgloss.JoinHorizontal(lipgloss.Center,
		v.bar.ViewAs(p.Percent/100), "  ", label)
}
