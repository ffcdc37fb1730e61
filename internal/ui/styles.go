// Package ui provides the Bubble Tea rendering layer for folio. It holds
// no decision logic: it translates key events into calls on the core
// packages and renders whatever they hand back.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	ColorPrimary   = lipgloss.Color("99")  // Purple
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorMuted     = lipgloss.Color("240") // Darker gray
	ColorHighlight = lipgloss.Color("212") // Pink
	ColorSuccess   = lipgloss.Color("78")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorStar      = lipgloss.Color("220") // Gold
)

// Header style for the page title block.
var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(ColorPrimary).
	Padding(0, 2)

// Tagline style under the header.
var Tagline = lipgloss.NewStyle().
	Foreground(ColorSecondary).
	Padding(0, 2)

// SectionTitle style for a discovered section's heading.
var SectionTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorHighlight)

// SectionTitleSelected style for the heading under the cursor.
var SectionTitleSelected = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(ColorPrimary).
	Padding(0, 1)

// SectionBody style for revealed content.
var SectionBody = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	PaddingLeft(2)

// Masked style for undiscovered section placeholders.
var Masked = lipgloss.NewStyle().
	Foreground(ColorMuted).
	PaddingLeft(2)

// Teaser style for the hint line of an undiscovered section.
var Teaser = lipgloss.NewStyle().
	Italic(true).
	Foreground(ColorSecondary).
	PaddingLeft(2)

// SkillName style for skill labels.
var SkillName = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	Width(22)

// SkillBarFill style for the filled part of a skill bar.
var SkillBarFill = lipgloss.NewStyle().
	Foreground(ColorPrimary)

// SkillBarEmpty style for the unfilled part of a skill bar.
var SkillBarEmpty = lipgloss.NewStyle().
	Foreground(ColorMuted)

// ItemTitle style for repository and book titles.
var ItemTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// ItemMeta style for stats lines under items.
var ItemMeta = lipgloss.NewStyle().
	Foreground(ColorSecondary)

// Stars style for book ratings.
var Stars = lipgloss.NewStyle().
	Foreground(ColorStar)

// ReadingBadge style for the currently-reading marker.
var ReadingBadge = lipgloss.NewStyle().
	Foreground(ColorSuccess).
	Bold(true)

// Hint style for retry/fallback hints.
var Hint = lipgloss.NewStyle().
	Foreground(ColorWarning).
	PaddingLeft(2)

// Fallback style for link-out fallback messages.
var Fallback = lipgloss.NewStyle().
	Foreground(ColorSecondary).
	Italic(true).
	PaddingLeft(2)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in the status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(ColorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in the status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(ColorSecondary)

// CompleteBanner style for the all-discovered celebration banner.
var CompleteBanner = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("232")).
	Background(ColorSuccess).
	Padding(0, 2)

// ProgressLabel style for the discovery progress line.
var ProgressLabel = lipgloss.NewStyle().
	Foreground(ColorSecondary)
