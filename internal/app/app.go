package app

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iggydv/folio/internal/discovery"
	"github.com/iggydv/folio/internal/model"
	"github.com/iggydv/folio/internal/pagination"
	"github.com/iggydv/folio/internal/portfolio"
	"github.com/iggydv/folio/internal/sources/github"
	"github.com/iggydv/folio/internal/ui"
)

const frameInterval = time.Second / 60

// nearBottomThreshold is how close to the end of the displayed books the
// cursor may get before the next batch is pulled in.
const nearBottomThreshold = 3

// Config carries the injected dependencies for the root model. The model
// never talks to the network or the store directly; it receives results
// via messages the way the command functions choose to deliver them.
type Config struct {
	Profile  portfolio.Profile
	Sections []portfolio.Section
	Machine  *discovery.Machine

	LoadRepos   func() tea.Cmd
	LoadShelves func() tea.Cmd
	Export      func(repos, books []model.Item) tea.Cmd

	ProfileURL string
	ShelfURL   string
	BatchSize  int
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg     Config
	machine *discovery.Machine

	cursor int
	konami ui.Konami

	repos      []model.Item
	reposState ui.ProjectsState
	reposAsked bool

	books      *pagination.Controller
	displayed  []model.Item
	bookCursor int
	shelfState ui.BookshelfState
	shelfAsked bool

	progress    ui.ProgressView
	celebration ui.Celebration
	spin        spinner.Model

	width  int
	height int
	ready  bool
	status string
}

// New creates the root model. The machine is expected to be restored
// already; sections discovered in a previous session are live from the
// first frame.
func New(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)
	return Model{
		spin:        s,
		cfg:         cfg,
		machine:     cfg.Machine,
		reposAsked:  cfg.Machine.IsDiscovered(portfolio.SectionProjects),
		shelfAsked:  cfg.Machine.IsDiscovered(portfolio.SectionBookshelf),
		reposState:  ui.ProjectsLoading,
		shelfState:  ui.BookshelfLoading,
		progress:    ui.NewProgressView(),
		celebration: ui.NewCelebration(80, 24),
	}
}

// Init starts fetches for any content section that was already
// discovered when the session began.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.reposAsked {
		cmds = append(cmds, m.cfg.LoadRepos())
	}
	if m.shelfAsked {
		cmds = append(cmds, m.cfg.LoadShelves())
	}
	if len(cmds) > 0 {
		cmds = append(cmds, m.spin.Tick)
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.progress.SetWidth(msg.Width / 2)
		m.celebration.SetSize(msg.Width, msg.Height)
		return m, nil

	case ReposLoaded:
		if msg.Err != nil {
			if errors.Is(msg.Err, github.ErrRateLimited) {
				m.reposState = ui.ProjectsRateLimited
			} else {
				m.reposState = ui.ProjectsUnavailable
			}
			return m, nil
		}
		m.repos = msg.Repos
		m.reposState = ui.ProjectsLoaded
		return m, nil

	case ShelfLoaded:
		if msg.Err != nil {
			m.shelfState = ui.BookshelfUnavailable
			return m, nil
		}
		m.books = pagination.New(msg.Shelves.CurrentlyReading, msg.Shelves.Read, m.cfg.BatchSize)
		m.displayed = m.books.InitialBatch()
		m.bookCursor = 0
		m.shelfState = ui.BookshelfLoaded
		return m, nil

	case SectionsComplete:
		m.celebration.Start()
		return m, tea.Tick(frameInterval, func(time.Time) tea.Msg { return CelebrationTick{} })

	case spinner.TickMsg:
		reposPending := m.reposAsked && m.reposState == ui.ProjectsLoading
		shelfPending := m.shelfAsked && m.shelfState == ui.BookshelfLoading
		if !reposPending && !shelfPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case CelebrationTick:
		m.celebration.Tick()
		if m.celebration.Active() {
			return m, tea.Tick(frameInterval, func(time.Time) tea.Msg { return CelebrationTick{} })
		}
		return m, nil

	case Exported:
		if msg.Err != nil {
			m.status = "export failed: " + msg.Err.Error()
		} else {
			m.status = "exported to " + msg.Path
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.status = ""

	if m.konami.Observe(key) && m.machine.State() != discovery.Complete {
		m.machine.RevealAll(false)
		return m, m.fetchRevealed()
	}

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down":
		if m.cursor < len(m.cfg.Sections)-1 {
			m.cursor++
		}
		return m, nil

	case "enter", " ":
		return m.discoverCurrent()

	case "j":
		return m.scrollBooks(1)

	case "k":
		return m.scrollBooks(-1)

	case "r":
		if m.reposState == ui.ProjectsRateLimited || m.reposState == ui.ProjectsUnavailable {
			m.reposState = ui.ProjectsLoading
			return m, tea.Batch(m.cfg.LoadRepos(), m.spin.Tick)
		}
		return m, nil

	case "e":
		m.machine.RevealAll(true)
		m.drainBooks()
		cmds := []tea.Cmd{m.fetchRevealed(), m.cfg.Export(m.repos, m.displayed)}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// discoverCurrent reveals the section under the cursor and kicks off its
// content fetch if it has one.
func (m Model) discoverCurrent() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.cfg.Sections) {
		return m, nil
	}
	id := m.cfg.Sections[m.cursor].ID
	m.machine.Discover(id)
	return m, m.fetchRevealed()
}

// fetchRevealed starts the repo and shelf fetches for any discovered
// content section that has not asked yet.
func (m *Model) fetchRevealed() tea.Cmd {
	var cmds []tea.Cmd
	if !m.reposAsked && m.machine.IsDiscovered(portfolio.SectionProjects) {
		m.reposAsked = true
		cmds = append(cmds, m.cfg.LoadRepos())
	}
	if !m.shelfAsked && m.machine.IsDiscovered(portfolio.SectionBookshelf) {
		m.shelfAsked = true
		cmds = append(cmds, m.cfg.LoadShelves())
	}
	if len(cmds) == 0 {
		return nil
	}
	cmds = append(cmds, m.spin.Tick)
	return tea.Batch(cmds...)
}

func (m Model) scrollBooks(delta int) (tea.Model, tea.Cmd) {
	if m.shelfState != ui.BookshelfLoaded || len(m.displayed) == 0 {
		return m, nil
	}
	m.bookCursor += delta
	if m.bookCursor < 0 {
		m.bookCursor = 0
	}
	if m.bookCursor >= len(m.displayed) {
		m.bookCursor = len(m.displayed) - 1
	}
	if delta > 0 && len(m.displayed)-m.bookCursor <= nearBottomThreshold {
		if next := m.books.NextBatch(); len(next) > 0 {
			m.displayed = append(m.displayed, next...)
		}
	}
	return m, nil
}

// drainBooks reveals the whole backlog so the export covers everything
// that was fetched, not just what pagination had shown so far.
func (m *Model) drainBooks() {
	if m.books == nil {
		return
	}
	for {
		next := m.books.NextBatch()
		if len(next) == 0 {
			return
		}
		m.displayed = append(m.displayed, next...)
	}
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.celebration.Active() {
		return m.celebration.View()
	}

	var b strings.Builder
	b.WriteString(ui.Header.Render(m.cfg.Profile.Name))
	b.WriteString("\n")
	b.WriteString(ui.Tagline.Render(m.cfg.Profile.Tagline))
	b.WriteString("\n\n")
	b.WriteString(m.progress.View(m.machine.Progress()))
	b.WriteString("\n\n")

	for i, sec := range m.cfg.Sections {
		b.WriteString(ui.RenderSectionTitle(sec.Title, i == m.cursor))
		b.WriteString("\n")
		if m.machine.IsDiscovered(sec.ID) {
			b.WriteString(m.renderSection(sec.ID))
		} else {
			b.WriteString(ui.RenderMasked(sec))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(m.statusBar())
	return b.String()
}

func (m Model) renderSection(id string) string {
	switch id {
	case portfolio.SectionAbout:
		return ui.RenderAbout(m.cfg.Profile)
	case portfolio.SectionSkills:
		return ui.RenderSkills(m.cfg.Profile.Skills)
	case portfolio.SectionExperience:
		return ui.RenderExperience(m.cfg.Profile.Experience)
	case portfolio.SectionProjects:
		return ui.RenderProjects(m.reposState, m.repos, m.cfg.ProfileURL, m.spin.View())
	case portfolio.SectionBookshelf:
		remaining := 0
		if m.books != nil {
			remaining = m.books.Remaining()
		}
		return ui.RenderBookshelf(m.shelfState, m.displayed, m.bookCursor, remaining, m.cfg.ShelfURL, m.spin.View())
	case portfolio.SectionContact:
		return ui.RenderContact(m.cfg.Profile)
	}
	return ""
}

func (m Model) statusBar() string {
	hints := []string{
		ui.StatusBarKey.Render("↑/↓") + ui.StatusBarText.Render(" navigate"),
		ui.StatusBarKey.Render("enter") + ui.StatusBarText.Render(" discover"),
		ui.StatusBarKey.Render("j/k") + ui.StatusBarText.Render(" shelf"),
		ui.StatusBarKey.Render("e") + ui.StatusBarText.Render(" export"),
		ui.StatusBarKey.Render("q") + ui.StatusBarText.Render(" quit"),
	}
	bar := strings.Join(hints, ui.StatusBarText.Render("  "))
	if m.status != "" {
		bar += ui.StatusBarText.Render("  |  ") + ui.StatusBarText.Render(m.status)
	}
	return ui.StatusBar.Render(bar)
}

// Cursor returns the section cursor (for testing).
func (m Model) Cursor() int { return m.cursor }

// DisplayedBooks returns the currently revealed shelf items (for testing).
func (m Model) DisplayedBooks() []model.Item { return m.displayed }
