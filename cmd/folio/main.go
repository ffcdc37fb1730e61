// Folio - an interactive terminal portfolio.
//
// Sections start hidden and are revealed one at a time; progress is
// persisted across sessions. Project and bookshelf content is fetched
// live from GitHub and Goodreads, with fallbacks when either is down.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iggydv/folio/internal/app"
	"github.com/iggydv/folio/internal/config"
	"github.com/iggydv/folio/internal/discovery"
	"github.com/iggydv/folio/internal/export"
	"github.com/iggydv/folio/internal/fetch"
	"github.com/iggydv/folio/internal/logging"
	"github.com/iggydv/folio/internal/model"
	"github.com/iggydv/folio/internal/portfolio"
	"github.com/iggydv/folio/internal/ratelimit"
	"github.com/iggydv/folio/internal/sources/github"
	"github.com/iggydv/folio/internal/sources/goodreads"
	"github.com/iggydv/folio/internal/store"
)

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	cfg, err := config.Load()
	if err != nil {
		logging.Warn("Config load failed, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}
	logging.Info("Folio starting", "github", cfg.GitHub.Username, "goodreads", cfg.Goodreads.UserID)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory: %v", err)
	}
	dataDir := filepath.Join(homeDir, ".folio")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		fatal("Failed to create data directory: %v", err)
	}

	st, err := store.Open(filepath.Join(dataDir, "folio.db"))
	if err != nil {
		fatal("Failed to open state database: %v", err)
	}
	defer st.Close()

	sections := portfolio.DefaultSections()
	machine := discovery.New(st, portfolio.SectionIDs(sections))
	machine.Restore()
	logging.Info("Discovery state restored", "state", machine.State())

	fetcher := fetch.New(cfg.Fetch.Timeout())
	gate := ratelimit.New("github", cfg.Fetch.RateLimitCalls, cfg.Fetch.RateLimitWindow())
	lister := github.New(cfg.GitHub.Username, cfg.GitHub.FetchCount, cfg.GitHub.MaxRepos, fetcher, gate)
	reader := goodreads.New(cfg.Goodreads.UserID, cfg.Goodreads.CurrentLimit, cfg.Goodreads.ReadLimit, fetcher)

	profile := portfolio.DefaultProfile()
	ctx := context.Background()

	root := app.New(app.Config{
		Profile:  profile,
		Sections: sections,
		Machine:  machine,

		LoadRepos: func() tea.Cmd {
			return func() tea.Msg {
				repos, err := lister.List(ctx)
				return app.ReposLoaded{Repos: repos, Err: err}
			}
		},
		LoadShelves: func() tea.Cmd {
			return func() tea.Msg {
				shelves, err := reader.FetchAll(ctx)
				return app.ShelfLoaded{Shelves: shelves, Err: err}
			}
		},
		Export: func(repos, books []model.Item) tea.Cmd {
			path := cfg.UI.ExportPath
			return func() tea.Msg {
				err := export.WriteFile(path, profile, repos, books)
				return app.Exported{Path: path, Err: err}
			}
		},

		ProfileURL: lister.ProfileURL(),
		ShelfURL:   reader.ShelfURL(),
		BatchSize:  cfg.Goodreads.BatchSize,
	})

	p := tea.NewProgram(root, tea.WithAltScreen())

	// Completion side effects fire from the machine's delayed timer, so
	// they are delivered as a message rather than handled inline.
	machine.SetNotify(func(silent bool) {
		if !silent {
			p.Send(app.SectionsComplete{})
		}
	})

	if _, err := p.Run(); err != nil {
		logging.Error("Application error", "error", err)
		fatal("Error: %v", err)
	}
	logging.Info("Folio exiting")
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
