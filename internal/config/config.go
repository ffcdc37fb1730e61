package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Config is the persistent application configuration
type Config struct {
	// Identity of the portfolio owner
	Profile ProfileConfig `json:"profile"`

	// External content sources
	GitHub    GitHubConfig    `json:"github"`
	Goodreads GoodreadsConfig `json:"goodreads"`

	// Fetch behavior shared by all sources
	Fetch FetchConfig `json:"fetch"`

	// UI preferences
	UI UIConfig `json:"ui"`
}

// ProfileConfig identifies the portfolio owner. The rendered content itself
// lives in internal/portfolio; this only carries the handles the sources need.
type ProfileConfig struct {
	Name string `json:"name"`
}

// GitHubConfig holds repository-listing settings
type GitHubConfig struct {
	Username string `json:"username"`
	// MaxRepos caps how many repositories are shown after fork-filtering
	// and star-sorting.
	MaxRepos int `json:"max_repos"`
	// FetchCount is how many recently-updated repositories to request
	// before filtering.
	FetchCount int `json:"fetch_count"`
}

// GoodreadsConfig holds shelf-reading settings
type GoodreadsConfig struct {
	UserID string `json:"user_id"`
	// ReadLimit is the per-request cap for the "read" shelf (the feed's
	// maximum page size).
	ReadLimit int `json:"read_limit"`
	// CurrentLimit is the per-request cap for the "currently-reading" shelf.
	CurrentLimit int `json:"current_limit"`
	// BatchSize is how many books each pagination step releases.
	BatchSize int `json:"batch_size"`
}

// FetchConfig holds knobs shared by every outbound request
type FetchConfig struct {
	// TimeoutSeconds bounds each individual fetch attempt.
	TimeoutSeconds int `json:"timeout_seconds"`
	// RateLimitCalls / RateLimitWindowSeconds bound outbound API calls
	// from one session.
	RateLimitCalls         int `json:"rate_limit_calls"`
	RateLimitWindowSeconds int `json:"rate_limit_window_seconds"`
}

// UIConfig holds UI preferences
type UIConfig struct {
	Theme string `json:"theme"`
	// ExportPath is where "e" writes the Markdown export.
	ExportPath string `json:"export_path"`
}

// Timeout returns the per-attempt fetch timeout as a duration.
func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// RateLimitWindow returns the rate-limit window as a duration.
func (f FetchConfig) RateLimitWindow() time.Duration {
	return time.Duration(f.RateLimitWindowSeconds) * time.Second
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Profile: ProfileConfig{
			Name: "Iggy de Villiers",
		},
		GitHub: GitHubConfig{
			Username:   "iggydv",
			MaxRepos:   10,
			FetchCount: 20,
		},
		Goodreads: GoodreadsConfig{
			UserID:       "52838398",
			ReadLimit:    1000,
			CurrentLimit: 50,
			BatchSize:    10,
		},
		Fetch: FetchConfig{
			TimeoutSeconds:         8,
			RateLimitCalls:         10,
			RateLimitWindowSeconds: 60,
		},
		UI: UIConfig{
			Theme:      "dark",
			ExportPath: "portfolio.md",
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".folio", "config.json")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	return loadFrom(ConfigPath())
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		// A corrupt config is not worth failing startup over.
		return DefaultConfig(), nil
	}

	cfg.fillZeroes()
	return cfg, nil
}

// fillZeroes restores defaults for numeric fields a hand-edited config
// left at zero, which would otherwise disable fetching entirely.
func (c *Config) fillZeroes() {
	def := DefaultConfig()
	if c.GitHub.MaxRepos == 0 {
		c.GitHub.MaxRepos = def.GitHub.MaxRepos
	}
	if c.GitHub.FetchCount == 0 {
		c.GitHub.FetchCount = def.GitHub.FetchCount
	}
	if c.Goodreads.ReadLimit == 0 {
		c.Goodreads.ReadLimit = def.Goodreads.ReadLimit
	}
	if c.Goodreads.CurrentLimit == 0 {
		c.Goodreads.CurrentLimit = def.Goodreads.CurrentLimit
	}
	if c.Goodreads.BatchSize == 0 {
		c.Goodreads.BatchSize = def.Goodreads.BatchSize
	}
	if c.Fetch.TimeoutSeconds == 0 {
		c.Fetch.TimeoutSeconds = def.Fetch.TimeoutSeconds
	}
	if c.Fetch.RateLimitCalls == 0 {
		c.Fetch.RateLimitCalls = def.Fetch.RateLimitCalls
	}
	if c.Fetch.RateLimitWindowSeconds == 0 {
		c.Fetch.RateLimitWindowSeconds = def.Fetch.RateLimitWindowSeconds
	}
	if c.UI.ExportPath == "" {
		c.UI.ExportPath = def.UI.ExportPath
	}
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
