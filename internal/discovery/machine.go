// Package discovery tracks which portfolio sections the visitor has
// revealed.
//
// The machine moves Unstarted -> Partial -> Complete and never backwards.
// Complete is terminal: once every section is discovered (or a full reveal
// is forced), individual discovery attempts become no-ops. The discovered
// set is persisted after every mutation so a revisit restores progress.
package discovery

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/iggydv/folio/internal/logging"
)

// StateKey is the fixed storage key for the persisted snapshot.
const StateKey = "discovery"

// DefaultCompleteDelay is how long the final discovery's own feedback gets
// to play before the completion side-effects fire.
const DefaultCompleteDelay = time.Second

// State is the machine's position in Unstarted -> Partial -> Complete.
type State int

const (
	Unstarted State = iota
	Partial
	Complete
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "unstarted"
	case Partial:
		return "partial"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Progress is the machine's answer to a discovery attempt.
type Progress struct {
	Count   int
	Total   int
	Percent float64
	State   State
}

// snapshot is the persisted wire form.
type snapshot struct {
	Discovered  []string `json:"discovered"`
	AllRevealed bool     `json:"allRevealed"`
}

// Store is the durable key-value storage the machine persists into.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Machine is the discovery state machine for one page session.
//
// Discover calls arrive from UI event handlers one at a time, but the
// delayed completion timer fires on its own goroutine, so internal state
// is mutex-guarded.
type Machine struct {
	mu            sync.Mutex
	sections      []string // registration order, for export and full reveal
	known         map[string]bool
	discovered    map[string]bool
	allRevealed   bool
	notified      bool // completion side-effects fired
	store         Store
	completeDelay time.Duration
	notify        func(silent bool)
	pending       *time.Timer
}

// Option configures a Machine.
type Option func(*Machine)

// WithCompleteDelay overrides the organic-completion delay. A zero or
// negative delay completes synchronously.
func WithCompleteDelay(d time.Duration) Option {
	return func(m *Machine) { m.completeDelay = d }
}

// New creates a Machine tracking the given section ids. The store may be
// nil, in which case state lives only for the session.
func New(store Store, sections []string, opts ...Option) *Machine {
	m := &Machine{
		sections:      append([]string(nil), sections...),
		known:         make(map[string]bool, len(sections)),
		discovered:    make(map[string]bool, len(sections)),
		store:         store,
		completeDelay: DefaultCompleteDelay,
	}
	for _, id := range sections {
		m.known[id] = true
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetNotify installs the completion callback. It fires at most once per
// session, after the completion delay on organic completion or immediately
// on a forced reveal; silent reveals suppress it entirely.
func (m *Machine) SetNotify(fn func(silent bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notify = fn
}

// Discover records one section as revealed and reports updated progress.
//
// Repeat ids, unknown ids, and attempts after completion are silent
// no-ops. Discovering the final section schedules the Complete transition
// after the completion delay.
func (m *Machine) Discover(id string) Progress {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stateLocked() == Complete || !m.known[id] || m.discovered[id] {
		return m.progressLocked()
	}

	m.discovered[id] = true
	m.persistLocked()
	logging.Debug("section discovered", "section", id, "count", len(m.discovered))

	if len(m.discovered) == len(m.sections) {
		m.scheduleCompleteLocked()
	}
	return m.progressLocked()
}

// RevealAll forces the machine to Complete, synthesizing full membership:
// every known section enters the discovered set even if it was never
// individually discovered. With silent true (the export path) the
// completion side-effects are suppressed but still count as spent.
func (m *Machine) RevealAll(silent bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}

	for _, id := range m.sections {
		m.discovered[id] = true
	}
	m.allRevealed = true
	m.persistLocked()
	logging.Info("all sections revealed", "silent", silent)

	m.fireCompletionLocked(silent)
}

// scheduleCompleteLocked arms the delayed transition to Complete so the
// final discovery's visual feedback can finish first.
func (m *Machine) scheduleCompleteLocked() {
	if m.completeDelay <= 0 {
		m.allRevealed = true
		m.persistLocked()
		m.fireCompletionLocked(false)
		return
	}

	m.pending = time.AfterFunc(m.completeDelay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.pending = nil
		m.allRevealed = true
		m.persistLocked()
		m.fireCompletionLocked(false)
	})
}

// fireCompletionLocked runs the completion side-effects exactly once.
func (m *Machine) fireCompletionLocked(silent bool) {
	if m.notified {
		return
	}
	m.notified = true
	if m.notify != nil && !silent {
		// Release the lock for the callback; it re-enters the UI layer.
		fn := m.notify
		m.mu.Unlock()
		fn(silent)
		m.mu.Lock()
	}
}

// State reports the machine's current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stateLocked()
}

func (m *Machine) stateLocked() State {
	switch {
	case m.allRevealed:
		return Complete
	case len(m.sections) > 0 && len(m.discovered) == len(m.sections):
		return Complete
	case len(m.discovered) > 0:
		return Partial
	default:
		return Unstarted
	}
}

// Progress reports the current discovery count and percentage.
func (m *Machine) Progress() Progress {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progressLocked()
}

func (m *Machine) progressLocked() Progress {
	p := Progress{
		Count: len(m.discovered),
		Total: len(m.sections),
		State: m.stateLocked(),
	}
	if p.Total > 0 {
		p.Percent = float64(p.Count) / float64(p.Total) * 100
	}
	return p
}

// IsDiscovered reports whether one section has been revealed. Every
// section counts as revealed once the machine is Complete.
func (m *Machine) IsDiscovered(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.allRevealed {
		return m.known[id]
	}
	return m.discovered[id]
}

// Restore loads the persisted snapshot, if any. Missing or malformed
// state leaves the machine Unstarted; ids that no longer name a known
// section are dropped. Safe to call repeatedly.
func (m *Machine) Restore() {
	if m.store == nil {
		return
	}

	value, ok, err := m.store.Get(StateKey)
	if err != nil {
		logging.Warn("failed to load discovery state", "error", err)
		return
	}
	if !ok {
		return
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(value), &snap); err != nil {
		logging.Warn("discarding malformed discovery state", "error", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.discovered = make(map[string]bool, len(snap.Discovered))
	for _, id := range snap.Discovered {
		if m.known[id] {
			m.discovered[id] = true
		}
	}
	m.allRevealed = snap.AllRevealed
	if m.stateLocked() == Complete {
		// Returning to a finished portfolio should not replay the
		// celebration.
		m.notified = true
	}
	logging.Info("discovery state restored",
		"count", len(m.discovered), "allRevealed", m.allRevealed)
}

// persistLocked writes the snapshot after a mutation. Storage failures are
// logged and otherwise ignored; losing persistence must never break the
// session.
func (m *Machine) persistLocked() {
	if m.store == nil {
		return
	}

	snap := snapshot{
		Discovered:  make([]string, 0, len(m.discovered)),
		AllRevealed: m.allRevealed,
	}
	for _, id := range m.sections {
		if m.discovered[id] {
			snap.Discovered = append(snap.Discovered, id)
		}
	}

	data, err := json.Marshal(snap)
	if err != nil {
		logging.Error("failed to encode discovery state", "error", err)
		return
	}
	if err := m.store.Set(StateKey, string(data)); err != nil {
		logging.Warn("failed to persist discovery state", "error", err)
	}
}
