package pagination

import (
	"fmt"
	"testing"

	"github.com/iggydv/folio/internal/model"
)

func makeItems(prefix string, n int) []model.Item {
	items := make([]model.Item, n)
	for i := range items {
		items[i] = model.Item{Kind: model.KindBook, Title: fmt.Sprintf("%s-%d", prefix, i)}
	}
	return items
}

func TestBatchingSequence(t *testing.T) {
	c := New(makeItems("pri", 2), makeItems("back", 25), 10)

	initial := c.InitialBatch()
	if len(initial) != 12 {
		t.Fatalf("initial batch: expected 12 items, got %d", len(initial))
	}
	if initial[0].Title != "pri-0" || initial[1].Title != "pri-1" {
		t.Error("priority items must lead the initial batch")
	}
	if initial[2].Title != "back-0" {
		t.Errorf("expected backlog to follow priority, got %s", initial[2].Title)
	}
	if c.DisplayedCount() != 12 {
		t.Errorf("expected displayed count 12, got %d", c.DisplayedCount())
	}

	first := c.NextBatch()
	if len(first) != 10 {
		t.Fatalf("first next batch: expected 10 items, got %d", len(first))
	}
	if first[0].Title != "back-10" {
		t.Errorf("expected batch to resume at back-10, got %s", first[0].Title)
	}
	if c.DisplayedCount() != 22 {
		t.Errorf("expected displayed count 22, got %d", c.DisplayedCount())
	}

	second := c.NextBatch()
	if len(second) != 5 {
		t.Fatalf("second next batch: expected remaining 5 items, got %d", len(second))
	}
	if c.DisplayedCount() != 27 {
		t.Errorf("expected displayed count 27, got %d", c.DisplayedCount())
	}
	if !c.Exhausted() {
		t.Error("controller should be exhausted after releasing everything")
	}

	if extra := c.NextBatch(); len(extra) != 0 {
		t.Errorf("exhausted controller must release nothing, got %d items", len(extra))
	}
	if c.DisplayedCount() != 27 {
		t.Error("displayed count must not move once exhausted")
	}
}

func TestReentrancyGuard(t *testing.T) {
	c := New(nil, makeItems("back", 25), 10)
	c.InitialBatch()

	// Simulate a scroll trigger arriving while a previous batch is still
	// being appended.
	c.loading = true
	if batch := c.NextBatch(); len(batch) != 0 {
		t.Errorf("re-entrant call must be a no-op, got %d items", len(batch))
	}
	if c.DisplayedCount() != 10 {
		t.Errorf("re-entrant call must not change state, displayed=%d", c.DisplayedCount())
	}
	c.loading = false

	if batch := c.NextBatch(); len(batch) != 10 {
		t.Errorf("expected normal batch after guard release, got %d items", len(batch))
	}
}

func TestPriorityOnlyInInitialBatch(t *testing.T) {
	c := New(makeItems("pri", 3), makeItems("back", 4), 2)

	initial := c.InitialBatch()
	if len(initial) != 5 {
		t.Fatalf("expected 3 priority + 2 backlog, got %d", len(initial))
	}

	rest := c.NextBatch()
	for _, item := range rest {
		if item.Title[:3] == "pri" {
			t.Errorf("priority item %s leaked into a later batch", item.Title)
		}
	}
}

func TestEmptyBufferIsImmediatelyExhausted(t *testing.T) {
	c := New(nil, nil, 10)
	if !c.Exhausted() {
		t.Error("empty controller should start exhausted")
	}
	if batch := c.InitialBatch(); len(batch) != 0 {
		t.Errorf("expected empty initial batch, got %d", len(batch))
	}
	if batch := c.NextBatch(); len(batch) != 0 {
		t.Errorf("expected no next batch, got %d", len(batch))
	}
}

func TestNextBatchBeforeInitialBatch(t *testing.T) {
	c := New(makeItems("pri", 2), makeItems("back", 3), 2)

	batch := c.NextBatch()
	if len(batch) != 2 {
		t.Fatalf("expected the first backlog batch, got %d items", len(batch))
	}
	if batch[0].Title != "back-0" {
		t.Errorf("expected batch to start at back-0, got %s", batch[0].Title)
	}
}

func TestBacklogSmallerThanBatch(t *testing.T) {
	c := New(makeItems("pri", 1), makeItems("back", 3), 10)

	initial := c.InitialBatch()
	if len(initial) != 4 {
		t.Fatalf("expected all 4 items in initial batch, got %d", len(initial))
	}
	if !c.Exhausted() {
		t.Error("controller should be exhausted when everything fit the initial batch")
	}
}
