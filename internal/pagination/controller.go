// Package pagination releases a buffered item sequence to the display in
// fixed-size batches.
//
// The bookshelf can hold hundreds of read books; rendering them all at once
// buries the rest of the page, so the UI asks for another batch whenever
// the cursor nears the bottom of the shelf. The controller holds no scroll
// knowledge of its own.
package pagination

import "github.com/iggydv/folio/internal/model"

// Controller owns the fetched-but-not-yet-displayed buffer for one source.
//
// Priority items (books currently being read) are emitted once, ahead of
// the first backlog batch; every later batch comes from the backlog only.
// The displayed count only ever increases.
type Controller struct {
	priority  []model.Item
	backlog   []model.Item
	displayed int
	batchSize int
	loading   bool
	exhausted bool
}

// New creates a Controller over the priority and backlog sequences.
func New(priority, backlog []model.Item, batchSize int) *Controller {
	c := &Controller{
		priority:  priority,
		backlog:   backlog,
		batchSize: batchSize,
	}
	c.exhausted = c.total() == 0
	return c
}

// InitialBatch returns every priority item followed by the first backlog
// batch. This is the only call that emits priority items.
func (c *Controller) InitialBatch() []model.Item {
	end := min(c.batchSize, len(c.backlog))

	batch := make([]model.Item, 0, len(c.priority)+end)
	batch = append(batch, c.priority...)
	batch = append(batch, c.backlog[:end]...)

	c.displayed = len(batch)
	c.exhausted = c.displayed >= c.total()
	return batch
}

// NextBatch returns the next backlog batch, or nil once the buffer is
// exhausted. A call arriving while a previous batch is still being
// appended is a no-op; all mutation is synchronous within one task turn,
// so the guard cannot race.
func (c *Controller) NextBatch() []model.Item {
	if c.loading || c.exhausted {
		return nil
	}
	c.loading = true
	defer func() { c.loading = false }()

	// Before InitialBatch has run, displayed can be smaller than the
	// priority count; the backlog still starts at its head.
	start := c.displayed - len(c.priority)
	if start < 0 {
		start = 0
	}
	end := min(start+c.batchSize, len(c.backlog))
	if start >= end {
		c.exhausted = true
		return nil
	}

	batch := c.backlog[start:end]
	c.displayed += len(batch)
	c.exhausted = c.displayed >= c.total()
	return batch
}

// Exhausted reports whether every buffered item has been released.
func (c *Controller) Exhausted() bool {
	return c.exhausted
}

// DisplayedCount reports how many items have been released so far.
func (c *Controller) DisplayedCount() int {
	return c.displayed
}

// Remaining reports how many backlog items are still buffered.
func (c *Controller) Remaining() int {
	return c.total() - c.displayed
}

func (c *Controller) total() int {
	return len(c.priority) + len(c.backlog)
}
