// Package ratelimit bounds the frequency of outbound calls to an external
// API from a single session.
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/iggydv/folio/internal/logging"
)

// Gate is a fail-fast rate gate: a denied call is reported immediately,
// never queued or blocked on. One Gate guards one external API.
type Gate struct {
	name    string
	limiter *rate.Limiter
	now     func() time.Time
}

// New creates a Gate allowing at most maxCalls calls per window.
func New(name string, maxCalls int, window time.Duration) *Gate {
	return &Gate{
		name:    name,
		limiter: rate.NewLimiter(rate.Every(window/time.Duration(maxCalls)), maxCalls),
		now:     time.Now,
	}
}

// TryAcquire reports whether a call may proceed right now. A denied call
// consumes no quota.
func (g *Gate) TryAcquire() bool {
	if !g.limiter.AllowN(g.now(), 1) {
		logging.Warn("rate limit exceeded", "gate", g.name)
		return false
	}
	return true
}
