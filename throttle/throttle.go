// Package throttle suppresses per-participant message floods. State is purely
// in-memory: losing it on restart only means one free message per participant.
package throttle

import (
	"sync"
	"time"

	"anonpair/domain"

	"golang.org/x/time/rate"
)

// DefaultMinInterval is the minimum spacing between two relayed messages
// from the same participant.
const DefaultMinInterval = 700 * time.Millisecond

// Guard enforces a minimum interval between sends per participant.
// Each participant gets a token bucket of size one refilled at 1/interval;
// rate.Limiter reads the monotonic clock, so wall-clock jumps cannot
// open or extend the window.
type Guard struct {
	mu       sync.Mutex
	interval rate.Limit
	limiters map[domain.ParticipantID]*rate.Limiter
}

// NewGuard builds a guard with the given minimum interval between sends.
func NewGuard(minInterval time.Duration) *Guard {
	return &Guard{
		interval: rate.Every(minInterval),
		limiters: make(map[domain.ParticipantID]*rate.Limiter),
	}
}

// MaySend reports whether the participant may send now, consuming the slot
// if so. The first call for a participant always succeeds; a denied call
// does not push the next allowed time further out.
func (g *Guard) MaySend(id domain.ParticipantID) bool {
	g.mu.Lock()
	limiter, ok := g.limiters[id]
	if !ok {
		limiter = rate.NewLimiter(g.interval, 1)
		g.limiters[id] = limiter
	}
	g.mu.Unlock()

	return limiter.Allow()
}
