// Package observability aggregates runtime counters for logging and the
// inspect tooling. Counters are atomic so every event goroutine can bump them
// without coordination.
package observability

import (
	"sync/atomic"
)

// Stats is a point-in-time snapshot of the service counters.
type Stats struct {
	EventsSeen     uint64 `json:"events_seen"`
	MatchesMade    uint64 `json:"matches_made"`
	SessionsEnded  uint64 `json:"sessions_ended"`
	ContentRelayed uint64 `json:"content_relayed"`
	ThrottledDrops uint64 `json:"throttled_drops"`
	RelayFailures  uint64 `json:"relay_failures"`
	Reports        uint64 `json:"reports"`
}

// Monitor collects counters from the dispatcher and the services.
type Monitor struct {
	eventsSeen     atomic.Uint64
	matchesMade    atomic.Uint64
	sessionsEnded  atomic.Uint64
	contentRelayed atomic.Uint64
	throttledDrops atomic.Uint64
	relayFailures  atomic.Uint64
	reports        atomic.Uint64
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) EventSeen()      { m.eventsSeen.Add(1) }
func (m *Monitor) MatchMade()      { m.matchesMade.Add(1) }
func (m *Monitor) SessionEnded()   { m.sessionsEnded.Add(1) }
func (m *Monitor) ContentRelayed() { m.contentRelayed.Add(1) }
func (m *Monitor) ThrottledDrop()  { m.throttledDrops.Add(1) }
func (m *Monitor) RelayFailure()   { m.relayFailures.Add(1) }
func (m *Monitor) ReportStored()   { m.reports.Add(1) }

// GetLatest returns a consistent-enough snapshot for periodic reporting.
func (m *Monitor) GetLatest() Stats {
	return Stats{
		EventsSeen:     m.eventsSeen.Load(),
		MatchesMade:    m.matchesMade.Load(),
		SessionsEnded:  m.sessionsEnded.Load(),
		ContentRelayed: m.contentRelayed.Load(),
		ThrottledDrops: m.throttledDrops.Load(),
		RelayFailures:  m.relayFailures.Load(),
		Reports:        m.reports.Load(),
	}
}
