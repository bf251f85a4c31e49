// Package domain contains core concepts of the anonymous relay system.
// This file defines participant identity and session state.
// No storage, network, or UI logic should be added here.
package domain

import "time"

// ParticipantID is the opaque stable identity of an end user as seen by the
// transport. It is never shown to the paired partner.
type ParticipantID string

func (id ParticipantID) String() string {
	return string(id)
}

// Session is the per-participant matchmaking record.
// Exactly one exists per identity ever seen; it is mutated, never deleted.
type Session struct {
	ID        ParticipantID
	Queued    bool
	PartnerID *ParticipantID
	UpdatedAt time.Time
}

type SessionState int

const (
	StateIdle SessionState = iota
	StateQueued
	StatePaired
)

func (s SessionState) String() string {
	switch s {
	case StateQueued:
		return "queued"
	case StatePaired:
		return "paired"
	default:
		return "idle"
	}
}

// State derives the participant state machine position.
// Queued and PartnerID are mutually exclusive by construction in the
// repository layer; paired wins if both are ever observed.
func (s Session) State() SessionState {
	switch {
	case s.PartnerID != nil:
		return StatePaired
	case s.Queued:
		return StateQueued
	default:
		return StateIdle
	}
}
