//go:generate go run go.uber.org/mock/mockgen -source=matchmaker.go -destination=../mocks/mock_matchmaker.go -package=mocks

// Package matchmaker owns every pairing transition. Nothing else in the
// system is allowed to create or break a pairing.
package matchmaker

import (
	"anonpair/domain"
	apperrors "anonpair/errors"
	"anonpair/repositories"
	"errors"
	"fmt"
	"log/slog"
)

// claimAttempts bounds the retry loop when concurrent finders race for the
// same peer. Losing every round means the queue is being drained faster than
// we can claim, so enqueueing is the right fallback anyway.
const claimAttempts = 3

type IMatchmaker interface {
	Register(id domain.ParticipantID) error
	TryMatch(id domain.ParticipantID) (*domain.ParticipantID, error)
	EndSession(id domain.ParticipantID) (*domain.ParticipantID, error)
	LeaveQueue(id domain.ParticipantID) error
	Partner(id domain.ParticipantID) (*domain.ParticipantID, error)
	IsWaiting(id domain.ParticipantID) (bool, error)
	ResetAll() error
}

type Matchmaker struct {
	sessions repositories.ISessionRepository
	log      *slog.Logger
}

func NewMatchmaker(sessions repositories.ISessionRepository, log *slog.Logger) *Matchmaker {
	return &Matchmaker{sessions: sessions, log: log}
}

// Register lazily creates the participant's record on first interaction.
func (m *Matchmaker) Register(id domain.ParticipantID) error {
	return m.sessions.EnsureExists(id)
}

// TryMatch pairs id with the oldest waiting participant and returns the peer,
// or enqueues id and returns nil when nobody is waiting. The claim is a
// single conflict-detected storage transaction; a loser of a concurrent race
// re-picks, and after claimAttempts defeats retreats to the queue. When a
// concurrent match paired id in the meantime, the store refuses the write and
// TryMatch surfaces the partner that pairing established.
func (m *Matchmaker) TryMatch(id domain.ParticipantID) (*domain.ParticipantID, error) {
	for attempt := 0; attempt < claimAttempts; attempt++ {
		peer, err := m.sessions.ClaimOldestQueued(id)
		switch {
		case err == nil:
			m.log.Info("Participants matched", "state", domain.StatePaired)
			return peer, nil
		case errors.Is(err, apperrors.ErrAlreadyPaired):
			return m.sessions.GetPartner(id)
		case errors.Is(err, apperrors.ErrNoPeerAvailable):
			return m.enqueue(id)
		case errors.Is(err, apperrors.ErrClaimConflict):
			m.log.Debug("Claim lost to a concurrent match, retrying", "attempt", attempt+1)
		default:
			return nil, err
		}
	}
	// Every candidate was snatched while we retried; wait like everyone else.
	return m.enqueue(id)
}

// enqueue parks id in the queue. A concurrent claim may have paired id
// between the failed claim and this fallback; the store refuses to clobber
// that pairing and the new partner is returned instead.
func (m *Matchmaker) enqueue(id domain.ParticipantID) (*domain.ParticipantID, error) {
	var err error
	for attempt := 0; attempt < claimAttempts; attempt++ {
		err = m.sessions.Enqueue(id)
		switch {
		case err == nil:
			return nil, nil
		case errors.Is(err, apperrors.ErrAlreadyPaired):
			return m.sessions.GetPartner(id)
		case errors.Is(err, apperrors.ErrClaimConflict):
			// Our own record changed under us; re-read and decide again.
		default:
			return nil, err
		}
	}
	return nil, err
}

// EndSession tears down id's pairing on both sides and returns the former
// partner so the caller can notify them. Without a partner it still resets
// id's own record and returns nil.
func (m *Matchmaker) EndSession(id domain.ParticipantID) (*domain.ParticipantID, error) {
	partner, err := m.sessions.GetPartner(id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		if err := m.sessions.Unpair(id); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err := m.sessions.Unpair(id, *partner); err != nil {
		return nil, err
	}
	m.log.Info("Session ended", "state", domain.StateIdle)
	return partner, nil
}

// LeaveQueue clears the waiting flag without touching any pairing, so it is
// safe to call right before a fresh match attempt.
func (m *Matchmaker) LeaveQueue(id domain.ParticipantID) error {
	return m.sessions.Dequeue(id)
}

func (m *Matchmaker) Partner(id domain.ParticipantID) (*domain.ParticipantID, error) {
	return m.sessions.GetPartner(id)
}

func (m *Matchmaker) IsWaiting(id domain.ParticipantID) (bool, error) {
	return m.sessions.IsQueued(id)
}

// ResetAll wipes queue and pairing state for everybody. Run once at process
// start, before any inbound event: a persisted pairing has no live transport
// connection behind it after a restart.
func (m *Matchmaker) ResetAll() error {
	if err := m.sessions.ClearAllSessions(); err != nil {
		return fmt.Errorf("startup session reset: %w", err)
	}
	return nil
}
