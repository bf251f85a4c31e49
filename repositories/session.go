//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session_repository.go -package=mocks
package repositories

import (
	"anonpair/domain"
	apperrors "anonpair/errors"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const (
	sessionPrefix = "session:"
	queuePrefix   = "queue:"
)

type ISessionRepository interface {
	EnsureExists(id domain.ParticipantID) error
	Enqueue(id domain.ParticipantID) error
	Dequeue(id domain.ParticipantID) error
	Pair(a, b domain.ParticipantID) error
	Unpair(ids ...domain.ParticipantID) error
	ClaimOldestQueued(id domain.ParticipantID) (*domain.ParticipantID, error)
	GetSession(id domain.ParticipantID) (domain.Session, error)
	GetPartner(id domain.ParticipantID) (*domain.ParticipantID, error)
	IsQueued(id domain.ParticipantID) (bool, error)
	PickOldestQueued(excluding domain.ParticipantID) (*domain.ParticipantID, error)
	ClearAllSessions() error
}

// SessionRepository persists one record per participant in BadgerDB.
//
// Key layout:
//   - "session:{id}"                      -> diskSession (JSON)
//   - "queue:{updated_at_padded}:{id}"    -> empty
//
// A queue entry exists if and only if the session record has Queued=true.
// Both keys are always written in the same Badger transaction, so the index
// can never disagree with the record. The 19-digit zero padding keeps queue
// entries in lexicographic FIFO order; the id suffix disambiguates entries
// written at the same nanosecond.
type SessionRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSessionRepository(db *badger.DB, log *slog.Logger) *SessionRepository {
	return &SessionRepository{db: db, log: log}
}

// diskSession is the stored shape of a participant record.
type diskSession struct {
	Queued    bool    `json:"queued"`
	PartnerID *string `json:"partner_id,omitempty"`
	UpdatedAt int64   `json:"updated_at"`
}

func sessionKey(id domain.ParticipantID) []byte {
	return []byte(sessionPrefix + id.String())
}

func queueKey(at int64, id domain.ParticipantID) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", queuePrefix, at, id))
}

// queueEntryID extracts the participant id from a queue index key.
func queueEntryID(key []byte) domain.ParticipantID {
	rest := key[len(queuePrefix):]
	if i := bytes.IndexByte(rest, ':'); i >= 0 {
		return domain.ParticipantID(rest[i+1:])
	}
	return domain.ParticipantID(rest)
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", apperrors.ErrStorage, op, err)
}

// readSession returns the stored record, or a zero default when the
// participant has never been seen.
func readSession(txn *badger.Txn, id domain.ParticipantID) (diskSession, bool, error) {
	item, err := txn.Get(sessionKey(id))
	if err == badger.ErrKeyNotFound {
		return diskSession{}, false, nil
	}
	if err != nil {
		return diskSession{}, false, err
	}
	var s diskSession
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &s)
	}); err != nil {
		return diskSession{}, false, err
	}
	return s, true, nil
}

func writeSession(txn *badger.Txn, id domain.ParticipantID, s diskSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return txn.Set(sessionKey(id), data)
}

// dropQueueEntry removes the index entry matching the record's enqueue time.
// Records and index entries move in lockstep, so the entry to delete is
// always the one stamped with the record's own UpdatedAt.
func dropQueueEntry(txn *badger.Txn, id domain.ParticipantID, s diskSession) error {
	if !s.Queued {
		return nil
	}
	return txn.Delete(queueKey(s.UpdatedAt, id))
}

// EnsureExists lazily creates a default (idle, unpaired) record so that every
// identity interacting with the system has a row to mutate.
func (r *SessionRepository) EnsureExists(id domain.ParticipantID) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		if _, found, err := readSession(txn, id); err != nil || found {
			return err
		}
		return writeSession(txn, id, diskSession{UpdatedAt: time.Now().UnixNano()})
	})
	if err != nil {
		return storageErr("ensure exists", err)
	}
	return nil
}

// Enqueue marks the participant as waiting. It refuses with ErrAlreadyPaired
// when the record carries a live pairing: a concurrent claim can pair the
// participant between a caller's failed claim and this enqueue fallback, and
// the fallback must never clobber that pairing.
func (r *SessionRepository) Enqueue(id domain.ParticipantID) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		old, _, err := readSession(txn, id)
		if err != nil {
			return err
		}
		if old.PartnerID != nil {
			return apperrors.ErrAlreadyPaired
		}
		if err := dropQueueEntry(txn, id, old); err != nil {
			return err
		}
		now := time.Now().UnixNano()
		if err := writeSession(txn, id, diskSession{Queued: true, UpdatedAt: now}); err != nil {
			return err
		}
		return txn.Set(queueKey(now, id), nil)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperrors.ErrAlreadyPaired):
		return err
	case errors.Is(err, badger.ErrConflict):
		// A concurrent claim wrote our record mid-enqueue; the caller
		// re-reads and decides whether to retry or surface the pairing.
		return apperrors.ErrClaimConflict
	default:
		return storageErr("enqueue", err)
	}
}

// Dequeue forces Queued=false without touching the partner reference, so a
// live pairing can never be destroyed by queue bookkeeping.
func (r *SessionRepository) Dequeue(id domain.ParticipantID) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		old, found, err := readSession(txn, id)
		if err != nil {
			return err
		}
		if !found || !old.Queued {
			return nil
		}
		if err := dropQueueEntry(txn, id, old); err != nil {
			return err
		}
		old.Queued = false
		old.UpdatedAt = time.Now().UnixNano()
		return writeSession(txn, id, old)
	})
	if err != nil {
		return storageErr("dequeue", err)
	}
	return nil
}

// Pair links two participants symmetrically in a single transaction: both
// records leave the queue and reference each other, or nothing is written.
func (r *SessionRepository) Pair(a, b domain.ParticipantID) error {
	if a == b {
		return fmt.Errorf("%w: pair: participant %s cannot pair with itself", apperrors.ErrStorage, a)
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		return pairInTxn(txn, a, b)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyPaired) {
			return err
		}
		return storageErr("pair", err)
	}
	return nil
}

// pairInTxn refuses to touch a record that already carries a pairing: a
// pairing may only be replaced after an explicit Unpair, never overwritten.
func pairInTxn(txn *badger.Txn, a, b domain.ParticipantID) error {
	now := time.Now().UnixNano()
	for _, side := range []struct {
		id, partner domain.ParticipantID
	}{{a, b}, {b, a}} {
		old, _, err := readSession(txn, side.id)
		if err != nil {
			return err
		}
		if old.PartnerID != nil {
			return apperrors.ErrAlreadyPaired
		}
		if err := dropQueueEntry(txn, side.id, old); err != nil {
			return err
		}
		s := diskSession{PartnerID: lo.ToPtr(side.partner.String()), UpdatedAt: now}
		if err := writeSession(txn, side.id, s); err != nil {
			return err
		}
	}
	return nil
}

// Unpair clears the partner reference on each given record. Queue state is
// reset as well: an unpaired participant is idle until it asks to match again.
func (r *SessionRepository) Unpair(ids ...domain.ParticipantID) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		now := time.Now().UnixNano()
		for _, id := range ids {
			old, _, err := readSession(txn, id)
			if err != nil {
				return err
			}
			if err := dropQueueEntry(txn, id, old); err != nil {
				return err
			}
			if err := writeSession(txn, id, diskSession{UpdatedAt: now}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return storageErr("unpair", err)
	}
	return nil
}

// queueEntry is one row of the FIFO index, oldest first.
type queueEntry struct {
	key []byte
	id  domain.ParticipantID
}

func scanQueue(txn *badger.Txn) ([]queueEntry, error) {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	defer it.Close()

	var entries []queueEntry
	prefix := []byte(queuePrefix)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		key := it.Item().KeyCopy(nil)
		entries = append(entries, queueEntry{key: key, id: queueEntryID(key)})
	}
	return entries, nil
}

// ClaimOldestQueued atomically picks the oldest waiting participant other
// than id and pairs both sides. Both records are read inside the transaction:
// the reads put them in the transaction's read set, so a concurrent claim on
// either side fails with badger.ErrConflict instead of producing a one-sided
// pairing. Returns errors.ErrNoPeerAvailable when nobody is waiting and
// errors.ErrAlreadyPaired when the claimer itself got paired in the meantime.
func (r *SessionRepository) ClaimOldestQueued(id domain.ParticipantID) (*domain.ParticipantID, error) {
	var peer *domain.ParticipantID
	var queueEmpty bool
	err := r.db.Update(func(txn *badger.Txn) error {
		peer = nil
		queueEmpty = false
		claimer, _, err := readSession(txn, id)
		if err != nil {
			return err
		}
		if claimer.PartnerID != nil {
			return apperrors.ErrAlreadyPaired
		}
		// Badger forbids writes while an iterator is open on the same
		// transaction, so the queue scan is materialized first.
		entries, err := scanQueue(txn)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if entry.id == id {
				continue
			}
			s, found, err := readSession(txn, entry.id)
			if err != nil {
				return err
			}
			if !found || !s.Queued {
				// Stale index entry; reconcile and keep scanning. The empty
				// queue outcome commits, so these deletes stick either way.
				if err := txn.Delete(entry.key); err != nil {
					return err
				}
				continue
			}
			if err := pairInTxn(txn, id, entry.id); err != nil {
				return err
			}
			peer = lo.ToPtr(entry.id)
			return nil
		}
		queueEmpty = true
		return nil
	})
	switch {
	case err == nil && queueEmpty:
		return nil, apperrors.ErrNoPeerAvailable
	case err == nil:
		return peer, nil
	case errors.Is(err, badger.ErrConflict):
		return nil, apperrors.ErrClaimConflict
	case errors.Is(err, apperrors.ErrAlreadyPaired):
		return nil, err
	default:
		return nil, storageErr("claim oldest queued", err)
	}
}

func (r *SessionRepository) GetSession(id domain.ParticipantID) (domain.Session, error) {
	var s diskSession
	var found bool
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		s, found, err = readSession(txn, id)
		return err
	})
	if err != nil {
		return domain.Session{}, storageErr("get session", err)
	}
	if !found {
		return domain.Session{ID: id}, nil
	}
	return toSession(id, s), nil
}

func (r *SessionRepository) GetPartner(id domain.ParticipantID) (*domain.ParticipantID, error) {
	session, err := r.GetSession(id)
	if err != nil {
		return nil, err
	}
	return session.PartnerID, nil
}

func (r *SessionRepository) IsQueued(id domain.ParticipantID) (bool, error) {
	session, err := r.GetSession(id)
	if err != nil {
		return false, err
	}
	return session.Queued, nil
}

// PickOldestQueued is the read-only variant of ClaimOldestQueued: it reports
// who would be matched next without writing anything.
func (r *SessionRepository) PickOldestQueued(excluding domain.ParticipantID) (*domain.ParticipantID, error) {
	var peer *domain.ParticipantID
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(queuePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			candidate := queueEntryID(it.Item().Key())
			if candidate == excluding {
				continue
			}
			peer = lo.ToPtr(candidate)
			return nil
		}
		return nil
	})
	if err != nil {
		return nil, storageErr("pick oldest queued", err)
	}
	return peer, nil
}

// ClearAllSessions resets every record to idle/unpaired and drops the whole
// queue index. Called once at process start: a pairing cannot be trusted
// across a restart because the transport connection backing it is gone.
func (r *SessionRepository) ClearAllSessions() error {
	err := r.db.Update(func(txn *badger.Txn) error {
		now := time.Now().UnixNano()
		var resets []domain.ParticipantID
		var stale [][]byte
		func() {
			options := badger.DefaultIteratorOptions
			options.PrefetchValues = false
			it := txn.NewIterator(options)
			defer it.Close()
			for it.Rewind(); it.Valid(); it.Next() {
				key := it.Item().Key()
				switch {
				case bytes.HasPrefix(key, []byte(sessionPrefix)):
					resets = append(resets, domain.ParticipantID(key[len(sessionPrefix):]))
				case bytes.HasPrefix(key, []byte(queuePrefix)):
					stale = append(stale, it.Item().KeyCopy(nil))
				}
			}
		}()
		for _, id := range resets {
			if err := writeSession(txn, id, diskSession{UpdatedAt: now}); err != nil {
				return err
			}
		}
		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return storageErr("clear all sessions", err)
	}
	r.log.Info("All sessions cleared")
	return nil
}

func toSession(id domain.ParticipantID, s diskSession) domain.Session {
	session := domain.Session{
		ID:        id,
		Queued:    s.Queued,
		UpdatedAt: time.Unix(0, s.UpdatedAt).UTC(),
	}
	if s.PartnerID != nil {
		session.PartnerID = lo.ToPtr(domain.ParticipantID(*s.PartnerID))
	}
	return session
}
