package runtime

import (
	"anonpair/matchmaker"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Lifecycle owns the durable store handle: open at startup, recover stale
// state before the first event, close at shutdown. Badger's directory lock
// also enforces the single-active-process assumption the matchmaker relies on.
type Lifecycle struct {
	db  *badger.DB
	log *slog.Logger
}

// Open initializes the store. An empty path opens an in-memory instance,
// which the tests use to exercise the real storage code.
func Open(path string, log *slog.Logger) (*Lifecycle, error) {
	options := badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING)
	if path == "" {
		options = options.WithInMemory(true)
	}
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	return &Lifecycle{db: db, log: log}, nil
}

func (l *Lifecycle) DB() *badger.DB {
	return l.db
}

// Recover resets all queue and pairing state. Must complete before any
// inbound event is accepted: no event may be processed against a pairing
// whose transport connection did not survive the restart.
func (l *Lifecycle) Recover(mm matchmaker.IMatchmaker) error {
	if err := mm.ResetAll(); err != nil {
		return err
	}
	l.log.Info("Stale sessions cleared, store ready")
	return nil
}

func (l *Lifecycle) Close() error {
	l.log.Info("Closing store...")
	return l.db.Close()
}
