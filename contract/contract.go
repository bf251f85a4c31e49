//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"anonpair/domain"
	"context"
	"reflect"
)

// Delivery is the outcome of a best-effort notification. Blocked means the
// recipient refuses messages from us and must be swallowed by the caller;
// only TransientError is worth logging.
type Delivery int

const (
	Delivered Delivery = iota
	Blocked
	TransientError
)

func (d Delivery) String() string {
	switch d {
	case Blocked:
		return "blocked"
	case TransientError:
		return "transient_error"
	default:
		return "delivered"
	}
}

// Notifier sends a scripted text to one participant.
type Notifier interface {
	Notify(ctx context.Context, id domain.ParticipantID, text string) Delivery
}

// Relayer copies content between paired participants, stripping every piece
// of sender-identifying metadata. It returns errors.ErrRecipientUnreachable
// when the target can no longer receive, errors.ErrTransientTransport for
// retryable failures.
type Relayer interface {
	Relay(ctx context.Context, from, to domain.ParticipantID, contentRef string) error
}

// Operator receives abuse report summaries. Wiring is optional: a nil
// Operator means reports are stored but never forwarded.
type Operator interface {
	Escalate(ctx context.Context, summary string) error
}

// Worker is a long-running unit of the runtime. Implementations do not guard
// their own panics or restarts; the supervisor does.
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
