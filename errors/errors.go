package errors

import "fmt"

var (
	// ErrStorage marks a transient persistence failure. The event that hit it
	// can be retried; no partial state is left behind because every session
	// write is transactional.
	ErrStorage = fmt.Errorf("storage failure")

	// ErrNoPeerAvailable means the waiting queue is empty (excluding the caller).
	ErrNoPeerAvailable = fmt.Errorf("no peer available")

	// ErrClaimConflict means a concurrent match claimed the same peer first.
	// The caller should re-pick or enqueue, never write blindly.
	ErrClaimConflict = fmt.Errorf("peer claimed concurrently")

	// ErrAlreadyPaired refuses a queue or pairing write that would overwrite a
	// live pairing established in the meantime. The caller should surface the
	// current partner instead of retrying.
	ErrAlreadyPaired = fmt.Errorf("participant already paired")

	// ErrRecipientUnreachable is permanent for the pairing: the partner can no
	// longer receive anything, so the session must be torn down.
	ErrRecipientUnreachable = fmt.Errorf("recipient unreachable")

	// ErrTransientTransport covers retryable transport hiccups; the message is
	// dropped but the session stays intact.
	ErrTransientTransport = fmt.Errorf("transient transport failure")

	ErrWorkerPanic = fmt.Errorf("worker panic")
)
