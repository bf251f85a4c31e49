//go:generate go run go.uber.org/mock/mockgen -source=relay_service.go -destination=../mocks/mock_relay_service.go -package=mocks
package services

import (
	"anonpair/contract"
	"anonpair/domain"
	apperrors "anonpair/errors"
	"anonpair/matchmaker"
	"anonpair/observability"
	"anonpair/throttle"
	"context"
	"errors"
	"log/slog"
)

type IRelayService interface {
	OnContent(ctx context.Context, id domain.ParticipantID, contentRef string) (string, error)
}

// RelayService validates an inbound content event against session and
// throttle state before invoking the anonymizing relay primitive.
type RelayService struct {
	matchmaker matchmaker.IMatchmaker
	guard      *throttle.Guard
	relayer    contract.Relayer
	notifier   contract.Notifier
	monitor    *observability.Monitor
	log        *slog.Logger
}

func NewRelayService(
	mm matchmaker.IMatchmaker,
	guard *throttle.Guard,
	relayer contract.Relayer,
	notifier contract.Notifier,
	monitor *observability.Monitor,
	log *slog.Logger,
) *RelayService {
	return &RelayService{
		matchmaker: mm,
		guard:      guard,
		relayer:    relayer,
		notifier:   notifier,
		monitor:    monitor,
		log:        log,
	}
}

// OnContent relays one piece of content to the sender's partner.
//
// Throttled sends are dropped without a reply: answering would amplify the
// very flood the throttle suppresses. An unreachable partner tears the
// session down; transient transport failures drop the message and keep the
// session intact.
func (s *RelayService) OnContent(ctx context.Context, id domain.ParticipantID, contentRef string) (string, error) {
	partner, err := s.matchmaker.Partner(id)
	if err != nil {
		return "", err
	}
	if partner == nil {
		return ReplyNotConnected, nil
	}
	if !s.guard.MaySend(id) {
		s.monitor.ThrottledDrop()
		return "", nil
	}

	err = s.relayer.Relay(ctx, id, *partner, contentRef)
	switch {
	case err == nil:
		s.monitor.ContentRelayed()
		return "", nil
	case errors.Is(err, apperrors.ErrRecipientUnreachable):
		former, endErr := s.matchmaker.EndSession(id)
		if endErr != nil {
			return "", endErr
		}
		s.monitor.SessionEnded()
		if former != nil {
			// Best effort; the partner most likely blocked us anyway.
			s.notifier.Notify(ctx, *former, ReplyPartnerLeft)
		}
		return ReplyPartnerUnavailable, nil
	default:
		// Transient or unclassified transport trouble: log, swallow, keep the
		// session. The sender gets no error to avoid leaking transport state.
		s.monitor.RelayFailure()
		s.log.Warn("Relay failed, message dropped", "error", err)
		return "", nil
	}
}
