//go:generate go run go.uber.org/mock/mockgen -source=session_service.go -destination=../mocks/mock_session_service.go -package=mocks
package services

import (
	"anonpair/contract"
	"anonpair/domain"
	"anonpair/matchmaker"
	"anonpair/observability"
	"anonpair/repositories"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abadojack/whatlanggo"
)

type ISessionService interface {
	OnStart(ctx context.Context, id domain.ParticipantID) (string, error)
	OnHelp(ctx context.Context, id domain.ParticipantID) (string, error)
	OnFind(ctx context.Context, id domain.ParticipantID) (string, error)
	OnStop(ctx context.Context, id domain.ParticipantID) (string, error)
	OnNext(ctx context.Context, id domain.ParticipantID) (string, error)
	OnReport(ctx context.Context, id domain.ParticipantID, args []string) (string, error)
}

// SessionService exposes the command surface. Each operation returns the
// scripted reply for the calling participant and pushes any partner-facing
// notifications through the injected Notifier.
type SessionService struct {
	matchmaker matchmaker.IMatchmaker
	reports    repositories.IReportRepository
	notifier   contract.Notifier
	operator   contract.Operator // nil means reports are stored, not forwarded
	monitor    *observability.Monitor
	log        *slog.Logger
}

func NewSessionService(
	mm matchmaker.IMatchmaker,
	reports repositories.IReportRepository,
	notifier contract.Notifier,
	operator contract.Operator,
	monitor *observability.Monitor,
	log *slog.Logger,
) *SessionService {
	return &SessionService{
		matchmaker: mm,
		reports:    reports,
		notifier:   notifier,
		operator:   operator,
		monitor:    monitor,
		log:        log,
	}
}

// OnStart lazily creates the participant record and returns the welcome text.
func (s *SessionService) OnStart(ctx context.Context, id domain.ParticipantID) (string, error) {
	if err := s.matchmaker.Register(id); err != nil {
		return "", err
	}
	return ReplyWelcome, nil
}

// OnHelp repeats the welcome text.
func (s *SessionService) OnHelp(_ context.Context, _ domain.ParticipantID) (string, error) {
	return ReplyWelcome, nil
}

// OnFind pairs the participant with the oldest waiting peer, or enqueues them.
// An already-paired participant must /stop or /next first.
func (s *SessionService) OnFind(ctx context.Context, id domain.ParticipantID) (string, error) {
	if err := s.matchmaker.Register(id); err != nil {
		return "", err
	}
	partner, err := s.matchmaker.Partner(id)
	if err != nil {
		return "", err
	}
	if partner != nil {
		return ReplyAlreadyConnected, nil
	}
	return s.attemptMatch(ctx, id)
}

// OnStop tears down the current session or leaves the queue.
// Calling it while idle is a no-op answered with ReplyNotInChat, so a double
// /stop leaves state untouched.
func (s *SessionService) OnStop(ctx context.Context, id domain.ParticipantID) (string, error) {
	partner, err := s.matchmaker.Partner(id)
	if err != nil {
		return "", err
	}
	waiting, err := s.matchmaker.IsWaiting(id)
	if err != nil {
		return "", err
	}
	if partner == nil && !waiting {
		return ReplyNotInChat, nil
	}
	if err := s.teardown(ctx, id); err != nil {
		return "", err
	}
	if err := s.matchmaker.LeaveQueue(id); err != nil {
		return "", err
	}
	return ReplyChatEnded, nil
}

// OnNext ends the current session (notifying the ex-partner) and immediately
// looks for a new one.
func (s *SessionService) OnNext(ctx context.Context, id domain.ParticipantID) (string, error) {
	if err := s.matchmaker.Register(id); err != nil {
		return "", err
	}
	// Leave the queue before teardown so the participant is never counted as
	// both waiting and about-to-pair.
	if err := s.matchmaker.LeaveQueue(id); err != nil {
		return "", err
	}
	if err := s.teardown(ctx, id); err != nil {
		return "", err
	}
	return s.attemptMatch(ctx, id)
}

// OnReport appends an abuse record with a snapshot of the current partner and
// optionally escalates a summary to the operator channel. Escalation failures
// are logged and swallowed; the reporter always gets the same reply.
func (s *SessionService) OnReport(ctx context.Context, id domain.ParticipantID, args []string) (string, error) {
	partner, err := s.matchmaker.Partner(id)
	if err != nil {
		return "", err
	}
	reason := strings.TrimSpace(strings.Join(args, " "))
	if reason == "" {
		reason = noReasonGiven
	}

	report, err := s.reports.Append(id, partner, reason)
	if err != nil {
		return "", err
	}
	s.monitor.ReportStored()

	if s.operator != nil {
		if err := s.operator.Escalate(ctx, formatReportSummary(report)); err != nil {
			s.log.Error("Failed to escalate report to operator", "seq", report.Seq, "error", err)
		}
	}
	return ReplyReportSubmitted, nil
}

// attemptMatch runs the matching branch shared by /find and /next: pair and
// notify both sides, or enqueue and answer "searching".
func (s *SessionService) attemptMatch(ctx context.Context, id domain.ParticipantID) (string, error) {
	peer, err := s.matchmaker.TryMatch(id)
	if err != nil {
		return "", err
	}
	if peer == nil {
		return ReplySearching, nil
	}
	s.monitor.MatchMade()
	if delivery := s.notifier.Notify(ctx, *peer, ReplyMatched); delivery == contract.TransientError {
		s.log.Warn("Match notification not delivered", "delivery", delivery)
	}
	return ReplyMatched, nil
}

// teardown ends the session if one exists and notifies the former partner.
func (s *SessionService) teardown(ctx context.Context, id domain.ParticipantID) error {
	former, err := s.matchmaker.EndSession(id)
	if err != nil {
		return err
	}
	if former == nil {
		return nil
	}
	s.monitor.SessionEnded()
	if delivery := s.notifier.Notify(ctx, *former, ReplyPartnerLeft); delivery == contract.TransientError {
		s.log.Warn("Partner-left notification not delivered", "delivery", delivery)
	}
	return nil
}

// formatReportSummary renders the operator-facing digest. The language hint
// helps route reports written in languages the operators cannot read.
func formatReportSummary(report domain.Report) string {
	partner := "none"
	if report.PartnerID != nil {
		partner = report.PartnerID.String()
	}
	info := whatlanggo.Detect(report.Reason)
	return fmt.Sprintf(
		"Report #%d\nReporter: %s\nPartner: %s\nReason (%s): %s",
		report.Seq,
		report.ReporterID,
		partner,
		whatlanggo.LangToString(info.Lang),
		report.Reason,
	)
}
