package services

import (
	"anonpair/contract"
	"anonpair/domain"
	"anonpair/matchmaker"
	"anonpair/mocks"
	"anonpair/observability"
	"anonpair/repositories"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sessionFixture struct {
	service  *SessionService
	mm       *matchmaker.Matchmaker
	reports  *repositories.ReportRepository
	notifier *mocks.MockNotifier
	operator *mocks.MockOperator
}

// newSessionFixture wires a service against a real in-memory store so state
// transitions are exercised end to end; only the transport is mocked.
func newSessionFixture(t *testing.T, ctrl *gomock.Controller, withOperator bool) sessionFixture {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.Default()
	sessions := repositories.NewSessionRepository(db, log)
	reports, err := repositories.NewReportRepository(db, log, 1000)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reports.Close() })

	mm := matchmaker.NewMatchmaker(sessions, log)
	notifier := mocks.NewMockNotifier(ctrl)
	var operator *mocks.MockOperator
	var operatorIface contract.Operator
	if withOperator {
		operator = mocks.NewMockOperator(ctrl)
		operatorIface = operator
	}

	service := NewSessionService(mm, reports, notifier, operatorIface, observability.NewMonitor(), log)
	return sessionFixture{service: service, mm: mm, reports: reports, notifier: notifier, operator: operator}
}

func TestSessionService_OnStart(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSessionFixture(t, ctrl, false)

	reply, err := f.service.OnStart(context.Background(), "alice")
	req.NoError(err)
	req.Equal(ReplyWelcome, reply)
}

func TestSessionService_OnFind(t *testing.T) {
	ctx := context.Background()
	alice := domain.ParticipantID("alice")
	bob := domain.ParticipantID("bob")

	t.Run("should answer searching when nobody is waiting", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSessionFixture(t, ctrl, false)

		reply, err := f.service.OnFind(ctx, alice)
		req.NoError(err)
		req.Equal(ReplySearching, reply)

		waiting, err := f.mm.IsWaiting(alice)
		req.NoError(err)
		req.True(waiting)
	})

	t.Run("should match two finders and notify the waiting one", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSessionFixture(t, ctrl, false)

		_, err := f.service.OnFind(ctx, alice)
		req.NoError(err)

		f.notifier.EXPECT().
			Notify(gomock.Any(), alice, ReplyMatched).
			Return(contract.Delivered).
			Times(1)

		reply, err := f.service.OnFind(ctx, bob)
		req.NoError(err)
		req.Equal(ReplyMatched, reply)

		partner, err := f.mm.Partner(alice)
		req.NoError(err)
		req.Equal(bob, *partner)
	})

	t.Run("should refuse a second pairing while connected", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSessionFixture(t, ctrl, false)

		pairUp(t, f, alice, bob)

		reply, err := f.service.OnFind(ctx, alice)
		req.NoError(err)
		req.Equal(ReplyAlreadyConnected, reply)
	})
}

func TestSessionService_OnStop(t *testing.T) {
	ctx := context.Background()
	alice := domain.ParticipantID("alice")
	bob := domain.ParticipantID("bob")

	t.Run("should answer not-in-chat when idle", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSessionFixture(t, ctrl, false)

		reply, err := f.service.OnStop(ctx, alice)
		req.NoError(err)
		req.Equal(ReplyNotInChat, reply)
	})

	t.Run("should end the pairing and notify the partner", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSessionFixture(t, ctrl, false)

		pairUp(t, f, alice, bob)

		f.notifier.EXPECT().
			Notify(gomock.Any(), bob, ReplyPartnerLeft).
			Return(contract.Delivered).
			Times(1)

		reply, err := f.service.OnStop(ctx, alice)
		req.NoError(err)
		req.Equal(ReplyChatEnded, reply)

		for _, id := range []domain.ParticipantID{alice, bob} {
			partner, err := f.mm.Partner(id)
			req.NoError(err)
			req.Nil(partner)
		}
	})

	t.Run("should be idempotent: a second stop mutates nothing", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSessionFixture(t, ctrl, false)

		pairUp(t, f, alice, bob)
		f.notifier.EXPECT().
			Notify(gomock.Any(), bob, ReplyPartnerLeft).
			Return(contract.Delivered).
			Times(1)

		_, err := f.service.OnStop(ctx, alice)
		req.NoError(err)

		reply, err := f.service.OnStop(ctx, alice)
		req.NoError(err)
		req.Equal(ReplyNotInChat, reply)
	})

	t.Run("should swallow a blocked partner notification", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSessionFixture(t, ctrl, false)

		pairUp(t, f, alice, bob)
		f.notifier.EXPECT().
			Notify(gomock.Any(), bob, ReplyPartnerLeft).
			Return(contract.Blocked).
			Times(1)

		reply, err := f.service.OnStop(ctx, alice)
		req.NoError(err)
		req.Equal(ReplyChatEnded, reply)
	})

	t.Run("should leave the queue when stopping while waiting", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSessionFixture(t, ctrl, false)

		_, err := f.service.OnFind(ctx, alice)
		req.NoError(err)

		reply, err := f.service.OnStop(ctx, alice)
		req.NoError(err)
		req.Equal(ReplyChatEnded, reply)

		waiting, err := f.mm.IsWaiting(alice)
		req.NoError(err)
		req.False(waiting)
	})
}

func TestSessionService_OnNext(t *testing.T) {
	ctx := context.Background()
	alice := domain.ParticipantID("alice")
	bob := domain.ParticipantID("bob")

	t.Run("should tear down, notify the ex-partner, and re-enter the queue", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSessionFixture(t, ctrl, false)

		pairUp(t, f, alice, bob)

		f.notifier.EXPECT().
			Notify(gomock.Any(), bob, ReplyPartnerLeft).
			Return(contract.Delivered).
			Times(1)

		reply, err := f.service.OnNext(ctx, alice)
		req.NoError(err)
		req.Equal(ReplySearching, reply)

		waiting, err := f.mm.IsWaiting(alice)
		req.NoError(err)
		req.True(waiting)

		partner, err := f.mm.Partner(bob)
		req.NoError(err)
		req.Nil(partner)
	})

	t.Run("should immediately pair with another waiting participant", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSessionFixture(t, ctrl, false)
		carol := domain.ParticipantID("carol")

		pairUp(t, f, alice, bob)
		_, err := f.service.OnFind(ctx, carol)
		req.NoError(err)

		f.notifier.EXPECT().
			Notify(gomock.Any(), bob, ReplyPartnerLeft).
			Return(contract.Delivered).
			Times(1)
		f.notifier.EXPECT().
			Notify(gomock.Any(), carol, ReplyMatched).
			Return(contract.Delivered).
			Times(1)

		reply, err := f.service.OnNext(ctx, alice)
		req.NoError(err)
		req.Equal(ReplyMatched, reply)

		partner, err := f.mm.Partner(alice)
		req.NoError(err)
		req.Equal(carol, *partner)
	})
}

func TestSessionService_OnReport(t *testing.T) {
	ctx := context.Background()
	alice := domain.ParticipantID("alice")
	bob := domain.ParticipantID("bob")

	t.Run("should store the report with the live partner snapshot", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSessionFixture(t, ctrl, false)

		pairUp(t, f, alice, bob)

		reply, err := f.service.OnReport(ctx, alice, []string{"sent", "spam"})
		req.NoError(err)
		req.Equal(ReplyReportSubmitted, reply)

		reports, err := f.reports.List(0)
		req.NoError(err)
		req.Len(reports, 1)
		req.Equal(alice, reports[0].ReporterID)
		req.Equal(bob, *reports[0].PartnerID)
		req.Equal("sent spam", reports[0].Reason)
	})

	t.Run("should record a placeholder when no reason is given", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSessionFixture(t, ctrl, false)

		_, err := f.service.OnReport(ctx, alice, nil)
		req.NoError(err)

		reports, err := f.reports.List(0)
		req.NoError(err)
		req.Len(reports, 1)
		req.Equal(noReasonGiven, reports[0].Reason)
		req.Nil(reports[0].PartnerID)
	})

	t.Run("should escalate a summary to the operator", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSessionFixture(t, ctrl, true)

		var summary string
		f.operator.EXPECT().
			Escalate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s string) error {
				summary = s
				return nil
			}).
			Times(1)

		_, err := f.service.OnReport(ctx, alice, []string{"threatening", "messages"})
		req.NoError(err)
		req.Contains(summary, "threatening messages")
		req.Contains(summary, alice.String())
	})

	t.Run("should swallow operator failures", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSessionFixture(t, ctrl, true)

		f.operator.EXPECT().
			Escalate(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("operator channel down")).
			Times(1)

		reply, err := f.service.OnReport(ctx, alice, []string{"spam"})
		req.NoError(err)
		req.Equal(ReplyReportSubmitted, reply)
	})
}

// pairUp connects two participants through the public find flow.
func pairUp(t *testing.T, f sessionFixture, a, b domain.ParticipantID) {
	t.Helper()
	req := require.New(t)

	_, err := f.service.OnFind(context.Background(), a)
	req.NoError(err)

	f.notifier.EXPECT().
		Notify(gomock.Any(), a, ReplyMatched).
		Return(contract.Delivered).
		Times(1)
	reply, err := f.service.OnFind(context.Background(), b)
	req.NoError(err)
	req.Equal(ReplyMatched, reply)
}
