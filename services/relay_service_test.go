package services

import (
	"anonpair/contract"
	"anonpair/domain"
	apperrors "anonpair/errors"
	"anonpair/matchmaker"
	"anonpair/mocks"
	"anonpair/observability"
	"anonpair/repositories"
	"anonpair/throttle"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type relayFixture struct {
	service  *RelayService
	mm       *matchmaker.Matchmaker
	relayer  *mocks.MockRelayer
	notifier *mocks.MockNotifier
	monitor  *observability.Monitor
}

func newRelayFixture(t *testing.T, ctrl *gomock.Controller, minInterval time.Duration) relayFixture {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.Default()
	mm := matchmaker.NewMatchmaker(repositories.NewSessionRepository(db, log), log)
	relayer := mocks.NewMockRelayer(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	monitor := observability.NewMonitor()

	service := NewRelayService(mm, throttle.NewGuard(minInterval), relayer, notifier, monitor, log)
	return relayFixture{service: service, mm: mm, relayer: relayer, notifier: notifier, monitor: monitor}
}

// pairThrough establishes a pairing directly through the matchmaker.
func pairThrough(t *testing.T, mm *matchmaker.Matchmaker, a, b domain.ParticipantID) {
	t.Helper()
	req := require.New(t)
	_, err := mm.TryMatch(a)
	req.NoError(err)
	peer, err := mm.TryMatch(b)
	req.NoError(err)
	req.Equal(a, *peer)
}

func TestRelayService_OnContent(t *testing.T) {
	ctx := context.Background()
	alice := domain.ParticipantID("alice")
	bob := domain.ParticipantID("bob")

	t.Run("should answer not-connected when unpaired", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRelayFixture(t, ctrl, time.Hour)

		reply, err := f.service.OnContent(ctx, alice, "content-1")
		req.NoError(err)
		req.Equal(ReplyNotConnected, reply)
	})

	t.Run("should relay to the partner and stay silent", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRelayFixture(t, ctrl, time.Hour)
		pairThrough(t, f.mm, alice, bob)

		f.relayer.EXPECT().
			Relay(gomock.Any(), alice, bob, "content-1").
			Return(nil).
			Times(1)

		reply, err := f.service.OnContent(ctx, alice, "content-1")
		req.NoError(err)
		req.Empty(reply)
		req.Equal(uint64(1), f.monitor.GetLatest().ContentRelayed)
	})

	t.Run("should drop a throttled send without touching the relayer", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRelayFixture(t, ctrl, time.Hour)
		pairThrough(t, f.mm, alice, bob)

		f.relayer.EXPECT().
			Relay(gomock.Any(), alice, bob, "content-1").
			Return(nil).
			Times(1)

		_, err := f.service.OnContent(ctx, alice, "content-1")
		req.NoError(err)

		// The second send inside the interval is silently discarded.
		reply, err := f.service.OnContent(ctx, alice, "content-2")
		req.NoError(err)
		req.Empty(reply)
		req.Equal(uint64(1), f.monitor.GetLatest().ThrottledDrops)
	})

	t.Run("should tear down the session when the partner is unreachable", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRelayFixture(t, ctrl, time.Hour)
		pairThrough(t, f.mm, alice, bob)

		f.relayer.EXPECT().
			Relay(gomock.Any(), alice, bob, "content-1").
			Return(fmt.Errorf("push rejected: %w", apperrors.ErrRecipientUnreachable)).
			Times(1)
		f.notifier.EXPECT().
			Notify(gomock.Any(), bob, ReplyPartnerLeft).
			Return(contract.Blocked). // teardown proceeds regardless
			Times(1)

		reply, err := f.service.OnContent(ctx, alice, "content-1")
		req.NoError(err)
		req.Equal(ReplyPartnerUnavailable, reply)

		for _, id := range []domain.ParticipantID{alice, bob} {
			partner, err := f.mm.Partner(id)
			req.NoError(err)
			req.Nil(partner)
		}
	})

	t.Run("should keep the session on a transient transport failure", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRelayFixture(t, ctrl, time.Hour)
		pairThrough(t, f.mm, alice, bob)

		f.relayer.EXPECT().
			Relay(gomock.Any(), alice, bob, "content-1").
			Return(fmt.Errorf("timeout: %w", apperrors.ErrTransientTransport)).
			Times(1)

		reply, err := f.service.OnContent(ctx, alice, "content-1")
		req.NoError(err)
		req.Empty(reply)
		req.Equal(uint64(1), f.monitor.GetLatest().RelayFailures)

		partner, err := f.mm.Partner(alice)
		req.NoError(err)
		req.Equal(bob, *partner)
	})

	t.Run("should relay both directions of a pairing", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRelayFixture(t, ctrl, time.Nanosecond)
		pairThrough(t, f.mm, alice, bob)

		f.relayer.EXPECT().
			Relay(gomock.Any(), alice, bob, "hi").
			Return(nil).
			Times(1)
		f.relayer.EXPECT().
			Relay(gomock.Any(), bob, alice, "hello").
			Return(nil).
			Times(1)

		_, err := f.service.OnContent(ctx, alice, "hi")
		req.NoError(err)
		_, err = f.service.OnContent(ctx, bob, "hello")
		req.NoError(err)
	})
}
