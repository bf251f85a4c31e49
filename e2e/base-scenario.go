package e2e

import (
	"anonpair/contract"
	"anonpair/domain"
	"anonpair/matchmaker"
	"anonpair/observability"
	"anonpair/repositories"
	"anonpair/runtime"
	"anonpair/services"
	"anonpair/throttle"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

// BaseScenarioSuite boots the whole stack in-process against an in-memory
// store, with a capturing transport in place of a real one. Scenarios drive
// it by emitting inbound events and asserting on captured deliveries.
type BaseScenarioSuite struct {
	suite.Suite
	Config Config

	events    chan domain.InboundEvent
	transport *fakeTransport
	reports   *repositories.ReportRepository
	monitor   *observability.Monitor

	cancel context.CancelFunc
	done   chan struct{}
}

func (s *BaseScenarioSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

func (s *BaseScenarioSuite) SetupTest() {
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })

	log := slog.Default()
	sessions := repositories.NewSessionRepository(db, log)
	s.reports, err = repositories.NewReportRepository(db, log, 1000)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = s.reports.Close() })

	mm := matchmaker.NewMatchmaker(sessions, log)
	s.monitor = observability.NewMonitor()
	s.transport = newFakeTransport()

	// A near-zero interval keeps scripted scenarios out of the throttle's way;
	// throttling has its own dedicated scenario.
	guard := throttle.NewGuard(time.Nanosecond)

	sessionService := services.NewSessionService(mm, s.reports, s.transport, s.transport, s.monitor, log)
	relayService := services.NewRelayService(mm, guard, s.transport, s.transport, s.monitor, log)

	s.events = make(chan domain.InboundEvent, 64)
	dispatcher := runtime.NewDispatcher(s.events, sessionService, relayService, s.transport, s.monitor, log)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go func() {
		defer close(s.done)
		_ = dispatcher.Run(ctx)
	}()
}

func (s *BaseScenarioSuite) TearDownTest() {
	close(s.events)
	select {
	case <-s.done:
	case <-time.After(s.Config.WaitTimeout):
		s.T().Log("dispatcher did not drain in time")
	}
	s.cancel()
}

// Step prints a colorized header so interleaved async logs stay readable.
func (s *BaseScenarioSuite) Step(name string, fn func()) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	s.Run(name, fn)
}

func (s *BaseScenarioSuite) SendCommand(id domain.ParticipantID, command domain.CommandName, args ...string) {
	s.events <- domain.InboundEvent{
		ID:            uuid.NewString(),
		ParticipantID: id,
		Kind:          domain.KindCommand,
		Command:       command,
		Args:          args,
	}
}

func (s *BaseScenarioSuite) SendContent(id domain.ParticipantID, contentRef string) {
	s.events <- domain.InboundEvent{
		ID:            uuid.NewString(),
		ParticipantID: id,
		Kind:          domain.KindContent,
		ContentRef:    contentRef,
	}
}

// WaitForNote blocks until the participant has received the given text.
func (s *BaseScenarioSuite) WaitForNote(id domain.ParticipantID, text string) {
	s.Require().Eventually(func() bool {
		if s.Config.DebugEvents {
			s.T().Logf("notes for %s: %v", id, s.transport.NotesOf(id))
		}
		return s.transport.HasNote(id, text)
	}, s.Config.WaitTimeout, 10*time.Millisecond, "participant %s never received %q", id, text)
}

// WaitForNoteCount blocks until the participant has received the text the
// given number of times. Needed when a scenario triggers the same scripted
// reply more than once.
func (s *BaseScenarioSuite) WaitForNoteCount(id domain.ParticipantID, text string, count int) {
	s.Require().Eventually(func() bool {
		return s.transport.NoteCount(id, text) >= count
	}, s.Config.WaitTimeout, 10*time.Millisecond, "participant %s never received %q %d times", id, text, count)
}

// WaitForRelay blocks until the recipient has received the content handle.
func (s *BaseScenarioSuite) WaitForRelay(to domain.ParticipantID, contentRef string) {
	s.Require().Eventually(func() bool {
		return s.transport.HasRelay(to, contentRef)
	}, s.Config.WaitTimeout, 10*time.Millisecond, "participant %s never received content %q", to, contentRef)
}

// fakeTransport captures every outbound delivery instead of sending it. It
// stands in for the Notifier, the Relayer, and the Operator at once.
type fakeTransport struct {
	mu          sync.Mutex
	notes       map[domain.ParticipantID][]string
	relays      map[domain.ParticipantID][]string
	escalations []string
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		notes:  make(map[domain.ParticipantID][]string),
		relays: make(map[domain.ParticipantID][]string),
	}
}

func (f *fakeTransport) Notify(_ context.Context, id domain.ParticipantID, text string) contract.Delivery {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes[id] = append(f.notes[id], text)
	return contract.Delivered
}

func (f *fakeTransport) Relay(_ context.Context, _, to domain.ParticipantID, contentRef string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.relays[to] = append(f.relays[to], contentRef)
	return nil
}

func (f *fakeTransport) Escalate(_ context.Context, summary string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.escalations = append(f.escalations, summary)
	return nil
}

func (f *fakeTransport) NotesOf(id domain.ParticipantID) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.notes[id]...)
}

func (f *fakeTransport) HasNote(id domain.ParticipantID, text string) bool {
	return f.NoteCount(id, text) > 0
}

func (f *fakeTransport) NoteCount(id domain.ParticipantID, text string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, note := range f.notes[id] {
		if note == text {
			count++
		}
	}
	return count
}

func (f *fakeTransport) HasRelay(to domain.ParticipantID, contentRef string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ref := range f.relays[to] {
		if ref == contentRef {
			return true
		}
	}
	return false
}

func (f *fakeTransport) Escalations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.escalations...)
}
