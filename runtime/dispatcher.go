// Package runtime wires inbound events to the services and manages process
// lifecycle. It contains no matchmaking rules of its own.
package runtime

import (
	"anonpair/contract"
	"anonpair/domain"
	"anonpair/observability"
	"anonpair/services"
	"context"
	"log/slog"
	"sync"
)

// Dispatcher consumes inbound events and handles each one in its own
// goroutine: unrelated participants never serialize behind each other, and
// the storage layer is what closes the remaining races.
type Dispatcher struct {
	events   <-chan domain.InboundEvent
	sessions services.ISessionService
	relay    services.IRelayService
	notifier contract.Notifier
	monitor  *observability.Monitor
	log      *slog.Logger
	inflight sync.WaitGroup
}

func NewDispatcher(
	events <-chan domain.InboundEvent,
	sessions services.ISessionService,
	relay services.IRelayService,
	notifier contract.Notifier,
	monitor *observability.Monitor,
	log *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		events:   events,
		sessions: sessions,
		relay:    relay,
		notifier: notifier,
		monitor:  monitor,
		log:      log,
	}
}

// Run consumes events until the context is cancelled or the channel closes,
// then waits for in-flight handlers to drain. Implements contract.Worker.
func (d *Dispatcher) Run(ctx context.Context) error {
	defer d.inflight.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-d.events:
			if !ok {
				return nil
			}
			d.monitor.EventSeen()
			d.inflight.Add(1)
			go d.handle(ctx, event)
		}
	}
}

// handle routes one event and delivers the scripted reply, if any, back to
// the originating participant. A panic in one handler is contained here so it
// cannot kill the event loop for everyone else.
func (d *Dispatcher) handle(ctx context.Context, event domain.InboundEvent) {
	defer d.inflight.Done()
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("Event handler panicked", "event_id", event.ID, "panic", r)
		}
	}()

	reply, err := d.route(ctx, event)
	if err != nil {
		// Storage and other internal failures degrade to a generic retry
		// hint; participants never see raw errors.
		d.log.Error("Event failed", "event_id", event.ID, "error", err)
		reply = services.ReplyTryAgain
	}
	if reply == "" {
		return
	}
	if delivery := d.notifier.Notify(ctx, event.ParticipantID, reply); delivery == contract.TransientError {
		d.log.Warn("Reply not delivered", "event_id", event.ID, "delivery", delivery)
	}
}

func (d *Dispatcher) route(ctx context.Context, event domain.InboundEvent) (string, error) {
	if event.Kind == domain.KindContent {
		return d.relay.OnContent(ctx, event.ParticipantID, event.ContentRef)
	}

	switch event.Command {
	case domain.CommandStart:
		return d.sessions.OnStart(ctx, event.ParticipantID)
	case domain.CommandHelp:
		return d.sessions.OnHelp(ctx, event.ParticipantID)
	case domain.CommandFind:
		return d.sessions.OnFind(ctx, event.ParticipantID)
	case domain.CommandStop:
		return d.sessions.OnStop(ctx, event.ParticipantID)
	case domain.CommandNext:
		return d.sessions.OnNext(ctx, event.ParticipantID)
	case domain.CommandReport:
		return d.sessions.OnReport(ctx, event.ParticipantID, event.Args)
	default:
		d.log.Debug("Unknown command ignored", "event_id", event.ID)
		return "", nil
	}
}
