package main

import (
	"anonpair/contract"
	"anonpair/domain"
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// console is a development transport: events come from reader lines shaped
// "alice /find" or "alice some message", outbound traffic is printed.
// A production deployment replaces this with a real gateway implementing the
// same contract interfaces.
type console struct {
	out io.Writer
	log *slog.Logger
}

func newConsole(out io.Writer, log *slog.Logger) *console {
	return &console{out: out, log: log}
}

func (c *console) Notify(_ context.Context, id domain.ParticipantID, text string) contract.Delivery {
	fmt.Fprintf(c.out, "@%s <- %s\n", id, text)
	return contract.Delivered
}

func (c *console) Relay(_ context.Context, _, to domain.ParticipantID, contentRef string) error {
	// No sender in the output: the relay is the anonymity boundary.
	fmt.Fprintf(c.out, "@%s <~ %s\n", to, contentRef)
	return nil
}

// ReadLoop parses reader lines into inbound events until EOF or cancellation,
// then closes the event channel so the dispatcher drains and stops.
func (c *console) ReadLoop(ctx context.Context, r io.Reader, events chan<- domain.InboundEvent) {
	defer close(events)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		event, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		select {
		case <-ctx.Done():
			return
		case events <- event:
		}
	}
	if err := scanner.Err(); err != nil {
		c.log.Error("Console input failed", "error", err)
	}
}

func parseLine(line string) (domain.InboundEvent, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return domain.InboundEvent{}, false
	}
	event := domain.InboundEvent{
		ID:            uuid.NewString(),
		ParticipantID: domain.ParticipantID(fields[0]),
	}
	if strings.HasPrefix(fields[1], "/") {
		event.Kind = domain.KindCommand
		event.Command = domain.CommandName(strings.TrimPrefix(fields[1], "/"))
		event.Args = fields[2:]
	} else {
		event.Kind = domain.KindContent
		event.ContentRef = strings.Join(fields[1:], " ")
	}
	return event, true
}

// consoleOperator prints report summaries tagged with the configured
// operator identifier.
type consoleOperator struct {
	out io.Writer
	id  string
}

func (o *consoleOperator) Escalate(_ context.Context, summary string) error {
	_, err := fmt.Fprintf(o.out, "@operator(%s) <- %s\n", o.id, summary)
	return err
}
