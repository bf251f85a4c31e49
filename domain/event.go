package domain

// EventKind separates commands (slash verbs) from relayable content.
type EventKind int

const (
	KindCommand EventKind = iota
	KindContent
)

// Command names understood by the session controller.
type CommandName string

const (
	CommandStart  CommandName = "start"
	CommandHelp   CommandName = "help"
	CommandFind   CommandName = "find"
	CommandStop   CommandName = "stop"
	CommandNext   CommandName = "next"
	CommandReport CommandName = "report"
)

// InboundEvent is one participant interaction delivered by the transport.
// ContentRef is an opaque handle to the content held by the transport;
// the core never sees or stores the content itself.
type InboundEvent struct {
	ID            string
	ParticipantID ParticipantID
	Kind          EventKind
	Command       CommandName
	Args          []string
	ContentRef    string
}
