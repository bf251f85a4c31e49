package services

// Scripted participant-facing replies. These are the only texts a participant
// ever sees; internal failures degrade to ReplyTryAgain, never a raw error.
const (
	ReplyWelcome = "Anonymous Chat\n\n" +
		"Commands:\n" +
		"- /find: find a partner\n" +
		"- /stop: end current chat\n" +
		"- /next: end current chat and find a new partner\n" +
		"- /report [reason]: report partner to an operator\n" +
		"- /help: show this message\n\n" +
		"Your identity is hidden: content is copied to your partner without any metadata. Be kind. No spam, hate, or illegal content is allowed."

	ReplyAlreadyConnected   = "You're already connected. Use /stop or /next."
	ReplyMatched            = "Matched! You're now connected. Say hi."
	ReplySearching          = "Searching for a partner… you'll be matched automatically."
	ReplyNotInChat          = "You are not in a chat. Use /find to start."
	ReplyChatEnded          = "Chat ended. Use /find to meet someone new."
	ReplyPartnerLeft        = "Your partner left the chat."
	ReplyReportSubmitted    = "Report submitted. Thank you."
	ReplyNotConnected       = "You're not connected. Use /find to get a partner."
	ReplyPartnerUnavailable = "Your partner is unavailable. Use /find to match again."
	ReplyTryAgain           = "Service unavailable right now, please try again."
)

const noReasonGiven = "[no reason given]"
