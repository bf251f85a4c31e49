package domain

import "time"

// Report is an append-only abuse record. PartnerID is a snapshot of the
// reporter's partner at report time; callers who want the incident partner
// must report before using /next.
type Report struct {
	Seq        uint64
	ReporterID ParticipantID
	PartnerID  *ParticipantID
	Reason     string
	CreatedAt  time.Time
}
