package e2e

import (
	"anonpair/domain"
	"anonpair/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testPairingScenarioSuite struct {
	BaseScenarioSuite
}

func TestPairingScenarioSuite(t *testing.T) {
	suite.Run(t, &testPairingScenarioSuite{})
}

func (s *testPairingScenarioSuite) TestFullPairingFlow() {
	p1 := domain.ParticipantID("p1")
	p2 := domain.ParticipantID("p2")

	s.Step("Step 0: First participant gets the welcome text", func() {
		s.SendCommand(p1, domain.CommandStart)
		s.WaitForNote(p1, services.ReplyWelcome)
	})

	// Each step waits for the previous reply before sending the next event,
	// so the scenario exercises the sequential happy path, not the claim race.
	s.Step("Step 1: First participant starts searching", func() {
		s.SendCommand(p1, domain.CommandFind)
		s.WaitForNote(p1, services.ReplySearching)
	})

	s.Step("Step 2: Second participant joins and both get matched", func() {
		s.SendCommand(p2, domain.CommandFind)
		s.WaitForNote(p2, services.ReplyMatched)
		s.WaitForNote(p1, services.ReplyMatched)
	})

	s.Step("Step 3: Content flows anonymously in both directions", func() {
		s.SendContent(p1, "content-a")
		s.WaitForRelay(p2, "content-a")

		s.SendContent(p2, "content-b")
		s.WaitForRelay(p1, "content-b")
	})

	s.Step("Step 4: Skipping to the next partner informs the old one", func() {
		s.SendCommand(p1, domain.CommandNext)
		s.WaitForNote(p2, services.ReplyPartnerLeft)
		s.WaitForNoteCount(p1, services.ReplySearching, 2)
	})

	s.Step("Step 5: The abandoned participant is no longer connected", func() {
		s.SendContent(p2, "content-c")
		s.WaitForNote(p2, services.ReplyNotConnected)
	})

	s.Step("Step 6: Stopping while searching leaves the queue", func() {
		s.SendCommand(p1, domain.CommandStop)
		s.WaitForNote(p1, services.ReplyChatEnded)
	})
}

func (s *testPairingScenarioSuite) TestStopTearsDownBothSides() {
	p1 := domain.ParticipantID("p1")
	p2 := domain.ParticipantID("p2")

	s.Step("Step 0: Establish a pairing", func() {
		s.SendCommand(p1, domain.CommandFind)
		s.WaitForNote(p1, services.ReplySearching)
		s.SendCommand(p2, domain.CommandFind)
		s.WaitForNote(p1, services.ReplyMatched)
	})

	s.Step("Step 1: One side stops, the other is informed", func() {
		s.SendCommand(p1, domain.CommandStop)
		s.WaitForNote(p1, services.ReplyChatEnded)
		s.WaitForNote(p2, services.ReplyPartnerLeft)
	})

	s.Step("Step 2: A second stop is answered as not-in-chat", func() {
		s.SendCommand(p1, domain.CommandStop)
		s.WaitForNote(p1, services.ReplyNotInChat)
	})
}

func (s *testPairingScenarioSuite) TestReportFlow() {
	p1 := domain.ParticipantID("p1")
	p2 := domain.ParticipantID("p2")

	s.Step("Step 0: Establish a pairing", func() {
		s.SendCommand(p1, domain.CommandFind)
		s.WaitForNote(p1, services.ReplySearching)
		s.SendCommand(p2, domain.CommandFind)
		s.WaitForNote(p1, services.ReplyMatched)
	})

	s.Step("Step 1: Reporting stores the record and acknowledges", func() {
		s.SendCommand(p1, domain.CommandReport, "sent", "spam")
		s.WaitForNote(p1, services.ReplyReportSubmitted)
	})

	s.Step("Step 2: The record carries the partner snapshot", func() {
		reports, err := s.reports.List(0)
		s.Require().NoError(err)
		s.Require().Len(reports, 1)
		s.Require().Equal(p1, reports[0].ReporterID)
		s.Require().Equal(p2, *reports[0].PartnerID)
		s.Require().Equal("sent spam", reports[0].Reason)
	})

	s.Step("Step 3: A summary reaches the operator channel", func() {
		s.Require().Eventually(func() bool {
			for _, summary := range s.transport.Escalations() {
				if summary != "" {
					return true
				}
			}
			return false
		}, s.Config.WaitTimeout, 10*time.Millisecond, "no escalation was captured")
		s.Require().Contains(s.transport.Escalations()[0], "sent spam")
	})
}
