package repositories

import (
	"anonpair/domain"
	"log/slog"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newTestReportRepository(t *testing.T, maxReason int) *ReportRepository {
	t.Helper()
	repo, err := NewReportRepository(newTestDB(t), slog.Default(), maxReason)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestReportRepository_Append(t *testing.T) {
	req := require.New(t)
	repo := newTestReportRepository(t, 1000)
	reporter := domain.ParticipantID("alice")
	partner := lo.ToPtr(domain.ParticipantID("bob"))

	t.Run("should store the partner snapshot and reason", func(t *testing.T) {
		report, err := repo.Append(reporter, partner, "spam")
		req.NoError(err)
		req.Equal(reporter, report.ReporterID)
		req.Equal(*partner, *report.PartnerID)
		req.Equal("spam", report.Reason)
	})

	t.Run("should accept a missing partner", func(t *testing.T) {
		report, err := repo.Append(reporter, nil, "harassment before disconnect")
		req.NoError(err)
		req.Nil(report.PartnerID)
	})

	t.Run("should assign increasing sequence numbers", func(t *testing.T) {
		first, err := repo.Append(reporter, nil, "one")
		req.NoError(err)
		second, err := repo.Append(reporter, nil, "two")
		req.NoError(err)
		req.Greater(second.Seq, first.Seq)
	})
}

func TestReportRepository_Append_TruncatesReason(t *testing.T) {
	req := require.New(t)
	repo := newTestReportRepository(t, 10)

	report, err := repo.Append(domain.ParticipantID("alice"), nil, strings.Repeat("é", 25))
	req.NoError(err)
	req.Equal(strings.Repeat("é", 10), report.Reason)
}

func TestReportRepository_List(t *testing.T) {
	req := require.New(t)
	repo := newTestReportRepository(t, 1000)
	reporter := domain.ParticipantID("alice")

	reasons := []string{"first", "second", "third"}
	for _, reason := range reasons {
		_, err := repo.Append(reporter, nil, reason)
		req.NoError(err)
	}

	t.Run("should return reports in submission order", func(t *testing.T) {
		reports, err := repo.List(0)
		req.NoError(err)
		req.Len(reports, len(reasons))
		for i, reason := range reasons {
			req.Equal(reason, reports[i].Reason)
		}
	})

	t.Run("should honor the limit", func(t *testing.T) {
		reports, err := repo.List(2)
		req.NoError(err)
		req.Len(reports, 2)
		req.Equal("first", reports[0].Reason)
	})
}
