//go:generate go run go.uber.org/mock/mockgen -source=report.go -destination=../mocks/mock_report_repository.go -package=mocks
package repositories

import (
	"anonpair/domain"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const (
	reportPrefix      = "report:"
	reportSequenceKey = "seq:report"
)

type IReportRepository interface {
	Append(reporterID domain.ParticipantID, partnerID *domain.ParticipantID, reason string) (domain.Report, error)
	List(limit int) ([]domain.Report, error)
	Close() error
}

// ReportRepository is an append-only audit log. Records are keyed
// "report:{seq_padded}" so a prefix scan returns them in submission order.
// The sequence survives restarts (badger.Sequence), matching an
// auto-incrementing primary key.
type ReportRepository struct {
	db        *badger.DB
	seq       *badger.Sequence
	log       *slog.Logger
	maxReason int
}

func NewReportRepository(db *badger.DB, log *slog.Logger, maxReason int) (*ReportRepository, error) {
	seq, err := db.GetSequence([]byte(reportSequenceKey), 100)
	if err != nil {
		return nil, fmt.Errorf("report sequence: %w", err)
	}
	return &ReportRepository{db: db, seq: seq, log: log, maxReason: maxReason}, nil
}

type diskReport struct {
	Seq        uint64  `json:"seq"`
	ReporterID string  `json:"reporter_id"`
	PartnerID  *string `json:"partner_id,omitempty"`
	Reason     string  `json:"reason"`
	CreatedAt  int64   `json:"created_at"`
}

// Append stores one report. The reason is truncated to the configured rune
// limit to bound storage; the partner snapshot may be nil when the reporter
// is not in a session.
func (r *ReportRepository) Append(reporterID domain.ParticipantID, partnerID *domain.ParticipantID, reason string) (domain.Report, error) {
	seq, err := r.seq.Next()
	if err != nil {
		return domain.Report{}, storageErr("report sequence next", err)
	}

	report := domain.Report{
		Seq:        seq,
		ReporterID: reporterID,
		PartnerID:  partnerID,
		Reason:     truncateRunes(reason, r.maxReason),
		CreatedAt:  time.Now().UTC(),
	}
	data, err := json.Marshal(fromReport(report))
	if err != nil {
		return domain.Report{}, storageErr("marshal report", err)
	}

	key := fmt.Sprintf("%s%019d", reportPrefix, seq)
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return domain.Report{}, storageErr("append report", err)
	}
	return report, nil
}

// List returns up to limit reports in submission order (oldest first).
// A non-positive limit returns everything.
func (r *ReportRepository) List(limit int) ([]domain.Report, error) {
	var raw [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(reportPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(raw) == limit {
				break
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			raw = append(raw, value)
		}
		return nil
	})
	if err != nil {
		return nil, storageErr("list reports", err)
	}

	reports := make([]domain.Report, 0, len(raw))
	for _, data := range raw {
		var d diskReport
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, storageErr("unmarshal report", err)
		}
		reports = append(reports, toReport(d))
	}
	return reports, nil
}

// Close releases the leased sequence range back to the store.
func (r *ReportRepository) Close() error {
	return r.seq.Release()
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func fromReport(report domain.Report) diskReport {
	d := diskReport{
		Seq:        report.Seq,
		ReporterID: report.ReporterID.String(),
		Reason:     report.Reason,
		CreatedAt:  report.CreatedAt.UnixNano(),
	}
	if report.PartnerID != nil {
		d.PartnerID = lo.ToPtr(report.PartnerID.String())
	}
	return d
}

func toReport(d diskReport) domain.Report {
	report := domain.Report{
		Seq:        d.Seq,
		ReporterID: domain.ParticipantID(d.ReporterID),
		Reason:     d.Reason,
		CreatedAt:  time.Unix(0, d.CreatedAt).UTC(),
	}
	if d.PartnerID != nil {
		report.PartnerID = lo.ToPtr(domain.ParticipantID(*d.PartnerID))
	}
	return report
}
