package service

import (
	"context"
	"encoding/csv"
	"io"
	"time"

	"github.com/arsipkita/arsip/internal/arsip/store"
)

// ReportService produces tabular exports of the archive. Spreadsheet and PDF
// rendering happens client-side; the server only supplies the data.
type ReportService struct {
	Store store.Store
}

// WriteCSV streams all letters whose stated date falls in [start, end]
// (inclusive) as CSV rows, ordered by stated date.
func (s *ReportService) WriteCSV(ctx context.Context, w io.Writer, start, end time.Time) error {
	letters, err := s.Store.Letters().ListLettersByDateRange(ctx, start, end)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{
		"letter_number", "direction", "subject", "sender", "recipient",
		"date", "category", "status", "archived_at",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, l := range letters {
		row := []string{
			l.Number,
			string(l.Direction),
			l.Subject,
			l.Sender,
			l.Recipient,
			l.Date.Format(time.DateOnly),
			l.Category,
			string(l.Status),
			l.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
