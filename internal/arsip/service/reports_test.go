package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/arsipkita/arsip/internal/arsip/domain"
	"github.com/arsipkita/arsip/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVRangeInclusive(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ReportService{Store: st}

	dates := map[string]time.Time{
		"001/SM/2026": time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		"002/SM/2026": time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		"001/SK/2026": time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
	}
	for number, date := range dates {
		letter := domain.Letter{
			ID:        idx.New().String(),
			Direction: domain.DirectionIncoming,
			Number:    number,
			Subject:   "Laporan",
			Sender:    "Bagian Umum",
			Recipient: "Kepala Kantor",
			Date:      date,
			Category:  "Laporan",
			Status:    domain.StatusPending,
			CreatedAt: time.Now(),
		}
		require.NoError(t, st.Letters().CreateLetter(ctx, letter))
	}

	var buf bytes.Buffer
	err := svc.WriteCSV(ctx, &buf,
		time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + both boundary dates

	require.Equal(t, "letter_number", rows[0][0])
	require.Equal(t, "001/SM/2026", rows[1][0])
	require.Equal(t, "2026-01-15", rows[1][5])
	require.Equal(t, "002/SM/2026", rows[2][0])
}

func TestWriteCSVEmptyRange(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ReportService{Store: st}

	var buf bytes.Buffer
	err := svc.WriteCSV(ctx, &buf,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
