package service

import (
	"context"
	"testing"

	"github.com/arsipkita/arsip/internal/arsip/domain"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCountsByDirectionAndStatus(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	letters := &LetterService{Store: st}
	svc := &StatsService{Store: st}

	empty, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, StatsSnapshot{}, empty)

	seedLetter(t, st, domain.DirectionIncoming, "001/SM/2026")
	second := seedLetter(t, st, domain.DirectionIncoming, "002/SM/2026")
	third := seedLetter(t, st, domain.DirectionOutgoing, "001/SK/2026")

	require.NoError(t, letters.AdvanceStatus(ctx, second.ID, domain.StatusProcessed))
	require.NoError(t, letters.AdvanceStatus(ctx, third.ID, domain.StatusCompleted))

	snapshot, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, StatsSnapshot{
		Incoming:  2,
		Outgoing:  1,
		Pending:   1,
		Processed: 1,
	}, snapshot)
}
