package service

import (
	"context"

	"github.com/arsipkita/arsip/internal/arsip/domain"
	"github.com/arsipkita/arsip/internal/arsip/store"
)

// StatsSnapshot holds the dashboard counters.
type StatsSnapshot struct {
	Incoming  int64 `json:"incoming"`
	Outgoing  int64 `json:"outgoing"`
	Pending   int64 `json:"pending"`
	Processed int64 `json:"processed"`
}

// StatsService derives dashboard counts from the letter table. It owns no
// state of its own.
type StatsService struct {
	Store store.Store
}

// Snapshot runs four independent counting queries. The counts are not taken
// at a single instant; under concurrent writes they may not reconcile, which
// is fine for a display-only aggregate.
func (s *StatsService) Snapshot(ctx context.Context) (StatsSnapshot, error) {
	letters := s.Store.Letters()

	incoming, err := letters.CountByDirection(ctx, domain.DirectionIncoming)
	if err != nil {
		return StatsSnapshot{}, err
	}
	outgoing, err := letters.CountByDirection(ctx, domain.DirectionOutgoing)
	if err != nil {
		return StatsSnapshot{}, err
	}
	pending, err := letters.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		return StatsSnapshot{}, err
	}
	processed, err := letters.CountByStatus(ctx, domain.StatusProcessed)
	if err != nil {
		return StatsSnapshot{}, err
	}

	return StatsSnapshot{
		Incoming:  incoming,
		Outgoing:  outgoing,
		Pending:   pending,
		Processed: processed,
	}, nil
}
