package out

import (
	"context"

	"symptrack/internal/modules/journal/domain"
)

// RecordStore is the append-only source of truth. LoadAll always reads the
// persisted state and returns records in append order.
type RecordStore interface {
	Initialize(ctx context.Context) error
	Append(ctx context.Context, record domain.Record) (int, error)
	LoadAll(ctx context.Context) ([]domain.Record, error)
}

type WeeklyAverage struct {
	Week           string
	Entries        int
	MeanCongestion float64
	MeanItch       float64
	MeanSneezing   float64
	MeanPain       float64
}

// RecordProjector maintains a derived query index that can be rebuilt from
// the store at any time.
type RecordProjector interface {
	Reset(ctx context.Context) error
	Upsert(ctx context.Context, seq int, record domain.Record) error
	WeeklyAverages(ctx context.Context) ([]WeeklyAverage, error)
}
