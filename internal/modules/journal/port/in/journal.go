package in

import (
	"context"

	"symptrack/internal/modules/journal/dto"
)

type Usecase interface {
	Initialize(ctx context.Context) error
	Log(ctx context.Context, input dto.LogInput) (dto.LogOutput, error)
	List(ctx context.Context) ([]dto.RecordOutput, error)
	Reindex(ctx context.Context, input dto.ReindexInput) (int, error)
	WeeklyStats(ctx context.Context) ([]dto.WeeklyStatOutput, error)
	Timeline(ctx context.Context, input dto.TimelineInput) ([]dto.TrackOutput, error)
	Fields() []dto.FieldOutput
}
