package in

import (
	"context"

	"symptrack/internal/modules/journal/dto"
	journalin "symptrack/internal/modules/journal/port/in"
)

type CLIHandler struct {
	usecase journalin.Usecase
}

func NewCLIHandler(usecase journalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Initialize(ctx context.Context) error {
	return h.usecase.Initialize(ctx)
}

func (h CLIHandler) Log(ctx context.Context, record dto.RecordInput, confirm bool) (dto.LogOutput, error) {
	return h.usecase.Log(ctx, dto.LogInput{Record: record, Confirm: confirm})
}

func (h CLIHandler) List(ctx context.Context) ([]dto.RecordOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) (int, error) {
	return h.usecase.Reindex(ctx, dto.ReindexInput{})
}

func (h CLIHandler) WeeklyStats(ctx context.Context) ([]dto.WeeklyStatOutput, error) {
	return h.usecase.WeeklyStats(ctx)
}

func (h CLIHandler) Timeline(ctx context.Context, daysPostOp, daysSinceSuspension int) ([]dto.TrackOutput, error) {
	return h.usecase.Timeline(ctx, dto.TimelineInput{DaysPostOp: daysPostOp, DaysSinceSuspension: daysSinceSuspension})
}

func (h CLIHandler) Fields() []dto.FieldOutput {
	return h.usecase.Fields()
}
