package in

import (
	"context"

	"symptrack/internal/modules/report/dto"
)

type Usecase interface {
	RenderChart(ctx context.Context, input dto.RenderChartInput) (dto.ChartOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	Inspect(ctx context.Context, input dto.InspectInput) (dto.InspectOutput, error)
}
