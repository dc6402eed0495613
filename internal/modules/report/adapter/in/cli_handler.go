package in

import (
	"context"

	"symptrack/internal/modules/report/dto"
	reportin "symptrack/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) RenderChart(ctx context.Context, outPath string, open bool) (dto.ChartOutput, error) {
	return h.usecase.RenderChart(ctx, dto.RenderChartInput{OutPath: outPath, Open: open})
}

func (h CLIHandler) Export(ctx context.Context) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{})
}

func (h CLIHandler) Inspect(ctx context.Context, path string) (dto.InspectOutput, error) {
	return h.usecase.Inspect(ctx, dto.InspectInput{Path: path})
}
