package usecase

import (
	"context"

	"symptrack/internal/modules/report/dto"
	reportin "symptrack/internal/modules/report/port/in"
	"symptrack/internal/modules/report/service"
)

type Interactor struct {
	svc *service.ReportService
}

func NewInteractor(svc *service.ReportService) reportin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) RenderChart(ctx context.Context, input dto.RenderChartInput) (dto.ChartOutput, error) {
	result, err := i.svc.RenderChart(ctx, input.OutPath, input.Open)
	if err != nil {
		return dto.ChartOutput{}, err
	}
	return dto.ChartOutput{Path: result.Path, Entries: result.Entries, Placeholder: result.Placeholder}, nil
}

func (i *Interactor) Export(ctx context.Context, _ dto.ExportInput) (dto.ExportOutput, error) {
	result, err := i.svc.Export(ctx)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{
		Stamp:     result.Stamp,
		ChartPath: result.ChartPath,
		PDFPath:   result.PDFPath,
		NotePath:  result.NotePath,
		Entries:   result.Entries,
	}, nil
}

func (i *Interactor) Inspect(ctx context.Context, input dto.InspectInput) (dto.InspectOutput, error) {
	inspection, err := i.svc.Inspect(ctx, input.Path)
	if err != nil {
		return dto.InspectOutput{}, err
	}
	return dto.InspectOutput{Path: input.Path, Pages: inspection.Pages, FirstPage: inspection.FirstPage}, nil
}
