package out_test

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"

	reportout "symptrack/internal/modules/report/adapter/out"
	"symptrack/internal/modules/report/domain"
)

func entries() []domain.Entry {
	return []domain.Entry{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Congestion: 5, Itch: 3, DrugADays: 2.5, PainScore: 5, DaysPostOp: 10, FacialPain: "moderate"},
		{Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Congestion: 7, Itch: 2, DrugADays: 5, PainScore: 2, DaysPostOp: 14, Notes: "better"},
	}
}

func TestRenderFourPanels(t *testing.T) {
	t.Parallel()
	renderer := reportout.NewGoChartRenderer()
	img, err := renderer.Render(context.Background(), domain.BuildFigure(entries(), domain.Labels{}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 2*reportout.PanelWidth, 2*reportout.PanelHeight) {
		t.Fatalf("unexpected bounds %v", got)
	}
}

func TestRenderSingleEntryWithoutPostOp(t *testing.T) {
	t.Parallel()
	single := []domain.Entry{{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Congestion: 4}}
	figure := domain.BuildFigure(single, domain.Labels{})
	img, err := reportout.NewGoChartRenderer().Render(context.Background(), figure)
	if err != nil {
		t.Fatalf("single point should render: %v", err)
	}
	if img.Bounds().Dx() != 2*reportout.PanelWidth {
		t.Fatalf("unexpected width %d", img.Bounds().Dx())
	}
}

func TestRenderPlaceholder(t *testing.T) {
	t.Parallel()
	img, err := reportout.NewGoChartRenderer().Render(context.Background(), domain.BuildFigure(nil, domain.Labels{}))
	if err != nil {
		t.Fatalf("render placeholder: %v", err)
	}
	bounds := img.Bounds()
	white := color.RGBAModel.Convert(color.White)
	if color.RGBAModel.Convert(img.At(bounds.Min.X, bounds.Min.Y)) != white {
		t.Fatalf("placeholder background should be white")
	}
	inked := false
	for x := bounds.Dx()/2 - 80; x < bounds.Dx()/2+80 && !inked; x++ {
		for y := bounds.Dy()/2 - 10; y < bounds.Dy()/2+10; y++ {
			if color.RGBAModel.Convert(img.At(x, y)) != white {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Fatalf("placeholder message should be drawn near the center")
	}
}
