package out

import (
	"context"
	"image"

	"symptrack/internal/modules/report/domain"
)

type EntrySource interface {
	ListEntries(ctx context.Context) ([]domain.Entry, error)
}

// ChartRenderer draws a figure. The same image backs the on-screen chart
// and the exported report.
type ChartRenderer interface {
	Render(ctx context.Context, figure domain.Figure) (image.Image, error)
}

type ImageWriter interface {
	WritePNG(ctx context.Context, path string, img image.Image) error
}

type DocumentWriter interface {
	Write(ctx context.Context, path string, document domain.Document, chartPath string) error
}

type NoteWriter interface {
	Write(ctx context.Context, path string, document domain.Document, chartPath string) error
}

type Inspection struct {
	Pages     int
	FirstPage string
}

type DocumentInspector interface {
	Inspect(ctx context.Context, path string) (Inspection, error)
}

type Launcher interface {
	Open(ctx context.Context, target string) error
}
