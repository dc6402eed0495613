package out

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"rsc.io/pdf"

	reportout "symptrack/internal/modules/report/port/out"
	apperrors "symptrack/internal/platform/errors"
)

type PDFInspector struct{}

func NewPDFInspector() reportout.DocumentInspector {
	return &PDFInspector{}
}

func (i *PDFInspector) Inspect(_ context.Context, path string) (inspection reportout.Inspection, err error) {
	if _, err := os.Stat(path); err != nil {
		return reportout.Inspection{}, apperrors.WrapIO("open", path, err)
	}
	// rsc.io/pdf panics on malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read pdf %s: %v", path, r)
		}
	}()
	doc, err := pdf.Open(path)
	if err != nil {
		return reportout.Inspection{}, fmt.Errorf("open pdf: %w", err)
	}
	total := doc.NumPage()
	if total == 0 {
		return reportout.Inspection{}, nil
	}
	page := doc.Page(1)
	if page.V.IsNull() {
		return reportout.Inspection{Pages: total}, fmt.Errorf("pdf page 1 is null")
	}
	return reportout.Inspection{Pages: total, FirstPage: pageText(page.Content().Text)}, nil
}

// pageText rebuilds lines from the per-glyph runs rsc.io/pdf yields. A
// baseline change starts a new line; a jump along the same line reads as a
// space.
func pageText(runs []pdf.Text) string {
	var sb strings.Builder
	for i, run := range runs {
		if i > 0 {
			prev := runs[i-1]
			switch {
			case math.Abs(run.Y-prev.Y) > prev.FontSize/2:
				sb.WriteByte('\n')
			case run.X < prev.X || run.X-(prev.X+prev.W) > prev.FontSize:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(run.S)
	}
	lines := make([]string, 0)
	for _, line := range strings.Split(sb.String(), "\n") {
		if words := strings.Fields(line); len(words) > 0 {
			lines = append(lines, strings.Join(words, " "))
		}
	}
	return strings.Join(lines, "\n")
}
