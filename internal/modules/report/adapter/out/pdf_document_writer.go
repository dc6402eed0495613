package out

import (
	"context"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	hclog "github.com/hashicorp/go-hclog"
	"golang.org/x/text/encoding/charmap"

	"symptrack/internal/modules/report/domain"
	reportout "symptrack/internal/modules/report/port/out"
	apperrors "symptrack/internal/platform/errors"
	"symptrack/internal/platform/tx"
)

const (
	pageMargin = 10.0
	chartWidth = 190.0
)

// FPDFDocumentWriter uses the core Helvetica font, which only covers
// Windows-1252. Other characters print as dots and are logged at WARN.
type FPDFDocumentWriter struct {
	logger hclog.Logger
}

func NewFPDFDocumentWriter(logger hclog.Logger) reportout.DocumentWriter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &FPDFDocumentWriter{logger: logger}
}

// Write lays the document out on A4 pages and embeds the chart image at
// full text width, starting a new page when it does not fit.
func (w *FPDFDocumentWriter) Write(ctx context.Context, path string, document domain.Document, chartPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(document.Title, true)
	cp1252 := pdf.UnicodeTranslatorFromDescriptor("")
	dropped := 0
	tr := func(text string) string {
		dropped += outsideCP1252(text)
		return cp1252(text)
	}
	defer func() {
		if dropped > 0 {
			w.logger.Warn("pdf text outside windows-1252 replaced with dots", "path", path, "characters", dropped)
		}
	}()

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(document.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	for _, subtitle := range document.Subtitles {
		pdf.CellFormat(0, 7, tr(subtitle), "", 1, "C", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(document.GeneratedLine()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(document.CountLine()), "", 1, "L", false, 0, "")
	if line := document.SummaryLine(); line != "" {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "", 8)
	for _, block := range document.Blocks {
		for _, line := range block.Lines {
			pdf.MultiCell(0, 4, tr(line.Text), "", "L", false)
		}
		pdf.Ln(2)
	}

	if chartPath != "" {
		info := pdf.RegisterImageOptions(chartPath, fpdf.ImageOptions{ImageType: "PNG"})
		if info != nil && info.Width() > 0 {
			height := chartWidth * info.Height() / info.Width()
			_, pageHeight := pdf.GetPageSize()
			if pdf.GetY()+20+height > pageHeight-pageMargin {
				pdf.AddPage()
			}
			pdf.Ln(5)
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 8, tr(document.ChartTitle), "", 1, "C", false, 0, "")
			pdf.Ln(3)
			pdf.ImageOptions(chartPath, pageMargin, pdf.GetY(), chartWidth, 0, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		}
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("layout report: %w", err)
	}
	return tx.WriteFile(ctx, path, func(out io.Writer) error {
		return apperrors.WrapIO("write report", path, pdf.Output(out))
	})
}

func outsideCP1252(text string) int {
	n := 0
	for _, r := range text {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			n++
		}
	}
	return n
}
