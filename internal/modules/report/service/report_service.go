package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	hclog "github.com/hashicorp/go-hclog"

	"symptrack/internal/modules/report/domain"
	reportout "symptrack/internal/modules/report/port/out"
	"symptrack/internal/platform/clock"
	apperrors "symptrack/internal/platform/errors"
	"symptrack/internal/platform/tx"
)

const StampLayout = "20060102_150405"

type Settings struct {
	ReportsDir string
	Labels     domain.Labels
	Markdown   bool
}

type ReportService struct {
	source    reportout.EntrySource
	renderer  reportout.ChartRenderer
	images    reportout.ImageWriter
	documents reportout.DocumentWriter
	notes     reportout.NoteWriter
	inspector reportout.DocumentInspector
	launcher  reportout.Launcher
	txm       tx.Manager
	clock     clock.Clock
	settings  Settings
	logger    hclog.Logger
}

func NewReportService(
	source reportout.EntrySource,
	renderer reportout.ChartRenderer,
	images reportout.ImageWriter,
	documents reportout.DocumentWriter,
	notes reportout.NoteWriter,
	inspector reportout.DocumentInspector,
	launcher reportout.Launcher,
	txm tx.Manager,
	clock clock.Clock,
	settings Settings,
	logger hclog.Logger,
) *ReportService {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ReportService{
		source:    source,
		renderer:  renderer,
		images:    images,
		documents: documents,
		notes:     notes,
		inspector: inspector,
		launcher:  launcher,
		txm:       txm,
		clock:     clock,
		settings:  settings,
		logger:    logger.Named("report"),
	}
}

type ChartResult struct {
	Path        string
	Entries     int
	Placeholder bool
}

// RenderChart draws the current history to outPath, or to chart.png in the
// reports directory when outPath is empty. An empty history still produces
// the placeholder image.
func (s *ReportService) RenderChart(ctx context.Context, outPath string, open bool) (ChartResult, error) {
	entries, err := s.source.ListEntries(ctx)
	if err != nil {
		return ChartResult{}, err
	}
	if outPath == "" {
		outPath = filepath.Join(s.settings.ReportsDir, "chart.png")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return ChartResult{}, apperrors.WrapIO("create directory for", outPath, err)
	}
	figure := domain.BuildFigure(entries, s.settings.Labels)
	img, err := s.renderer.Render(ctx, figure)
	if err != nil {
		return ChartResult{}, err
	}
	if err := s.images.WritePNG(ctx, outPath, img); err != nil {
		return ChartResult{}, err
	}
	if open {
		if s.launcher == nil {
			return ChartResult{}, fmt.Errorf("no viewer configured")
		}
		if err := s.launcher.Open(ctx, outPath); err != nil {
			return ChartResult{}, err
		}
	}
	return ChartResult{Path: outPath, Entries: len(entries), Placeholder: figure.Placeholder}, nil
}

type ExportResult struct {
	Stamp     string
	ChartPath string
	PDFPath   string
	NotePath  string
	Entries   int
}

// Export writes the chart image and the PDF history, plus the optional
// Markdown note, under one timestamp. Files already written are removed when
// a later step fails.
func (s *ReportService) Export(ctx context.Context) (ExportResult, error) {
	entries, err := s.source.ListEntries(ctx)
	if err != nil {
		return ExportResult{}, err
	}
	if len(entries) == 0 {
		return ExportResult{}, apperrors.ErrNoRecords
	}
	now := s.clock.Now()
	stamp := now.Format(StampLayout)
	dir := s.settings.ReportsDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ExportResult{}, apperrors.WrapIO("create reports directory", dir, err)
	}

	result := ExportResult{
		Stamp:     stamp,
		ChartPath: filepath.Join(dir, "chart_"+stamp+".png"),
		PDFPath:   filepath.Join(dir, "history_"+stamp+".pdf"),
		Entries:   len(entries),
	}
	if s.settings.Markdown && s.notes != nil {
		result.NotePath = filepath.Join(dir, "history_"+stamp+".md")
	}

	err = s.txm.Within(ctx, func(ctx context.Context) error {
		img, err := s.renderer.Render(ctx, domain.BuildFigure(entries, s.settings.Labels))
		if err != nil {
			return err
		}
		if err := s.images.WritePNG(ctx, result.ChartPath, img); err != nil {
			return err
		}
		document := domain.ComposeReport(entries, now, s.settings.Labels)
		if err := s.documents.Write(ctx, result.PDFPath, document, result.ChartPath); err != nil {
			return err
		}
		if result.NotePath != "" {
			return s.notes.Write(ctx, result.NotePath, document, result.ChartPath)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("export aborted", "stamp", stamp, "error", err)
		return ExportResult{}, err
	}
	s.logger.Info("export written", "stamp", stamp, "entries", len(entries), "dir", dir)
	return result, nil
}

func (s *ReportService) Inspect(ctx context.Context, path string) (reportout.Inspection, error) {
	if path == "" {
		return reportout.Inspection{}, &apperrors.ValidationError{Field: "path", Reason: "is required"}
	}
	return s.inspector.Inspect(ctx, path)
}
