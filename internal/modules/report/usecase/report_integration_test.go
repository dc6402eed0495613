package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	journalout "symptrack/internal/modules/journal/adapter/out"
	journaldto "symptrack/internal/modules/journal/dto"
	journalservice "symptrack/internal/modules/journal/service"
	journalusecase "symptrack/internal/modules/journal/usecase"
	reportout "symptrack/internal/modules/report/adapter/out"
	"symptrack/internal/modules/report/domain"
	"symptrack/internal/modules/report/dto"
	"symptrack/internal/modules/report/service"
	"symptrack/internal/modules/report/usecase"
	"symptrack/internal/platform/clock"
	apperrors "symptrack/internal/platform/errors"
	"symptrack/internal/platform/tx"
)

func newStack(t *testing.T) (string, func(journaldto.RecordInput), func() (dto.ExportOutput, error)) {
	t.Helper()
	dir := t.TempDir()
	now := clock.Fixed(time.Date(2024, 3, 9, 14, 5, 30, 0, time.UTC))
	journal := journalusecase.NewInteractor(journalservice.NewJournalService(now, journalout.NewCSVRecordStore(filepath.Join(dir, "symptoms.csv")), nil, nil))
	reports := filepath.Join(dir, "reports")
	uc := usecase.NewInteractor(service.NewReportService(
		reportout.NewJournalEntryAdapter(journal),
		reportout.NewGoChartRenderer(),
		reportout.NewPNGWriter(),
		reportout.NewFPDFDocumentWriter(nil),
		reportout.NewMarkdownNoteWriter(),
		reportout.NewPDFInspector(),
		nil,
		tx.FileManager{},
		now,
		service.Settings{ReportsDir: reports, Labels: domain.Labels{DrugA: "Respibien", DrugB: "Utabon"}, Markdown: true},
		nil,
	))
	logEntry := func(input journaldto.RecordInput) {
		t.Helper()
		if _, err := journal.Log(context.Background(), journaldto.LogInput{Record: input, Confirm: true}); err != nil {
			t.Fatalf("log entry: %v", err)
		}
	}
	export := func() (dto.ExportOutput, error) {
		return uc.Export(context.Background(), dto.ExportInput{})
	}
	return reports, logEntry, export
}

func TestExportEmptyStoreIsRejected(t *testing.T) {
	t.Parallel()
	reports, _, export := newStack(t)
	_, err := export()
	if !errors.Is(err, apperrors.ErrNoRecords) {
		t.Fatalf("expected no records, got %v", err)
	}
	if !strings.Contains(apperrors.UserMessage(err), "no data") {
		t.Fatalf("unexpected user message %q", apperrors.UserMessage(err))
	}
	if _, err := os.Stat(reports); !os.IsNotExist(err) {
		t.Fatalf("no files should be produced")
	}
}

func TestExportAfterLogging(t *testing.T) {
	t.Parallel()
	reports, logEntry, export := newStack(t)
	logEntry(journaldto.RecordInput{Date: "05-03-2024", Congestion: "5", Itch: "3", DrugASuspended: "today"})
	logEntry(journaldto.RecordInput{Date: "01-03-2024", Congestion: "5", Itch: "3", FacialPain: "moderate", DrugASuspended: "2_3_days_ago", DaysPostOp: "10"})

	out, err := export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.Entries != 2 || out.Stamp != "20240309_140530" {
		t.Fatalf("unexpected export %+v", out)
	}
	files, err := os.ReadDir(reports)
	if err != nil {
		t.Fatalf("read reports: %v", err)
	}
	names := map[string]bool{}
	for _, file := range files {
		names[file.Name()] = true
	}
	for _, want := range []string{"chart_20240309_140530.png", "history_20240309_140530.pdf", "history_20240309_140530.md"} {
		if !names[want] {
			t.Fatalf("missing %s in %v", want, names)
		}
	}

	note, err := os.ReadFile(out.NotePath)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	text := string(note)
	if strings.Index(text, "## 01-03-2024") > strings.Index(text, "## 05-03-2024") {
		t.Fatalf("entries should be listed in date order")
	}
	if !strings.Contains(text, "Mean congestion: 5.0") {
		t.Fatalf("expected mean congestion 5.0 in:\n%s", text)
	}
}
