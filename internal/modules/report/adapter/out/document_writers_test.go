package out_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	reportout "symptrack/internal/modules/report/adapter/out"
	"symptrack/internal/modules/report/domain"
	apperrors "symptrack/internal/platform/errors"
	"symptrack/internal/platform/markdown"
)

var generatedAt = time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

func writeChart(t *testing.T, dir string) string {
	t.Helper()
	img, err := reportout.NewGoChartRenderer().Render(context.Background(), domain.BuildFigure(entries(), domain.Labels{}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	path := filepath.Join(dir, "chart_20240309_140500.png")
	if err := reportout.NewPNGWriter().WritePNG(context.Background(), path, img); err != nil {
		t.Fatalf("write png: %v", err)
	}
	return path
}

func TestPDFWriterOutputIsReadable(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	chartPath := writeChart(t, dir)
	pdfPath := filepath.Join(dir, "history_20240309_140500.pdf")

	doc := domain.ComposeReport(entries(), generatedAt, domain.Labels{DrugA: "Respibien", DrugB: "Utabon"})
	if err := reportout.NewFPDFDocumentWriter(nil).Write(context.Background(), pdfPath, doc, chartPath); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	content, err := os.ReadFile(pdfPath)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !strings.HasPrefix(string(content), "%PDF-") {
		t.Fatalf("output is not a pdf")
	}

	inspection, err := reportout.NewPDFInspector().Inspect(context.Background(), pdfPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if inspection.Pages == 0 {
		t.Fatalf("expected at least one page")
	}
	for _, want := range []string{"Symptom diary\n", "Post-operative recovery tracking"} {
		if !strings.Contains(inspection.FirstPage, want) {
			t.Fatalf("first page text lacks %q:\n%s", want, inspection.FirstPage)
		}
	}
}

func TestPDFWriterWarnsOnTextOutsideCP1252(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	chartPath := writeChart(t, dir)
	var logs bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &logs, Level: hclog.Warn})

	notes := []domain.Entry{{Date: generatedAt, Congestion: 3, Notes: "congestión leve 😷 中文"}}
	doc := domain.ComposeReport(notes, generatedAt, domain.Labels{DrugA: "Respibien", DrugB: "Utabon"})
	if err := reportout.NewFPDFDocumentWriter(logger).Write(context.Background(), filepath.Join(dir, "history.pdf"), doc, chartPath); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if !strings.Contains(logs.String(), "[WARN]") || !strings.Contains(logs.String(), "characters=3") {
		t.Fatalf("expected a warning for 3 dropped characters, got %q", logs.String())
	}

	logs.Reset()
	plain := domain.ComposeReport(entries(), generatedAt, domain.Labels{})
	if err := reportout.NewFPDFDocumentWriter(logger).Write(context.Background(), filepath.Join(dir, "plain.pdf"), plain, chartPath); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if logs.Len() != 0 {
		t.Fatalf("latin text should not warn, got %q", logs.String())
	}
}

func TestPDFWriterFailsOnMissingChart(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "history.pdf")
	doc := domain.ComposeReport(entries(), generatedAt, domain.Labels{})
	if err := reportout.NewFPDFDocumentWriter(nil).Write(context.Background(), pdfPath, doc, filepath.Join(dir, "missing.png")); err == nil {
		t.Fatalf("expected missing chart error")
	}
	if _, err := os.Stat(pdfPath); !os.IsNotExist(err) {
		t.Fatalf("no document should be written when layout fails")
	}
}

func TestInspectMissingFile(t *testing.T) {
	t.Parallel()
	_, err := reportout.NewPDFInspector().Inspect(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
	if !errors.Is(err, apperrors.ErrIO) {
		t.Fatalf("expected io error, got %v", err)
	}
}

func TestMarkdownNote(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	notePath := filepath.Join(dir, "history_20240309_140500.md")
	chartPath := filepath.Join(dir, "chart_20240309_140500.png")
	doc := domain.ComposeReport(entries(), generatedAt, domain.Labels{})

	if err := reportout.NewMarkdownNoteWriter().Write(context.Background(), notePath, doc, chartPath); err != nil {
		t.Fatalf("write note: %v", err)
	}
	content, err := os.ReadFile(notePath)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	meta, body, err := markdown.ParseFrontmatter(string(content))
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if meta["entries"] != 2 || meta["chart"] != "chart_20240309_140500.png" || meta["mean_itch"] != 2.5 {
		t.Fatalf("unexpected front matter %#v", meta)
	}
	for _, want := range []string{"## 01-03-2024", "## 05-03-2024", "Notes: better", "![Symptom evolution charts](chart_20240309_140500.png)"} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %q in body:\n%s", want, body)
		}
	}
}
