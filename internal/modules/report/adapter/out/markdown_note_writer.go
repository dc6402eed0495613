package out

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"symptrack/internal/modules/report/domain"
	reportout "symptrack/internal/modules/report/port/out"
	"symptrack/internal/platform/markdown"
	"symptrack/internal/platform/tx"
)

type MarkdownNoteWriter struct{}

func NewMarkdownNoteWriter() reportout.NoteWriter {
	return &MarkdownNoteWriter{}
}

// Write renders the history as a Markdown note with YAML front matter. The
// chart is linked relative to the note.
func (w *MarkdownNoteWriter) Write(ctx context.Context, path string, document domain.Document, chartPath string) error {
	fields := []markdown.Field{
		{Key: "title", Value: document.Title},
		{Key: "generated", Value: document.GeneratedAt.Format(domain.GeneratedLayout)},
		{Key: "entries", Value: document.Count},
	}
	if document.Summary.Defined {
		fields = append(fields,
			markdown.Field{Key: "mean_congestion", Value: document.Summary.MeanCongestion},
			markdown.Field{Key: "mean_itch", Value: document.Summary.MeanItch},
		)
	}

	chartLink := ""
	if chartPath != "" {
		chartLink = filepath.Base(chartPath)
		if rel, err := filepath.Rel(filepath.Dir(path), chartPath); err == nil {
			chartLink = filepath.ToSlash(rel)
		}
		fields = append(fields, markdown.Field{Key: "chart", Value: chartLink})
	}

	var body strings.Builder
	body.WriteString("# " + document.Title + "\n\n")
	for _, subtitle := range document.Subtitles {
		body.WriteString("_" + subtitle + "_  \n")
	}
	body.WriteString("\n" + document.GeneratedLine() + "  \n")
	body.WriteString(document.CountLine() + "  \n")
	if line := document.SummaryLine(); line != "" {
		body.WriteString(line + "  \n")
	}
	for _, block := range document.Blocks {
		body.WriteString("\n## " + block.Date.Format("02-01-2006") + "\n\n")
		for _, line := range block.Lines {
			body.WriteString("- " + strings.ReplaceAll(line.Text, "\n", " ") + "\n")
		}
	}
	if chartLink != "" {
		body.WriteString("\n## " + document.ChartTitle + "\n\n![" + document.ChartTitle + "](" + chartLink + ")\n")
	}

	content, err := markdown.RenderFrontmatter(fields, body.String())
	if err != nil {
		return err
	}
	return tx.WriteFile(ctx, path, func(out io.Writer) error {
		_, err := io.WriteString(out, content)
		return err
	})
}
