package domain_test

import (
	"testing"
	"time"

	"symptrack/internal/modules/report/domain"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("02-01-2006", value)
	if err != nil {
		t.Fatalf("parse %s: %v", value, err)
	}
	return parsed
}

func TestBuildFigureEmptyIsPlaceholder(t *testing.T) {
	t.Parallel()
	figure := domain.BuildFigure(nil, domain.Labels{})
	if !figure.Placeholder || figure.Message != domain.NoDataMessage || len(figure.Panels) != 0 {
		t.Fatalf("unexpected empty figure %+v", figure)
	}
}

func TestBuildFigureHasFourPanels(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		{Date: day(t, "05-03-2024"), Congestion: 7, DaysPostOp: 14},
		{Date: day(t, "01-03-2024"), Congestion: 5, DaysPostOp: 10, DrugASuspended: "2_3_days_ago", DrugADays: 2.5, PainScore: 5},
	}
	figure := domain.BuildFigure(entries, domain.Labels{DrugA: "Respibien", DrugB: "Utabon"})
	if figure.Placeholder || len(figure.Panels) != 4 {
		t.Fatalf("expected four panels, got %+v", figure)
	}
	titles := []string{"Nasal symptoms", "Days since suspension", "Post-op recovery", "Pain evolution"}
	for i, title := range titles {
		if figure.Panels[i].Title != title {
			t.Fatalf("panel %d: expected %q, got %q", i, title, figure.Panels[i].Title)
		}
	}
	nasal := figure.Panels[0]
	if len(nasal.Series) != 3 || nasal.YMax != 10 {
		t.Fatalf("unexpected nasal panel %+v", nasal)
	}
	if first := nasal.Series[0].Points[0]; !first.Date.Equal(day(t, "01-03-2024")) || first.Value != 5 {
		t.Fatalf("points should be date ordered, got %+v", nasal.Series[0].Points)
	}

	medication := figure.Panels[1]
	if medication.Series[0].Name != "Respibien" || medication.Series[1].Name != "Utabon" {
		t.Fatalf("series should carry drug names: %+v", medication.Series)
	}
	if got := medication.Series[0].Points[0].Value; got != 2.5 {
		t.Fatalf("2_3_days_ago should plot 2.5, got %v", got)
	}

	postOp := figure.Panels[2]
	if postOp.Placeholder || postOp.YMax < 14 {
		t.Fatalf("post-op panel should plot data, got %+v", postOp)
	}
	if figure.Panels[3].Series[0].Points[0].Value != 5 {
		t.Fatalf("pain panel should plot the derived score")
	}
}

func TestBuildFigureWithoutPostOpData(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{{Date: day(t, "01-03-2024"), Congestion: 2}}
	figure := domain.BuildFigure(entries, domain.Labels{})
	if len(figure.Panels) != 4 {
		t.Fatalf("expected four panels, got %d", len(figure.Panels))
	}
	postOp := figure.Panels[2]
	if !postOp.Placeholder || postOp.Message != domain.NoPostOpDataMessage || len(postOp.Series) != 0 {
		t.Fatalf("post-op panel should be a placeholder, got %+v", postOp)
	}
	if figure.Panels[1].Series[0].Name != "Drug A" {
		t.Fatalf("blank labels should fall back to defaults")
	}
}

func TestBuildFigureDoesNotReorderInput(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{{Date: day(t, "05-03-2024")}, {Date: day(t, "01-03-2024")}}
	_ = domain.BuildFigure(entries, domain.Labels{})
	if !entries[0].Date.Equal(day(t, "05-03-2024")) {
		t.Fatalf("caller slice must not be reordered")
	}
}
