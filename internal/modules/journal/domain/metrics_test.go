package domain_test

import (
	"testing"

	"symptrack/internal/modules/journal/domain"
)

func TestSuspensionDaysIsTotal(t *testing.T) {
	t.Parallel()
	cases := map[domain.Suspension]float64{
		"no":              0,
		"today":           0,
		"1_day_ago":       1,
		"2_3_days_ago":    2.5,
		"more_3_days_ago": 5,
		"":                0,
		"last week":       0,
	}
	for value, want := range cases {
		if got := domain.SuspensionDays(value); got != want {
			t.Fatalf("SuspensionDays(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestPainScoreIsTotal(t *testing.T) {
	t.Parallel()
	cases := map[domain.Severity]float64{
		"none":     0,
		"mild":     2,
		"moderate": 5,
		"severe":   8,
		"SEVERE":   0,
		"":         0,
	}
	for value, want := range cases {
		if got := domain.PainScore(value); got != want {
			t.Fatalf("PainScore(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestSuspendedSeparatesNoFromToday(t *testing.T) {
	t.Parallel()
	if domain.Suspended("no") {
		t.Fatalf("no should not count as suspended")
	}
	if !domain.Suspended("today") {
		t.Fatalf("today should count as suspended")
	}
	if domain.Suspended("whenever") {
		t.Fatalf("unknown text should not count as suspended")
	}
	if domain.SuspensionDays("no") != domain.SuspensionDays("today") {
		t.Fatalf("plotted values for no and today must stay equal")
	}
}

func TestEveryDeclaredOptionHasAMetric(t *testing.T) {
	t.Parallel()
	for _, option := range domain.SuspensionOptions {
		if option != "no" && !domain.Suspended(domain.Suspension(option)) {
			t.Fatalf("suspension option %q is not mapped", option)
		}
	}
	for i, option := range domain.SeverityOptions {
		if i > 0 && domain.PainScore(domain.Severity(option)) == 0 {
			t.Fatalf("severity option %q is not mapped", option)
		}
	}
}
