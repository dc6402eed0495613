package domain_test

import (
	"testing"

	"symptrack/internal/modules/journal/domain"
)

func TestLocate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		track    domain.Track
		day      int
		label    string
		started  bool
		finished bool
	}{
		{domain.TrackWithdrawal, 0, "", false, false},
		{domain.TrackWithdrawal, 2, "Days 1-3", true, false},
		{domain.TrackWithdrawal, 14, "Days 8-14", true, false},
		{domain.TrackWithdrawal, 40, "Weeks 3-4", true, true},
		{domain.TrackSurgery, 10, "Weeks 2-3", true, false},
		{domain.TrackSurgery, 60, "Months 2-3", true, false},
		{domain.TrackAllergy, 5, "Days 4-10", true, false},
	}
	for _, tc := range cases {
		got := domain.Locate(tc.track, tc.day)
		if got.Phase.Label != tc.label || got.Started != tc.started || got.Finished != tc.finished {
			t.Fatalf("Locate(%s, %d) = %+v", tc.track, tc.day, got)
		}
	}
}

func TestTimelineCoversThreeTracks(t *testing.T) {
	t.Parallel()
	statuses := domain.Timeline(10, 3)
	if len(statuses) != 3 {
		t.Fatalf("expected three tracks, got %d", len(statuses))
	}
	if statuses[1].Track != domain.TrackSurgery || statuses[1].Day != 10 {
		t.Fatalf("unexpected surgery status %+v", statuses[1])
	}
	if len(domain.Phases(domain.TrackSurgery)) != 4 {
		t.Fatalf("surgery track should have four phases")
	}
}

func TestWithdrawalDay(t *testing.T) {
	t.Parallel()
	cases := []struct {
		a, b domain.Suspension
		want int
	}{
		{"no", "no", 0},
		{"today", "no", 1},
		{"1_day_ago", "today", 2},
		{"2_3_days_ago", "1_day_ago", 4},
		{"no", "more_3_days_ago", 6},
	}
	for _, tc := range cases {
		record := domain.Record{DrugASuspended: tc.a, DrugBSuspended: tc.b}
		if got := record.WithdrawalDay(); got != tc.want {
			t.Fatalf("WithdrawalDay(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
