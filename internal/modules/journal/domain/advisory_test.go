package domain_test

import (
	"testing"

	"symptrack/internal/modules/journal/domain"
)

func TestAdvisories(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		record   domain.Record
		still    bool
		redFlags int
	}{
		{
			name:   "still taking both",
			record: domain.Record{DrugASuspended: "no", DrugBSuspended: "no"},
			still:  true,
		},
		{
			name:   "quiet entry",
			record: domain.Record{DrugASuspended: "today", DrugBSuspended: "no", Swelling: "none"},
		},
		{
			name: "several red flags",
			record: domain.Record{
				DrugASuspended:      "today",
				BreathingDifficulty: "severe",
				Swelling:            "lips_eyes",
				Hives:               "generalized",
			},
			redFlags: 3,
		},
		{
			name: "worsening after long suspension",
			record: domain.Record{
				DrugASuspended:       "more_3_days_ago",
				DrugBSuspended:       "no",
				BreathingImprovement: "worsening",
			},
			redFlags: 1,
		},
		{
			name: "worsening right after suspension",
			record: domain.Record{
				DrugASuspended:       "1_day_ago",
				BreathingImprovement: "worsening",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			still, flags := false, 0
			for _, advisory := range tc.record.Advisories() {
				switch advisory.Kind {
				case domain.AdvisoryStillTakingBoth:
					still = true
				case domain.AdvisoryRedFlag:
					flags++
				}
				if advisory.Message == "" {
					t.Fatalf("advisory without message")
				}
			}
			if still != tc.still || flags != tc.redFlags {
				t.Fatalf("got still=%v flags=%d, want still=%v flags=%d", still, flags, tc.still, tc.redFlags)
			}
		})
	}
}
