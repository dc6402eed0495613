package domain

import (
	"sort"
	"time"
)

// Entry is a diary record as seen by reporting, with plotted metrics
// already derived.
type Entry struct {
	Date                 time.Time
	Congestion           int
	Itch                 int
	FacialPain           string
	NasalDischarge       string
	BreathingDifficulty  string
	Cough                string
	Sneezing             int
	SkinRash             string
	Hives                string
	Swelling             string
	DrugASuspended       string
	DrugBSuspended       string
	OtherMedications     string
	DaysPostOp           int
	BreathingImprovement string
	Notes                string

	DrugADays    float64
	DrugBDays    float64
	DrugAStopped bool
	DrugBStopped bool
	PainScore    float64
}

// Labels names the two tracked decongestants.
type Labels struct {
	DrugA string
	DrugB string
}

func sortedCopy(entries []Entry) []Entry {
	out := append([]Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func (l Labels) withDefaults() Labels {
	if l.DrugA == "" {
		l.DrugA = "Drug A"
	}
	if l.DrugB == "" {
		l.DrugB = "Drug B"
	}
	return l
}
