package dto

import "time"

// RecordInput holds raw text keyed like the persisted columns.
type RecordInput struct {
	Date                 string
	Congestion           string
	Itch                 string
	FacialPain           string
	NasalDischarge       string
	BreathingDifficulty  string
	Cough                string
	Sneezing             string
	SkinRash             string
	Hives                string
	Swelling             string
	DrugASuspended       string
	DrugBSuspended       string
	OtherMedications     string
	DaysPostOp           string
	BreathingImprovement string
	Notes                string
}

type LogInput struct {
	Record  RecordInput
	Confirm bool
}

type AdvisoryOutput struct {
	Kind    string
	Message string
}

type RecordOutput struct {
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

type LogOutput struct {
	Seq        int
	Record     RecordOutput
	Advisories []AdvisoryOutput
}

type ReindexInput struct{}

type WeeklyStatOutput struct {
	Week           string
	Entries        int
	MeanCongestion float64
	MeanItch       float64
	MeanSneezing   float64
	MeanPain       float64
}

// TimelineInput selects the days to locate. Negative values are taken from
// the most recent entry.
type TimelineInput struct {
	DaysPostOp          int
	DaysSinceSuspension int
}

type PhaseOutput struct {
	Label       string
	Description string
}

type TrackOutput struct {
	Track    string
	Day      int
	Started  bool
	Finished bool
	Current  PhaseOutput
	Phases   []PhaseOutput
}

type FieldOutput struct {
	Name    string
	Kind    string
	Options []string
}

// Set assigns a raw value by column name. Unknown names are ignored.
func (r *RecordInput) Set(name, value string) {
	switch name {
	case "date":
		r.Date = value
	case "congestion":
		r.Congestion = value
	case "itch":
		r.Itch = value
	case "facial_pain":
		r.FacialPain = value
	case "nasal_discharge":
		r.NasalDischarge = value
	case "breathing_difficulty":
		r.BreathingDifficulty = value
	case "cough":
		r.Cough = value
	case "sneezing":
		r.Sneezing = value
	case "skin_rash":
		r.SkinRash = value
	case "hives":
		r.Hives = value
	case "swelling":
		r.Swelling = value
	case "drugA_suspended":
		r.DrugASuspended = value
	case "drugB_suspended":
		r.DrugBSuspended = value
	case "other_medications":
		r.OtherMedications = value
	case "days_post_op":
		r.DaysPostOp = value
	case "breathing_improvement":
		r.BreathingImprovement = value
	case "notes":
		r.Notes = value
	}
}
