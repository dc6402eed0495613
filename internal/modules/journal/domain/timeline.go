package domain

type Track string

const (
	TrackWithdrawal Track = "decongestant_withdrawal"
	TrackSurgery    Track = "turbinate_surgery"
	TrackAllergy    Track = "drug_allergy"
)

type Phase struct {
	FromDay     int
	ToDay       int
	Label       string
	Description string
}

// TrackStatus is where a recovery track stands on a given day.
type TrackStatus struct {
	Track    Track
	Day      int
	Phase    Phase
	Started  bool
	Finished bool
}

var recoveryPhases = map[Track][]Phase{
	TrackWithdrawal: {
		{1, 3, "Days 1-3", "congestion may temporarily get worse (rebound effect)"},
		{4, 7, "Days 4-7", "nasal breathing gradually improves"},
		{8, 14, "Days 8-14", "the nasal lining progressively normalizes"},
		{15, 28, "Weeks 3-4", "nasal function fully recovers"},
	},
	TrackSurgery: {
		{1, 7, "Days 1-7", "peak swelling, breathing is limited"},
		{8, 21, "Weeks 2-3", "swelling goes down, gradual improvement"},
		{22, 42, "Weeks 4-6", "healing completes, breathing improves"},
		{43, 90, "Months 2-3", "final result stabilizes"},
	},
	TrackAllergy: {
		{1, 3, "Days 1-3", "the drug is cleared from the body"},
		{4, 10, "Days 4-10", "allergic symptoms decrease"},
		{11, 28, "Weeks 2-4", "the allergic reaction fully resolves"},
	},
}

// Phases returns the fixed phase table of a track.
func Phases(track Track) []Phase {
	return append([]Phase(nil), recoveryPhases[track]...)
}

// Locate places day on the track. Day 0 or below means the track has not
// started; days past the last phase mean it is finished.
func Locate(track Track, day int) TrackStatus {
	status := TrackStatus{Track: track, Day: day}
	phases := recoveryPhases[track]
	if day <= 0 || len(phases) == 0 {
		return status
	}
	status.Started = true
	for _, phase := range phases {
		if day >= phase.FromDay && day <= phase.ToDay {
			status.Phase = phase
			return status
		}
	}
	status.Phase = phases[len(phases)-1]
	status.Finished = true
	return status
}

// Timeline reports the three recovery tracks. Withdrawal and allergy both
// count from the day the decongestant was stopped.
func Timeline(daysPostOp, daysSinceSuspension int) []TrackStatus {
	return []TrackStatus{
		Locate(TrackWithdrawal, daysSinceSuspension),
		Locate(TrackSurgery, daysPostOp),
		Locate(TrackAllergy, daysSinceSuspension),
	}
}

// WithdrawalDay converts the most advanced suspension bucket of the record
// into a day number on the withdrawal track, or 0 when neither drug is
// suspended.
func (r Record) WithdrawalDay() int {
	day := 0
	for _, value := range []Suspension{r.DrugASuspended, r.DrugBSuspended} {
		if !Suspended(value) {
			continue
		}
		if candidate := int(SuspensionDays(value)+0.5) + 1; candidate > day {
			day = candidate
		}
	}
	return day
}
