package domain

var suspensionDays = map[Suspension]float64{
	SuspensionNo:        0,
	SuspensionToday:     0,
	Suspension1DayAgo:   1,
	Suspension2To3Days:  2.5,
	SuspensionOver3Days: 5,
}

var painScores = map[Severity]float64{
	SeverityNone:     0,
	SeverityMild:     2,
	SeverityModerate: 5,
	SeveritySevere:   8,
}

// SuspensionDays maps a suspension bucket to a representative day count for
// plotting. Ranged buckets use their midpoint. Unknown text maps to 0.
func SuspensionDays(value Suspension) float64 {
	return suspensionDays[value]
}

// PainScore maps a severity to the 0-10 pain scale. Unknown text maps to 0.
func PainScore(value Severity) float64 {
	return painScores[value]
}

// Suspended reports whether the drug has been stopped at all. It separates
// "still taking" from "stopped today", which both plot as 0.
func Suspended(value Suspension) bool {
	_, known := suspensionDays[value]
	return known && value != SuspensionNo
}
