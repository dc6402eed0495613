package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "symptrack/internal/platform/errors"
)

const DateLayout = "02-01-2006"

type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

type Discharge string

const (
	DischargeNone   Discharge = "none"
	DischargeClear  Discharge = "clear"
	DischargeThick  Discharge = "thick"
	DischargeBloody Discharge = "bloody"
)

type Cough string

const (
	CoughNone       Cough = "none"
	CoughDry        Cough = "dry"
	CoughProductive Cough = "productive"
	CoughPersistent Cough = "persistent"
)

type Hives string

const (
	HivesNone        Hives = "none"
	HivesLocalized   Hives = "localized"
	HivesGeneralized Hives = "generalized"
)

type Swelling string

const (
	SwellingNone        Swelling = "none"
	SwellingFacial      Swelling = "facial"
	SwellingLipsEyes    Swelling = "lips_eyes"
	SwellingGeneralized Swelling = "generalized"
)

type Suspension string

const (
	SuspensionNo        Suspension = "no"
	SuspensionToday     Suspension = "today"
	Suspension1DayAgo   Suspension = "1_day_ago"
	Suspension2To3Days  Suspension = "2_3_days_ago"
	SuspensionOver3Days Suspension = "more_3_days_ago"
)

type Improvement string

const (
	ImprovementNoChange       Improvement = "no_change"
	ImprovementSlightlyBetter Improvement = "slightly_better"
	ImprovementMuchBetter     Improvement = "much_better"
	ImprovementWorsening      Improvement = "worsening"
)

// Record is one saved diary entry. Values are never mutated after creation.
type Record struct {
	Date                 time.Time
	Congestion           int
	Itch                 int
	FacialPain           Severity
	NasalDischarge       Discharge
	BreathingDifficulty  Severity
	Cough                Cough
	Sneezing             int
	SkinRash             Severity
	Hives                Hives
	Swelling             Swelling
	DrugASuspended       Suspension
	DrugBSuspended       Suspension
	OtherMedications     string
	DaysPostOp           int
	BreathingImprovement Improvement
	Notes                string
}

// RawFields carries the text captured by a front end at save time.
type RawFields struct {
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

func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &apperrors.ValidationError{Field: "date", Value: value, Reason: "expected DD-MM-YYYY"}
	}
	return parsed, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NewRecord validates raw form values. A blank date means today and blank
// numbers mean 0. Enum text is kept as entered.
func NewRecord(raw RawFields, today time.Time) (Record, error) {
	if strings.TrimSpace(raw.Date) == "" {
		raw.Date = FormatDate(today)
	}
	record, err := decode(raw)
	if err != nil {
		return Record{}, err
	}
	for _, scale := range []struct {
		field string
		value int
	}{
		{"congestion", record.Congestion},
		{"itch", record.Itch},
		{"sneezing", record.Sneezing},
	} {
		if scale.value > 10 {
			return Record{}, &apperrors.ValidationError{Field: scale.field, Value: strconv.Itoa(scale.value), Reason: "must be between 0 and 10"}
		}
	}
	return record, nil
}

// RecordFromValues decodes a persisted row laid out as Columns.
func RecordFromValues(values []string) (Record, error) {
	if len(values) != len(Columns) {
		return Record{}, fmt.Errorf("expected %d columns, got %d", len(Columns), len(values))
	}
	if strings.TrimSpace(values[0]) == "" {
		return Record{}, &apperrors.ValidationError{Field: "date", Reason: "is required"}
	}
	raw := RawFields{}
	for i, column := range Columns {
		raw.Set(column, values[i])
	}
	return decode(raw)
}

// Values serializes the record in Columns order.
func (r Record) Values() []string {
	return []string{
		FormatDate(r.Date),
		strconv.Itoa(r.Congestion),
		strconv.Itoa(r.Itch),
		string(r.FacialPain),
		string(r.NasalDischarge),
		string(r.BreathingDifficulty),
		string(r.Cough),
		strconv.Itoa(r.Sneezing),
		string(r.SkinRash),
		string(r.Hives),
		string(r.Swelling),
		string(r.DrugASuspended),
		string(r.DrugBSuspended),
		r.OtherMedications,
		strconv.Itoa(r.DaysPostOp),
		string(r.BreathingImprovement),
		r.Notes,
	}
}

// SortByDate orders records by day ascending and keeps insertion order for
// records sharing a day.
func SortByDate(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
}

func decode(raw RawFields) (Record, error) {
	date, err := ParseDate(raw.Date)
	if err != nil {
		return Record{}, err
	}
	counts := make([]int, 0, 4)
	for _, field := range []struct {
		name string
		text string
	}{
		{"congestion", raw.Congestion},
		{"itch", raw.Itch},
		{"sneezing", raw.Sneezing},
		{"days_post_op", raw.DaysPostOp},
	} {
		value, err := parseCount(field.name, field.text)
		if err != nil {
			return Record{}, err
		}
		counts = append(counts, value)
	}
	return Record{
		Date:                 Day(date),
		Congestion:           counts[0],
		Itch:                 counts[1],
		FacialPain:           Severity(strings.TrimSpace(raw.FacialPain)),
		NasalDischarge:       Discharge(strings.TrimSpace(raw.NasalDischarge)),
		BreathingDifficulty:  Severity(strings.TrimSpace(raw.BreathingDifficulty)),
		Cough:                Cough(strings.TrimSpace(raw.Cough)),
		Sneezing:             counts[2],
		SkinRash:             Severity(strings.TrimSpace(raw.SkinRash)),
		Hives:                Hives(strings.TrimSpace(raw.Hives)),
		Swelling:             Swelling(strings.TrimSpace(raw.Swelling)),
		DrugASuspended:       Suspension(strings.TrimSpace(raw.DrugASuspended)),
		DrugBSuspended:       Suspension(strings.TrimSpace(raw.DrugBSuspended)),
		OtherMedications:     freeText(raw.OtherMedications),
		DaysPostOp:           counts[3],
		BreathingImprovement: Improvement(strings.TrimSpace(raw.BreathingImprovement)),
		Notes:                freeText(raw.Notes),
	}, nil
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// freeText stores line breaks as \n, the form the CSV reader yields back.
func freeText(text string) string {
	return lineBreaks.Replace(strings.TrimSpace(text))
}

func parseCount(field, text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, &apperrors.ValidationError{Field: field, Value: text, Reason: "must be a whole number"}
	}
	if value < 0 {
		return 0, &apperrors.ValidationError{Field: field, Value: text, Reason: "must not be negative"}
	}
	return value, nil
}
