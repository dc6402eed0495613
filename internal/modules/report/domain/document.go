package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	GeneratedLayout = "02-01-2006 15:04"
	dateLayout      = "02-01-2006"
)

type Category string

const (
	CategoryBasic       Category = "basic"
	CategoryMedication  Category = "medication"
	CategoryRespiratory Category = "respiratory"
	CategoryCutaneous   Category = "cutaneous"
	CategoryPostOp      Category = "post_op"
	CategoryNotes       Category = "notes"
)

type Line struct {
	Category Category
	Text     string
}

// Block is the text rendering of one entry.
type Block struct {
	Date  time.Time
	Lines []Line
}

// Summary holds the report averages. Means are NaN and Defined is false
// when there are no entries.
type Summary struct {
	MeanCongestion float64
	MeanItch       float64
	Defined        bool
}

type Document struct {
	Title       string
	Subtitles   []string
	GeneratedAt time.Time
	Count       int
	Summary     Summary
	Blocks      []Block
	ChartTitle  string
}

func Summarize(entries []Entry) Summary {
	if len(entries) == 0 {
		return Summary{MeanCongestion: math.NaN(), MeanItch: math.NaN()}
	}
	var congestion, itch float64
	for _, entry := range entries {
		congestion += float64(entry.Congestion)
		itch += float64(entry.Itch)
	}
	n := float64(len(entries))
	return Summary{
		MeanCongestion: roundTenth(congestion / n),
		MeanItch:       roundTenth(itch / n),
		Defined:        true,
	}
}

// ComposeReport builds the printable history: heading, totals, averages and
// one block per entry in date order.
func ComposeReport(entries []Entry, generatedAt time.Time, labels Labels) Document {
	sorted := sortedCopy(entries)
	labels = labels.withDefaults()
	blocks := make([]Block, 0, len(sorted))
	for _, entry := range sorted {
		blocks = append(blocks, composeBlock(entry, labels))
	}
	return Document{
		Title: "Symptom diary",
		Subtitles: []string{
			"Post-operative recovery tracking",
			"Drug allergy - nasal decongestants",
		},
		GeneratedAt: generatedAt,
		Count:       len(sorted),
		Summary:     Summarize(sorted),
		Blocks:      blocks,
		ChartTitle:  "Symptom evolution charts",
	}
}

func (d Document) GeneratedLine() string {
	return "Report generated: " + d.GeneratedAt.Format(GeneratedLayout)
}

func (d Document) CountLine() string {
	return fmt.Sprintf("Total entries: %d", d.Count)
}

// SummaryLine is empty when the averages are undefined.
func (d Document) SummaryLine() string {
	if !d.Summary.Defined {
		return ""
	}
	return fmt.Sprintf("Mean congestion: %.1f | Mean itch: %.1f", d.Summary.MeanCongestion, d.Summary.MeanItch)
}

// Has reports whether the block carries a line for category.
func (b Block) Has(category Category) bool {
	for _, line := range b.Lines {
		if line.Category == category {
			return true
		}
	}
	return false
}

type field struct {
	label string
	value string
	text  bool
}

func composeBlock(entry Entry, labels Labels) Block {
	block := Block{Date: entry.Date}
	add := func(category Category, prefix string, fields ...field) {
		parts := make([]string, 0, len(fields))
		blank := true
		for _, f := range fields {
			value := strings.TrimSpace(f.value)
			if value != "" {
				blank = false
			}
			switch {
			case value == "" && f.text:
				continue
			case value == "":
				value = "-"
			case !f.text:
				value = Humanize(value)
			}
			parts = append(parts, f.label+": "+value)
		}
		if blank {
			return
		}
		block.Lines = append(block.Lines, Line{Category: category, Text: prefix + strings.Join(parts, " | ")})
	}
	number := func(label string, value int) field {
		return field{label: label, value: fmt.Sprint(value), text: true}
	}

	add(CategoryBasic, "",
		field{label: "DATE", value: entry.Date.Format(dateLayout), text: true},
		number("Congestion", entry.Congestion),
		number("Itch", entry.Itch),
		field{label: "Pain", value: entry.FacialPain},
		field{label: "Discharge", value: entry.NasalDischarge},
	)
	add(CategoryMedication, "Medication - ",
		field{label: labels.DrugA, value: entry.DrugASuspended},
		field{label: labels.DrugB, value: entry.DrugBSuspended},
		field{label: "Other", value: entry.OtherMedications, text: true},
	)
	add(CategoryRespiratory, "Respiratory - ",
		field{label: "Breathing difficulty", value: entry.BreathingDifficulty},
		field{label: "Cough", value: entry.Cough},
		number("Sneezing", entry.Sneezing),
	)
	add(CategoryCutaneous, "Skin - ",
		field{label: "Rash", value: entry.SkinRash},
		field{label: "Hives", value: entry.Hives},
		field{label: "Swelling", value: entry.Swelling},
	)
	add(CategoryPostOp, "Post-op - ",
		number("Days", entry.DaysPostOp),
		field{label: "Breathing improvement", value: entry.BreathingImprovement},
	)
	add(CategoryNotes, "",
		field{label: "Notes", value: entry.Notes, text: true},
	)
	return block
}

var humanLabels = map[string]string{
	"1_day_ago":       "1 day ago",
	"2_3_days_ago":    "2-3 days ago",
	"more_3_days_ago": "More than 3 days ago",
}

// Humanize turns a stored enum value into a label: "lips_eyes" becomes
// "Lips eyes".
func Humanize(value string) string {
	if label, ok := humanLabels[value]; ok {
		return label
	}
	words := strings.Fields(strings.ReplaceAll(value, "_", " "))
	if len(words) == 0 {
		return ""
	}
	words[0] = cases.Title(language.English).String(words[0])
	return strings.Join(words, " ")
}

func roundTenth(value float64) float64 {
	return math.Round(value*10) / 10
}
