package domain

import "time"

const (
	NoDataMessage       = "No data to display"
	NoPostOpDataMessage = "No post-op data"
)

type Marker string

const (
	MarkerCircle   Marker = "circle"
	MarkerSquare   Marker = "square"
	MarkerTriangle Marker = "triangle"
	MarkerDiamond  Marker = "diamond"
	MarkerCross    Marker = "cross"
)

type Color string

const (
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorBrown  Color = "brown"
)

type Point struct {
	Date  time.Time
	Value float64
}

type Series struct {
	Name   string
	Color  Color
	Marker Marker
	Points []Point
}

type Panel struct {
	Title       string
	YLabel      string
	YMin        float64
	YMax        float64
	Series      []Series
	Placeholder bool
	Message     string
}

// Figure is the 2x2 chart grid, or a single placeholder when there is
// nothing to plot.
type Figure struct {
	Title       string
	Panels      []Panel
	Placeholder bool
	Message     string
}

// BuildFigure lays out the four trend panels. Entries are plotted in date
// order regardless of the order they are passed in.
func BuildFigure(entries []Entry, labels Labels) Figure {
	if len(entries) == 0 {
		return Figure{Placeholder: true, Message: NoDataMessage}
	}
	sorted := sortedCopy(entries)
	labels = labels.withDefaults()
	pick := func(value func(Entry) float64) []Point {
		points := make([]Point, 0, len(sorted))
		for _, entry := range sorted {
			points = append(points, Point{Date: entry.Date, Value: value(entry)})
		}
		return points
	}

	nasal := Panel{
		Title:  "Nasal symptoms",
		YLabel: "Intensity (0-10)",
		YMin:   0,
		YMax:   10,
		Series: []Series{
			{Name: "Congestion", Color: ColorRed, Marker: MarkerCircle, Points: pick(func(e Entry) float64 { return float64(e.Congestion) })},
			{Name: "Itch", Color: ColorOrange, Marker: MarkerSquare, Points: pick(func(e Entry) float64 { return float64(e.Itch) })},
			{Name: "Sneezing", Color: ColorBlue, Marker: MarkerTriangle, Points: pick(func(e Entry) float64 { return float64(e.Sneezing) })},
		},
	}
	medication := Panel{
		Title:  "Days since suspension",
		YLabel: "Days",
		YMin:   0,
		YMax:   6,
		Series: []Series{
			{Name: labels.DrugA, Color: ColorGreen, Marker: MarkerCircle, Points: pick(func(e Entry) float64 { return e.DrugADays })},
			{Name: labels.DrugB, Color: ColorPurple, Marker: MarkerSquare, Points: pick(func(e Entry) float64 { return e.DrugBDays })},
		},
	}
	postOp := Panel{Title: "Post-op recovery", YLabel: "Days since surgery", Placeholder: true, Message: NoPostOpDataMessage}
	maxDays := 0
	for _, entry := range sorted {
		if entry.DaysPostOp > maxDays {
			maxDays = entry.DaysPostOp
		}
	}
	if maxDays > 0 {
		postOp.Placeholder = false
		postOp.Message = ""
		postOp.YMax = float64(maxDays) * 1.1
		postOp.Series = []Series{
			{Name: "Days post-op", Color: ColorBrown, Marker: MarkerDiamond, Points: pick(func(e Entry) float64 { return float64(e.DaysPostOp) })},
		}
	}
	pain := Panel{
		Title:  "Pain evolution",
		YLabel: "Pain score (0-10)",
		YMin:   0,
		YMax:   10,
		Series: []Series{
			{Name: "Facial pain", Color: ColorRed, Marker: MarkerCross, Points: pick(func(e Entry) float64 { return e.PainScore })},
		},
	}
	return Figure{
		Title:  "Symptom evolution",
		Panels: []Panel{nasal, medication, postOp, pain},
	}
}
