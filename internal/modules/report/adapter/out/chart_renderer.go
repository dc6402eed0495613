package out

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"symptrack/internal/modules/report/domain"
	reportout "symptrack/internal/modules/report/port/out"
)

const (
	PanelWidth  = 600
	PanelHeight = 400
)

var palette = map[domain.Color]drawing.Color{
	domain.ColorRed:    {R: 214, G: 39, B: 40, A: 255},
	domain.ColorOrange: {R: 255, G: 127, B: 14, A: 255},
	domain.ColorBlue:   {R: 31, G: 119, B: 180, A: 255},
	domain.ColorGreen:  {R: 44, G: 160, B: 44, A: 255},
	domain.ColorPurple: {R: 148, G: 103, B: 189, A: 255},
	domain.ColorBrown:  {R: 140, G: 86, B: 75, A: 255},
}

// go-chart only draws round dots, so markers are told apart by size.
var dotWidths = map[domain.Marker]float64{
	domain.MarkerCircle:   4,
	domain.MarkerSquare:   5,
	domain.MarkerTriangle: 6,
	domain.MarkerDiamond:  5,
	domain.MarkerCross:    3,
}

type GoChartRenderer struct{}

func NewGoChartRenderer() reportout.ChartRenderer {
	return &GoChartRenderer{}
}

// Render draws the figure as a 2x2 grid of panels, each PanelWidth by
// PanelHeight pixels.
func (r *GoChartRenderer) Render(_ context.Context, figure domain.Figure) (image.Image, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, 2*PanelWidth, 2*PanelHeight))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	if figure.Placeholder || len(figure.Panels) == 0 {
		drawCentered(canvas, canvas.Bounds(), figure.Message)
		return canvas, nil
	}
	for i, panel := range figure.Panels {
		if i >= 4 {
			break
		}
		origin := image.Pt((i%2)*PanelWidth, (i/2)*PanelHeight)
		cell := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(PanelWidth, PanelHeight))}
		if panel.Placeholder || len(panel.Series) == 0 {
			drawPlaceholderPanel(canvas, cell, panel)
			continue
		}
		img, err := renderPanel(panel)
		if err != nil {
			return nil, fmt.Errorf("render panel %q: %w", panel.Title, err)
		}
		draw.Draw(canvas, cell, img, img.Bounds().Min, draw.Src)
	}
	return canvas, nil
}

func renderPanel(panel domain.Panel) (image.Image, error) {
	minT, maxT, ok := timeBounds(panel.Series)
	if !ok {
		return nil, fmt.Errorf("panel has no points")
	}
	// A single day gives a zero-width axis; pad half a day on each side.
	if !maxT.After(minT) {
		minT = minT.Add(-12 * time.Hour)
		maxT = maxT.Add(12 * time.Hour)
	}

	series := make([]chart.Series, 0, len(panel.Series))
	for _, s := range panel.Series {
		col, ok := palette[s.Color]
		if !ok {
			col = chart.ColorBlack
		}
		xs := make([]time.Time, 0, len(s.Points))
		ys := make([]float64, 0, len(s.Points))
		for _, p := range s.Points {
			xs = append(xs, p.Date)
			ys = append(ys, p.Value)
		}
		series = append(series, chart.TimeSeries{
			Name: s.Name,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    dotWidths[s.Marker],
			},
			XValues: xs,
			YValues: ys,
		})
	}

	yMax := panel.YMax
	if yMax <= panel.YMin {
		yMax = panel.YMin + 1
	}
	ch := chart.Chart{
		Title:      panel.Title,
		Width:      PanelWidth,
		Height:     PanelHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("02-01"),
			Range:          &chart.ContinuousRange{Min: chart.TimeToFloat64(minT), Max: chart.TimeToFloat64(maxT)},
		},
		YAxis: chart.YAxis{
			Name:  panel.YLabel,
			Range: &chart.ContinuousRange{Min: panel.YMin, Max: yMax},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func timeBounds(series []domain.Series) (time.Time, time.Time, bool) {
	var minT, maxT time.Time
	found := false
	for _, s := range series {
		for _, p := range s.Points {
			if !found || p.Date.Before(minT) {
				minT = p.Date
			}
			if !found || p.Date.After(maxT) {
				maxT = p.Date
			}
			found = true
		}
	}
	return minT, maxT, found
}

func drawPlaceholderPanel(canvas *image.RGBA, cell image.Rectangle, panel domain.Panel) {
	border := image.NewUniform(color.RGBA{R: 200, G: 200, B: 200, A: 255})
	inner := cell.Inset(8)
	for _, edge := range []image.Rectangle{
		{Min: inner.Min, Max: image.Pt(inner.Max.X, inner.Min.Y+1)},
		{Min: image.Pt(inner.Min.X, inner.Max.Y-1), Max: inner.Max},
		{Min: inner.Min, Max: image.Pt(inner.Min.X+1, inner.Max.Y)},
		{Min: image.Pt(inner.Max.X-1, inner.Min.Y), Max: inner.Max},
	} {
		draw.Draw(canvas, edge, border, image.Point{}, draw.Src)
	}
	title := image.Rect(cell.Min.X, cell.Min.Y+12, cell.Max.X, cell.Min.Y+40)
	drawCentered(canvas, title, panel.Title)
	drawCentered(canvas, cell, panel.Message)
}

func drawCentered(canvas *image.RGBA, area image.Rectangle, text string) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	drawer := &font.Drawer{Dst: canvas, Src: image.NewUniform(color.RGBA{R: 90, G: 90, B: 90, A: 255}), Face: face}
	width := drawer.MeasureString(text).Ceil()
	x := area.Min.X + (area.Dx()-width)/2
	y := area.Min.Y + (area.Dy()+face.Metrics().Ascent.Ceil())/2
	drawer.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	drawer.DrawString(text)
}
