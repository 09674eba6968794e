// Package charts renders the price distribution and price-versus-mileage
// charts for a filtered listing table.
package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/carprice/dashboard/config"
	"github.com/carprice/dashboard/dataset"
)

// Kind names a chart.
type Kind string

const (
	KindPriceDistribution Kind = "price-distribution"
	KindPriceVsMileage    Kind = "price-vs-mileage"
)

// PlaceholderText is drawn instead of a chart when there is nothing to plot.
const PlaceholderText = "No listings match this selection"

var (
	barColor     = drawing.Color{R: 135, G: 206, B: 235, A: 255}
	barEdgeColor = drawing.Color{R: 70, G: 130, B: 180, A: 255}
	kdeColor     = drawing.Color{R: 31, G: 119, B: 180, A: 255}
	dotColor     = drawing.Color{R: 250, G: 128, B: 114, A: 153}
)

// Chart is a rendered-on-demand chart. A chart with nothing to plot renders
// as a placeholder image.
type Chart struct {
	Kind  Kind
	graph *chart.Chart
}

// Empty reports whether the chart renders as a placeholder.
func (c *Chart) Empty() bool {
	return c.graph == nil
}

// Image draws the chart at its native size.
func (c *Chart) Image() (image.Image, error) {
	if c.Empty() {
		return Placeholder(config.ChartWidth, config.ChartHeight, PlaceholderText), nil
	}
	var buf bytes.Buffer
	if err := c.graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render %s chart: %w", c.Kind, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s chart: %w", c.Kind, err)
	}
	return img, nil
}

// PriceDistribution draws a histogram of prices with a density curve.
func PriceDistribution(t dataset.Table) *Chart {
	c := &Chart{Kind: KindPriceDistribution}
	prices := finite(t.Prices())
	if len(prices) == 0 {
		return c
	}

	edges := BinEdges(prices)
	counts := Counts(prices, edges)

	// Bars are drawn as one filled step outline along the baseline.
	barX := make([]float64, 0, 4*len(counts))
	barY := make([]float64, 0, 4*len(counts))
	maxCount := 0.0
	for i, n := range counts {
		barX = append(barX, edges[i], edges[i], edges[i+1], edges[i+1])
		barY = append(barY, 0, n, n, 0)
		maxCount = math.Max(maxCount, n)
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name: "Count",
			Style: chart.Style{
				StrokeColor: barEdgeColor,
				StrokeWidth: 1,
				FillColor:   barColor,
			},
			XValues: barX,
			YValues: barY,
		},
	}

	binWidth := edges[1] - edges[0]
	if xs, ys := Density(prices, binWidth); xs != nil {
		for _, y := range ys {
			maxCount = math.Max(maxCount, y)
		}
		series = append(series, chart.ContinuousSeries{
			Name: "Density",
			Style: chart.Style{
				StrokeColor: kdeColor,
				StrokeWidth: 2,
			},
			XValues: xs,
			YValues: ys,
		})
	}

	c.graph = &chart.Chart{
		Width:  config.ChartWidth,
		Height: config.ChartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Price ($)",
			Range:          &chart.ContinuousRange{Min: edges[0], Max: edges[len(edges)-1]},
			ValueFormatter: commaFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Count",
			Range:          &chart.ContinuousRange{Min: 0, Max: maxCount * 1.05},
			ValueFormatter: commaFormatter,
		},
		Series: series,
	}
	return c
}

// PriceVsMileage draws one dot per listing, mileage against price.
func PriceVsMileage(t dataset.Table) *Chart {
	c := &Chart{Kind: KindPriceVsMileage}
	xs, ys := pairs(t.Mileages(), t.Prices())
	if len(xs) == 0 {
		return c
	}

	xMin, xMax := paddedRange(xs)
	yMin, yMax := paddedRange(ys)

	c.graph = &chart.Chart{
		Width:  config.ChartWidth,
		Height: config.ChartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Mileage",
			Range:          &chart.ContinuousRange{Min: xMin, Max: xMax},
			ValueFormatter: commaFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Price ($)",
			Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
			ValueFormatter: commaFormatter,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: "Listings",
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    dotColor,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return c
}

// Render builds the named chart.
func Render(kind Kind, t dataset.Table) (*Chart, error) {
	switch kind {
	case KindPriceDistribution:
		return PriceDistribution(t), nil
	case KindPriceVsMileage:
		return PriceVsMileage(t), nil
	}
	return nil, fmt.Errorf("unknown chart %q", kind)
}

func commaFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return humanize.Comma(int64(math.Round(f)))
	}
	return fmt.Sprint(v)
}

func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// pairs keeps the positions where both x and y are finite.
func pairs(x, y []float64) ([]float64, []float64) {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if i >= len(y) {
			break
		}
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) || math.IsInf(x[i], 0) || math.IsInf(y[i], 0) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys
}

// paddedRange returns the data range widened by 5% on each side, or by 1
// around a single value.
func paddedRange(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		pad := math.Max(math.Abs(lo)*0.05, 1)
		return lo - pad, hi + pad
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}
