package charts

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/carprice/dashboard/config"
)

// kdeGridSize is the number of points the density curve is evaluated at.
const kdeGridSize = 200

// BinEdges returns histogram bin edges using the "auto" rule: the narrower
// of the Sturges and Freedman-Diaconis widths, spread evenly over the data
// range. A single distinct value gets one bin of width 1 centred on it.
// Freedman-Diaconis is skipped when it would exceed config.HistogramMaxBins,
// which a few far outliers can cause.
func BinEdges(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		return []float64{lo - 0.5, hi + 0.5}
	}

	n := float64(len(values))
	span := hi - lo
	width := span / (math.Log2(n) + 1)

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	iqr := percentile(sorted, 0.75) - percentile(sorted, 0.25)
	if fd := 2 * iqr * math.Pow(n, -1.0/3); fd > 0 && fd < width && span/fd <= config.HistogramMaxBins {
		width = fd
	}

	bins := int(math.Ceil(span / width))
	bins = max(1, min(bins, config.HistogramMaxBins))
	edges := make([]float64, bins+1)
	floats.Span(edges, lo, hi)
	return edges
}

// percentile interpolates linearly between the closest ranks of sorted,
// the convention of most dataframe libraries (R type 7).
func percentile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	i := int(math.Floor(pos))
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(i)
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}

// Counts places each value into the half-open bins defined by edges; the
// last bin also includes its right edge.
func Counts(values, edges []float64) []float64 {
	if len(edges) < 2 {
		return nil
	}
	counts := make([]float64, len(edges)-1)
	last := len(counts) - 1
	for _, v := range values {
		if v < edges[0] || v > edges[len(edges)-1] {
			continue
		}
		i := floats.Within(edges, v)
		if i < 0 {
			i = last
		}
		counts[i]++
	}
	return counts
}

// Density evaluates a Gaussian kernel density estimate of values over
// [min, max], scaled so it overlays a histogram with the given bin width.
// It returns nil when fewer than two distinct values are present.
func Density(values []float64, binWidth float64) (xs, ys []float64) {
	if len(values) < 2 {
		return nil, nil
	}
	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		return nil, nil
	}

	n := float64(len(values))
	bw := stat.StdDev(values, nil) * math.Pow(n, -1.0/5)
	if bw <= 0 || math.IsNaN(bw) {
		return nil, nil
	}

	xs = make([]float64, kdeGridSize)
	floats.Span(xs, lo, hi)
	ys = make([]float64, kdeGridSize)
	norm := 1 / (n * bw * math.Sqrt(2*math.Pi))
	scale := n * binWidth
	for i, x := range xs {
		var sum float64
		for _, v := range values {
			z := (x - v) / bw
			sum += math.Exp(-0.5 * z * z)
		}
		ys[i] = sum * norm * scale
	}
	return xs, ys
}
