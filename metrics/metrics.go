// Package metrics computes the summary figures shown above the charts.
package metrics

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/stat"

	"github.com/carprice/dashboard/dataset"
)

// Placeholder is shown in place of an average that cannot be computed.
const Placeholder = "N/A"

// Average is a mean that may be undefined, for example over zero rows.
type Average struct {
	Value   float64
	Defined bool
}

// Format renders the average as a whole number with thousands separators,
// wrapped in prefix and suffix. An undefined average renders as Placeholder.
func (a Average) Format(prefix, suffix string) string {
	if !a.Defined {
		return Placeholder
	}
	return prefix + humanize.Comma(int64(math.RoundToEven(a.Value))) + suffix
}

// Ptr returns the value, or nil when undefined.
func (a Average) Ptr() *float64 {
	if !a.Defined {
		return nil
	}
	v := a.Value
	return &v
}

// Summary holds the three headline metrics of a filtered table.
type Summary struct {
	Count      int
	AvgPrice   Average
	AvgMileage Average
}

// Empty reports whether the summary was computed over zero rows.
func (s Summary) Empty() bool {
	return s.Count == 0
}

// Price renders the average price, e.g. "$19,000".
func (s Summary) Price() string {
	return s.AvgPrice.Format("$", "")
}

// Mileage renders the average mileage, e.g. "40,000 miles".
func (s Summary) Mileage() string {
	return s.AvgMileage.Format("", " miles")
}

// Cars renders the row count.
func (s Summary) Cars() string {
	return strconv.Itoa(s.Count)
}

// Summarize computes the row count and the mean price and mileage.
func Summarize(t dataset.Table) Summary {
	return Summary{
		Count:      t.Len(),
		AvgPrice:   mean(t.Prices()),
		AvgMileage: mean(t.Mileages()),
	}
}

// mean skips missing cells. It is undefined when no finite values remain.
func mean(values []float64) Average {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		finite = append(finite, v)
	}
	if len(finite) == 0 {
		return Average{}
	}
	return Average{Value: stat.Mean(finite, nil), Defined: true}
}
