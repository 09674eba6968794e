package dataset

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// AllTransmissions is the transmission choice that applies no restriction.
const AllTransmissions = "All"

// Filter returns the rows whose brand equals brand and, unless transmission
// is AllTransmissions, whose transmission equals transmission. When nothing
// matches the result is an empty table with the same columns.
func Filter(t Table, brand, transmission string) Table {
	if t.Len() == 0 {
		return t
	}

	filters := []dataframe.F{
		{Colname: ColBrand, Comparator: series.Eq, Comparando: brand},
	}
	if transmission != AllTransmissions {
		filters = append(filters, dataframe.F{
			Colname:    ColTransmission,
			Comparator: series.Eq,
			Comparando: transmission,
		})
	}

	// Both compared columns are loaded as strings, so the only error the
	// dataframe package reports here is a zero-row subset.
	out := t.df.FilterAggregation(dataframe.And, filters...)
	if out.Err != nil || out.Nrow() == 0 {
		return t.emptyLike()
	}
	return Table{df: out}
}

// Brands returns the distinct brands in order of first appearance.
func Brands(t Table) []string {
	return distinct(t.Strings(ColBrand))
}

// Transmissions returns the distinct transmissions in order of first appearance.
func Transmissions(t Table) []string {
	return distinct(t.Strings(ColTransmission))
}

// TransmissionOptions is the transmission selector's choices: AllTransmissions
// followed by every distinct transmission.
func TransmissionOptions(t Table) []string {
	return append([]string{AllTransmissions}, Transmissions(t)...)
}

func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
