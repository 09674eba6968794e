// Package dashboard ties the pipeline together: selection handling, filter,
// and metrics for one interaction.
package dashboard

import (
	"slices"

	"github.com/carprice/dashboard/dataset"
	"github.com/carprice/dashboard/metrics"
)

// Selection is the state of the dashboard controls.
type Selection struct {
	Brand        string
	Transmission string
	ShowRaw      bool
}

// Update normalizes next against the available options. An unknown brand
// keeps prev's brand when it is still offered, otherwise the first brand.
// An unknown transmission becomes dataset.AllTransmissions.
func Update(prev, next Selection, brands, transmissions []string) Selection {
	sel := next
	if !slices.Contains(brands, sel.Brand) {
		switch {
		case slices.Contains(brands, prev.Brand):
			sel.Brand = prev.Brand
		case len(brands) > 0:
			sel.Brand = brands[0]
		default:
			sel.Brand = ""
		}
	}
	if sel.Transmission != dataset.AllTransmissions && !slices.Contains(transmissions, sel.Transmission) {
		sel.Transmission = dataset.AllTransmissions
	}
	return sel
}

// View is everything one render of the dashboard needs.
type View struct {
	Selection           Selection
	Brands              []string
	TransmissionOptions []string
	Filtered            dataset.Table
	Summary             metrics.Summary
}

// Build runs filter and metrics for sel. sel should already be normalized
// with Update.
func Build(t dataset.Table, sel Selection) View {
	filtered := dataset.Filter(t, sel.Brand, sel.Transmission)
	return View{
		Selection:           sel,
		Brands:              dataset.Brands(t),
		TransmissionOptions: dataset.TransmissionOptions(t),
		Filtered:            filtered,
		Summary:             metrics.Summarize(filtered),
	}
}

// Resolve normalizes next against the options offered by t and builds the
// view in one step.
func Resolve(t dataset.Table, prev, next Selection) View {
	sel := Update(prev, next, dataset.Brands(t), dataset.Transmissions(t))
	return Build(t, sel)
}
