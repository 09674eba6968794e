package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/carprice/dashboard/config"
)

// DataErrorMessage replaces the whole dashboard when the dataset cannot be
// loaded.
const DataErrorMessage = "Error: data file not found. Check the configured data path."

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		[]g.Node{
			pageHeader(fmt.Sprintf("Error %d", code)),
			P(g.Text(message)),
		},
	)
}

// DataErrorPage is the full page shown when the dataset is missing.
func DataErrorPage() g.Node {
	return Page(config.AppTitle, []g.Node{DataError()})
}

// DataError is the bare error banner, also used as the htmx partial.
func DataError() g.Node {
	return Div(
		ID("dashboard"),
		Role("alert"),
		Class("bg-red-100 border border-red-400 text-red-700 px-4 py-3 rounded"),
		g.Text(DataErrorMessage),
	)
}
