package ui

import (
	"fmt"
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/carprice/dashboard/charts"
	"github.com/carprice/dashboard/config"
	"github.com/carprice/dashboard/dashboard"
	"github.com/carprice/dashboard/metrics"
)

const introText = "This dashboard helps you analyze the relationship between mileage, engine size, and price for top car brands (Audi, BMW, Toyota)."

// DashboardPage renders the full page: header, filter sidebar and the
// dashboard section.
func DashboardPage(v dashboard.View) g.Node {
	return Page(config.AppTitle, []g.Node{
		pageHeader("🚗 Used Car Price Analytics"),
		P(Class("text-gray-600 mb-8"), g.Text(introText)),
		Div(
			Class("grid grid-cols-1 md:grid-cols-4 gap-8"),
			filterSidebar(v),
			Div(Class("md:col-span-3"), DashboardSection(v)),
		),
	})
}

// DashboardSection is the part of the page that is replaced on every
// control change.
func DashboardSection(v dashboard.View) g.Node {
	sel := v.Selection
	return Div(
		ID("dashboard"),
		metricCards(v.Summary),
		Hr(Class("my-6")),
		Div(
			Class("grid grid-cols-1 lg:grid-cols-2 gap-6"),
			chartPanel("Price Distribution for "+sel.Brand, charts.KindPriceDistribution, sel),
			chartPanel("Price vs. Mileage", charts.KindPriceVsMileage, sel),
		),
		Hr(Class("my-6")),
		g.Iff(sel.ShowRaw, func() g.Node { return rawData(v) }),
	)
}

func metricCards(s metrics.Summary) g.Node {
	return Div(
		Class("grid grid-cols-1 md:grid-cols-3 gap-4"),
		metricCard("Average Price", s.Price()),
		metricCard("Total Cars Available", s.Cars()),
		metricCard("Average Mileage", s.Mileage()),
	)
}

func metricCard(label, value string) g.Node {
	return Div(
		Class("bg-white p-4 rounded border"),
		Div(Class("text-sm text-gray-500"), g.Text(label)),
		Div(Class("text-3xl font-semibold"), g.Text(value)),
	)
}

func chartPanel(heading string, kind charts.Kind, sel dashboard.Selection) g.Node {
	return Div(
		H3(Class("text-xl font-semibold mb-2"), g.Text(heading)),
		Img(
			Src(ChartURL(kind, sel)),
			Alt(heading),
			Class("w-full h-auto"),
			Width(fmt.Sprint(config.ChartWidth)),
			Height(fmt.Sprint(config.ChartHeight)),
		),
	)
}

// ChartURL is the image endpoint for one chart of a selection.
func ChartURL(kind charts.Kind, sel dashboard.Selection) string {
	return "/charts/" + string(kind) + "?" + selectionQuery(sel).Encode()
}

// ExportURL is the CSV download of a selection.
func ExportURL(sel dashboard.Selection) string {
	return "/export.csv?" + selectionQuery(sel).Encode()
}

func selectionQuery(sel dashboard.Selection) url.Values {
	q := url.Values{}
	q.Set("brand", sel.Brand)
	q.Set("transmission", sel.Transmission)
	return q
}
