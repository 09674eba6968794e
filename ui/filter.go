package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/carprice/dashboard/dashboard"
)

// filterSidebar holds the controls. Any change re-runs the pipeline and
// swaps the dashboard section; without JavaScript the form submits to /.
func filterSidebar(v dashboard.View) g.Node {
	return Aside(
		Class("bg-gray-100 p-4 rounded-lg"),
		H2(Class("text-lg font-semibold mb-4"), g.Text("Filter Options")),
		Form(
			ID("filters"),
			Method("get"),
			Action("/"),
			Class("space-y-4"),
			hx.Get("/dashboard"),
			hx.Trigger("change"),
			hx.Target("#dashboard"),
			hx.Swap("outerHTML"),
			selectFilter("brand", "Select a Brand", v.Brands, v.Selection.Brand),
			selectFilter("transmission", "Transmission Type", v.TransmissionOptions, v.Selection.Transmission),
			rawToggle(v.Selection.ShowRaw),
			NoScript(button("Apply", withType("submit"))),
		),
	)
}

func selectFilter(name, label string, options []string, selected string) g.Node {
	return Div(
		Label(For(name), Class("block text-sm font-medium mb-1"), g.Text(label)),
		Select(
			ID(name),
			Name(name),
			Class("w-full p-2 border rounded-md"),
			g.Map(options, func(opt string) g.Node {
				return Option(Value(opt), g.If(opt == selected, Selected()), g.Text(opt))
			}),
		),
	)
}

func rawToggle(checked bool) g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Input(
			Type("checkbox"),
			ID("raw"),
			Name("raw"),
			Value("1"),
			g.If(checked, Checked()),
		),
		Label(For("raw"), Class("text-sm"), g.Text("Show Raw Data for this selection")),
	)
}
