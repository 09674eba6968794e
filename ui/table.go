package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/carprice/dashboard/config"
	"github.com/carprice/dashboard/dashboard"
)

func rawData(v dashboard.View) g.Node {
	rows := v.Filtered.Rows()
	total := len(rows)
	if len(rows) > config.RawTableMaxRows {
		rows = rows[:config.RawTableMaxRows]
	}

	return Div(
		ID("raw-data"),
		Div(
			Class("flex justify-between items-center mb-2"),
			Span(Class("text-sm text-gray-600"), g.Textf("Showing %d of %d rows", len(rows), total)),
			buttonSecondary("Download CSV", withHref(ExportURL(v.Selection))),
		),
		Div(
			Class("overflow-x-auto max-h-96 overflow-y-auto border rounded"),
			Table(
				Class("min-w-full text-sm"),
				THead(
					Class("bg-gray-100 sticky top-0"),
					Tr(g.Map(v.Filtered.Columns(), func(col string) g.Node {
						return Th(Class("px-3 py-2 text-left font-medium"), g.Text(col))
					})),
				),
				TBody(
					g.Map(indexed(rows), func(r indexedRow) g.Node {
						return Tr(
							Class(stripe(r.i)),
							g.Map(r.cells, func(cell string) g.Node {
								return Td(Class("px-3 py-1 whitespace-nowrap"), g.Text(cell))
							}),
						)
					}),
				),
			),
		),
	)
}

type indexedRow struct {
	i     int
	cells []string
}

func indexed(rows [][]string) []indexedRow {
	out := make([]indexedRow, len(rows))
	for i, r := range rows {
		out[i] = indexedRow{i: i, cells: r}
	}
	return out
}

func stripe(i int) string {
	if i%2 == 1 {
		return "bg-gray-50"
	}
	return "bg-white"
}
