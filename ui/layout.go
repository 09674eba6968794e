package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/carprice/dashboard/config"
)

// ---- Page Layout ----

func Page(title string, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
		},
		Body: []g.Node{
			Div(
				Class("container mx-auto px-4 py-8"),
				navigation(),
				g.Group(content),
			),
		},
	})
}

func navigation() g.Node {
	return Nav(
		Class("flex justify-between items-center mb-8 text-sm"),
		A(Href("/"), Class("font-semibold text-gray-700"), g.Text(config.AppTitle)),
		Div(
			Class("space-x-4"),
			buttonSecondary("Dashboard", withHref("/")),
			buttonSecondary("Cache", withHref("/admin/cache")),
		),
	)
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-4"), g.Text(text))
}
