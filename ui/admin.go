package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/carprice/dashboard/cache"
)

// AdminCachePage renders the cache admin page around AdminCacheSection.
func AdminCachePage(stats []cache.Stats) g.Node {
	return Page("Cache Admin", []g.Node{
		pageHeader("Cache Admin"),
		Div(Class("text-gray-600 text-sm mb-6"), g.Text("Dataset and chart cache statistics.")),
		AdminCacheSection(stats),
	})
}

// AdminCacheSection lists one stats panel per cache. It is also the
// response to the refresh and clear buttons.
func AdminCacheSection(stats []cache.Stats) g.Node {
	return Div(
		ID("admin-section-content"),
		Class("space-y-4"),
		g.Map(stats, CacheStatsPanel),
		Div(
			Class("flex gap-4"),
			buttonDanger("Clear Caches",
				withAttributes(
					hx.Post("/api/admin/cache/clear"),
					hx.Target("#admin-section-content"),
					hx.Swap("outerHTML"),
				),
			),
			button("Refresh Stats",
				withAttributes(
					hx.Get("/admin/cache"),
					hx.Target("#admin-section-content"),
					hx.Swap("outerHTML"),
				),
			),
		),
	)
}

func CacheStatsPanel(s cache.Stats) g.Node {
	return Div(
		Class("bg-gray-100 p-4 rounded-lg"),
		H2(Class("text-lg font-semibold mb-2"), g.Text(s.Name)),
		Div(
			Class("grid grid-cols-2 md:grid-cols-4 gap-4"),
			statCard("Hits", "%d", s.Hits),
			statCard("Misses", "%d", s.Misses),
			statCard("Hit Rate", "%.1f%%", s.HitRate),
			statCard("Sets", "%d", s.Sets),
			statCard("Current Items", "%d", s.CurrentItems),
			statCard("Cost Added", "%d", s.CostAdded),
			statCard("Cost Evicted", "%d", s.CostEvicted),
			statCard("Sets Dropped", "%d", s.SetsDropped),
		),
	)
}

func statCard(label, format string, value interface{}) g.Node {
	return Div(
		Class("bg-white p-3 rounded border"),
		Strong(g.Text(label+": ")),
		g.Textf(format, value),
	)
}
