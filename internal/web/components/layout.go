package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	// Refresh, when positive, re-requests the page every N seconds. Used
	// while the journalist list is loading.
	Refresh int
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "PressPilot - Find the journalists who should cover you"
	}

	if config.Description == "" {
		config.Description = "Enter your company website and get a ranked list of matching journalists with ready-to-send outreach drafts."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				g.If(config.Refresh > 0,
					Meta(g.Attr("http-equiv", "refresh"), Content(strconv.Itoa(config.Refresh))),
				),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				g.Group(content),

				Script(Src("/static/js/clipboard.js")),
			),
		),
	})
}
