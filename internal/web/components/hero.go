package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Hero renders the landing headline and the website-URL form that starts a
// lead search
func Hero() g.Node {
	return Div(
		Class("hero"),
		ID("hero"),

		Div(
			Class("hero-inner"),

			Span(Class("hero-eyebrow"), g.Text("Press outreach, matched to your story")),

			H1(
				Class("hero-title"),
				g.Text("Find the journalists"),
				Br(),
				Span(Class("hero-title-accent"), g.Text("who should cover you")),
			),

			P(
				Class("hero-subtitle"),
				g.Text("Paste your company website. We figure out what you do, match you with journalists on that beat, and draft the outreach for every channel."),
			),

			WebsiteForm(""),

			Ul(
				Class("hero-points"),
				g.Group(g.Map([]string{
					"Ranked by how closely each journalist's beat fits your company",
					"Email, X and LinkedIn drafts, ready to copy or send",
					"Sources cited for every match",
				}, func(point string) g.Node {
					return Li(g.Text(point))
				})),
			),
		),
	)
}

// WebsiteForm is the single-input lead form, shared by the hero and the
// sticky footer
func WebsiteForm(class string) g.Node {
	formClass := "website-form"
	if class != "" {
		formClass += " " + class
	}

	return Form(
		Class(formClass),
		Method("post"),
		Action("/leads"),

		Input(
			Type("url"),
			Name("website"),
			Class("website-input"),
			Placeholder("yourcompany.com"),
			Required(),
			g.Attr("aria-label", "Company website"),
		),
		Button(
			Type("submit"),
			Class("btn btn-primary"),
			g.Text("Find my journalists"),
		),
	)
}
