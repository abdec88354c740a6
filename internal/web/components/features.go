package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type feature struct {
	Title       string
	Description string
}

// Features renders the how-it-works section of the landing page
func Features() g.Node {
	featureList := []feature{
		{
			Title:       "We read your website",
			Description: "Your company name and story are inferred straight from your URL and homepage, no onboarding forms.",
		},
		{
			Title:       "Matched, not sprayed",
			Description: "Every journalist is scored 0-100 on how closely their beat fits what you do, with sources cited.",
		},
		{
			Title:       "Outreach, drafted",
			Description: "Expand any match to get a pitch email plus X and LinkedIn drafts written for that journalist.",
		},
	}

	return Div(
		Class("features"),
		ID("features"),
		g.Group(g.Map(featureList, func(f feature) g.Node {
			return Div(
				Class("feature"),
				H3(g.Text(f.Title)),
				P(g.Text(f.Description)),
			)
		})),
	)
}
