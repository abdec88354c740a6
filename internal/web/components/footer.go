package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FooterCTA renders the sticky footer call-to-action with a second copy of
// the lead form
func FooterCTA() g.Node {
	return Div(
		Class("footer-cta"),
		Div(
			Class("footer-cta-inner"),
			P(Class("footer-cta-text"), g.Text("Ready to pitch your story?")),
			WebsiteForm("website-form-compact"),
		),
	)
}

// PageFooter renders the plain page footer
func PageFooter() g.Node {
	return Footer(
		Class("page-footer"),
		P(g.Text("PressPilot")),
		P(Class("page-footer-note"), g.Text("Journalist matches and drafts are AI-generated. Verify contact details before sending.")),
	)
}
