package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/presspilot/presspilot/internal/leads"
	"github.com/presspilot/presspilot/internal/model"
)

// RowView is everything one journalist card needs to render
type RowView struct {
	Index      int
	Key        string
	Journalist model.Journalist
	Expanded   bool
	Outreach   leads.OutreachState
}

// LeadLoading renders the list-fetch-in-flight state
func LeadLoading(website string) g.Node {
	return Div(
		Class("lead-status"),
		P(Class("lead-status-title"), g.Text("Finding journalists for "+website+"...")),
		P(Class("lead-status-note"), g.Text("This usually takes under a minute. The page refreshes automatically.")),
	)
}

// LeadError renders the list-fetch failure state with the raw detail for
// diagnostics
func LeadError(message, detail string) g.Node {
	return Div(
		Class("lead-status lead-status-error"),
		P(Class("lead-status-title"), g.Text("We couldn't find journalists for that website.")),
		P(Class("lead-status-note"), g.Text(message)),
		g.If(detail != "" && detail != message,
			Pre(Class("lead-status-detail"), g.Text(detail)),
		),
	)
}

// LeadEmpty renders the succeeded-with-zero-matches state
func LeadEmpty() g.Node {
	return Div(
		Class("lead-status"),
		P(Class("lead-status-title"), g.Text("No matching journalists found.")),
		P(Class("lead-status-note"), g.Text("Try a website with more public information about what the company does.")),
	)
}

// JournalistCards renders one card per matched journalist
func JournalistCards(sessionID, companyName string, rows []RowView) g.Node {
	return Div(
		Class("journalist-list"),
		H2(Class("journalist-list-title"), g.Text(fmt.Sprintf("%d journalists matched to %s", len(rows), companyName))),
		g.Group(g.Map(rows, func(row RowView) g.Node {
			return JournalistCard(sessionID, companyName, row)
		})),
	)
}

// JournalistCard renders one journalist with contacts, sources and the
// expandable outreach panel
func JournalistCard(sessionID, companyName string, row RowView) g.Node {
	j := row.Journalist

	return Div(
		Class("journalist-card"),
		ID("row-"+strconv.Itoa(row.Index)),

		Div(
			Class("journalist-header"),
			Div(
				H3(Class("journalist-name"), g.Text(j.Name)),
				g.If(j.Publication != "",
					Span(Class("badge badge-publication"), g.Text(j.Publication)),
				),
			),
			relevanceBadge(j),
		),

		P(Class("journalist-coverage"), g.Text(j.Coverage)),
		g.If(j.CoverageLink != "",
			A(Class("journalist-coverage-link"), Href(j.CoverageLink), Target("_blank"), Rel("noopener"), g.Text("Read their coverage")),
		),

		contactLinks(j),
		sourceList(j.Sources),

		toggleForm(sessionID, row),

		g.If(row.Expanded, OutreachPanel(companyName, row)),
	)
}

// relevanceBadge colors the score by tier: top >= 90, mid >= 75, low below
func relevanceBadge(j model.Journalist) g.Node {
	tier := j.Tier()
	return Span(
		Class("badge badge-relevance badge-"+tier.String()),
		g.Text(fmt.Sprintf("%d%% match", j.RelevanceScore)),
	)
}

// contactLinks renders only the contact channels the journalist has,
// normalizing bare social handles into profile URLs
func contactLinks(j model.Journalist) g.Node {
	type link struct {
		label string
		href  string
	}

	var linkList []link
	if j.Email != "" {
		linkList = append(linkList, link{"Email", "mailto:" + j.Email})
	}
	if href := leads.TwitterURL(j.Twitter); href != "" {
		linkList = append(linkList, link{"X / Twitter", href})
	}
	if href := leads.LinkedInURL(j.LinkedIn); href != "" {
		linkList = append(linkList, link{"LinkedIn", href})
	}
	if href := leads.InstagramURL(j.Instagram); href != "" {
		linkList = append(linkList, link{"Instagram", href})
	}

	if len(linkList) == 0 {
		return g.Text("")
	}

	return Div(
		Class("journalist-contacts"),
		g.Group(g.Map(linkList, func(l link) g.Node {
			return A(Class("contact-link"), Href(l.href), Target("_blank"), Rel("noopener"), g.Text(l.label))
		})),
	)
}

func sourceList(sources []model.Source) g.Node {
	if len(sources) == 0 {
		return g.Text("")
	}

	return Details(
		Class("journalist-sources"),
		Summary(g.Text(fmt.Sprintf("Sources (%d)", len(sources)))),
		Ul(
			g.Group(g.Map(sources, func(s model.Source) g.Node {
				return Li(
					A(Href(s.URL), Target("_blank"), Rel("noopener"), g.Text(s.URL)),
					g.If(s.Description != "", g.Text(" — "+s.Description)),
				)
			})),
		),
	)
}

func toggleForm(sessionID string, row RowView) g.Node {
	label := "Draft outreach"
	if row.Expanded {
		label = "Hide outreach"
	}

	return Form(
		Class("toggle-form"),
		Method("post"),
		Action(fmt.Sprintf("/leads/%s/rows/%d/toggle", sessionID, row.Index)),
		Button(Type("submit"), Class("btn btn-ghost"), g.Text(label)),
	)
}

// OutreachPanel renders the expanded outreach-draft panel for one row
func OutreachPanel(companyName string, row RowView) g.Node {
	switch row.Outreach.Phase {
	case leads.OutreachLoading:
		return Div(
			Class("outreach-panel"),
			P(Class("lead-status-note"), g.Text("Drafting outreach messages... refresh in a few seconds.")),
			disabledCopyButton(),
		)

	case leads.OutreachFailed:
		return Div(
			Class("outreach-panel outreach-panel-error"),
			P(g.Text(row.Outreach.Message)),
			P(Class("lead-status-note"), g.Text("Collapse and expand the row to try again.")),
			disabledCopyButton(),
		)

	case leads.OutreachSuccess:
		return outreachDrafts(companyName, row)

	default:
		return Div(Class("outreach-panel"))
	}
}

// disabledCopyButton keeps the action row in place until a draft exists
func disabledCopyButton() g.Node {
	return Div(
		Class("outreach-actions"),
		Button(
			Type("button"),
			Class("btn btn-primary copy-email"),
			Disabled(),
			g.Text("Copy Email"),
		),
	)
}

func outreachDrafts(companyName string, row RowView) g.Node {
	messages := row.Outreach.Messages

	drafts := []struct {
		label string
		text  string
	}{
		{"Email", messages.EmailBody},
		{"X / Twitter DM", messages.TwitterDM},
		{"X / Twitter post", messages.TwitterPost},
		{"LinkedIn DM", messages.LinkedInDM},
		{"LinkedIn post", messages.LinkedInPost},
	}

	mailto := leads.MailtoURL(row.Journalist, companyName, messages.EmailBody)

	return Div(
		Class("outreach-panel"),
		g.Group(g.Map(drafts, func(d struct {
			label string
			text  string
		}) g.Node {
			return Div(
				Class("outreach-draft"),
				H4(g.Text(d.label)),
				P(Class("outreach-text"), g.Text(d.text)),
			)
		})),

		Div(
			Class("outreach-actions"),
			Button(
				Type("button"),
				Class("btn btn-primary copy-email"),
				g.Attr("data-copy", messages.EmailBody),
				g.Text("Copy Email"),
			),
			g.If(mailto != "",
				A(Class("btn btn-ghost"), Href(mailto), g.Text("Send Email")),
			),
		),
	)
}
