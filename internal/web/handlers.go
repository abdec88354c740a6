package web

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"

	"github.com/presspilot/presspilot/internal/leads"
	"github.com/presspilot/presspilot/internal/web/components"
)

// LandingPage renders the marketing page with the lead form
func (s *Server) LandingPage(w http.ResponseWriter, r *http.Request) {
	page := components.Layout(
		components.PageConfig{},
		components.Hero(),
		components.Features(),
		components.PageFooter(),
		components.FooterCTA(),
	)

	renderPage(w, page)
}

// Health is the liveness endpoint
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// CreateLead starts a lead session for the submitted website and redirects
// to its page. Empty input never issues a fetch.
func (s *Server) CreateLead(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	website := strings.TrimSpace(r.PostFormValue("website"))
	if website == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	controller := leads.NewController(s.finder)
	id := s.sessions.Create(controller)

	// The fetch outlives this request; the session page polls its state
	controller.Load(context.Background(), website)

	http.Redirect(w, r, "/leads/"+id, http.StatusSeeOther)
}

// LeadPage renders the current state of a lead session: loading, error,
// empty, or the journalist cards
func (s *Server) LeadPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session")
	controller, ok := s.sessions.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	query := controller.Query()

	var body g.Node
	refresh := 0

	switch query.Phase {
	case leads.QueryLoading:
		body = components.LeadLoading(query.Key.Website)
		refresh = 2

	case leads.QueryError:
		body = components.LeadError(query.Message, query.Detail)

	case leads.QuerySuccess:
		if len(query.Journalists) == 0 {
			body = components.LeadEmpty()
			break
		}

		rows := make([]components.RowView, len(query.Journalists))
		anyLoading := false
		for i, j := range query.Journalists {
			key := leads.RowKey(j, i)
			outreach := controller.Row(key)
			rows[i] = components.RowView{
				Index:      i,
				Key:        key,
				Journalist: j,
				Expanded:   controller.Expanded(key),
				Outreach:   outreach,
			}
			if rows[i].Expanded && outreach.Phase == leads.OutreachLoading {
				anyLoading = true
			}
		}
		if anyLoading {
			refresh = 3
		}

		body = components.JournalistCards(id, controller.Profile().Name, rows)

	default:
		body = components.LeadLoading(query.Key.Website)
		refresh = 2
	}

	page := components.Layout(
		components.PageConfig{
			Title:   "Your journalist matches - PressPilot",
			Refresh: refresh,
		},
		body,
		components.PageFooter(),
	)

	renderPage(w, page)
}

// ToggleRow expands or collapses one journalist row, kicking off the
// outreach-draft fetch on first expand
func (s *Server) ToggleRow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session")
	controller, ok := s.sessions.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		http.Error(w, "bad row index", http.StatusBadRequest)
		return
	}

	query := controller.Query()
	if query.Phase != leads.QuerySuccess || index >= len(query.Journalists) {
		http.Redirect(w, r, "/leads/"+id, http.StatusSeeOther)
		return
	}

	journalist := query.Journalists[index]
	key := leads.RowKey(journalist, index)

	// The draft fetch outlives this request, like the list fetch
	controller.ToggleExpanded(context.Background(), key, journalist)

	http.Redirect(w, r, "/leads/"+id+"#row-"+strconv.Itoa(index), http.StatusSeeOther)
}

func renderPage(w http.ResponseWriter, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = page.Render(w)
}
