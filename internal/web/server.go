// Package web serves the PressPilot landing page and the lead-session flow
// on top of chi, with all HTML rendered server-side.
package web

import (
	"embed"
	"io/fs"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/presspilot/presspilot/internal/leads"
	"github.com/presspilot/presspilot/internal/model"
)

//go:embed static
var staticFS embed.FS

// Server hosts the landing page and lead sessions
type Server struct {
	cfg      *model.Config
	finder   leads.Finder
	sessions *SessionStore
	router   chi.Router
}

// NewServer wires the router. The finder is the matching service the lead
// controllers drive.
func NewServer(cfg *model.Config, finder leads.Finder) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		finder:   finder,
		sessions: NewSessionStore(cfg.Server.SessionTTL),
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	r.Get("/", s.LandingPage)
	r.Get("/health", s.Health)
	r.Post("/leads", s.CreateLead)
	r.Get("/leads/{session}", s.LeadPage)
	r.Post("/leads/{session}/rows/{index}/toggle", s.ToggleRow)

	s.router = r
	return s, nil
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server on the configured port
func (s *Server) ListenAndServe() error {
	defer s.sessions.Close()

	log.Printf("PressPilot listening on http://localhost%s", s.cfg.Server.Port)
	return http.ListenAndServe(s.cfg.Server.Port, s.router)
}
