package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/blackhillsconsortium/annualreport/internal/flywheel"
	"github.com/blackhillsconsortium/annualreport/internal/pages"
	"github.com/blackhillsconsortium/annualreport/internal/report"
	"github.com/blackhillsconsortium/annualreport/internal/site"
	"github.com/blackhillsconsortium/annualreport/internal/snapshot"
)

func (s *Server) registerPages(r chi.Router) {
	fixed := map[string]func(*pages.Builder) site.Page{
		"/":           site.HomePage,
		"/financials": site.FinancialsPage,
		"/team":       site.TeamPage,
		"/goals":      site.GoalsPage,
		"/investors":  site.InvestorsPage,
		"/print":      site.PrintPage,
	}
	for path, build := range fixed {
		r.Get(path, func(w http.ResponseWriter, r *http.Request) {
			b := s.Builder()
			s.render(w, b, build(b), http.StatusOK)
		})
	}

	r.Get("/flywheel", func(w http.ResponseWriter, r *http.Request) {
		b := s.Builder()
		s.render(w, b, site.FlywheelPage(b, r.URL.Query().Get("focus")), http.StatusOK)
	})
	r.Get("/entity/{slug}", s.handleEntity)
	r.Get("/compare", s.handleCompare)
	r.Get("/compare/{competitor}", s.handleCompare)
}

func (s *Server) handleEntity(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if canonical, moved := report.CanonicalSlug(slug); moved {
		http.Redirect(w, r, pages.EntityPath(canonical), http.StatusMovedPermanently)
		return
	}

	b := s.Builder()
	p, err := site.EntityPage(b, slug)
	if errors.Is(err, report.ErrNotFound) {
		s.render(w, b, site.NotFoundPage(b, slug), http.StatusNotFound)
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, b, p, http.StatusOK)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "competitor")
	if key == report.DefaultComparison {
		http.Redirect(w, r, pages.ComparePath(key), http.StatusMovedPermanently)
		return
	}

	b := s.Builder()
	p, err := site.ComparePage(b, key)
	if errors.Is(err, report.ErrNotFound) {
		s.render(w, b, site.NotFoundPage(b, key), http.StatusNotFound)
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, b, p, http.StatusOK)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	b := s.Builder()
	s.render(w, b, site.NotFoundPage(b, ""), http.StatusNotFound)
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	content, contentType, ok := site.Asset(chi.URLParam(r, "file"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(content))
}

func (s *Server) registerAPI(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/entities", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, s.Builder().Dataset().Entities)
		})
		r.Get("/entities/{slug}", s.handleAPIEntity)
		r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, s.Builder().Dataset().Metrics)
		})
		r.Get("/goals", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, site.GoalsPayload(s.Builder()))
		})
		r.Get("/flywheel", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, site.FlywheelPayload(s.Builder().Dataset(), r.URL.Query().Get("focus")))
		})
		r.Get("/flywheel.mmd", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte(flywheel.Mermaid(s.Builder().Dataset().Flywheel)))
		})
		r.Get("/remote/{kind}", s.handleRemote)
	})
}

func (s *Server) handleAPIEntity(w http.ResponseWriter, r *http.Request) {
	slug, _ := report.CanonicalSlug(chi.URLParam(r, "slug"))
	p, err := site.EntityPayload(s.Builder().Dataset(), slug)
	if errors.Is(err, report.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleRemote(w http.ResponseWriter, r *http.Request) {
	if s.snapshots == nil {
		writeError(w, http.StatusServiceUnavailable, "remote snapshots are not enabled")
		return
	}
	kind, err := snapshot.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	subject := ""
	if kind == snapshot.KindEntity {
		subject = r.URL.Query().Get("slug")
		if subject == "" {
			writeError(w, http.StatusBadRequest, "slug query parameter is required")
			return
		}
	}

	snap, err := s.snapshots.Latest(r.Context(), kind, subject)
	if errors.Is(err, snapshot.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		s.logger.Error("reading snapshot", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "reading snapshot failed")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) render(w http.ResponseWriter, b *pages.Builder, p site.Page, status int) {
	if err := s.renderer.RenderPage(w, b, p, status); err != nil {
		s.serverError(w, err)
	}
}

func (s *Server) serverError(w http.ResponseWriter, err error) {
	s.logger.Error("rendering page", zap.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
