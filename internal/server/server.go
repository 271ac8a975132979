// Package server exposes a RecipeSource over the recipes wire contract:
// GET /api/recipes?search=&ingredient= returning a JSON array. It backs
// the demo and serve modes so the browser can run without an external
// backend.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/khmoussa/dishboard/internal/domain"
	"github.com/khmoussa/dishboard/internal/logger"
	"github.com/khmoussa/dishboard/internal/recipe"
)

// Server is the demo HTTP server.
type Server struct {
	mux *http.ServeMux
	src *recipe.LocalSource
	log *logger.Logger
}

// New creates a configured server over the given source.
func New(src *recipe.LocalSource, log *logger.Logger) *Server {
	s := &Server{
		mux: http.NewServeMux(),
		src: src,
		log: log,
	}
	s.mux.HandleFunc("/api/recipes", s.handleList)
	s.mux.HandleFunc("/api/recipes/", s.handleGet)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	f := domain.Filter{
		Search:     r.URL.Query().Get("search"),
		Ingredient: r.URL.Query().Get("ingredient"),
	}

	recipes, err := s.src.Fetch(r.Context(), f)
	if err != nil {
		s.log.Error("server: fetch: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.log.Debug("server: %s -> %d recipe(s)", r.URL.RequestURI(), len(recipes))
	writeJSON(w, recipes)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/recipes/")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	rec, err := s.src.Get(r.Context(), domain.RecipeID(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		s.log.Error("server: get %s: %v", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, rec)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}
