package catalog

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"kalaverse/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.ready)

	r.Get("/artworks", s.list)
	r.Get("/artworks/{id}", s.get)
	r.Get("/categories", s.categories)

	return r
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		if s.Log != nil {
			s.Log.Warn("readyz failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type listResp struct {
	Artworks   []Artwork `json:"artworks"`
	Count      int       `json:"count"`
	Categories []string  `json:"categories"`
}

// list serves the gallery view. The optional q and category params drive
// the same filter the storefront applies per keystroke; an empty result is
// a 200 with count zero, never an error.
func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	all, err := s.Store.ListSortedByID(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list artworks failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	search := NewSearch(all)
	search.SetQuery(r.URL.Query().Get("q"))
	if c := r.URL.Query().Get("category"); c != "" {
		search.SetCategory(c)
	}

	results := search.Results()
	kit.WriteJSON(w, http.StatusOK, listResp{
		Artworks:   results,
		Count:      len(results),
		Categories: search.Categories(),
	})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad id", map[string]any{"id": raw})
		return
	}

	a, ok, err := s.Store.Get(r.Context(), id)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("get artwork failed", zap.Error(err), zap.Int("id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, a)
}

func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	all, err := s.Store.ListSortedByID(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list artworks failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, NewSearch(all).Categories())
}
