package cart

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"kalaverse/internal/notify"
	"kalaverse/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Carts   *Carts
	Catalog *CatalogClient
	Notify  notify.Sink
	Log     *zap.Logger
}

type cartResp struct {
	Items      []Line         `json:"items"`
	TotalItems int            `json:"total_items"`
	TotalPrice int64          `json:"total_price"`
	Notice     *notify.Notice `json:"notice,omitempty"`
}

func (s *Server) respond(w http.ResponseWriter, status int, c *Cart, ev Event) {
	resp := cartResp{
		Items:      c.Lines(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
	if n, ok := ev.Notice(); ok {
		resp.Notice = &n
		if s.Notify != nil {
			s.Notify.Publish(n)
		}
	}
	kit.WriteJSON(w, status, resp)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		writeRejected(w, r)
		return
	}

	c := s.Carts.ForOwner(r.Context(), u.ID)
	s.respond(w, http.StatusOK, c, Event{Kind: EventNone})
}

type addReq struct {
	ArtworkID int `json:"artwork_id"`
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		writeRejected(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req addReq
	if err := dec.Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		kit.WriteError(w, r, http.StatusBadRequest, "extra data after json object", nil)
		return
	}

	a, err := s.Catalog.GetArtwork(r.Context(), req.ArtworkID)
	if err != nil {
		s.writeCatalogError(w, r, err, req.ArtworkID)
		return
	}

	c := s.Carts.ForOwner(r.Context(), u.ID)
	ev := c.Add(r.Context(), Entry{
		ID:       a.ID,
		Title:    a.Title,
		Artist:   a.Artist,
		Category: a.Category,
		Price:    a.Price,
		Image:    a.Image,
	})
	if ev.Kind == EventRejected {
		writeRejected(w, r)
		return
	}
	s.respond(w, http.StatusCreated, c, ev)
}

func (s *Server) setQuantity(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		writeRejected(w, r)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad id", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req struct {
		Quantity int `json:"quantity"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	c := s.Carts.ForOwner(r.Context(), u.ID)
	ev := c.SetQuantity(r.Context(), id, req.Quantity)
	s.respond(w, http.StatusOK, c, ev)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		writeRejected(w, r)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad id", nil)
		return
	}

	c := s.Carts.ForOwner(r.Context(), u.ID)
	ev := c.Remove(r.Context(), id)
	s.respond(w, http.StatusOK, c, ev)
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		writeRejected(w, r)
		return
	}

	c := s.Carts.ForOwner(r.Context(), u.ID)
	ev := c.Clear(r.Context())
	s.respond(w, http.StatusOK, c, ev)
}

func (s *Server) writeCatalogError(w http.ResponseWriter, r *http.Request, err error, id int) {
	switch {
	case errors.Is(err, ErrCatalogNotFound):
		kit.WriteError(w, r, http.StatusBadRequest, "invalid artwork_id", map[string]any{"artwork_id": id})
	case errors.Is(err, ErrCatalogUnavailable):
		kit.WriteError(w, r, http.StatusServiceUnavailable, "catalog unavailable", nil)
	default:
		if s.Log != nil {
			s.Log.Warn("catalog error", zap.Error(err), zap.Int("artwork_id", id))
		}
		kit.WriteError(w, r, http.StatusBadGateway, "catalog error", nil)
	}
}
