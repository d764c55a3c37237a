package cart

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"kalaverse/internal/auth"
	"kalaverse/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

// Pinger is implemented by storage backends that can report liveness
// (Redis); the file and memory stores have nothing to probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

func NewHandler(s *Server, jwt *auth.TokenMaker, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.RequestLogger(deps.Log))

	if deps.Registry != nil {
		metrics := kit.NewMetrics(deps.Registry)
		r.Use(metrics.Middleware(deps.Service, kit.RoutePattern))

		if deps.MetricsEnabled {
			r.With(kit.BearerGuard(deps.MetricsToken)).
				Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
		}
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.readyz)

	r.Group(func(pr chi.Router) {
		pr.Use(AuthJWT(jwt))
		pr.Get("/cart", s.get)
		pr.Post("/cart/items", s.add)
		pr.Put("/cart/items/{id}", s.setQuantity)
		pr.Delete("/cart/items/{id}", s.remove)
		pr.Delete("/cart", s.clear)
	})

	return r
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	p, ok := s.Carts.store.(Pinger)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
	defer cancel()

	if err := p.Ping(ctx); err != nil {
		if s.Log != nil {
			s.Log.Warn("readyz failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}
