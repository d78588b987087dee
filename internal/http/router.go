// Package httpapi wires the public routes. Transport concerns only; the
// method handler owns request semantics.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	methodhandler "scoreapi/internal/method/handler"
	"scoreapi/internal/platform/middleware"
	"scoreapi/pkg/apierrors"
	"scoreapi/pkg/platform/httputil"
)

// HealthChecker reports backend connectivity for the health endpoint.
type HealthChecker func(ctx context.Context) error

// NewRouter assembles the middleware chain and all public endpoints.
func NewRouter(h *methodhandler.Handler, logger *slog.Logger, health HealthChecker) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(logger))

	h.Register(r)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if health != nil {
			if err := health(req.Context()); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Unknown routes and wrong verbs both answer with the protocol's 404
	// envelope rather than a bare body.
	notFound := func(w http.ResponseWriter, req *http.Request) {
		httputil.WriteResult(w, nil, apierrors.NotFound)
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}
