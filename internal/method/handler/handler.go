// Package handler is the thin HTTP layer of the method API: decode the
// body, delegate to the dispatcher, wrap the result in the response
// envelope. Business logic stays in the service.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"scoreapi/internal/method/metrics"
	"scoreapi/internal/method/service"
	"scoreapi/pkg/apierrors"
	"scoreapi/pkg/platform/httputil"
	"scoreapi/pkg/requestcontext"
)

// Service defines the dispatcher interface consumed by the HTTP layer.
type Service interface {
	Handle(ctx context.Context, body map[string]any, call *service.CallContext) (any, int)
}

// Handler serves POST /method.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs the method handler with its dependencies.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{service: service, logger: logger, metrics: metrics}
}

// Register mounts the method endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/method", h.HandleMethod)
}

// HandleMethod handles POST /method requests.
func (h *Handler) HandleMethod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	// UseNumber keeps integers exact: phones and client ids must not go
	// through float64.
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		h.logger.WarnContext(ctx, "malformed request body",
			"request_id", requestID,
			"error", err.Error(),
		)
		h.metrics.ObserveRequest("", apierrors.BadRequest, time.Since(start))
		httputil.WriteResult(w, nil, apierrors.BadRequest)
		return
	}

	call := &service.CallContext{}
	result, code := h.service.Handle(ctx, body, call)

	method, _ := body["method"].(string)
	h.metrics.ObserveRequest(method, code, time.Since(start))
	h.logger.InfoContext(ctx, "method handled",
		"request_id", requestID,
		"api_method", method,
		"code", code,
		"has", call.Has,
		"nclients", call.NClients,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteResult(w, result, code)
}
