// Package service dispatches validated method requests to the business
// handlers. The service is stateless across requests; everything mutable is
// per call.
package service

import (
	"context"
	"log/slog"
	"strconv"

	"scoreapi/internal/method/auth"
	"scoreapi/internal/method/models"
	"scoreapi/internal/scoring"
	"scoreapi/pkg/apierrors"
	"scoreapi/pkg/requestcontext"
)

// Method names the dispatcher routes on.
const (
	MethodOnlineScore      = "online_score"
	MethodClientsInterests = "clients_interests"
)

// adminScore is returned to privileged callers without touching the store.
const adminScore = 42

// CallContext is the observability side channel of one dispatch: handlers
// record what they saw, the HTTP layer logs it after the call returns. It
// is never part of the response body.
type CallContext struct {
	Has      []string
	NClients int
}

// Service routes validated envelopes to the business handlers.
type Service struct {
	store     scoring.Store
	logger    *slog.Logger
	salt      string
	adminSalt string
}

// New constructs the dispatcher with its store collaborator and auth salts.
func New(store scoring.Store, logger *slog.Logger, salt, adminSalt string) *Service {
	return &Service{store: store, logger: logger, salt: salt, adminSalt: adminSalt}
}

// Handle validates the envelope, authenticates the caller and dispatches to
// the named method. The returned value is the response body payload; the
// code is the protocol status.
func (s *Service) Handle(ctx context.Context, body map[string]any, call *CallContext) (any, int) {
	req := models.BindMethodRequest(body)
	if !req.Valid() {
		return apierrors.FieldErrors(req.Errors()), apierrors.InvalidRequest
	}

	if !auth.Verify(req, requestcontext.Now(ctx), s.salt, s.adminSalt) {
		return nil, apierrors.Forbidden
	}

	switch req.Method {
	case MethodOnlineScore:
		return s.onlineScore(ctx, req, call)
	case MethodClientsInterests:
		return s.clientsInterests(ctx, req, call)
	}
	return apierrors.FieldErrors{"method": "Unknown method"}, apierrors.InvalidRequest
}

func (s *Service) onlineScore(ctx context.Context, req *models.MethodRequest, call *CallContext) (any, int) {
	r := models.BindOnlineScoreRequest(req.Arguments)
	if !r.Valid() {
		return apierrors.FieldErrors(r.Errors()), apierrors.InvalidRequest
	}

	call.Has = r.Supplied()

	if req.IsAdmin() {
		return map[string]any{"score": adminScore}, apierrors.OK
	}

	score := scoring.Score(ctx, s.store, scoring.Params{
		Phone:     r.Phone,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Birthday:  r.Birthday,
		Gender:    r.Gender,
	})
	return map[string]any{"score": score}, apierrors.OK
}

func (s *Service) clientsInterests(ctx context.Context, req *models.MethodRequest, call *CallContext) (any, int) {
	r := models.BindClientsInterestsRequest(req.Arguments)
	if !r.Valid() {
		return apierrors.FieldErrors(r.Errors()), apierrors.InvalidRequest
	}

	// Iteration order follows the input; the store is the source of truth,
	// so a lookup failure fails the whole call.
	interests := make(map[string][]string, len(r.ClientIDs))
	for _, clientID := range r.ClientIDs {
		list, err := scoring.Interests(ctx, s.store, clientID)
		if err != nil {
			s.logger.ErrorContext(ctx, "interests lookup failed",
				"request_id", requestcontext.RequestID(ctx),
				"client_id", clientID,
				"error", err.Error(),
			)
			return nil, apierrors.Internal
		}
		interests[strconv.FormatInt(clientID, 10)] = list
	}
	call.NClients = len(r.ClientIDs)

	return interests, apierrors.OK
}
