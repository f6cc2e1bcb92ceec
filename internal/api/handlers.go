package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	errorvalues "github.com/limbo/challenger/internal/error_values"
	"github.com/limbo/challenger/internal/service"
	"github.com/limbo/challenger/pkg/entity"
	"github.com/limbo/challenger/pkg/httputil"
)

type ChallengesResponse struct {
	Challenges []entity.Challenge `json:"challenges"`
}

type CreateChallengeResponse struct {
	Success   bool              `json:"success"`
	Challenge *entity.Challenge `json:"challenge"`
}

type UpsertUserResponse struct {
	Success bool         `json:"success"`
	User    *entity.User `json:"user"`
}

type TrackVisitResponse struct {
	Success bool `json:"success"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			GetLoggerFromCtx(r.Context()).Error("health check failed", slog.String("error", err.Error()))
			httputil.WriteJSONResponse(w, http.StatusServiceUnavailable, map[string]any{"status": "unavailable"})
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) GetTopChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()
	challenges, err := s.challengesService.GetTopChallenges(ctx)
	if err != nil {
		logger.Error("getting top challenges error", slog.String("error", err.Error()))
		writeServiceError(w, err, "error while getting top challenges")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ChallengesResponse{Challenges: challenges})
	logger.Info("top challenges provided")
}

func (s *Server) GetOngoingChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()
	challenges, err := s.challengesService.GetOngoingChallenges(ctx)
	if err != nil {
		logger.Error("getting ongoing challenges error", slog.String("error", err.Error()))
		writeServiceError(w, err, "error while getting ongoing challenges")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ChallengesResponse{Challenges: challenges})
	logger.Info("ongoing challenges provided")
}

func (s *Server) CheckChallengeStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("status check error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	res := s.challengesService.CheckAndExpire(ctx, id)
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	if res.StatusChanged {
		logger.Info("challenge expired", slog.String("challenge_id", id.String()), slog.String("status", string(res.NewStatus)))
	}
}

func (s *Server) GetCreatorDetails(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("creator details error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid creator id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()
	details, err := s.challengesService.GetCreatorDetails(ctx, id)
	if err != nil {
		logger.Error("creator details error", slog.String("error", err.Error()))
		writeServiceError(w, err, "error while getting creator details")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, details)
}

func (s *Server) TrackVisit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("track visit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid creator id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	ok := s.usersService.TrackVisit(ctx, id, ClientIP(r))
	httputil.WriteJSONResponse(w, http.StatusOK, TrackVisitResponse{Success: ok})
}

func (s *Server) UpsertUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("upsert user error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.UpsertUserRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("upsert user error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	user, err := s.usersService.UpsertUser(ctx, uid, &req)
	if err != nil {
		logger.Error("upsert user error", slog.String("error", err.Error()))
		writeServiceError(w, err, "internal error while saving user")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, UpsertUserResponse{Success: true, User: user})
	logger.Info("user upserted")
}

func (s *Server) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.CreateChallengeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	user, err := s.usersService.GetByID(ctx, uid)
	if err != nil {
		logger.Error("create challenge error: resolving creator", slog.String("error", err.Error()))
		writeServiceError(w, err, "internal error while creating challenge")
		return
	}
	challenge, err := s.challengesService.CreateChallenge(ctx, user.Username, &req)
	if err != nil {
		logger.Error("create challenge error", slog.String("error", err.Error()))
		writeServiceError(w, err, "internal error while creating challenge")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, CreateChallengeResponse{Success: true, Challenge: challenge})
	logger.Info("challenge created", slog.String("challenge_id", challenge.ID.String()))
}

func (s *Server) CompleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("complete task error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("complete task error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	res, err := s.challengesService.MarkTaskComplete(ctx, id, uid)
	if err != nil {
		logger.Error("complete task error", slog.String("error", err.Error()))
		writeServiceError(w, err, "internal error while completing task")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	logger.Info("task completed", slog.String("task_id", id.String()), slog.Bool("all_completed", res.AllCompleted))
}

// writeServiceError maps error categories to statuses. Infrastructure details stay in the log.
func writeServiceError(w http.ResponseWriter, err error, internalMsg string) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrUnauthorized):
		httputil.WriteErrorResponse(w, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrNotFound):
		httputil.WriteErrorResponse(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrConflict):
		httputil.WriteErrorResponse(w, http.StatusConflict, err.Error(), nil)
	default:
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, internalMsg, nil)
	}
}
