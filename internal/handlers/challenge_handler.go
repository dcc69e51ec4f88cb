// internal/handlers/challenge_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"habit_quest/internal/middleware"
	"habit_quest/internal/model"
	"habit_quest/internal/service"
	"habit_quest/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ChallengeHandler struct {
	service service.ChallengeService
	logger  *slog.Logger
}

func NewChallengeHandler(s service.ChallengeService, logger *slog.Logger) *ChallengeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChallengeHandler{
		service: s,
		logger:  logger,
	}
}

// GetAvailableChallenges はカタログの全チャレンジに参加状態を付けて返すハンドラ
func (h *ChallengeHandler) GetAvailableChallenges(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAvailableChallenges"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	challenges, err := h.service.ListAvailable(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, challenges, logger)
}

// GetActiveChallenges は進行中チャレンジを返すハンドラ
func (h *ChallengeHandler) GetActiveChallenges(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetActiveChallenges"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	challenges, err := h.service.ListActive(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, challenges, logger)
}

// GetCompletedChallenges は達成済みチャレンジを返すハンドラ
func (h *ChallengeHandler) GetCompletedChallenges(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCompletedChallenges"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	challenges, err := h.service.ListCompleted(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, challenges, logger)
}

// JoinChallenge はチャレンジに参加するハンドラ
func (h *ChallengeHandler) JoinChallenge(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "JoinChallenge"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.JoinChallengeRequest
	if appErr := webutil.DecodeAndValidate(r, &req); appErr != nil {
		logger.Warn("Invalid join challenge request", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	joined, err := h.service.Join(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Challenge joined successfully", slog.String("challenge_id", req.ChallengeID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, joined, logger)
}

// AbandonChallenge は進行中のチャレンジから離脱するハンドラ
func (h *ChallengeHandler) AbandonChallenge(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AbandonChallenge"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	challengeID, err := uuid.Parse(chi.URLParam(r, "challenge_id"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_INPUT", "チャレンジIDの形式が正しくありません。", "challenge_id", model.ErrInvalidInput))
		return
	}

	if err := h.service.Abandon(r.Context(), userID, challengeID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
