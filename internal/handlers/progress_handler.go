// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"habit_quest/internal/middleware"
	"habit_quest/internal/model"
	"habit_quest/internal/service"
	"habit_quest/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// GetProgress はヒートマップとストリーク上位を返すハンドラ
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgress"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	progress, err := h.service.GetProgress(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// GetStats はアカウント統計を返すハンドラ
func (h *ProgressHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	stats, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
