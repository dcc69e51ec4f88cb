// internal/handlers/habit_handler.go
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

type HabitHandler struct {
	service service.HabitService
	logger  *slog.Logger
}

func NewHabitHandler(s service.HabitService, logger *slog.Logger) *HabitHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HabitHandler{
		service: s,
		logger:  logger,
	}
}

// PostHabit は新しい習慣を作成するハンドラ
func (h *HabitHandler) PostHabit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostHabit"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.CreateHabitRequest
	if appErr := webutil.DecodeAndValidate(r, &req); appErr != nil {
		logger.Warn("Invalid create habit request", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	habit, err := h.service.CreateHabit(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating habit in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Habit created successfully", slog.String("habit_id", habit.HabitID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, habit, logger)
}

// GetHabits は習慣一覧 (ストリーク・本日完了フラグ付き) を返すハンドラ
func (h *HabitHandler) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetHabits"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	habits, err := h.service.ListHabits(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, habits, logger)
}

// DeleteHabit は習慣と達成履歴を削除するハンドラ
func (h *HabitHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteHabit"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	habitID, err := uuid.Parse(chi.URLParam(r, "habit_id"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_INPUT", "習慣IDの形式が正しくありません。", "habit_id", model.ErrInvalidInput))
		return
	}

	if err := h.service.DeleteHabit(r.Context(), userID, habitID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CompleteHabit は習慣の完了を記録し、XP・レベルの変化を返すハンドラ
func (h *HabitHandler) CompleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CompleteHabit"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	habitID, err := uuid.Parse(chi.URLParam(r, "habit_id"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_INPUT", "習慣IDの形式が正しくありません。", "habit_id", model.ErrInvalidInput))
		return
	}

	req := model.CompleteHabitRequest{HabitID: habitID}
	resp, err := h.service.CompleteHabit(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Habit completed successfully",
		slog.String("habit_id", habitID.String()),
		slog.Int("total_xp", resp.TotalXP),
		slog.Int("level", resp.NewLevel),
	)
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}
