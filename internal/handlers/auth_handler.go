// internal/handlers/auth_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"habit_quest/internal/middleware"
	"habit_quest/internal/model"
	"habit_quest/internal/service"
	"habit_quest/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		service: s,
		logger:  logger,
	}
}

// Register は新規ユーザーを登録するハンドラ
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Register"))

	var req model.RegisterRequest
	if appErr := webutil.DecodeAndValidate(r, &req); appErr != nil {
		logger.Warn("Invalid register request", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		logger.Error("Error registering user in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User registered successfully", slog.String("user_id", resp.User.UserID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// Login はログインしてJWTを返すハンドラ
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Login"))

	var req model.LoginRequest
	if appErr := webutil.DecodeAndValidate(r, &req); appErr != nil {
		logger.Warn("Invalid login request", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Login successful", slog.String("user_id", resp.User.UserID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetMe は認証済みユーザー自身の情報を返すハンドラ
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMe"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}
