// internal/handlers/friend_handler.go
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

type FriendHandler struct {
	service service.FriendService
	logger  *slog.Logger
}

func NewFriendHandler(s service.FriendService, logger *slog.Logger) *FriendHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FriendHandler{
		service: s,
		logger:  logger,
	}
}

// PostFriendRequest は友達申請を送るハンドラ
func (h *FriendHandler) PostFriendRequest(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostFriendRequest"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.SendFriendRequestRequest
	if appErr := webutil.DecodeAndValidate(r, &req); appErr != nil {
		logger.Warn("Invalid friend request", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	friendship, err := h.service.SendRequest(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Friend request sent successfully", slog.String("friendship_id", friendship.FriendshipID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, friendship, logger)
}

// RespondFriendRequest は受信した友達申請に応答するハンドラ
func (h *FriendHandler) RespondFriendRequest(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RespondFriendRequest"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	var req model.RespondFriendRequestRequest
	if appErr := webutil.DecodeAndValidate(r, &req); appErr != nil {
		logger.Warn("Invalid respond request", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.RespondRequest(r.Context(), userID, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
}

// GetFriends は友達一覧を返すハンドラ
func (h *FriendHandler) GetFriends(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetFriends"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	friends, err := h.service.ListFriends(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, friends, logger)
}

// GetPendingRequests は自分宛ての未応答申請を返すハンドラ
func (h *FriendHandler) GetPendingRequests(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPendingRequests"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	requests, err := h.service.ListPendingRequests(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, requests, logger)
}

// DeleteFriend は友達関係を解消するハンドラ
func (h *FriendHandler) DeleteFriend(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteFriend"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	friendshipID, err := uuid.Parse(chi.URLParam(r, "friendship_id"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_INPUT", "IDの形式が正しくありません。", "friendship_id", model.ErrInvalidInput))
		return
	}

	if err := h.service.RemoveFriend(r.Context(), userID, friendshipID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SearchUsers はユーザー名でユーザーを検索するハンドラ
func (h *FriendHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SearchUsers"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return
	}

	query := r.URL.Query().Get("q")
	users, err := h.service.SearchUsers(r.Context(), userID, query)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, users, logger)
}
