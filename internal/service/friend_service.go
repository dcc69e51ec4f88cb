package service

import (
	"context"
	"errors"

	"habit_quest/internal/middleware"
	"habit_quest/internal/model"
	"habit_quest/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const friendSearchLimit = 20

type FriendService interface {
	SendRequest(ctx context.Context, userID uuid.UUID, req *model.SendFriendRequestRequest) (*model.Friendship, error)
	RespondRequest(ctx context.Context, userID uuid.UUID, req *model.RespondFriendRequestRequest) error
	ListFriends(ctx context.Context, userID uuid.UUID) ([]*model.FriendResponse, error)
	ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]*model.FriendRequestResponse, error)
	RemoveFriend(ctx context.Context, userID, friendshipID uuid.UUID) error
	SearchUsers(ctx context.Context, userID uuid.UUID, query string) ([]*model.UserResponse, error)
}

type friendService struct {
	db             *gorm.DB
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
}

func NewFriendService(db *gorm.DB, friendshipRepo repository.FriendshipRepository, userRepo repository.UserRepository) FriendService {
	return &friendService{
		db:             db,
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
	}
}

func (s *friendService) SendRequest(ctx context.Context, userID uuid.UUID, req *model.SendFriendRequestRequest) (*model.Friendship, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "friend_id", req.FriendID)

	if userID == req.FriendID {
		return nil, model.NewAppError("INVALID_INPUT", "自分自身に友達申請はできません。", "friend_id", model.ErrInvalidInput)
	}

	var created *model.Friendship

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.userRepo.FindByID(ctx, tx, req.FriendID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "指定されたユーザーが見つかりません。", "friend_id", err)
			}
			logger.Error("Error finding friend user in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "友達申請中にエラーが発生しました。", "", err)
		}

		// どちらの向きでも既存の関係があれば申請不可
		existing, err := s.friendshipRepo.FindBetween(ctx, tx, userID, req.FriendID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error checking existing friendship", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "友達申請中にエラーが発生しました。", "", err)
		}
		if existing != nil {
			if existing.Status == model.FriendshipStatusAccepted {
				return model.NewAppError("ALREADY_FRIENDS", "すでに友達です。", "", model.ErrConflict)
			}
			return model.NewAppError("REQUEST_EXISTS", "すでに申請が存在します。", "", model.ErrConflict)
		}

		friendship := &model.Friendship{
			FriendshipID: uuid.New(),
			UserID:       userID,
			FriendID:     req.FriendID,
			Status:       model.FriendshipStatusPending,
		}
		if err := s.friendshipRepo.Create(ctx, tx, friendship); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("REQUEST_EXISTS", "すでに申請が存在します。", "", err)
			}
			logger.Error("Error creating friendship in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "友達申請に失敗しました。", "", err)
		}

		created = friendship
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Friend request sent", "friendship_id", created.FriendshipID)
	return created, nil
}

func (s *friendService) RespondRequest(ctx context.Context, userID uuid.UUID, req *model.RespondFriendRequestRequest) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "friendship_id", req.FriendshipID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		friendship, err := s.friendshipRepo.FindByID(ctx, tx, req.FriendshipID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "友達申請が見つかりません。", "", err)
			}
			logger.Error("Error finding friendship in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "友達申請への応答中にエラーが発生しました。", "", err)
		}

		// 応答できるのは申請の受信者だけ
		if friendship.FriendID != userID {
			return model.NewAppError("FORBIDDEN", "この申請に応答する権限がありません。", "", model.ErrForbidden)
		}
		if friendship.Status != model.FriendshipStatusPending {
			return model.NewAppError("ALREADY_RESPONDED", "この申請にはすでに応答済みです。", "", model.ErrConflict)
		}

		status := model.FriendshipStatusAccepted
		if req.Action == "decline" {
			status = model.FriendshipStatusDeclined
		}
		if err := s.friendshipRepo.UpdateStatus(ctx, tx, friendship.FriendshipID, status); err != nil {
			logger.Error("Error updating friendship status", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "友達申請への応答に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Friend request responded", "action", req.Action)
	return nil
}

func (s *friendService) ListFriends(ctx context.Context, userID uuid.UUID) ([]*model.FriendResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	friendships, err := s.friendshipRepo.FindAcceptedByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list friends", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "友達一覧の取得に失敗しました。", "", err)
	}

	responses := make([]*model.FriendResponse, 0, len(friendships))
	for _, f := range friendships {
		// 自分から見た「相手側」を選ぶ
		other := f.Friend
		if f.FriendID == userID {
			other = f.User
		}
		if other == nil {
			logger.Warn("Friendship without loaded user, skipping", "friendship_id", f.FriendshipID)
			continue
		}
		responses = append(responses, &model.FriendResponse{
			FriendshipID: f.FriendshipID,
			Friend:       model.NewUserResponse(other),
			Since:        f.UpdatedAt,
		})
	}
	return responses, nil
}

func (s *friendService) ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]*model.FriendRequestResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	friendships, err := s.friendshipRepo.FindPendingForUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list pending requests", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "友達申請一覧の取得に失敗しました。", "", err)
	}

	responses := make([]*model.FriendRequestResponse, 0, len(friendships))
	for _, f := range friendships {
		if f.User == nil {
			logger.Warn("Pending request without loaded user, skipping", "friendship_id", f.FriendshipID)
			continue
		}
		responses = append(responses, &model.FriendRequestResponse{
			FriendshipID: f.FriendshipID,
			From:         model.NewUserResponse(f.User),
			RequestedAt:  f.CreatedAt,
		})
	}
	return responses, nil
}

func (s *friendService) RemoveFriend(ctx context.Context, userID, friendshipID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "friendship_id", friendshipID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		friendship, err := s.friendshipRepo.FindByID(ctx, tx, friendshipID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "友達関係が見つかりません。", "", err)
			}
			logger.Error("Error finding friendship in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "友達の削除中にエラーが発生しました。", "", err)
		}

		// 当事者以外は削除不可
		if friendship.UserID != userID && friendship.FriendID != userID {
			return model.NewAppError("FORBIDDEN", "この友達関係を削除する権限がありません。", "", model.ErrForbidden)
		}

		if err := s.friendshipRepo.Delete(ctx, tx, friendshipID); err != nil {
			logger.Error("Error deleting friendship in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "友達の削除に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Friend removed")
	return nil
}

func (s *friendService) SearchUsers(ctx context.Context, userID uuid.UUID, query string) ([]*model.UserResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if query == "" {
		return []*model.UserResponse{}, nil
	}

	users, err := s.userRepo.SearchByUsername(ctx, s.db, query, userID, friendSearchLimit)
	if err != nil {
		logger.Error("Failed to search users", "error", err, "query", query)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザー検索に失敗しました。", "", err)
	}

	responses := make([]*model.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, model.NewUserResponse(u))
	}
	return responses, nil
}
