//go:generate mockery --name FriendshipRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"habit_quest/internal/middleware"
	"habit_quest/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type FriendshipRepository interface {
	Create(ctx context.Context, tx *gorm.DB, friendship *model.Friendship) error
	FindByID(ctx context.Context, db *gorm.DB, friendshipID uuid.UUID) (*model.Friendship, error)
	// FindBetween は申請の向きに関わらず2ユーザー間の関係を探す
	FindBetween(ctx context.Context, db *gorm.DB, userID, otherID uuid.UUID) (*model.Friendship, error)
	// FindAcceptedByUser は双方向 (自分が申請者でも相手でも) の成立済み友達を User/Friend 付きで返す
	FindAcceptedByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Friendship, error)
	// FindPendingForUser は自分宛ての未応答申請を申請者情報付きで返す
	FindPendingForUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Friendship, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, friendshipID uuid.UUID, status model.FriendshipStatus) error
	Delete(ctx context.Context, tx *gorm.DB, friendshipID uuid.UUID) error
}

type gormFriendshipRepository struct{}

func NewGormFriendshipRepository() FriendshipRepository {
	return &gormFriendshipRepository{}
}

func (r *gormFriendshipRepository) Create(ctx context.Context, tx *gorm.DB, friendship *model.Friendship) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(friendship)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate friendship on create",
				"user_id", friendship.UserID.String(),
				"friend_id", friendship.FriendID.String(),
			)
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating friendship in DB", "error", result.Error)
		return fmt.Errorf("gormFriendshipRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormFriendshipRepository) FindByID(ctx context.Context, db *gorm.DB, friendshipID uuid.UUID) (*model.Friendship, error) {
	var friendship model.Friendship
	result := db.WithContext(ctx).
		Preload("User").
		Preload("Friend").
		Where("friendship_id = ?", friendshipID).
		First(&friendship)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormFriendshipRepository.FindByID: %w", result.Error)
	}
	return &friendship, nil
}

func (r *gormFriendshipRepository) FindBetween(ctx context.Context, db *gorm.DB, userID, otherID uuid.UUID) (*model.Friendship, error) {
	var friendship model.Friendship
	result := db.WithContext(ctx).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)", userID, otherID, otherID, userID).
		First(&friendship)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormFriendshipRepository.FindBetween: %w", result.Error)
	}
	return &friendship, nil
}

func (r *gormFriendshipRepository) FindAcceptedByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Friendship, error) {
	var friendships []*model.Friendship
	result := db.WithContext(ctx).
		Preload("User").
		Preload("Friend").
		Where("(user_id = ? OR friend_id = ?) AND status = ?", userID, userID, model.FriendshipStatusAccepted).
		Order("updated_at DESC").
		Find(&friendships)
	if result.Error != nil {
		return nil, fmt.Errorf("gormFriendshipRepository.FindAcceptedByUser: %w", result.Error)
	}
	return friendships, nil
}

func (r *gormFriendshipRepository) FindPendingForUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Friendship, error) {
	var friendships []*model.Friendship
	result := db.WithContext(ctx).
		Preload("User").
		Where("friend_id = ? AND status = ?", userID, model.FriendshipStatusPending).
		Order("created_at DESC").
		Find(&friendships)
	if result.Error != nil {
		return nil, fmt.Errorf("gormFriendshipRepository.FindPendingForUser: %w", result.Error)
	}
	return friendships, nil
}

func (r *gormFriendshipRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, friendshipID uuid.UUID, status model.FriendshipStatus) error {
	result := tx.WithContext(ctx).Model(&model.Friendship{}).
		Where("friendship_id = ?", friendshipID).
		UpdateColumn("status", status)
	if result.Error != nil {
		return fmt.Errorf("gormFriendshipRepository.UpdateStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormFriendshipRepository) Delete(ctx context.Context, tx *gorm.DB, friendshipID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("friendship_id = ?", friendshipID).Delete(&model.Friendship{})
	if result.Error != nil {
		return fmt.Errorf("gormFriendshipRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
