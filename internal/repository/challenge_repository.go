//go:generate mockery --name ChallengeRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"habit_quest/internal/middleware"
	"habit_quest/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type ChallengeRepository interface {
	// --- カタログ (読み取り専用) ---
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Challenge, error)
	FindByID(ctx context.Context, db *gorm.DB, challengeID uuid.UUID) (*model.Challenge, error)

	// --- 参加状態 ---
	// CreateUserChallenge は (user_id, challenge_id) のユニーク制約違反を model.ErrConflict として返します。
	CreateUserChallenge(ctx context.Context, tx *gorm.DB, uc *model.UserChallenge) error
	FindUserChallenge(ctx context.Context, db *gorm.DB, userID, challengeID uuid.UUID) (*model.UserChallenge, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserChallenge, error)
	// FindActiveByUser は Challenge をPreloadして返します (進捗評価の入力)。
	FindActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserChallenge, error)
	FindCompletedByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserChallenge, error)
	CountCompletedByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	UpdateProgress(ctx context.Context, tx *gorm.DB, userChallengeID uuid.UUID, progress int) error
	// Complete は active → completed の一方向遷移です。status = active を条件に含めることで
	// 既に完了済みのレコードへの再適用は空振りし、遷移が冪等になります。
	Complete(ctx context.Context, tx *gorm.DB, userChallengeID uuid.UUID, progress int, completedAt time.Time) error
	DeleteUserChallenge(ctx context.Context, tx *gorm.DB, userChallengeID uuid.UUID) error
}

type gormChallengeRepository struct{}

func NewGormChallengeRepository() ChallengeRepository {
	return &gormChallengeRepository{}
}

func (r *gormChallengeRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Challenge, error) {
	var challenges []*model.Challenge
	result := db.WithContext(ctx).Order("created_at DESC").Find(&challenges)
	if result.Error != nil {
		return nil, fmt.Errorf("gormChallengeRepository.FindAll: %w", result.Error)
	}
	return challenges, nil
}

func (r *gormChallengeRepository) FindByID(ctx context.Context, db *gorm.DB, challengeID uuid.UUID) (*model.Challenge, error) {
	var challenge model.Challenge
	result := db.WithContext(ctx).Where("challenge_id = ?", challengeID).First(&challenge)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormChallengeRepository.FindByID: %w", result.Error)
	}
	return &challenge, nil
}

func (r *gormChallengeRepository) CreateUserChallenge(ctx context.Context, tx *gorm.DB, uc *model.UserChallenge) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(uc)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate user challenge on join",
				"user_id", uc.UserID.String(),
				"challenge_id", uc.ChallengeID.String(),
			)
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating user challenge in DB", "error", result.Error, "challenge_id", uc.ChallengeID.String())
		return fmt.Errorf("gormChallengeRepository.CreateUserChallenge: %w", result.Error)
	}
	return nil
}

func (r *gormChallengeRepository) FindUserChallenge(ctx context.Context, db *gorm.DB, userID, challengeID uuid.UUID) (*model.UserChallenge, error) {
	var uc model.UserChallenge
	result := db.WithContext(ctx).Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&uc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormChallengeRepository.FindUserChallenge: %w", result.Error)
	}
	return &uc, nil
}

func (r *gormChallengeRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserChallenge, error) {
	var ucs []*model.UserChallenge
	result := db.WithContext(ctx).Where("user_id = ?", userID).Find(&ucs)
	if result.Error != nil {
		return nil, fmt.Errorf("gormChallengeRepository.FindByUser: %w", result.Error)
	}
	return ucs, nil
}

func (r *gormChallengeRepository) FindActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserChallenge, error) {
	var ucs []*model.UserChallenge
	result := db.WithContext(ctx).
		Preload("Challenge").
		Where("user_id = ? AND status = ?", userID, model.UserChallengeStatusActive).
		Order("started_at DESC").
		Find(&ucs)
	if result.Error != nil {
		return nil, fmt.Errorf("gormChallengeRepository.FindActiveByUser: %w", result.Error)
	}
	return ucs, nil
}

func (r *gormChallengeRepository) FindCompletedByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserChallenge, error) {
	var ucs []*model.UserChallenge
	result := db.WithContext(ctx).
		Preload("Challenge").
		Where("user_id = ? AND status = ?", userID, model.UserChallengeStatusCompleted).
		Order("completed_at DESC").
		Find(&ucs)
	if result.Error != nil {
		return nil, fmt.Errorf("gormChallengeRepository.FindCompletedByUser: %w", result.Error)
	}
	return ucs, nil
}

func (r *gormChallengeRepository) CountCompletedByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.UserChallenge{}).
		Where("user_id = ? AND status = ?", userID, model.UserChallengeStatusCompleted).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormChallengeRepository.CountCompletedByUser: %w", result.Error)
	}
	return count, nil
}

func (r *gormChallengeRepository) UpdateProgress(ctx context.Context, tx *gorm.DB, userChallengeID uuid.UUID, progress int) error {
	result := tx.WithContext(ctx).Model(&model.UserChallenge{}).
		Where("user_challenge_id = ? AND status = ?", userChallengeID, model.UserChallengeStatusActive).
		UpdateColumn("current_progress", progress)
	if result.Error != nil {
		return fmt.Errorf("gormChallengeRepository.UpdateProgress: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormChallengeRepository) Complete(ctx context.Context, tx *gorm.DB, userChallengeID uuid.UUID, progress int, completedAt time.Time) error {
	result := tx.WithContext(ctx).Model(&model.UserChallenge{}).
		Where("user_challenge_id = ? AND status = ?", userChallengeID, model.UserChallengeStatusActive).
		Updates(map[string]interface{}{
			"status":           model.UserChallengeStatusCompleted,
			"current_progress": progress,
			"completed_at":     completedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("gormChallengeRepository.Complete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// 既にcompletedに遷移済み。呼び出し元で報酬の二重付与を避けるために区別する
		return model.ErrNotFound
	}
	return nil
}

func (r *gormChallengeRepository) DeleteUserChallenge(ctx context.Context, tx *gorm.DB, userChallengeID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("user_challenge_id = ?", userChallengeID).Delete(&model.UserChallenge{})
	if result.Error != nil {
		return fmt.Errorf("gormChallengeRepository.DeleteUserChallenge: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
