//go:generate mockery --name CompletionRepository --output ./mocks --outpkg mocks --case=underscore
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

// CompletionRepository は完了台帳 (追記専用) へのアクセスを提供します。
// 完了レコードの更新操作は存在しません。
type CompletionRepository interface {
	// Create は (habit_id, completed_on) のユニーク制約違反を model.ErrConflict として返します。
	// 同時リクエストのレースで負けた側はここで弾かれます。
	Create(ctx context.Context, tx *gorm.DB, completion *model.HabitCompletion) error
	// FindByHabit は完了時刻の降順で返します (ストリーク計算の入力)。
	FindByHabit(ctx context.Context, db *gorm.DB, habitID uuid.UUID) ([]*model.HabitCompletion, error)
	FindByUserInRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, start, end time.Time) ([]*model.HabitCompletion, error)
	CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	ExistsForDay(ctx context.Context, db *gorm.DB, habitID uuid.UUID, day time.Time) (bool, error)
}

type gormCompletionRepository struct{}

func NewGormCompletionRepository() CompletionRepository {
	return &gormCompletionRepository{}
}

func (r *gormCompletionRepository) Create(ctx context.Context, tx *gorm.DB, completion *model.HabitCompletion) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(completion)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate completion for habit on same day",
				"habit_id", completion.HabitID.String(),
				"completed_on", completion.CompletedOn.Format("2006-01-02"),
			)
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating completion in DB", "error", result.Error, "habit_id", completion.HabitID.String())
		return fmt.Errorf("gormCompletionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCompletionRepository) FindByHabit(ctx context.Context, db *gorm.DB, habitID uuid.UUID) ([]*model.HabitCompletion, error) {
	var completions []*model.HabitCompletion
	result := db.WithContext(ctx).
		Where("habit_id = ?", habitID).
		Order("completed_at DESC").
		Find(&completions)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCompletionRepository.FindByHabit: %w", result.Error)
	}
	return completions, nil
}

func (r *gormCompletionRepository) FindByUserInRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, start, end time.Time) ([]*model.HabitCompletion, error) {
	var completions []*model.HabitCompletion
	result := db.WithContext(ctx).
		Where("user_id = ? AND completed_at >= ? AND completed_at <= ?", userID, start, end).
		Order("completed_at ASC").
		Find(&completions)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCompletionRepository.FindByUserInRange: %w", result.Error)
	}
	return completions, nil
}

func (r *gormCompletionRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.HabitCompletion{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormCompletionRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}

func (r *gormCompletionRepository) ExistsForDay(ctx context.Context, db *gorm.DB, habitID uuid.UUID, day time.Time) (bool, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.HabitCompletion{}).
		Where("habit_id = ? AND completed_on = ?", habitID, day).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("gormCompletionRepository.ExistsForDay: %w", result.Error)
	}
	return count > 0, nil
}
