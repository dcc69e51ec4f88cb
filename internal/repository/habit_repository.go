//go:generate mockery --name HabitRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"habit_quest/internal/middleware"
	"habit_quest/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HabitRepository interface {
	Create(ctx context.Context, tx *gorm.DB, habit *model.Habit) error
	// FindByID は所有者チェックを兼ねて (user_id, habit_id) で検索する
	FindByID(ctx context.Context, db *gorm.DB, userID, habitID uuid.UUID) (*model.Habit, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Habit, error)
	CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	// Delete は習慣とその完了履歴をまとめて削除する (カスケード)
	Delete(ctx context.Context, tx *gorm.DB, userID, habitID uuid.UUID) error
}

type gormHabitRepository struct{}

func NewGormHabitRepository() HabitRepository {
	return &gormHabitRepository{}
}

func (r *gormHabitRepository) Create(ctx context.Context, tx *gorm.DB, habit *model.Habit) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(habit)
	if result.Error != nil {
		logger.Error("Error creating habit in DB",
			"error", result.Error,
			"user_id", habit.UserID.String(),
			"name", habit.Name,
		)
		return fmt.Errorf("gormHabitRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormHabitRepository) FindByID(ctx context.Context, db *gorm.DB, userID, habitID uuid.UUID) (*model.Habit, error) {
	var habit model.Habit
	result := db.WithContext(ctx).Where("user_id = ? AND habit_id = ?", userID, habitID).First(&habit)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormHabitRepository.FindByID: %w", result.Error)
	}
	return &habit, nil
}

func (r *gormHabitRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Habit, error) {
	var habits []*model.Habit
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&habits)
	if result.Error != nil {
		return nil, fmt.Errorf("gormHabitRepository.FindByUser: %w", result.Error)
	}
	return habits, nil
}

func (r *gormHabitRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Habit{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormHabitRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}

func (r *gormHabitRepository) Delete(ctx context.Context, tx *gorm.DB, userID, habitID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	// 先に完了履歴を消してから習慣本体を消す
	if err := tx.WithContext(ctx).Where("habit_id = ?", habitID).Delete(&model.HabitCompletion{}).Error; err != nil {
		logger.Error("Error deleting habit completions in DB", "error", err, "habit_id", habitID.String())
		return fmt.Errorf("gormHabitRepository.Delete: completions: %w", err)
	}

	result := tx.WithContext(ctx).Where("user_id = ? AND habit_id = ?", userID, habitID).Delete(&model.Habit{})
	if result.Error != nil {
		logger.Error("Error deleting habit in DB", "error", result.Error, "habit_id", habitID.String())
		return fmt.Errorf("gormHabitRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
