//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
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

type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error)
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.User, error)
	SearchByUsername(ctx context.Context, db *gorm.DB, query string, excludeUserID uuid.UUID, limit int) ([]*model.User, error)
	// IncrementXP はXPを加算し、加算後の合計XPを返します。XPを減らす操作は存在しません。
	IncrementXP(ctx context.Context, tx *gorm.DB, userID uuid.UUID, delta int) (int, error)
	UpdateLevel(ctx context.Context, tx *gorm.DB, userID uuid.UUID, level int) error
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, tx *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(user)
	if result.Error != nil {
		// ユニーク制約違反 (username/email重複) は ErrConflict に変換する
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create user",
				"error", result.Error,
				"username", user.Username,
			)
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating user in DB", "error", result.Error, "username", user.Username)
		return fmt.Errorf("gormUserRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	var user model.User
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormUserRepository.FindByID: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error) {
	var user model.User
	result := db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormUserRepository.FindByEmail: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.User, error) {
	var user model.User
	result := db.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormUserRepository.FindByUsername: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) SearchByUsername(ctx context.Context, db *gorm.DB, query string, excludeUserID uuid.UUID, limit int) ([]*model.User, error) {
	var users []*model.User
	result := db.WithContext(ctx).
		Where("username ILIKE ? AND user_id != ?", "%"+query+"%", excludeUserID).
		Order("username ASC").
		Limit(limit).
		Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("gormUserRepository.SearchByUsername: %w", result.Error)
	}
	return users, nil
}

func (r *gormUserRepository) IncrementXP(ctx context.Context, tx *gorm.DB, userID uuid.UUID, delta int) (int, error) {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		UpdateColumn("total_xp", gorm.Expr("total_xp + ?", delta))
	if result.Error != nil {
		logger.Error("Error incrementing user XP in DB", "error", result.Error, "user_id", userID.String())
		return 0, fmt.Errorf("gormUserRepository.IncrementXP: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, model.ErrNotFound
	}

	// 加算後の値を読み直す (レベルは常に合計XPから再計算されるため)
	var user model.User
	if err := tx.WithContext(ctx).Select("total_xp").Where("user_id = ?", userID).First(&user).Error; err != nil {
		return 0, fmt.Errorf("gormUserRepository.IncrementXP: reload: %w", err)
	}
	return user.TotalXP, nil
}

func (r *gormUserRepository) UpdateLevel(ctx context.Context, tx *gorm.DB, userID uuid.UUID, level int) error {
	result := tx.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		UpdateColumn("level", level)
	if result.Error != nil {
		return fmt.Errorf("gormUserRepository.UpdateLevel: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
