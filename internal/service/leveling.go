package service

import (
	"context"

	"habit_quest/internal/middleware"
	"habit_quest/internal/model"
	"habit_quest/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LevelForXP は累計XPからレベルを算出する。レベル1始まり、上限なし。
// 例: divisor=100 のとき 0-99XP はレベル1、100-199XP はレベル2。
func LevelForXP(totalXP, divisor int) int {
	if divisor <= 0 {
		divisor = 100
	}
	if totalXP < 0 {
		totalXP = 0
	}
	return totalXP/divisor + 1
}

// awardXP はXP加算とレベル再計算をまとめた唯一の経路。
// 加算後の累計XPと新レベルを返す。
func awardXP(ctx context.Context, tx *gorm.DB, userRepo repository.UserRepository, userID uuid.UUID, amount, levelDivisor int) (int, int, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	newTotal, err := userRepo.IncrementXP(ctx, tx, userID, amount)
	if err != nil {
		logger.Error("Failed to increment XP", "error", err, "amount", amount)
		return 0, 0, model.NewAppError("INTERNAL_SERVER_ERROR", "XPの加算に失敗しました。", "", err)
	}

	newLevel := LevelForXP(newTotal, levelDivisor)
	if err := userRepo.UpdateLevel(ctx, tx, userID, newLevel); err != nil {
		logger.Error("Failed to update level", "error", err, "new_level", newLevel)
		return 0, 0, model.NewAppError("INTERNAL_SERVER_ERROR", "レベルの更新に失敗しました。", "", err)
	}

	logger.Debug("XP awarded", "amount", amount, "total_xp", newTotal, "level", newLevel)
	return newTotal, newLevel, nil
}
