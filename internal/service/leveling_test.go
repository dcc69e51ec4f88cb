package service

import (
	"context"
	"errors"
	"testing"

	"habit_quest/internal/model"
	"habit_quest/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		name    string
		totalXP int
		divisor int
		want    int
	}{
		{name: "正常系: 0XPはレベル1", totalXP: 0, divisor: 100, want: 1},
		{name: "正常系: 99XPはまだレベル1", totalXP: 99, divisor: 100, want: 1},
		{name: "正常系: 100XPちょうどでレベル2", totalXP: 100, divisor: 100, want: 2},
		{name: "正常系: 250XPはレベル3", totalXP: 250, divisor: 100, want: 3},
		{name: "正常系: 上限なし", totalXP: 100000, divisor: 100, want: 1001},
		{name: "異常系: 負のXPはレベル1に丸める", totalXP: -10, divisor: 100, want: 1},
		{name: "異常系: divisorが0ならデフォルトの100を使う", totalXP: 150, divisor: 0, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelForXP(tt.totalXP, tt.divisor))
		})
	}
}

func Test_awardXP(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()

	t.Run("正常系: XP加算でレベルが上がる", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("IncrementXP", ctx, mock.AnythingOfType("*gorm.DB"), userID, 10).
			Return(100, nil).Once()
		mockUserRepo.On("UpdateLevel", ctx, mock.AnythingOfType("*gorm.DB"), userID, 2).
			Return(nil).Once()

		total, level, err := awardXP(ctx, db, mockUserRepo, userID, 10, 100)

		assert.NoError(t, err)
		assert.Equal(t, 100, total)
		assert.Equal(t, 2, level)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("異常系: IncrementXP失敗はAppErrorを返す", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("IncrementXP", ctx, mock.AnythingOfType("*gorm.DB"), userID, 10).
			Return(0, errors.New("db error")).Once()

		_, _, err := awardXP(ctx, db, mockUserRepo, userID, 10, 100)

		assert.Error(t, err)
		var appErr *model.AppError
		assert.ErrorAs(t, err, &appErr)
		mockUserRepo.AssertExpectations(t)
		mockUserRepo.AssertNotCalled(t, "UpdateLevel", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
