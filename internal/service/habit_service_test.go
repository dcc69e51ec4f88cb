package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"habit_quest/internal/config"
	"habit_quest/internal/model"
	"habit_quest/internal/repository/mocks"
	svc_mocks "habit_quest/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---

// setupTestDB はトランザクション用のインメモリDBを返す。
// リポジトリはすべてモックなので実SQLは流れない。
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.XPPerCompletion = 10
	cfg.App.LevelDivisor = 100
	cfg.App.HeatmapWeeks = 12
	cfg.App.TopStreakCount = 3
	return cfg
}

// --- Test CompleteHabit ---

func Test_habitService_CompleteHabit(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	cfg := testConfig()

	userID := uuid.New()
	habitID := uuid.New()
	habit := &model.Habit{HabitID: habitID, UserID: userID, Name: "読書"}
	req := &model.CompleteHabitRequest{HabitID: habitID}

	t.Run("正常系: 完了記録・XP加算・チャレンジ評価まで一巡する", func(t *testing.T) {
		mockHabitRepo := new(mocks.HabitRepository)
		mockCompletionRepo := new(mocks.CompletionRepository)
		mockUserRepo := new(mocks.UserRepository)
		mockEvaluator := new(svc_mocks.ChallengeService)

		mockHabitRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, habitID).
			Return(habit, nil).Once()
		mockCompletionRepo.On("ExistsForDay", ctx, mock.AnythingOfType("*gorm.DB"), habitID, mock.AnythingOfType("time.Time")).
			Return(false, nil).Once()
		mockCompletionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.HabitCompletion")).
			Run(func(args mock.Arguments) {
				c := args.Get(2).(*model.HabitCompletion)
				assert.Equal(t, habitID, c.HabitID)
				assert.Equal(t, userID, c.UserID)
				assert.Equal(t, 10, c.XPEarned)
				assert.NotEqual(t, uuid.Nil, c.CompletionID)
			}).Return(nil).Once()
		mockUserRepo.On("IncrementXP", ctx, mock.AnythingOfType("*gorm.DB"), userID, 10).
			Return(110, nil).Once()
		mockUserRepo.On("UpdateLevel", ctx, mock.AnythingOfType("*gorm.DB"), userID, 2).
			Return(nil).Once()

		// コミット後の再評価: 今日の完了1件 → ストリーク1
		mockCompletionRepo.On("FindByHabit", ctx, mock.AnythingOfType("*gorm.DB"), habitID).
			Return([]*model.HabitCompletion{{CompletedAt: time.Now()}}, nil).Once()
		mockEvaluator.On("EvaluateOnCompletion", ctx, userID, 1).Once()

		svc := NewHabitService(db, mockHabitRepo, mockCompletionRepo, mockUserRepo, mockEvaluator, cfg)
		resp, err := svc.CompleteHabit(ctx, userID, req)

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 10, resp.XPEarned)
		assert.Equal(t, 110, resp.TotalXP)
		assert.Equal(t, 2, resp.NewLevel)
		mockHabitRepo.AssertExpectations(t)
		mockCompletionRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
		mockEvaluator.AssertExpectations(t)
	})

	t.Run("異常系: 本日すでに完了済みならDUPLICATE_COMPLETION", func(t *testing.T) {
		mockHabitRepo := new(mocks.HabitRepository)
		mockCompletionRepo := new(mocks.CompletionRepository)
		mockUserRepo := new(mocks.UserRepository)

		mockHabitRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, habitID).
			Return(habit, nil).Once()
		mockCompletionRepo.On("ExistsForDay", ctx, mock.AnythingOfType("*gorm.DB"), habitID, mock.AnythingOfType("time.Time")).
			Return(true, nil).Once()

		svc := NewHabitService(db, mockHabitRepo, mockCompletionRepo, mockUserRepo, nil, cfg)
		resp, err := svc.CompleteHabit(ctx, userID, req)

		assert.Nil(t, resp)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "DUPLICATE_COMPLETION", appErr.Detail.Code)
		assert.ErrorIs(t, err, model.ErrConflict)
		mockCompletionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		mockUserRepo.AssertNotCalled(t, "IncrementXP", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 同時リクエストがユニーク制約に先着してもDUPLICATE_COMPLETION", func(t *testing.T) {
		mockHabitRepo := new(mocks.HabitRepository)
		mockCompletionRepo := new(mocks.CompletionRepository)
		mockUserRepo := new(mocks.UserRepository)

		mockHabitRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, habitID).
			Return(habit, nil).Once()
		mockCompletionRepo.On("ExistsForDay", ctx, mock.AnythingOfType("*gorm.DB"), habitID, mock.AnythingOfType("time.Time")).
			Return(false, nil).Once()
		mockCompletionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.HabitCompletion")).
			Return(model.ErrConflict).Once()

		svc := NewHabitService(db, mockHabitRepo, mockCompletionRepo, mockUserRepo, nil, cfg)
		_, err := svc.CompleteHabit(ctx, userID, req)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "DUPLICATE_COMPLETION", appErr.Detail.Code)
		mockUserRepo.AssertNotCalled(t, "IncrementXP", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 他人の習慣はNOT_FOUND", func(t *testing.T) {
		mockHabitRepo := new(mocks.HabitRepository)
		mockCompletionRepo := new(mocks.CompletionRepository)
		mockUserRepo := new(mocks.UserRepository)

		mockHabitRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, habitID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewHabitService(db, mockHabitRepo, mockCompletionRepo, mockUserRepo, nil, cfg)
		_, err := svc.CompleteHabit(ctx, userID, req)

		assert.ErrorIs(t, err, model.ErrNotFound)
		mockCompletionRepo.AssertNotCalled(t, "ExistsForDay", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("正常系: チャレンジ評価用の履歴取得に失敗しても完了は成功のまま", func(t *testing.T) {
		mockHabitRepo := new(mocks.HabitRepository)
		mockCompletionRepo := new(mocks.CompletionRepository)
		mockUserRepo := new(mocks.UserRepository)
		mockEvaluator := new(svc_mocks.ChallengeService)

		mockHabitRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, habitID).
			Return(habit, nil).Once()
		mockCompletionRepo.On("ExistsForDay", ctx, mock.AnythingOfType("*gorm.DB"), habitID, mock.AnythingOfType("time.Time")).
			Return(false, nil).Once()
		mockCompletionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.HabitCompletion")).
			Return(nil).Once()
		mockUserRepo.On("IncrementXP", ctx, mock.AnythingOfType("*gorm.DB"), userID, 10).
			Return(10, nil).Once()
		mockUserRepo.On("UpdateLevel", ctx, mock.AnythingOfType("*gorm.DB"), userID, 1).
			Return(nil).Once()
		mockCompletionRepo.On("FindByHabit", ctx, mock.AnythingOfType("*gorm.DB"), habitID).
			Return(nil, errors.New("db error")).Once()

		svc := NewHabitService(db, mockHabitRepo, mockCompletionRepo, mockUserRepo, mockEvaluator, cfg)
		resp, err := svc.CompleteHabit(ctx, userID, req)

		require.NoError(t, err)
		assert.Equal(t, 10, resp.TotalXP)
		mockEvaluator.AssertNotCalled(t, "EvaluateOnCompletion", mock.Anything, mock.Anything, mock.Anything)
	})
}

// --- Test ListHabits ---

func Test_habitService_ListHabits(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	cfg := testConfig()
	userID := uuid.New()

	t.Run("正常系: ストリークと本日完了フラグが付く", func(t *testing.T) {
		mockHabitRepo := new(mocks.HabitRepository)
		mockCompletionRepo := new(mocks.CompletionRepository)

		habit1 := &model.Habit{HabitID: uuid.New(), UserID: userID, Name: "読書"}
		habit2 := &model.Habit{HabitID: uuid.New(), UserID: userID, Name: "運動"}
		mockHabitRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return([]*model.Habit{habit1, habit2}, nil).Once()

		now := time.Now()
		// habit1: 今日と昨日達成 → ストリーク2、本日完了
		mockCompletionRepo.On("FindByHabit", ctx, mock.AnythingOfType("*gorm.DB"), habit1.HabitID).
			Return([]*model.HabitCompletion{
				{CompletedAt: now},
				{CompletedAt: now.AddDate(0, 0, -1)},
			}, nil).Once()
		// habit2: 履歴なし
		mockCompletionRepo.On("FindByHabit", ctx, mock.AnythingOfType("*gorm.DB"), habit2.HabitID).
			Return([]*model.HabitCompletion{}, nil).Once()

		svc := NewHabitService(db, mockHabitRepo, mockCompletionRepo, nil, nil, cfg)
		habits, err := svc.ListHabits(ctx, userID)

		require.NoError(t, err)
		require.Len(t, habits, 2)
		assert.Equal(t, 2, habits[0].Streak)
		assert.True(t, habits[0].CompletedToday)
		assert.Equal(t, 0, habits[1].Streak)
		assert.False(t, habits[1].CompletedToday)
	})

	t.Run("正常系: 習慣ゼロなら空スライス", func(t *testing.T) {
		mockHabitRepo := new(mocks.HabitRepository)
		mockCompletionRepo := new(mocks.CompletionRepository)

		mockHabitRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return([]*model.Habit{}, nil).Once()

		svc := NewHabitService(db, mockHabitRepo, mockCompletionRepo, nil, nil, cfg)
		habits, err := svc.ListHabits(ctx, userID)

		require.NoError(t, err)
		assert.NotNil(t, habits)
		assert.Len(t, habits, 0)
	})
}

// --- Test DeleteHabit ---

func Test_habitService_DeleteHabit(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	cfg := testConfig()
	userID := uuid.New()
	habitID := uuid.New()

	t.Run("正常系: 所有していれば削除できる", func(t *testing.T) {
		mockHabitRepo := new(mocks.HabitRepository)

		mockHabitRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, habitID).
			Return(&model.Habit{HabitID: habitID, UserID: userID}, nil).Once()
		mockHabitRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), userID, habitID).
			Return(nil).Once()

		svc := NewHabitService(db, mockHabitRepo, nil, nil, nil, cfg)
		err := svc.DeleteHabit(ctx, userID, habitID)

		assert.NoError(t, err)
		mockHabitRepo.AssertExpectations(t)
	})

	t.Run("異常系: 存在しない習慣はNOT_FOUND", func(t *testing.T) {
		mockHabitRepo := new(mocks.HabitRepository)

		mockHabitRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, habitID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewHabitService(db, mockHabitRepo, nil, nil, nil, cfg)
		err := svc.DeleteHabit(ctx, userID, habitID)

		assert.ErrorIs(t, err, model.ErrNotFound)
		mockHabitRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
