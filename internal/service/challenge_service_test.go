package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"habit_quest/internal/model"
	"habit_quest/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeUserChallenge(userID uuid.UUID, challengeType model.ChallengeType, progress, target, reward int) *model.UserChallenge {
	challengeID := uuid.New()
	return &model.UserChallenge{
		UserChallengeID: uuid.New(),
		UserID:          userID,
		ChallengeID:     challengeID,
		Status:          model.UserChallengeStatusActive,
		CurrentProgress: progress,
		StartedAt:       time.Now().AddDate(0, 0, -3),
		Challenge: &model.Challenge{
			ChallengeID: challengeID,
			Name:        "test challenge",
			Type:        challengeType,
			TargetValue: target,
			XPReward:    reward,
		},
	}
}

// --- Test Join ---

func Test_challengeService_Join(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	cfg := testConfig()
	userID := uuid.New()
	challengeID := uuid.New()
	req := &model.JoinChallengeRequest{ChallengeID: challengeID}

	t.Run("正常系: 参加で進捗0のアクティブなレコードが作られる", func(t *testing.T) {
		mockChallengeRepo := new(mocks.ChallengeRepository)
		mockUserRepo := new(mocks.UserRepository)

		mockChallengeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), challengeID).
			Return(&model.Challenge{ChallengeID: challengeID, Name: "7-Day Streak"}, nil).Once()
		mockChallengeRepo.On("CreateUserChallenge", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserChallenge")).
			Run(func(args mock.Arguments) {
				uc := args.Get(2).(*model.UserChallenge)
				assert.Equal(t, userID, uc.UserID)
				assert.Equal(t, challengeID, uc.ChallengeID)
				assert.Equal(t, model.UserChallengeStatusActive, uc.Status)
				assert.Equal(t, 0, uc.CurrentProgress)
			}).Return(nil).Once()

		svc := NewChallengeService(db, mockChallengeRepo, mockUserRepo, cfg)
		joined, err := svc.Join(ctx, userID, req)

		require.NoError(t, err)
		require.NotNil(t, joined)
		mockChallengeRepo.AssertExpectations(t)
	})

	t.Run("異常系: 二重参加はALREADY_JOINED", func(t *testing.T) {
		mockChallengeRepo := new(mocks.ChallengeRepository)
		mockUserRepo := new(mocks.UserRepository)

		mockChallengeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), challengeID).
			Return(&model.Challenge{ChallengeID: challengeID}, nil).Once()
		mockChallengeRepo.On("CreateUserChallenge", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserChallenge")).
			Return(model.ErrConflict).Once()

		svc := NewChallengeService(db, mockChallengeRepo, mockUserRepo, cfg)
		_, err := svc.Join(ctx, userID, req)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "ALREADY_JOINED", appErr.Detail.Code)
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("異常系: カタログに存在しないチャレンジはNOT_FOUND", func(t *testing.T) {
		mockChallengeRepo := new(mocks.ChallengeRepository)
		mockUserRepo := new(mocks.UserRepository)

		mockChallengeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), challengeID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewChallengeService(db, mockChallengeRepo, mockUserRepo, cfg)
		_, err := svc.Join(ctx, userID, req)

		assert.ErrorIs(t, err, model.ErrNotFound)
		mockChallengeRepo.AssertNotCalled(t, "CreateUserChallenge", mock.Anything, mock.Anything, mock.Anything)
	})
}

// --- Test Abandon ---

func Test_challengeService_Abandon(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	cfg := testConfig()
	userID := uuid.New()
	challengeID := uuid.New()

	t.Run("正常系: 進行中のチャレンジは離脱できる", func(t *testing.T) {
		mockChallengeRepo := new(mocks.ChallengeRepository)

		uc := &model.UserChallenge{
			UserChallengeID: uuid.New(),
			UserID:          userID,
			ChallengeID:     challengeID,
			Status:          model.UserChallengeStatusActive,
		}
		mockChallengeRepo.On("FindUserChallenge", ctx, mock.AnythingOfType("*gorm.DB"), userID, challengeID).
			Return(uc, nil).Once()
		mockChallengeRepo.On("DeleteUserChallenge", ctx, mock.AnythingOfType("*gorm.DB"), uc.UserChallengeID).
			Return(nil).Once()

		svc := NewChallengeService(db, mockChallengeRepo, nil, cfg)
		assert.NoError(t, svc.Abandon(ctx, userID, challengeID))
		mockChallengeRepo.AssertExpectations(t)
	})

	t.Run("異常系: 達成済みのチャレンジは離脱できない", func(t *testing.T) {
		mockChallengeRepo := new(mocks.ChallengeRepository)

		uc := &model.UserChallenge{
			UserChallengeID: uuid.New(),
			UserID:          userID,
			ChallengeID:     challengeID,
			Status:          model.UserChallengeStatusCompleted,
		}
		mockChallengeRepo.On("FindUserChallenge", ctx, mock.AnythingOfType("*gorm.DB"), userID, challengeID).
			Return(uc, nil).Once()

		svc := NewChallengeService(db, mockChallengeRepo, nil, cfg)
		err := svc.Abandon(ctx, userID, challengeID)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CHALLENGE_COMPLETED", appErr.Detail.Code)
		mockChallengeRepo.AssertNotCalled(t, "DeleteUserChallenge", mock.Anything, mock.Anything, mock.Anything)
	})
}

// --- Test EvaluateOnCompletion ---

func Test_challengeService_EvaluateOnCompletion(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	cfg := testConfig()
	userID := uuid.New()

	t.Run("正常系: streak型は現在進捗とストリークの大きい方を採用", func(t *testing.T) {
		mockChallengeRepo := new(mocks.ChallengeRepository)
		mockUserRepo := new(mocks.UserRepository)

		uc := activeUserChallenge(userID, model.ChallengeTypeStreak, 3, 7, 150)
		mockChallengeRepo.On("FindActiveByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return([]*model.UserChallenge{uc}, nil).Once()
		mockChallengeRepo.On("UpdateProgress", ctx, mock.AnythingOfType("*gorm.DB"), uc.UserChallengeID, 5).
			Return(nil).Once()

		svc := NewChallengeService(db, mockChallengeRepo, mockUserRepo, cfg)
		svc.EvaluateOnCompletion(ctx, userID, 5)

		mockChallengeRepo.AssertExpectations(t)
	})

	t.Run("正常系: streak型でストリークが進捗より小さければ何もしない", func(t *testing.T) {
		mockChallengeRepo := new(mocks.ChallengeRepository)
		mockUserRepo := new(mocks.UserRepository)

		uc := activeUserChallenge(userID, model.ChallengeTypeStreak, 5, 7, 150)
		mockChallengeRepo.On("FindActiveByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return([]*model.UserChallenge{uc}, nil).Once()

		svc := NewChallengeService(db, mockChallengeRepo, mockUserRepo, cfg)
		svc.EvaluateOnCompletion(ctx, userID, 2)

		mockChallengeRepo.AssertNotCalled(t, "UpdateProgress", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("正常系: total_completions型は1ずつ前進する", func(t *testing.T) {
		mockChallengeRepo := new(mocks.ChallengeRepository)
		mockUserRepo := new(mocks.UserRepository)

		uc := activeUserChallenge(userID, model.ChallengeTypeTotalCompletions, 41, 100, 300)
		mockChallengeRepo.On("FindActiveByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return([]*model.UserChallenge{uc}, nil).Once()
		mockChallengeRepo.On("UpdateProgress", ctx, mock.AnythingOfType("*gorm.DB"), uc.UserChallengeID, 42).
			Return(nil).Once()

		svc := NewChallengeService(db, mockChallengeRepo, mockUserRepo, cfg)
		svc.EvaluateOnCompletion(ctx, userID, 1)

		mockChallengeRepo.AssertExpectations(t)
	})

	t.Run("正常系: 目標到達で完了遷移と報酬XPの付与", func(t *testing.T) {
		mockChallengeRepo := new(mocks.ChallengeRepository)
		mockUserRepo := new(mocks.UserRepository)

		uc := activeUserChallenge(userID, model.ChallengeTypeStreak, 6, 7, 150)
		mockChallengeRepo.On("FindActiveByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return([]*model.UserChallenge{uc}, nil).Once()
		mockChallengeRepo.On("Complete", ctx, mock.AnythingOfType("*gorm.DB"), uc.UserChallengeID, 7, mock.AnythingOfType("time.Time")).
			Return(nil).Once()
		mockUserRepo.On("IncrementXP", ctx, mock.AnythingOfType("*gorm.DB"), userID, 150).
			Return(250, nil).Once()
		mockUserRepo.On("UpdateLevel", ctx, mock.AnythingOfType("*gorm.DB"), userID, 3).
			Return(nil).Once()

		svc := NewChallengeService(db, mockChallengeRepo, mockUserRepo, cfg)
		svc.EvaluateOnCompletion(ctx, userID, 7)

		mockChallengeRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("正常系: 既に完了済みなら報酬は二重付与されない", func(t *testing.T) {
		mockChallengeRepo := new(mocks.ChallengeRepository)
		mockUserRepo := new(mocks.UserRepository)

		uc := activeUserChallenge(userID, model.ChallengeTypeStreak, 7, 7, 150)
		mockChallengeRepo.On("FindActiveByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return([]*model.UserChallenge{uc}, nil).Once()
		// WHERE status = 'active' にヒットしない → ErrNotFound
		mockChallengeRepo.On("Complete", ctx, mock.AnythingOfType("*gorm.DB"), uc.UserChallengeID, 7, mock.AnythingOfType("time.Time")).
			Return(model.ErrNotFound).Once()

		svc := NewChallengeService(db, mockChallengeRepo, mockUserRepo, cfg)
		svc.EvaluateOnCompletion(ctx, userID, 7)

		mockUserRepo.AssertNotCalled(t, "IncrementXP", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("正常系: 1件の失敗が他のチャレンジの評価を止めない", func(t *testing.T) {
		mockChallengeRepo := new(mocks.ChallengeRepository)
		mockUserRepo := new(mocks.UserRepository)

		broken := activeUserChallenge(userID, model.ChallengeTypeTotalCompletions, 1, 100, 300)
		healthy := activeUserChallenge(userID, model.ChallengeTypeTotalCompletions, 2, 100, 300)
		mockChallengeRepo.On("FindActiveByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return([]*model.UserChallenge{broken, healthy}, nil).Once()
		mockChallengeRepo.On("UpdateProgress", ctx, mock.AnythingOfType("*gorm.DB"), broken.UserChallengeID, 2).
			Return(errors.New("db error")).Once()
		mockChallengeRepo.On("UpdateProgress", ctx, mock.AnythingOfType("*gorm.DB"), healthy.UserChallengeID, 3).
			Return(nil).Once()

		svc := NewChallengeService(db, mockChallengeRepo, mockUserRepo, cfg)
		svc.EvaluateOnCompletion(ctx, userID, 1)

		mockChallengeRepo.AssertExpectations(t)
	})

	t.Run("正常系: 未知のチャレンジ種別はスキップされる", func(t *testing.T) {
		mockChallengeRepo := new(mocks.ChallengeRepository)
		mockUserRepo := new(mocks.UserRepository)

		uc := activeUserChallenge(userID, model.ChallengeType("weekly_goal"), 1, 10, 100)
		mockChallengeRepo.On("FindActiveByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return([]*model.UserChallenge{uc}, nil).Once()

		svc := NewChallengeService(db, mockChallengeRepo, mockUserRepo, cfg)
		svc.EvaluateOnCompletion(ctx, userID, 1)

		mockChallengeRepo.AssertNotCalled(t, "UpdateProgress", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockChallengeRepo.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

// --- Test ListAvailable ---

func Test_challengeService_ListAvailable(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	cfg := testConfig()
	userID := uuid.New()

	t.Run("正常系: 参加中のチャレンジにはjoinedフラグが立つ", func(t *testing.T) {
		mockChallengeRepo := new(mocks.ChallengeRepository)

		c1 := &model.Challenge{ChallengeID: uuid.New(), Name: "7-Day Streak"}
		c2 := &model.Challenge{ChallengeID: uuid.New(), Name: "Century Club"}
		mockChallengeRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
			Return([]*model.Challenge{c1, c2}, nil).Once()
		mockChallengeRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return([]*model.UserChallenge{
				{ChallengeID: c1.ChallengeID, Status: model.UserChallengeStatusActive},
			}, nil).Once()

		svc := NewChallengeService(db, mockChallengeRepo, nil, cfg)
		challenges, err := svc.ListAvailable(ctx, userID)

		require.NoError(t, err)
		require.Len(t, challenges, 2)
		assert.True(t, challenges[0].Joined)
		require.NotNil(t, challenges[0].UserStatus)
		assert.Equal(t, model.UserChallengeStatusActive, *challenges[0].UserStatus)
		assert.False(t, challenges[1].Joined)
		assert.Nil(t, challenges[1].UserStatus)
	})
}
