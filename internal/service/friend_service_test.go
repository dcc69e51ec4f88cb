package service

import (
	"context"
	"testing"
	"time"

	"habit_quest/internal/model"
	"habit_quest/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_friendService_SendRequest(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()
	friendID := uuid.New()
	req := &model.SendFriendRequestRequest{FriendID: friendID}

	t.Run("正常系: pending状態の申請が作られる", func(t *testing.T) {
		mockFriendshipRepo := new(mocks.FriendshipRepository)
		mockUserRepo := new(mocks.UserRepository)

		mockUserRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), friendID).
			Return(&model.User{UserID: friendID, Username: "friend"}, nil).Once()
		mockFriendshipRepo.On("FindBetween", ctx, mock.AnythingOfType("*gorm.DB"), userID, friendID).
			Return(nil, model.ErrNotFound).Once()
		mockFriendshipRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Friendship")).
			Run(func(args mock.Arguments) {
				f := args.Get(2).(*model.Friendship)
				assert.Equal(t, userID, f.UserID)
				assert.Equal(t, friendID, f.FriendID)
				assert.Equal(t, model.FriendshipStatusPending, f.Status)
			}).Return(nil).Once()

		svc := NewFriendService(db, mockFriendshipRepo, mockUserRepo)
		created, err := svc.SendRequest(ctx, userID, req)

		require.NoError(t, err)
		require.NotNil(t, created)
		mockFriendshipRepo.AssertExpectations(t)
	})

	t.Run("異常系: 自分自身への申請はINVALID_INPUT", func(t *testing.T) {
		svc := NewFriendService(db, new(mocks.FriendshipRepository), new(mocks.UserRepository))
		_, err := svc.SendRequest(ctx, userID, &model.SendFriendRequestRequest{FriendID: userID})

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_INPUT", appErr.Detail.Code)
	})

	t.Run("異常系: 既に友達ならALREADY_FRIENDS", func(t *testing.T) {
		mockFriendshipRepo := new(mocks.FriendshipRepository)
		mockUserRepo := new(mocks.UserRepository)

		mockUserRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), friendID).
			Return(&model.User{UserID: friendID}, nil).Once()
		mockFriendshipRepo.On("FindBetween", ctx, mock.AnythingOfType("*gorm.DB"), userID, friendID).
			Return(&model.Friendship{
				FriendshipID: uuid.New(),
				UserID:       friendID, // 逆向きの関係でも検知される
				FriendID:     userID,
				Status:       model.FriendshipStatusAccepted,
			}, nil).Once()

		svc := NewFriendService(db, mockFriendshipRepo, mockUserRepo)
		_, err := svc.SendRequest(ctx, userID, req)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "ALREADY_FRIENDS", appErr.Detail.Code)
		mockFriendshipRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 申請済みならREQUEST_EXISTS", func(t *testing.T) {
		mockFriendshipRepo := new(mocks.FriendshipRepository)
		mockUserRepo := new(mocks.UserRepository)

		mockUserRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), friendID).
			Return(&model.User{UserID: friendID}, nil).Once()
		mockFriendshipRepo.On("FindBetween", ctx, mock.AnythingOfType("*gorm.DB"), userID, friendID).
			Return(&model.Friendship{
				FriendshipID: uuid.New(),
				UserID:       userID,
				FriendID:     friendID,
				Status:       model.FriendshipStatusPending,
			}, nil).Once()

		svc := NewFriendService(db, mockFriendshipRepo, mockUserRepo)
		_, err := svc.SendRequest(ctx, userID, req)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "REQUEST_EXISTS", appErr.Detail.Code)
	})

	t.Run("異常系: 相手が存在しなければNOT_FOUND", func(t *testing.T) {
		mockFriendshipRepo := new(mocks.FriendshipRepository)
		mockUserRepo := new(mocks.UserRepository)

		mockUserRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), friendID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewFriendService(db, mockFriendshipRepo, mockUserRepo)
		_, err := svc.SendRequest(ctx, userID, req)

		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_friendService_RespondRequest(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	requesterID := uuid.New()
	receiverID := uuid.New()
	friendshipID := uuid.New()

	pendingFriendship := func() *model.Friendship {
		return &model.Friendship{
			FriendshipID: friendshipID,
			UserID:       requesterID,
			FriendID:     receiverID,
			Status:       model.FriendshipStatusPending,
		}
	}

	t.Run("正常系: acceptでacceptedに遷移する", func(t *testing.T) {
		mockFriendshipRepo := new(mocks.FriendshipRepository)

		mockFriendshipRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), friendshipID).
			Return(pendingFriendship(), nil).Once()
		mockFriendshipRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*gorm.DB"), friendshipID, model.FriendshipStatusAccepted).
			Return(nil).Once()

		svc := NewFriendService(db, mockFriendshipRepo, nil)
		err := svc.RespondRequest(ctx, receiverID, &model.RespondFriendRequestRequest{
			FriendshipID: friendshipID,
			Action:       "accept",
		})

		assert.NoError(t, err)
		mockFriendshipRepo.AssertExpectations(t)
	})

	t.Run("正常系: declineでdeclinedに遷移する", func(t *testing.T) {
		mockFriendshipRepo := new(mocks.FriendshipRepository)

		mockFriendshipRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), friendshipID).
			Return(pendingFriendship(), nil).Once()
		mockFriendshipRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*gorm.DB"), friendshipID, model.FriendshipStatusDeclined).
			Return(nil).Once()

		svc := NewFriendService(db, mockFriendshipRepo, nil)
		err := svc.RespondRequest(ctx, receiverID, &model.RespondFriendRequestRequest{
			FriendshipID: friendshipID,
			Action:       "decline",
		})

		assert.NoError(t, err)
	})

	t.Run("異常系: 申請者本人は応答できない", func(t *testing.T) {
		mockFriendshipRepo := new(mocks.FriendshipRepository)

		mockFriendshipRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), friendshipID).
			Return(pendingFriendship(), nil).Once()

		svc := NewFriendService(db, mockFriendshipRepo, nil)
		err := svc.RespondRequest(ctx, requesterID, &model.RespondFriendRequestRequest{
			FriendshipID: friendshipID,
			Action:       "accept",
		})

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "FORBIDDEN", appErr.Detail.Code)
		mockFriendshipRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 応答済みの申請はALREADY_RESPONDED", func(t *testing.T) {
		mockFriendshipRepo := new(mocks.FriendshipRepository)

		responded := pendingFriendship()
		responded.Status = model.FriendshipStatusAccepted
		mockFriendshipRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), friendshipID).
			Return(responded, nil).Once()

		svc := NewFriendService(db, mockFriendshipRepo, nil)
		err := svc.RespondRequest(ctx, receiverID, &model.RespondFriendRequestRequest{
			FriendshipID: friendshipID,
			Action:       "accept",
		})

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "ALREADY_RESPONDED", appErr.Detail.Code)
	})
}

func Test_friendService_ListFriends(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()

	t.Run("正常系: どちら向きの関係でも相手側のプロフィールが返る", func(t *testing.T) {
		mockFriendshipRepo := new(mocks.FriendshipRepository)

		me := &model.User{UserID: userID, Username: "me"}
		alice := &model.User{UserID: uuid.New(), Username: "alice"}
		bob := &model.User{UserID: uuid.New(), Username: "bob"}
		now := time.Now()

		friendships := []*model.Friendship{
			// 自分が申請した側
			{FriendshipID: uuid.New(), UserID: userID, FriendID: alice.UserID,
				Status: model.FriendshipStatusAccepted, UpdatedAt: now, User: me, Friend: alice},
			// 自分が受けた側
			{FriendshipID: uuid.New(), UserID: bob.UserID, FriendID: userID,
				Status: model.FriendshipStatusAccepted, UpdatedAt: now, User: bob, Friend: me},
		}
		mockFriendshipRepo.On("FindAcceptedByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(friendships, nil).Once()

		svc := NewFriendService(db, mockFriendshipRepo, nil)
		friends, err := svc.ListFriends(ctx, userID)

		require.NoError(t, err)
		require.Len(t, friends, 2)
		assert.Equal(t, "alice", friends[0].Friend.Username)
		assert.Equal(t, "bob", friends[1].Friend.Username)
	})
}

func Test_friendService_RemoveFriend(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()
	friendshipID := uuid.New()

	t.Run("正常系: 当事者は友達関係を削除できる", func(t *testing.T) {
		mockFriendshipRepo := new(mocks.FriendshipRepository)

		mockFriendshipRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), friendshipID).
			Return(&model.Friendship{
				FriendshipID: friendshipID,
				UserID:       uuid.New(),
				FriendID:     userID,
				Status:       model.FriendshipStatusAccepted,
			}, nil).Once()
		mockFriendshipRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), friendshipID).
			Return(nil).Once()

		svc := NewFriendService(db, mockFriendshipRepo, nil)
		assert.NoError(t, svc.RemoveFriend(ctx, userID, friendshipID))
	})

	t.Run("異常系: 当事者以外はFORBIDDEN", func(t *testing.T) {
		mockFriendshipRepo := new(mocks.FriendshipRepository)

		mockFriendshipRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), friendshipID).
			Return(&model.Friendship{
				FriendshipID: friendshipID,
				UserID:       uuid.New(),
				FriendID:     uuid.New(),
				Status:       model.FriendshipStatusAccepted,
			}, nil).Once()

		svc := NewFriendService(db, mockFriendshipRepo, nil)
		err := svc.RemoveFriend(ctx, userID, friendshipID)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "FORBIDDEN", appErr.Detail.Code)
		mockFriendshipRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_friendService_SearchUsers(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()

	t.Run("正常系: 検索結果がプロフィールとして返る", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)

		mockUserRepo.On("SearchByUsername", ctx, mock.AnythingOfType("*gorm.DB"), "ali", userID, friendSearchLimit).
			Return([]*model.User{{UserID: uuid.New(), Username: "alice"}}, nil).Once()

		svc := NewFriendService(db, new(mocks.FriendshipRepository), mockUserRepo)
		users, err := svc.SearchUsers(ctx, userID, "ali")

		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "alice", users[0].Username)
	})

	t.Run("正常系: 空クエリは検索せず空の結果を返す", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)

		svc := NewFriendService(db, new(mocks.FriendshipRepository), mockUserRepo)
		users, err := svc.SearchUsers(ctx, userID, "")

		require.NoError(t, err)
		assert.Empty(t, users)
		mockUserRepo.AssertNotCalled(t, "SearchByUsername", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
