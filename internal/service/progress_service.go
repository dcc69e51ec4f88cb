package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"habit_quest/internal/config"
	"habit_quest/internal/middleware"
	"habit_quest/internal/model"
	"habit_quest/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressService interface {
	GetProgress(ctx context.Context, userID uuid.UUID) (*model.ProgressResponse, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*model.StatsResponse, error)
}

type progressService struct {
	db             *gorm.DB
	habitRepo      repository.HabitRepository
	completionRepo repository.CompletionRepository
	userRepo       repository.UserRepository
	challengeRepo  repository.ChallengeRepository
	cfg            *config.Config
}

func NewProgressService(db *gorm.DB, habitRepo repository.HabitRepository, completionRepo repository.CompletionRepository, userRepo repository.UserRepository, challengeRepo repository.ChallengeRepository, cfg *config.Config) ProgressService {
	return &progressService{
		db:             db,
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		userRepo:       userRepo,
		challengeRepo:  challengeRepo,
		cfg:            cfg,
	}
}

// GetProgress はヒートマップとストリーク上位を集計する。
//
// ヒートマップは今日を末尾とする直近 N 週間の稠密な系列で、完了ゼロの日も
// count=0 で必ず含める (フロント側で歯抜けの補完をしなくて済むように)。
func (s *progressService) GetProgress(ctx context.Context, userID uuid.UUID) (*model.ProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	loc := s.cfg.DayBoundaryLocation()
	now := time.Now()
	today := DayOf(now, loc)

	totalDays := s.cfg.App.HeatmapWeeks * 7
	windowStart := today.AddDate(0, 0, -(totalDays - 1))

	completions, err := s.completionRepo.FindByUserInRange(ctx, s.db, userID, windowStart, now)
	if err != nil {
		logger.Error("Failed to load completions for heatmap", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗データの取得に失敗しました。", "", err)
	}

	countByDay := make(map[string]int)
	for _, c := range completions {
		countByDay[DayOf(c.CompletedAt, loc).Format("2006-01-02")]++
	}

	heatmap := make([]model.HeatmapEntry, 0, totalDays)
	for day := windowStart; !day.After(today); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		heatmap = append(heatmap, model.HeatmapEntry{Date: key, Count: countByDay[key]})
	}

	topStreaks, err := s.topStreaks(ctx, userID, now, loc)
	if err != nil {
		return nil, err
	}

	return &model.ProgressResponse{
		TopStreaks:  topStreaks,
		HeatmapData: heatmap,
	}, nil
}

// topStreaks は現在ストリークの上位 N 習慣を返す。同値は作成日の新しい順
// (FindByUser の並び) を保ったままにする。
func (s *progressService) topStreaks(ctx context.Context, userID uuid.UUID, now time.Time, loc *time.Location) ([]model.TopStreak, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	habits, err := s.habitRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to load habits for top streaks", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗データの取得に失敗しました。", "", err)
	}

	streaks := make([]model.TopStreak, 0, len(habits))
	for _, habit := range habits {
		completions, err := s.completionRepo.FindByHabit(ctx, s.db, habit.HabitID)
		if err != nil {
			logger.Error("Failed to load completions for top streaks", "error", err, "habit_id", habit.HabitID)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗データの取得に失敗しました。", "", err)
		}
		streaks = append(streaks, model.TopStreak{
			HabitID: habit.HabitID,
			Name:    habit.Name,
			Icon:    habit.Icon,
			Streak:  CalculateStreak(completions, now, loc),
		})
	}

	sort.SliceStable(streaks, func(i, j int) bool {
		return streaks[i].Streak > streaks[j].Streak
	})

	limit := s.cfg.App.TopStreakCount
	if len(streaks) > limit {
		streaks = streaks[:limit]
	}
	return streaks, nil
}

func (s *progressService) GetStats(ctx context.Context, userID uuid.UUID) (*model.StatsResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	loc := s.cfg.DayBoundaryLocation()
	now := time.Now()

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "ユーザーが見つかりません。", "", err)
		}
		logger.Error("Failed to load user for stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計データの取得に失敗しました。", "", err)
	}

	totalHabits, err := s.habitRepo.CountByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to count habits", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計データの取得に失敗しました。", "", err)
	}

	totalCompletions, err := s.completionRepo.CountByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to count completions", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計データの取得に失敗しました。", "", err)
	}

	completedChallenges, err := s.challengeRepo.CountCompletedByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to count completed challenges", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計データの取得に失敗しました。", "", err)
	}

	// 現在ストリークは全習慣の中の最大値
	topStreaks, err := s.topStreaks(ctx, userID, now, loc)
	if err != nil {
		return nil, err
	}
	currentStreak := 0
	if len(topStreaks) > 0 {
		currentStreak = topStreaks[0].Streak
	}

	return &model.StatsResponse{
		User:                model.NewUserResponse(user),
		TotalHabits:         totalHabits,
		TotalCompletions:    totalCompletions,
		CurrentStreak:       currentStreak,
		CompletedChallenges: completedChallenges,
	}, nil
}
