package service

import (
	"context"
	"errors"
	"time"

	"habit_quest/internal/config"
	"habit_quest/internal/middleware"
	"habit_quest/internal/model"
	"habit_quest/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChallengeEvaluator は習慣完了後のチャレンジ進捗の再評価窓口。
// 完了イベント自体の成否には影響させない (ベストエフォート)。
type ChallengeEvaluator interface {
	EvaluateOnCompletion(ctx context.Context, userID uuid.UUID, streak int)
}

type HabitService interface {
	CreateHabit(ctx context.Context, userID uuid.UUID, req *model.CreateHabitRequest) (*model.Habit, error)
	ListHabits(ctx context.Context, userID uuid.UUID) ([]*model.HabitResponse, error)
	DeleteHabit(ctx context.Context, userID, habitID uuid.UUID) error
	CompleteHabit(ctx context.Context, userID uuid.UUID, req *model.CompleteHabitRequest) (*model.CompleteHabitResponse, error)
}

type habitService struct {
	db             *gorm.DB // トランザクション用にDB接続を持つ
	habitRepo      repository.HabitRepository
	completionRepo repository.CompletionRepository
	userRepo       repository.UserRepository
	evaluator      ChallengeEvaluator
	cfg            *config.Config
}

func NewHabitService(db *gorm.DB, habitRepo repository.HabitRepository, completionRepo repository.CompletionRepository, userRepo repository.UserRepository, evaluator ChallengeEvaluator, cfg *config.Config) HabitService {
	return &habitService{
		db:             db,
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		userRepo:       userRepo,
		evaluator:      evaluator,
		cfg:            cfg,
	}
}

func (s *habitService) CreateHabit(ctx context.Context, userID uuid.UUID, req *model.CreateHabitRequest) (*model.Habit, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	habit := &model.Habit{
		HabitID:   uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		Icon:      req.Icon,
		GoalType:  req.GoalType,
		GoalValue: req.GoalValue,
		GoalUnit:  req.GoalUnit,
	}
	if habit.GoalType == "" {
		habit.GoalType = "check"
	}

	if err := s.habitRepo.Create(ctx, s.db, habit); err != nil {
		logger.Error("Failed to create habit", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習慣の作成に失敗しました。", "", err)
	}

	logger.Info("Habit created", "habit_id", habit.HabitID, "name", habit.Name)
	return habit, nil
}

func (s *habitService) ListHabits(ctx context.Context, userID uuid.UUID) ([]*model.HabitResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	loc := s.cfg.DayBoundaryLocation()
	now := time.Now()
	today := DayOf(now, loc)

	habits, err := s.habitRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list habits", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習慣一覧の取得に失敗しました。", "", err)
	}

	responses := make([]*model.HabitResponse, 0, len(habits))
	for _, habit := range habits {
		completions, err := s.completionRepo.FindByHabit(ctx, s.db, habit.HabitID)
		if err != nil {
			logger.Error("Failed to load completions for habit", "error", err, "habit_id", habit.HabitID)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習慣一覧の取得に失敗しました。", "", err)
		}

		completedToday := false
		for _, c := range completions {
			if DayOf(c.CompletedAt, loc).Equal(today) {
				completedToday = true
				break
			}
		}

		responses = append(responses, &model.HabitResponse{
			Habit:          *habit,
			Streak:         CalculateStreak(completions, now, loc),
			CompletedToday: completedToday,
		})
	}

	return responses, nil
}

func (s *habitService) DeleteHabit(ctx context.Context, userID, habitID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "habit_id", habitID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.habitRepo.FindByID(ctx, tx, userID, habitID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "指定された習慣が見つかりません。", "", err)
			}
			logger.Error("Error finding habit in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "習慣の削除中にエラーが発生しました。", "", err)
		}
		if err := s.habitRepo.Delete(ctx, tx, userID, habitID); err != nil {
			logger.Error("Error deleting habit in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "習慣の削除に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Habit deleted")
	return nil
}

// CompleteHabit は完了イベントを記録し、XPを加算する。
//
// 重複チェックと完了レコードの挿入は同一トランザクションで行い、競合時は
// DBの (habit_id, completed_on) ユニーク制約が最終的な防波堤になる。
// チャレンジ進捗の再評価はコミット後のベストエフォートで、失敗しても
// 完了イベント自体は成功として返す。
func (s *habitService) CompleteHabit(ctx context.Context, userID uuid.UUID, req *model.CompleteHabitRequest) (*model.CompleteHabitResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "habit_id", req.HabitID)
	loc := s.cfg.DayBoundaryLocation()
	now := time.Now()
	today := DayOf(now, loc)
	xp := s.cfg.App.XPPerCompletion

	var resp *model.CompleteHabitResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 所有チェック
		if _, err := s.habitRepo.FindByID(ctx, tx, userID, req.HabitID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "指定された習慣が見つかりません。", "habit_id", err)
			}
			logger.Error("Error finding habit in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "習慣の完了処理中にエラーが発生しました。", "", err)
		}

		// 2. 本日分の重複チェック
		exists, err := s.completionRepo.ExistsForDay(ctx, tx, req.HabitID, today)
		if err != nil {
			logger.Error("Error checking duplicate completion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "習慣の完了処理中にエラーが発生しました。", "", err)
		}
		if exists {
			return model.NewAppError("DUPLICATE_COMPLETION", "この習慣は本日すでに完了しています。", "", model.ErrConflict)
		}

		// 3. 完了レコードの挿入
		completion := &model.HabitCompletion{
			CompletionID: uuid.New(),
			HabitID:      req.HabitID,
			UserID:       userID,
			CompletedAt:  now,
			CompletedOn:  today,
			XPEarned:     xp,
		}
		if err := s.completionRepo.Create(ctx, tx, completion); err != nil {
			if errors.Is(err, model.ErrConflict) {
				// 同時リクエストがユニーク制約に先着した場合
				return model.NewAppError("DUPLICATE_COMPLETION", "この習慣は本日すでに完了しています。", "", err)
			}
			logger.Error("Error creating completion in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "習慣の完了処理に失敗しました。", "", err)
		}

		// 4. XP加算とレベル再計算
		newTotal, newLevel, err := awardXP(ctx, tx, s.userRepo, userID, xp, s.cfg.App.LevelDivisor)
		if err != nil {
			return err
		}

		resp = &model.CompleteHabitResponse{
			Completion: completion,
			XPEarned:   xp,
			TotalXP:    newTotal,
			NewLevel:   newLevel,
		}
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Habit completed", "xp_earned", xp, "total_xp", resp.TotalXP, "level", resp.NewLevel)

	// コミット後にチャレンジ進捗を再評価する (失敗しても完了イベントは成立済み)
	if s.evaluator != nil {
		completions, err := s.completionRepo.FindByHabit(ctx, s.db, req.HabitID)
		if err != nil {
			logger.Warn("Failed to load completions for challenge evaluation, skipping", "error", err)
		} else {
			s.evaluator.EvaluateOnCompletion(ctx, userID, CalculateStreak(completions, now, loc))
		}
	}

	return resp, nil
}
