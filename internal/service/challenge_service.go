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

type ChallengeService interface {
	ListAvailable(ctx context.Context, userID uuid.UUID) ([]*model.AvailableChallengeResponse, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]*model.ActiveChallengeResponse, error)
	ListCompleted(ctx context.Context, userID uuid.UUID) ([]*model.UserChallenge, error)
	Join(ctx context.Context, userID uuid.UUID, req *model.JoinChallengeRequest) (*model.UserChallenge, error)
	Abandon(ctx context.Context, userID, challengeID uuid.UUID) error
	EvaluateOnCompletion(ctx context.Context, userID uuid.UUID, streak int)
}

type challengeService struct {
	db            *gorm.DB
	challengeRepo repository.ChallengeRepository
	userRepo      repository.UserRepository
	cfg           *config.Config
}

func NewChallengeService(db *gorm.DB, challengeRepo repository.ChallengeRepository, userRepo repository.UserRepository, cfg *config.Config) ChallengeService {
	return &challengeService{
		db:            db,
		challengeRepo: challengeRepo,
		userRepo:      userRepo,
		cfg:           cfg,
	}
}

func (s *challengeService) ListAvailable(ctx context.Context, userID uuid.UUID) ([]*model.AvailableChallengeResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	challenges, err := s.challengeRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list challenges", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "チャレンジ一覧の取得に失敗しました。", "", err)
	}

	userChallenges, err := s.challengeRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list user challenges", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "チャレンジ一覧の取得に失敗しました。", "", err)
	}

	statusByChallenge := make(map[uuid.UUID]model.UserChallengeStatus, len(userChallenges))
	for _, uc := range userChallenges {
		statusByChallenge[uc.ChallengeID] = uc.Status
	}

	responses := make([]*model.AvailableChallengeResponse, 0, len(challenges))
	for _, c := range challenges {
		resp := &model.AvailableChallengeResponse{Challenge: *c}
		if status, ok := statusByChallenge[c.ChallengeID]; ok {
			resp.Joined = true
			resp.UserStatus = &status
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *challengeService) ListActive(ctx context.Context, userID uuid.UUID) ([]*model.ActiveChallengeResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	now := time.Now()

	userChallenges, err := s.challengeRepo.FindActiveByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list active challenges", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進行中チャレンジの取得に失敗しました。", "", err)
	}

	responses := make([]*model.ActiveChallengeResponse, 0, len(userChallenges))
	for _, uc := range userChallenges {
		resp := &model.ActiveChallengeResponse{UserChallenge: *uc}
		if uc.Challenge != nil {
			elapsed := int(now.Sub(uc.StartedAt).Hours() / 24)
			resp.DaysRemaining = uc.Challenge.DurationDays - elapsed
			if resp.DaysRemaining < 0 {
				resp.DaysRemaining = 0
			}
			if uc.Challenge.TargetValue > 0 {
				pct := float64(uc.CurrentProgress) / float64(uc.Challenge.TargetValue) * 100
				if pct > 100 {
					pct = 100
				}
				resp.ProgressPercentage = pct
			}
		} else {
			logger.Warn("Active user challenge without catalog entry, skipping derived fields", "user_challenge_id", uc.UserChallengeID)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *challengeService) ListCompleted(ctx context.Context, userID uuid.UUID) ([]*model.UserChallenge, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	userChallenges, err := s.challengeRepo.FindCompletedByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list completed challenges", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "達成済みチャレンジの取得に失敗しました。", "", err)
	}
	return userChallenges, nil
}

func (s *challengeService) Join(ctx context.Context, userID uuid.UUID, req *model.JoinChallengeRequest) (*model.UserChallenge, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "challenge_id", req.ChallengeID)

	var joined *model.UserChallenge

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.challengeRepo.FindByID(ctx, tx, req.ChallengeID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "指定されたチャレンジが見つかりません。", "challenge_id", err)
			}
			logger.Error("Error finding challenge in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "チャレンジへの参加中にエラーが発生しました。", "", err)
		}

		uc := &model.UserChallenge{
			UserChallengeID: uuid.New(),
			UserID:          userID,
			ChallengeID:     req.ChallengeID,
			Status:          model.UserChallengeStatusActive,
			CurrentProgress: 0,
			StartedAt:       time.Now(),
		}
		if err := s.challengeRepo.CreateUserChallenge(ctx, tx, uc); err != nil {
			if errors.Is(err, model.ErrConflict) {
				// (user_id, challenge_id) のユニーク制約。二重参加は409
				return model.NewAppError("ALREADY_JOINED", "このチャレンジにはすでに参加しています。", "", err)
			}
			logger.Error("Error creating user challenge in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "チャレンジへの参加に失敗しました。", "", err)
		}

		joined = uc
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Joined challenge", "user_challenge_id", joined.UserChallengeID)
	return joined, nil
}

func (s *challengeService) Abandon(ctx context.Context, userID, challengeID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "challenge_id", challengeID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		uc, err := s.challengeRepo.FindUserChallenge(ctx, tx, userID, challengeID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "参加中のチャレンジが見つかりません。", "", err)
			}
			logger.Error("Error finding user challenge in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "チャレンジの離脱中にエラーが発生しました。", "", err)
		}

		// 達成済みのチャレンジは記録として残すため離脱不可
		if uc.Status == model.UserChallengeStatusCompleted {
			return model.NewAppError("CHALLENGE_COMPLETED", "達成済みのチャレンジは離脱できません。", "", model.ErrInvalidInput)
		}

		if err := s.challengeRepo.DeleteUserChallenge(ctx, tx, uc.UserChallengeID); err != nil {
			logger.Error("Error deleting user challenge in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "チャレンジの離脱に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Abandoned challenge")
	return nil
}

// EvaluateOnCompletion は習慣完了を受けて進行中チャレンジの進捗を前進させる。
//
// チャレンジ単位で失敗を隔離する: 1件の評価や更新が失敗しても残りは続行し、
// エラーはログに残すだけで呼び出し元には返さない。達成時のステータス遷移は
// リポジトリ側の WHERE status = 'active' 条件により一方向で、再達成によって
// completed が巻き戻ることはない。
func (s *challengeService) EvaluateOnCompletion(ctx context.Context, userID uuid.UUID, streak int) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	userChallenges, err := s.challengeRepo.FindActiveByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to load active challenges for evaluation", "error", err)
		return
	}

	for _, uc := range userChallenges {
		if uc.Challenge == nil {
			logger.Warn("Active user challenge without catalog entry, skipping", "user_challenge_id", uc.UserChallengeID)
			continue
		}
		if err := s.evaluateOne(ctx, uc, streak); err != nil {
			logger.Error("Failed to evaluate challenge progress", "error", err,
				"user_challenge_id", uc.UserChallengeID,
				"challenge_type", uc.Challenge.Type,
			)
		}
	}
}

func (s *challengeService) evaluateOne(ctx context.Context, uc *model.UserChallenge, streak int) error {
	logger := middleware.GetLogger(ctx).With("user_challenge_id", uc.UserChallengeID)

	newProgress := uc.CurrentProgress
	switch uc.Challenge.Type {
	case model.ChallengeTypeStreak:
		if streak > newProgress {
			newProgress = streak
		}
	case model.ChallengeTypeTotalCompletions, model.ChallengeTypeConsecutiveDays:
		newProgress++
	default:
		logger.Warn("Unknown challenge type, skipping", "challenge_type", uc.Challenge.Type)
		return nil
	}

	if newProgress >= uc.Challenge.TargetValue {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			now := time.Now()
			if err := s.challengeRepo.Complete(ctx, tx, uc.UserChallengeID, newProgress, now); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					// 既に completed へ遷移済み (同時評価)。報酬の二重付与を防ぐ
					logger.Debug("Challenge already completed, skipping reward")
					return nil
				}
				return err
			}
			if _, _, err := awardXP(ctx, tx, s.userRepo, uc.UserID, uc.Challenge.XPReward, s.cfg.App.LevelDivisor); err != nil {
				return err
			}
			logger.Info("Challenge completed", "xp_reward", uc.Challenge.XPReward, "progress", newProgress)
			return nil
		})
	}

	if newProgress == uc.CurrentProgress {
		return nil
	}
	if err := s.challengeRepo.UpdateProgress(ctx, s.db, uc.UserChallengeID, newProgress); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Debug("Challenge no longer active, skipping progress update")
			return nil
		}
		return err
	}
	logger.Debug("Challenge progress updated", "progress", newProgress)
	return nil
}
