// internal/model/challenge.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ChallengeType string

const (
	ChallengeTypeStreak           ChallengeType = "streak"
	ChallengeTypeTotalCompletions ChallengeType = "total_completions"
	ChallengeTypeConsecutiveDays  ChallengeType = "consecutive_days"
)

type UserChallengeStatus string

const (
	UserChallengeStatusActive    UserChallengeStatus = "active"
	UserChallengeStatusCompleted UserChallengeStatus = "completed"
)

// Challenge はチャレンジのカタログ定義 (シードデータ、エンジンからは読み取り専用)
type Challenge struct {
	ChallengeID  uuid.UUID     `gorm:"type:uuid;primaryKey" json:"challenge_id"`
	Name         string        `gorm:"unique;not null" json:"name"`
	Description  string        `gorm:"not null" json:"description"`
	Type         ChallengeType `gorm:"not null" json:"type"`
	DurationDays int           `gorm:"not null" json:"duration_days"`
	TargetValue  int           `gorm:"not null" json:"target_value"`
	Icon         string        `gorm:"not null" json:"icon"`
	XPReward     int           `gorm:"column:xp_reward;not null" json:"xp_reward"`
	CreatedAt    time.Time     `json:"created_at"`
}

func (Challenge) TableName() string {
	return "challenges"
}

// UserChallenge はユーザーのチャレンジ参加状態
// (user_id, challenge_id) の複合ユニーク制約で二重参加を防ぐ
type UserChallenge struct {
	UserChallengeID uuid.UUID           `gorm:"type:uuid;primaryKey" json:"user_challenge_id"`
	UserID          uuid.UUID           `gorm:"type:uuid;not null;index:idx_user_challenge,unique" json:"user_id"`
	ChallengeID     uuid.UUID           `gorm:"type:uuid;not null;index:idx_user_challenge,unique" json:"challenge_id"`
	Status          UserChallengeStatus `gorm:"not null;default:active" json:"status"`
	CurrentProgress int                 `gorm:"not null;default:0" json:"current_progress"`
	StartedAt       time.Time           `gorm:"not null" json:"started_at"`
	CompletedAt     *time.Time          `json:"completed_at,omitempty"`

	// 関連 (Preload用)
	Challenge *Challenge `gorm:"foreignKey:ChallengeID;references:ChallengeID" json:"challenge,omitempty"`
}

func (UserChallenge) TableName() string {
	return "user_challenges"
}

// チャレンジ参加リクエストDTO
type JoinChallengeRequest struct {
	ChallengeID uuid.UUID `json:"challenge_id" validate:"required"`
}

// AvailableChallengeResponse はカタログのチャレンジに参加状態を付与したもの
type AvailableChallengeResponse struct {
	Challenge
	Joined     bool                 `json:"joined"`
	UserStatus *UserChallengeStatus `json:"user_status,omitempty"`
}

// ActiveChallengeResponse は進行中チャレンジに残り日数と達成率を付与したもの
type ActiveChallengeResponse struct {
	UserChallenge
	DaysRemaining      int     `json:"days_remaining"`
	ProgressPercentage float64 `json:"progress_percentage"`
}
