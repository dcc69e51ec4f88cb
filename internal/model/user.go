package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ユーザーの基本情報とアカウント進捗 (XP・レベル)
type User struct {
	UserID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Username     string         `gorm:"unique;not null" json:"username"`
	Email        string         `gorm:"unique;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Level        int            `gorm:"not null;default:1" json:"level"`
	TotalXP      int            `gorm:"column:total_xp;not null;default:0" json:"total_xp"`
	AvatarURL    string         `json:"avatar_url,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// GORM用のリレーション (JSONには含めない)
	Habits []Habit `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// UserResponse はクライアントに返すユーザー情報の構造体
type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Level     int       `json:"level"`
	TotalXP   int       `json:"total_xp"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		Level:     u.Level,
		TotalXP:   u.TotalXP,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}
