// internal/model/friendship.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type FriendshipStatus string

const (
	FriendshipStatusPending  FriendshipStatus = "pending"
	FriendshipStatusAccepted FriendshipStatus = "accepted"
	FriendshipStatusDeclined FriendshipStatus = "declined"
)

// Friendship は申請者 (UserID) から相手 (FriendID) への友達関係
type Friendship struct {
	FriendshipID uuid.UUID        `gorm:"type:uuid;primaryKey" json:"friendship_id"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index:idx_user_friend,unique" json:"user_id"`
	FriendID     uuid.UUID        `gorm:"type:uuid;not null;index:idx_user_friend,unique" json:"friend_id"`
	Status       FriendshipStatus `gorm:"not null;default:pending" json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`

	// 関連 (Preload用)
	User   *User `gorm:"foreignKey:UserID;references:UserID" json:"-"`
	Friend *User `gorm:"foreignKey:FriendID;references:UserID" json:"-"`
}

func (Friendship) TableName() string {
	return "friendships"
}

// 友達申請リクエストDTO
type SendFriendRequestRequest struct {
	FriendID uuid.UUID `json:"friend_id" validate:"required"`
}

// 友達申請への応答DTO
type RespondFriendRequestRequest struct {
	FriendshipID uuid.UUID `json:"friendship_id" validate:"required"`
	Action       string    `json:"action" validate:"required,oneof=accept decline"`
}

// FriendResponse は友達一覧の1エントリ (相手側のプロフィール)
type FriendResponse struct {
	FriendshipID uuid.UUID     `json:"friendship_id"`
	Friend       *UserResponse `json:"friend"`
	Since        time.Time     `json:"since"`
}

// FriendRequestResponse は受信した申請の1エントリ
type FriendRequestResponse struct {
	FriendshipID uuid.UUID     `json:"friendship_id"`
	From         *UserResponse `json:"from"`
	RequestedAt  time.Time     `json:"requested_at"`
}
