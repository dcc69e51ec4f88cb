// internal/model/habit.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Habit はユーザーが継続したい習慣を表します
type Habit struct {
	HabitID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"habit_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	Icon      string    `gorm:"not null" json:"icon"`
	GoalType  string    `gorm:"not null;default:check" json:"goal_type"`
	GoalValue *int      `json:"goal_value,omitempty"`
	GoalUnit  *string   `json:"goal_unit,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 関連 (Preload用)
	Completions []HabitCompletion `gorm:"foreignKey:HabitID" json:"-"`
}

func (Habit) TableName() string {
	return "habits"
}

// HabitCompletion は習慣の完了イベント (追記専用の台帳)
// 同一習慣・同一日の完了は (habit_id, completed_on) の複合ユニーク制約で1件に制限する
type HabitCompletion struct {
	CompletionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"completion_id"`
	HabitID      uuid.UUID `gorm:"type:uuid;not null;index:idx_habit_day,unique" json:"habit_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CompletedAt  time.Time `gorm:"not null" json:"completed_at"`
	CompletedOn  time.Time `gorm:"type:date;not null;index:idx_habit_day,unique" json:"-"` // 暦日 (日境界で切り捨て)
	XPEarned     int       `gorm:"column:xp_earned;not null" json:"xp_earned"`
	CreatedAt    time.Time `json:"-"`
}

func (HabitCompletion) TableName() string {
	return "habit_completions"
}

// 習慣作成リクエストDTO
type CreateHabitRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	Icon      string  `json:"icon" validate:"required"`
	GoalType  string  `json:"goal_type" validate:"omitempty,max=50"`
	GoalValue *int    `json:"goal_value,omitempty" validate:"omitempty,min=1,max=10000"`
	GoalUnit  *string `json:"goal_unit,omitempty" validate:"omitempty,max=50"`
}

// 習慣完了リクエストDTO
type CompleteHabitRequest struct {
	HabitID uuid.UUID `json:"habit_id" validate:"required"`
}

// HabitResponse は一覧表示用に派生情報 (ストリーク・本日完了済みか) を付与した習慣
type HabitResponse struct {
	Habit
	Streak         int  `json:"streak"`
	CompletedToday bool `json:"completed_today"`
}

// CompleteHabitResponse は完了イベント処理の結果
type CompleteHabitResponse struct {
	Completion *HabitCompletion `json:"completion"`
	XPEarned   int              `json:"xp_earned"`
	TotalXP    int              `json:"total_xp"`
	NewLevel   int              `json:"new_level"`
}
