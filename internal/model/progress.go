// internal/model/progress.go
package model

import "github.com/google/uuid"

// HeatmapEntry はカレンダーヒートマップの1日分 (完了ゼロの日も count=0 で必ず含める)
type HeatmapEntry struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// TopStreak は現在ストリーク上位の習慣
type TopStreak struct {
	HabitID uuid.UUID `json:"habit_id"`
	Name    string    `json:"name"`
	Icon    string    `json:"icon"`
	Streak  int       `json:"streak"`
}

// ProgressResponse は進捗画面用の集計結果
type ProgressResponse struct {
	TopStreaks  []TopStreak    `json:"top_streaks"`
	HeatmapData []HeatmapEntry `json:"heatmap_data"`
}

// StatsResponse はアカウント統計
type StatsResponse struct {
	User                *UserResponse `json:"user"`
	TotalHabits         int64         `json:"total_habits"`
	TotalCompletions    int64         `json:"total_completions"`
	CurrentStreak       int           `json:"current_streak"`
	CompletedChallenges int64         `json:"completed_challenges"`
}
