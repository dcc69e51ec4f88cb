// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "HabitQuest"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultJWTExpiresInHrs = 24 * 7 // 7日間
	DefaultXPPerCompletion = 10
	DefaultLevelDivisor    = 100
	DefaultHeatmapWeeks    = 12
	DefaultTopStreakCount  = 3
)
