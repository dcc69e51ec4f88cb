// cmd/seed/main.go
//
// チャレンジカタログの初期データ投入。冪等に動くので何度実行してもよい。
package main

import (
	"log"
	"log/slog"
	"os"

	"habit_quest/internal/config"
	"habit_quest/internal/model"
	"habit_quest/internal/repository"

	"github.com/google/uuid"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := db.AutoMigrate(&model.Challenge{}); err != nil {
		slog.Error("Error migrating challenges table", slog.Any("error", err))
		os.Exit(1)
	}

	challenges := []model.Challenge{
		{
			Name:         "7-Day Streak",
			Description:  "1つの習慣を7日間連続で続けよう",
			Type:         model.ChallengeTypeStreak,
			DurationDays: 7,
			TargetValue:  7,
			Icon:         "🔥",
			XPReward:     150,
		},
		{
			Name:         "30-Day Warrior",
			Description:  "1つの習慣を30日間連続で続けよう",
			Type:         model.ChallengeTypeStreak,
			DurationDays: 30,
			TargetValue:  30,
			Icon:         "⚔️",
			XPReward:     500,
		},
		{
			Name:         "Century Club",
			Description:  "累計100回の達成を目指そう",
			Type:         model.ChallengeTypeTotalCompletions,
			DurationDays: 90,
			TargetValue:  100,
			Icon:         "💯",
			XPReward:     300,
		},
		{
			Name:         "Habit Master",
			Description:  "14日間毎日なにかの習慣を達成しよう",
			Type:         model.ChallengeTypeConsecutiveDays,
			DurationDays: 14,
			TargetValue:  14,
			Icon:         "🏆",
			XPReward:     400,
		},
	}

	for i := range challenges {
		c := &challenges[i]
		c.ChallengeID = uuid.New()
		// Name がユニークキー。既存レコードがあれば何もしない
		result := db.Where("name = ?", c.Name).FirstOrCreate(c)
		if result.Error != nil {
			slog.Error("Error seeding challenge", slog.String("name", c.Name), slog.Any("error", result.Error))
			os.Exit(1)
		}
		if result.RowsAffected > 0 {
			slog.Info("Challenge seeded", slog.String("name", c.Name))
		} else {
			slog.Info("Challenge already exists, skipped", slog.String("name", c.Name))
		}
	}

	log.Println("Seeding completed")
}
