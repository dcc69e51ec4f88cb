// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"habit_quest/internal/config"
	"habit_quest/internal/handlers"
	"habit_quest/internal/middleware"
	"habit_quest/internal/model"
	"habit_quest/internal/repository"
	"habit_quest/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	// 開発時は tint で色付き、それ以外はJSON
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// スキーマのマイグレーション (habit_completions / user_challenges の
	// 複合ユニークインデックスもここで張られる)
	if err := db.AutoMigrate(
		&model.User{},
		&model.Habit{},
		&model.HabitCompletion{},
		&model.Challenge{},
		&model.UserChallenge{},
		&model.Friendship{},
	); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	userRepo := repository.NewGormUserRepository()
	habitRepo := repository.NewGormHabitRepository()
	completionRepo := repository.NewGormCompletionRepository()
	challengeRepo := repository.NewGormChallengeRepository()
	friendshipRepo := repository.NewGormFriendshipRepository()

	mailer := service.NewMailer(&config.Cfg)

	challengeService := service.NewChallengeService(db, challengeRepo, userRepo, &config.Cfg)
	habitService := service.NewHabitService(db, habitRepo, completionRepo, userRepo, challengeService, &config.Cfg)
	progressService := service.NewProgressService(db, habitRepo, completionRepo, userRepo, challengeRepo, &config.Cfg)
	authService := service.NewAuthService(db, userRepo, mailer, &config.Cfg)
	friendService := service.NewFriendService(db, friendshipRepo, userRepo)

	authHandler := handlers.NewAuthHandler(authService, logger)
	habitHandler := handlers.NewHabitHandler(habitService, logger)
	challengeHandler := handlers.NewChallengeHandler(challengeService, logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger)
	friendHandler := handlers.NewFriendHandler(friendService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Get("/auth/me", authHandler.GetMe)

			r.Route("/habits", func(r chi.Router) {
				r.Post("/", habitHandler.PostHabit)
				r.Get("/", habitHandler.GetHabits)
				r.Delete("/{habit_id}", habitHandler.DeleteHabit)
				r.Post("/{habit_id}/complete", habitHandler.CompleteHabit)
			})

			r.Route("/challenges", func(r chi.Router) {
				r.Get("/", challengeHandler.GetAvailableChallenges)
				r.Get("/active", challengeHandler.GetActiveChallenges)
				r.Get("/completed", challengeHandler.GetCompletedChallenges)
				r.Post("/join", challengeHandler.JoinChallenge)
				r.Delete("/{challenge_id}", challengeHandler.AbandonChallenge)
			})

			r.Route("/progress", func(r chi.Router) {
				r.Get("/", progressHandler.GetProgress)
				r.Get("/stats", progressHandler.GetStats)
			})

			r.Route("/friends", func(r chi.Router) {
				r.Get("/", friendHandler.GetFriends)
				r.Post("/requests", friendHandler.PostFriendRequest)
				r.Get("/requests", friendHandler.GetPendingRequests)
				r.Post("/requests/respond", friendHandler.RespondFriendRequest)
				r.Delete("/{friendship_id}", friendHandler.DeleteFriend)
				r.Get("/search", friendHandler.SearchUsers)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
