package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"habit_quest/internal/config"
	"habit_quest/internal/middleware"
	"habit_quest/internal/model"
	"habit_quest/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	mailer   Mailer
	cfg      *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		mailer:   mailer,
		cfg:      cfg,
	}
}

// Register は新しいユーザーを登録し、JWTを返します
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Emailでの重複チェック
		_, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		// ユーザー名での重複チェック
		_, err = s.userRepo.FindByUsername(ctx, tx, req.Username)
		if err == nil {
			logger.Warn("Username already exists", "username", req.Username)
			return model.NewAppError("DUPLICATE_USERNAME", "そのユーザ名は既に使用されています。", "username", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check username existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		// パスワードのハッシュ化
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
		}

		user := &model.User{
			UserID:       uuid.New(),
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hashedPassword),
			Level:        1,
			TotalXP:      0,
		}

		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			// Create内で重複エラーが検知された場合 (レースコンディション対策)
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation (race condition)", "error", err)
				return model.NewAppError("DUPLICATE_ENTRY", "指定されたユーザ名またはEmailは既に使用されています。", "username,email", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}
		newUser = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	// ウェルカムメールは登録の成否に影響させない
	if err := s.sendWelcomeEmail(ctx, newUser.Email, newUser.Username); err != nil {
		logger.Warn("Failed to send welcome email", "error", err, "email", newUser.Email)
	}

	token, err := s.issueToken(ctx, newUser.UserID)
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", "user_id", newUser.UserID, "username", newUser.Username)
	return &model.AuthResponse{User: model.NewUserResponse(newUser), Token: token}, nil
}

// Login はユーザーを認証し、JWTを返します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrInvalidInput)
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrInvalidInput)
	}

	token, err := s.issueToken(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	logger.Info("Login successful", "user_id", user.UserID)
	return &model.AuthResponse{User: model.NewUserResponse(user), Token: token}, nil
}

// GetUser は指定されたIDのユーザーを取得します
func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found", "user_id", userID.String())
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error finding user by ID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}
	return model.NewUserResponse(user), nil
}

// --- ヘルパー関数 ---

func (s *authService) issueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	logger := middleware.GetLogger(ctx)

	claims := &model.JWTCustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.AppName,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(s.cfg.JWT.ExpiresInHrs) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", userID)
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}
	return signedToken, nil
}

func (s *authService) sendWelcomeEmail(ctx context.Context, email, username string) error {
	subject := fmt.Sprintf("【%s】ご登録ありがとうございます", config.AppName)
	body := fmt.Sprintf("%s さん\n\n%sへようこそ！\n習慣を登録して、毎日の達成を記録しましょう。継続するほどXPが貯まり、レベルが上がります。\n\nまずは最初の習慣を作ってみてください。", username, config.AppName)
	return s.mailer.Send(ctx, email, subject, body)
}
