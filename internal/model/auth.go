package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// RegisterRequest は新規登録APIのリクエストボディの構造体 (DTO)
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse は登録・ログイン成功時のレスポンス
type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

// JWTCustomClaims はJWTに含めるカスタムクレーム（ペイロード）
type JWTCustomClaims struct {
	jwt.RegisteredClaims // 標準クレーム (iss, sub, exp など) を埋め込む
}
