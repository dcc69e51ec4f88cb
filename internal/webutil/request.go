package webutil

import (
	"encoding/json"
	"errors"
	"net/http"

	"habit_quest/internal/model"

	"github.com/go-playground/validator/v10"
)

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.ErrInvalidInput
	}
	return nil
}

// DecodeAndValidate はデコードとバリデーションをまとめて行い、
// 失敗時にはクライアントへそのまま返せる AppError を返します。
func DecodeAndValidate(r *http.Request, dst interface{}) *model.AppError {
	if err := DecodeJSONBody(r, dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
	}

	if err := Validator.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			// 最初のエラーを代表としてクライアントに返す
			firstErr := validationErrors[0]
			return model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(Trans),
				firstErr.Field(), // エラーが発生したフィールド (jsonタグ名)
				model.ErrInvalidInput,
			)
		}
		// バリデーションライブラリ自体のエラーなど、予期せぬエラー
		return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	return nil
}
