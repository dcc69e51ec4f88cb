// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"habit_quest/internal/model"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// アプリケーションのエラーハンドリングの中心となります。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}

	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		// AppError の場合、その詳細情報をレスポンスとして使用
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	} else {
		// AppError ではない、予期せぬエラーの場合はログに詳細を残し、
		// クライアントには汎用的なエラーメッセージを返す
		if statusCode >= 500 {
			logger.Error("Unhandled error", slog.Any("error", err))
		}
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{
				Code:    codeForStatus(statusCode),
				Message: messageForStatus(statusCode),
			},
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	// AppErrorの場合は、ラップされたエラーで判定する
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict // 409 Conflict
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	default:
		// ハンドリングされていないエラーは内部サーバーエラーとして扱う
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusBadRequest:
		return "INVALID_INPUT"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusForbidden:
		return "FORBIDDEN"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

func messageForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return "リソースが見つかりません。"
	case http.StatusBadRequest:
		return "リクエストの内容が正しくありません。"
	case http.StatusConflict:
		return "リソースが競合しています。"
	case http.StatusForbidden:
		return "この操作を行う権限がありません。"
	default:
		return "サーバー内部でエラーが発生しました。"
	}
}
