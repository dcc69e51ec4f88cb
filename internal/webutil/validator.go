package webutil

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var fieldNameTranslations = map[string]string{
	"name":         "名前",
	"icon":         "アイコン",
	"email":        "メールアドレス",
	"username":     "ユーザー名",
	"password":     "パスワード",
	"habit_id":     "習慣ID",
	"challenge_id": "チャレンジID",
	"friend_id":    "友達ID",
	"action":       "操作",
	// ... 他のフィールドもここに追加 ...
}

func init() {
	// バリデータのインスタンスを生成
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// ユーザー名の形式チェック (英数字・アンダースコア・ハイフンのみ)
	if err := Validator.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	}); err != nil {
		log.Fatal(err)
	}

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	// バリデータに日本語の翻訳を登録
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 個別のエラーメッセージを上書き・カスタマイズするヘルパー
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			// jsonタグ名をマップで日本語名に変換してメッセージを生成
			fieldName := fe.Field()
			translatedFieldName, ok := fieldNameTranslations[fieldName]
			if !ok {
				translatedFieldName = fieldName
			}
			t, _ := ut.T(tag, translatedFieldName)
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")
	registerTranslation("username", "{0}には英数字・アンダースコア・ハイフンのみ使用できます。")

	// min/max はパラメータ付きなので個別に登録する
	Validator.RegisterTranslation("min", Trans, func(ut ut.Translator) error {
		return ut.Add("min", "{0}は{1}文字以上で入力してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		fieldName := fe.Field()
		translatedFieldName, ok := fieldNameTranslations[fieldName]
		if !ok {
			translatedFieldName = fieldName
		}
		t, _ := ut.T("min", translatedFieldName, fe.Param())
		return t
	})

	Validator.RegisterTranslation("max", Trans, func(ut ut.Translator) error {
		return ut.Add("max", "{0}は{1}文字以下で入力してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		fieldName := fe.Field()
		translatedFieldName, ok := fieldNameTranslations[fieldName]
		if !ok {
			translatedFieldName = fieldName
		}
		t, _ := ut.T("max", translatedFieldName, fe.Param())
		return t
	})
}
