// internal/webutil/validator.go
package webutil

import (
	"log"
	"reflect"
	"strings"

	"go_hanviet_learn/internal/model"

	"github.com/go-playground/locales/vi" // ベトナム語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	vi_translations "github.com/go-playground/validator/v10/translations/vi" // ベトナム語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

// APIの利用者向けメッセージはベトナム語のため、フィールド名もベトナム語にする
var fieldNameTranslations = map[string]string{
	"name":          "tên",
	"email":         "email",
	"password":      "mật khẩu",
	"zh":            "tiếng Trung",
	"pinyin":        "phiên âm",
	"vi":            "tiếng Việt",
	"title":         "tiêu đề",
	"unit_title":    "tiêu đề bài đọc",
	"zh_paragraph":  "đoạn văn tiếng Trung",
	"vi_paragraph":  "đoạn văn tiếng Việt",
	"mode":          "chế độ học",
	"question":      "câu hỏi",
	"user_answer":   "câu trả lời",
	"count":         "số câu hỏi",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// ベトナム語のロケールとトランスレータを設定
	vietnamese := vi.New()
	uni := ut.New(vietnamese, vietnamese)
	var found bool
	Trans, found = uni.GetTranslator("vi")
	if !found {
		log.Fatal("translator not found")
	}

	if err := vi_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 個別のエラーメッセージを上書き・カスタマイズ
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			translatedFieldName, ok := fieldNameTranslations[fieldName]
			if !ok {
				translatedFieldName = fieldName
			}
			t, _ := ut.T(tag, translatedFieldName)
			return t
		})
	}

	registerTranslation("required", "Vui lòng nhập {0}.")
	registerTranslation("email", "{0} không đúng định dạng.")

	Validator.RegisterTranslation("min", Trans, func(ut ut.Translator) error {
		return ut.Add("min", "{0} phải có ít nhất {1} ký tự.", true)
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
		return ut.Add("max", "{0} không được vượt quá {1} ký tự.", true)
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

// NewValidationError はバリデーションエラーの先頭1件を AppError に変換します
func NewValidationError(errs validator.ValidationErrors) *model.AppError {
	firstErr := errs[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		firstErr.Translate(Trans),
		firstErr.Field(),
		model.ErrInvalidInput,
	)
}
