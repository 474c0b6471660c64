// internal/model/sentence.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Sentence は課に属する例文（中国語・ベトナム語の対）を表します
type Sentence struct {
	SentenceID    uuid.UUID   `gorm:"type:uuid;primaryKey" json:"sentence_id"`
	LessonID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"lesson_id"`
	Zh            string      `gorm:"not null" json:"zh"`
	Vi            string      `gorm:"not null" json:"vi"`
	Options       StringArray `gorm:"serializer:json" json:"options,omitempty"` // 選択式の場合のみ
	CorrectAnswer string      `json:"correct_answer,omitempty"`                 // 未設定時は Vi が正解
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	// 関連 (Preload用)
	Lesson *Lesson `gorm:"foreignKey:LessonID;references:LessonID" json:"lesson,omitempty"`
}

func (Sentence) TableName() string {
	return "sentences"
}

// StringArray はJSONカラムに保存する文字列配列
type StringArray []string

// AnswerText は採点時に使う正解文字列を返します（CorrectAnswer 未設定なら Vi）
func (s *Sentence) AnswerText() string {
	if s.CorrectAnswer != "" {
		return s.CorrectAnswer
	}
	return s.Vi
}

type PostSentenceRequest struct {
	Zh            string   `json:"zh" validate:"required"`
	Vi            string   `json:"vi" validate:"required"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// GeneratedSentence は読解ユニットの段落から生成した一時的な文です。
// 永続化されず、IDは1回の生成処理の中でのみ一意（gen_<unitID>_<連番>）。
// リクエストをまたいで参照できる永続IDとして扱ってはいけません。
type GeneratedSentence struct {
	ID        string    `json:"sentence_id"`
	Lesson    *Lesson   `json:"lesson"`
	Zh        string    `json:"zh"`
	Vi        string    `json:"vi"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SentenceListResponse は文一覧APIのレスポンスDTO
type SentenceListResponse struct {
	Sentences interface{} `json:"sentences"`
	Total     int         `json:"total"`
	Generated bool        `json:"generated"` // 自動生成された文かどうか
}
