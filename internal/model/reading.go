// internal/model/reading.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ReadingQuestionType は読解問題の種別
type ReadingQuestionType string

const (
	QuestionTypeMCQ       ReadingQuestionType = "mcq"       // 選択式
	QuestionTypeFill      ReadingQuestionType = "fill"      // 穴埋め
	QuestionTypeTranslate ReadingQuestionType = "translate" // 翻訳
)

type ReadingDifficulty string

const (
	DifficultyEasy   ReadingDifficulty = "easy"
	DifficultyMedium ReadingDifficulty = "medium"
	DifficultyHard   ReadingDifficulty = "hard"
)

// ReadingUnit は読解教材（中国語段落とベトナム語段落の対）を表します
type ReadingUnit struct {
	UnitID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"unit_id"`
	UnitTitle   string    `gorm:"not null;index" json:"unit_title"`
	ZhParagraph string    `gorm:"not null" json:"zh_paragraph"`
	ViParagraph string    `gorm:"not null" json:"vi_paragraph"`
	SourceTag   string    `gorm:"index" json:"source_tag"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ReadingUnit) TableName() string {
	return "reading_units"
}

// ReadingQuestion は読解ユニットに紐づく設問を表します
type ReadingQuestion struct {
	QuestionID   uuid.UUID           `gorm:"type:uuid;primaryKey" json:"question_id"`
	UnitID       uuid.UUID           `gorm:"type:uuid;not null;index" json:"unit_id"`
	Question     string              `gorm:"not null" json:"question"`
	Options      StringArray         `gorm:"serializer:json" json:"options,omitempty"`
	Answer       AnswerValue         `gorm:"serializer:json" json:"answer"`
	QuestionType ReadingQuestionType `gorm:"not null;default:mcq" json:"question_type"`
	Difficulty   ReadingDifficulty   `gorm:"not null;default:medium;index" json:"difficulty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func (ReadingQuestion) TableName() string {
	return "reading_questions"
}

// ReadingUnitDetail は詳細表示用にユニットと設問をまとめたDTO
type ReadingUnitDetail struct {
	ReadingUnit
	Questions []*ReadingQuestion `json:"questions"`
}

// AnswerValue は設問の正解値です。スプレッドシート取り込みの都合で
// 正解が素の文字列の場合と {text, value} のオブジェクトの場合の両方があるため、
// どちらの形でも受けられるタグ付きの値として保持します。
type AnswerValue struct {
	Text       string `json:"text,omitempty"`
	Value      string `json:"value,omitempty"`
	structured bool
}

// NewPlainAnswer は素の文字列の正解値を作ります
func NewPlainAnswer(text string) AnswerValue {
	return AnswerValue{Text: text}
}

// NewStructuredAnswer はオブジェクト形式の正解値を作ります
func NewStructuredAnswer(text, value string) AnswerValue {
	return AnswerValue{Text: text, Value: value, structured: true}
}

// CanonicalText は採点に使う正解文字列を返します。
// オブジェクト形式なら text（無ければ value）、そうでなければ素の文字列。
func (a AnswerValue) CanonicalText() string {
	if a.Text != "" {
		return a.Text
	}
	return a.Value
}

// UnmarshalJSON は "正解" と {"text": "正解"} の両方を受け付けます
func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*a = AnswerValue{Text: plain}
		return nil
	}
	var obj struct {
		Text  string `json:"text"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*a = AnswerValue{Text: obj.Text, Value: obj.Value, structured: true}
	return nil
}

func (a AnswerValue) MarshalJSON() ([]byte, error) {
	if !a.structured && a.Value == "" {
		return json.Marshal(a.Text)
	}
	return json.Marshal(struct {
		Text  string `json:"text,omitempty"`
		Value string `json:"value,omitempty"`
	}{Text: a.Text, Value: a.Value})
}

type PostReadingUnitRequest struct {
	UnitTitle   string `json:"unit_title" validate:"required,min=1,max=200"`
	ZhParagraph string `json:"zh_paragraph" validate:"required"`
	ViParagraph string `json:"vi_paragraph" validate:"required"`
	SourceTag   string `json:"source_tag"`
}

type PostReadingQuestionRequest struct {
	Question     string      `json:"question" validate:"required"`
	Options      []string    `json:"options"`
	Answer       AnswerValue `json:"answer"`
	QuestionType string      `json:"question_type" validate:"omitempty,oneof=mcq fill translate"`
	Difficulty   string      `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

// GradeUnitRequest は読解ユニット単位の採点リクエスト（questionId -> 回答）
type GradeUnitRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

type GradeUnitResult struct {
	QuestionID    string `json:"question_id"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
}

type GradeUnitResponse struct {
	UnitID  string            `json:"unit_id"`
	Total   int               `json:"total"`
	Correct int               `json:"correct"`
	Score   int               `json:"score"`
	Results []GradeUnitResult `json:"results"`
}
