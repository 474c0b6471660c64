// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionMode は学習セッションの種別
type SessionMode string

const (
	ModeVocab   SessionMode = "vocab"
	ModeLesson  SessionMode = "lesson"
	ModeReading SessionMode = "reading"
	ModeQuiz    SessionMode = "quiz"
	ModeTest    SessionMode = "test"
)

// ValidSessionMode は mode が許可された値かどうかを返します
func ValidSessionMode(mode string) bool {
	switch SessionMode(mode) {
	case ModeVocab, ModeLesson, ModeReading, ModeQuiz, ModeTest:
		return true
	}
	return false
}

// SessionSummary はセッションの集計値です。
// Score は complete / submit 時に計算されるまで未設定（nil）。
type SessionSummary struct {
	Total     int  `json:"total"`
	Correct   int  `json:"correct"`
	Incorrect int  `json:"incorrect"`
	Score     *int `json:"score,omitempty"`
}

// Session は1回の学習（テスト）セッションを表します
type Session struct {
	SessionID   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"session_id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Mode        SessionMode    `gorm:"not null" json:"mode"`
	Summary     SessionSummary `gorm:"embedded;embeddedPrefix:summary_" json:"summary"`
	StartedAt   time.Time      `gorm:"not null" json:"started_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (Session) TableName() string {
	return "sessions"
}

// QuestionKind は出題アイテムの種別
type QuestionKind string

const (
	KindVocab    QuestionKind = "vocab"
	KindSentence QuestionKind = "sentence"
	KindReading  QuestionKind = "reading"
)

// Answer は採点済みの回答1件を表します（追記専用）。
// QuestionID は生成文の一時ID（gen_...）を含み得るため文字列で保持します。
// 生成文のIDは生成のたびに変わるので、採点は必ず実IDで実体を引き直して行います。
type Answer struct {
	AnswerID     uuid.UUID    `gorm:"type:uuid;primaryKey" json:"answer_id"`
	SessionID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"session_id"`
	QuestionID   string       `gorm:"not null;index" json:"question_id"`
	QuestionType QuestionKind `gorm:"not null" json:"question_type"`
	UserAnswer   string       `gorm:"not null" json:"user_answer"`
	Correct      bool         `gorm:"not null" json:"correct"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (Answer) TableName() string {
	return "answers"
}

// --- セッションAPIのDTO ---

type PostSessionRequest struct {
	Mode string `json:"mode" validate:"required,oneof=vocab lesson reading quiz test"`
}

// PostAnswerRequest は練習モードの回答記録リクエスト。
// 正誤はクライアント側で判定済みのものを受け取り、そのまま記録します。
type PostAnswerRequest struct {
	SessionID    string `json:"session_id" validate:"required,uuid"`
	QuestionID   string `json:"question_id" validate:"required"`
	QuestionType string `json:"question_type" validate:"required,oneof=vocab sentence reading"`
	UserAnswer   string `json:"user_answer" validate:"required"`
	Correct      *bool  `json:"correct" validate:"required"`
}

// ProgressResponse は学習進捗の統計レスポンス
type ProgressResponse struct {
	Summary   ProgressSummary     `json:"summary"`
	ModeStats map[string]ModeStat `json:"mode_stats"`
}

type ProgressSummary struct {
	TotalSessions  int `json:"total_sessions"`
	TotalQuestions int `json:"total_questions"`
	TotalCorrect   int `json:"total_correct"`
	TotalIncorrect int `json:"total_incorrect"`
	Accuracy       int `json:"accuracy"`
}

type ModeStat struct {
	Total     int `json:"total"`
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}
