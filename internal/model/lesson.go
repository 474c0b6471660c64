// internal/model/lesson.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Lesson は文を束ねる「課」を表します。
// 読解ユニットから文を自動生成する際は source_tag（なければタイトル）を
// キーにして既存の課を探し、無ければ新規作成します。
type Lesson struct {
	LessonID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"lesson_id"`
	Title       string    `gorm:"not null;index" json:"title"`
	Description string    `json:"description"`
	SourceTag   string    `gorm:"index" json:"source_tag"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Lesson) TableName() string {
	return "lessons"
}

type PostLessonRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	SourceTag   string `json:"source_tag"`
}

// LessonWithCount は一覧表示用に文の件数を含めたDTO
type LessonWithCount struct {
	Lesson
	SentenceCount int64 `json:"sentence_count"`
}

// LessonDetail は詳細表示用に課と所属する例文をまとめたDTO
type LessonDetail struct {
	Lesson
	Sentences []*Sentence `json:"sentences"`
}
