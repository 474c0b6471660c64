// internal/model/vocab.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vocab は中国語の単語とベトナム語の意味を表します
type Vocab struct {
	VocabID   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"vocab_id"`
	Zh        string         `gorm:"not null;index" json:"zh"`     // 中国語（漢字）
	Pinyin    string         `gorm:"not null" json:"pinyin"`       // 拼音
	Vi        string         `gorm:"not null;index" json:"vi"`     // ベトナム語の意味
	AudioURL  string         `json:"audio_url,omitempty"`          // 音声ファイル（任意）
	SourceTag string         `gorm:"index" json:"source_tag"`      // 出典タグ（任意）
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用
}

func (Vocab) TableName() string {
	return "vocabs"
}

// 単語作成リクエストDTO
type PostVocabRequest struct {
	Zh        string `json:"zh" validate:"required"`
	Pinyin    string `json:"pinyin" validate:"required"`
	Vi        string `json:"vi" validate:"required"`
	AudioURL  string `json:"audio_url" validate:"omitempty,url"`
	SourceTag string `json:"source_tag"`
}

// 単語更新（部分）リクエストDTO
type PatchVocabRequest struct {
	Zh        *string `json:"zh,omitempty" validate:"omitempty,min=1"`
	Pinyin    *string `json:"pinyin,omitempty" validate:"omitempty,min=1"`
	Vi        *string `json:"vi,omitempty" validate:"omitempty,min=1"`
	AudioURL  *string `json:"audio_url,omitempty" validate:"omitempty,url"`
	SourceTag *string `json:"source_tag,omitempty"`
}

// VocabListQuery は単語一覧の絞り込み条件です。
// Page は1始まり。Limit が0以下のときはページングしません。
type VocabListQuery struct {
	SourceTags []string
	Search     string
	Page       int
	Limit      int
}

// TagCount は source_tag ごとの件数集計DTO
type TagCount struct {
	SourceTag string `json:"source_tag"`
	Count     int64  `json:"count"`
}
