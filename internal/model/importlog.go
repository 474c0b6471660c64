// internal/model/importlog.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ImportFileType string

const (
	ImportTypeVocabulary   ImportFileType = "vocabulary"
	ImportTypeReadingUnits ImportFileType = "reading-units"
)

type ImportMode string

const (
	ImportModeOverwrite ImportMode = "overwrite" // 既存データを全削除してから取り込む
	ImportModeAppend    ImportMode = "append"
)

// ImportResult はスプレッドシート取り込みの結果集計
type ImportResult struct {
	Total   int         `json:"total"`
	Success int         `json:"success"`
	Failed  int         `json:"failed"`
	Errors  StringArray `gorm:"serializer:json" json:"errors"`
}

// ImportLog はスプレッドシート取り込みの履歴を表します
type ImportLog struct {
	ImportID  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"import_id"`
	File      string         `gorm:"not null" json:"file"`
	FileType  ImportFileType `gorm:"not null" json:"file_type"`
	Mode      ImportMode     `gorm:"not null" json:"mode"`
	Result    ImportResult   `gorm:"embedded;embeddedPrefix:result_" json:"result"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (ImportLog) TableName() string {
	return "import_logs"
}
