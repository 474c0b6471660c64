// internal/model/test.go
package model

// AssembleTestRequest は混合テストの作成リクエスト。
// 比率は合計1である必要はなく、カテゴリごとに独立して丸めて目標数を決めます
// （再正規化しない。足りないカテゴリは黙って減る）。
type AssembleTestRequest struct {
	Count         int      `json:"count" validate:"omitempty,min=1,max=500"`
	VocabRatio    *float64 `json:"vocabRatio" validate:"omitempty,min=0"`
	SentenceRatio *float64 `json:"sentenceRatio" validate:"omitempty,min=0"`
	ReadingRatio  *float64 `json:"readingRatio" validate:"omitempty,min=0"`
}

// TestItem は回答者に提示する1問。正解に関わるフィールドは含めません。
// ID は語彙・例文・読解問題の実ID、または生成文の一時ID（gen_...）です。
type TestItem struct {
	ID         string       `json:"id"`
	Kind       QuestionKind `json:"kind"`
	PromptText string       `json:"promptText"`
	Pinyin     string       `json:"pinyin,omitempty"` // 語彙問題のみ
	Options    []string     `json:"options,omitempty"`
}

type AssembleTestResponse struct {
	SessionID string     `json:"sessionId"`
	Items     []TestItem `json:"items"`
}

// SubmittedAnswer は提出された回答1件
type SubmittedAnswer struct {
	ItemID        string `json:"itemId" validate:"required"`
	Kind          string `json:"kind" validate:"required,oneof=vocab sentence reading"`
	SubmittedText string `json:"submittedText"`
}

type SubmitTestRequest struct {
	Answers []SubmittedAnswer `json:"answers" validate:"required,dive"`
}

// ItemResult は1問ごとの採点結果
type ItemResult struct {
	ItemID          string       `json:"itemId"`
	Kind            QuestionKind `json:"kind"`
	SubmittedText   string       `json:"submittedText"`
	CanonicalAnswer string       `json:"canonicalAnswer"`
	IsCorrect       bool         `json:"isCorrect"`
}

// KindBreakdown は種別ごとの集計
type KindBreakdown struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

type SubmitTestResponse struct {
	SessionID string                         `json:"sessionId"`
	Score     int                            `json:"score"`
	Total     int                            `json:"total"`
	Correct   int                            `json:"correct"`
	Incorrect int                            `json:"incorrect"`
	Breakdown map[QuestionKind]KindBreakdown `json:"breakdown"`
	Results   []ItemResult                   `json:"results"`
}
