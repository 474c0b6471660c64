// internal/service/grader_test.go
package service

import (
	"testing"

	"go_hanviet_learn/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestGradeVocabAnswer(t *testing.T) {
	vocab := &model.Vocab{Zh: "你好", Pinyin: "nǐ hǎo", Vi: "xin chào"}

	tests := []struct {
		name          string
		submitted     string
		wantCorrect   bool
		wantCanonical string
	}{
		{
			name:          "正常系: 漢字と完全一致で正解",
			submitted:     "你好",
			wantCorrect:   true,
			wantCanonical: "你好",
		},
		{
			name:          "正常系: 前後の空白は無視される",
			submitted:     "  你好  ",
			wantCorrect:   true,
			wantCanonical: "你好",
		},
		{
			name:          "異常系: ベトナム語を答えても不正解",
			submitted:     "xin chào",
			wantCorrect:   false,
			wantCanonical: "你好",
		},
		{
			name:          "異常系: 空文字は常に不正解",
			submitted:     "",
			wantCorrect:   false,
			wantCanonical: "你好",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correct, canonical := GradeVocabAnswer(vocab, tt.submitted)
			assert.Equal(t, tt.wantCorrect, correct)
			assert.Equal(t, tt.wantCanonical, canonical)
		})
	}
}

func TestGradeSentenceAnswer(t *testing.T) {
	withOptions := &model.Sentence{
		Zh:            "我喜欢喝茶",
		Vi:            "Tôi thích uống trà",
		Options:       model.StringArray{"Tôi thích uống trà", "Tôi thích cà phê"},
		CorrectAnswer: "Tôi thích uống trà",
	}
	freeText := &model.Sentence{
		Zh: "我喜欢喝茶",
		Vi: "Tôi thích uống trà",
	}

	tests := []struct {
		name          string
		sentence      *model.Sentence
		submitted     string
		wantCorrect   bool
		wantCanonical string
	}{
		{
			name:          "正常系: 選択式は完全一致で正解",
			sentence:      withOptions,
			submitted:     "Tôi thích uống trà",
			wantCorrect:   true,
			wantCanonical: "Tôi thích uống trà",
		},
		{
			name:          "異常系: 選択式は大文字小文字が違うと不正解",
			sentence:      withOptions,
			submitted:     "tôi thích uống trà",
			wantCorrect:   false,
			wantCanonical: "Tôi thích uống trà",
		},
		{
			name:          "正常系: 自由記述は大文字小文字を無視して正解",
			sentence:      freeText,
			submitted:     "tôi thích uống trà",
			wantCorrect:   true,
			wantCanonical: "Tôi thích uống trà",
		},
		{
			name:          "正常系: correct_answer 未設定なら vi が正解になる",
			sentence:      freeText,
			submitted:     "Tôi thích uống trà",
			wantCorrect:   true,
			wantCanonical: "Tôi thích uống trà",
		},
		{
			name:          "異常系: 空文字は常に不正解",
			sentence:      freeText,
			submitted:     "   ",
			wantCorrect:   false,
			wantCanonical: "Tôi thích uống trà",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correct, canonical := GradeSentenceAnswer(tt.sentence, tt.submitted)
			assert.Equal(t, tt.wantCorrect, correct)
			assert.Equal(t, tt.wantCanonical, canonical)
		})
	}
}

func TestGradeReadingAnswer(t *testing.T) {
	mcq := &model.ReadingQuestion{
		Question:     "Chọn đáp án đúng",
		Options:      model.StringArray{"A", "B", "C"},
		Answer:       model.NewPlainAnswer("B"),
		QuestionType: model.QuestionTypeMCQ,
	}
	fill := &model.ReadingQuestion{
		Question:     "Điền vào chỗ trống",
		Answer:       model.NewPlainAnswer("Trà"),
		QuestionType: model.QuestionTypeFill,
	}
	translate := &model.ReadingQuestion{
		Question:     "Dịch câu sau",
		Answer:       model.NewPlainAnswer("đẹp"),
		QuestionType: model.QuestionTypeTranslate,
	}
	structured := &model.ReadingQuestion{
		Question:     "Chọn đáp án đúng",
		Answer:       model.NewStructuredAnswer("B", "option_b"),
		QuestionType: model.QuestionTypeMCQ,
	}

	tests := []struct {
		name          string
		question      *model.ReadingQuestion
		submitted     string
		wantCorrect   bool
		wantCanonical string
	}{
		{
			name:          "正常系: mcqは完全一致で正解",
			question:      mcq,
			submitted:     "B",
			wantCorrect:   true,
			wantCanonical: "B",
		},
		{
			name:          "異常系: mcqは大文字小文字が違うと不正解",
			question:      mcq,
			submitted:     "b",
			wantCorrect:   false,
			wantCanonical: "B",
		},
		{
			name:          "正常系: fillは大文字小文字を無視して正解",
			question:      fill,
			submitted:     "trà",
			wantCorrect:   true,
			wantCanonical: "Trà",
		},
		{
			name:          "正常系: translateは正解を含む回答も正解",
			question:      translate,
			submitted:     "rất đẹp",
			wantCorrect:   true,
			wantCanonical: "đẹp",
		},
		{
			name:          "正常系: translateは回答が正解に含まれていても正解",
			question:      &model.ReadingQuestion{Answer: model.NewPlainAnswer("rất đẹp"), QuestionType: model.QuestionTypeTranslate},
			submitted:     "đẹp",
			wantCorrect:   true,
			wantCanonical: "rất đẹp",
		},
		{
			name:          "異常系: translateでも無関係な回答は不正解",
			question:      translate,
			submitted:     "xấu",
			wantCorrect:   false,
			wantCanonical: "đẹp",
		},
		{
			name:          "正常系: オブジェクト形式の正解はtextで採点する",
			question:      structured,
			submitted:     "B",
			wantCorrect:   true,
			wantCanonical: "B",
		},
		{
			name:          "異常系: 空文字は常に不正解",
			question:      mcq,
			submitted:     "",
			wantCorrect:   false,
			wantCanonical: "B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correct, canonical := GradeReadingAnswer(tt.question, tt.submitted)
			assert.Equal(t, tt.wantCorrect, correct)
			assert.Equal(t, tt.wantCanonical, canonical)
		})
	}
}
