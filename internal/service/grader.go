// internal/service/grader.go
package service

import (
	"strings"

	"go_hanviet_learn/internal/model"
)

// 採点ルール。種別ごとの同値判定だけを行う純関数で、
// 回答の記録（answers への追記）は呼び出し側のサービスが行います。
// 入力が不正（空文字など）でもエラーにはせず不正解として扱います。

// GradeVocabAnswer は語彙問題を採点します。
// 正解は中国語（漢字）との完全一致。前後の空白は無視します。
func GradeVocabAnswer(vocab *model.Vocab, submitted string) (bool, string) {
	canonical := strings.TrimSpace(vocab.Zh)
	sub := strings.TrimSpace(submitted)
	return sub != "" && sub == canonical, canonical
}

// GradeSentenceAnswer は例文問題を採点します。
// 選択肢がある場合は正解文字列との完全一致（提示された選択肢のひとつのはず）、
// 自由記述の場合は大文字小文字を無視した一致で判定します。
// 正解は correct_answer、未設定なら vi です。
func GradeSentenceAnswer(sentence *model.Sentence, submitted string) (bool, string) {
	canonical := strings.TrimSpace(sentence.AnswerText())
	sub := strings.TrimSpace(submitted)
	if sub == "" {
		return false, canonical
	}
	if len(sentence.Options) > 0 {
		return sub == canonical, canonical
	}
	return strings.EqualFold(sub, canonical), canonical
}

// GradeReadingAnswer は読解問題を種別ごとのルールで採点します。
//   - mcq:       完全一致（大文字小文字も区別）
//   - fill:      大文字小文字を無視した一致
//   - translate: 大文字小文字を無視した一致、または片方がもう片方を
//     含む場合も正解（意図的に緩い判定。再現率を優先する）
func GradeReadingAnswer(question *model.ReadingQuestion, submitted string) (bool, string) {
	canonical := strings.TrimSpace(question.Answer.CanonicalText())
	sub := strings.TrimSpace(submitted)
	if sub == "" {
		return false, canonical
	}

	switch question.QuestionType {
	case model.QuestionTypeFill:
		return strings.EqualFold(sub, canonical), canonical
	case model.QuestionTypeTranslate:
		subLower := strings.ToLower(sub)
		canLower := strings.ToLower(canonical)
		if subLower == canLower {
			return true, canonical
		}
		if canLower != "" && (strings.Contains(subLower, canLower) || strings.Contains(canLower, subLower)) {
			return true, canonical
		}
		return false, canonical
	default: // mcq
		return sub == canonical, canonical
	}
}
