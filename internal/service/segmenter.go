// internal/service/segmenter.go
package service

import (
	"strings"
)

// SentencePair は対訳の文ペア
type SentencePair struct {
	Zh string
	Vi string
}

// 中国語の文末記号（全角）。改行も文の区切りとして扱う。
func isZhTerminal(r rune) bool {
	switch r {
	case '。', '！', '？', '；', '\n':
		return true
	}
	return false
}

// ベトナム語の文末記号（半角）とセミコロン、改行。
func isViTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', ';', '；', '\n':
		return true
	}
	return false
}

// SplitZhParagraph は中国語の段落を文に分割します。空の断片は捨てます。
func SplitZhParagraph(paragraph string) []string {
	return splitAndTrim(paragraph, isZhTerminal)
}

// SplitViParagraph はベトナム語の段落を文に分割します。空の断片は捨てます。
func SplitViParagraph(paragraph string) []string {
	return splitAndTrim(paragraph, isViTerminal)
}

func splitAndTrim(paragraph string, isTerminal func(rune) bool) []string {
	fields := strings.FieldsFunc(paragraph, isTerminal)
	sentences := make([]string, 0, len(fields))
	for _, f := range fields {
		s := strings.TrimSpace(f)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// SegmentParagraphs は対訳段落を文ペアの列に分割します。
// 対応付けは位置（インデックス）ベースで、i 番目の中国語文と i 番目の
// ベトナム語文を組にします。意味的な対応は考慮しない単純化であり、
// 文の数が合わない段落では末尾の余りが捨てられます（既知の制限）。
// 入力のみに依存する純関数です。
func SegmentParagraphs(zhParagraph, viParagraph string) []SentencePair {
	zhSentences := SplitZhParagraph(zhParagraph)
	viSentences := SplitViParagraph(viParagraph)

	n := len(zhSentences)
	if len(viSentences) < n {
		n = len(viSentences)
	}

	pairs := make([]SentencePair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, SentencePair{Zh: zhSentences[i], Vi: viSentences[i]})
	}
	return pairs
}
