// Package chequetext writes monetary amounts as the traditional Chinese
// legal-amount phrase used on bank cheques, e.g. "10001.5" becomes
// 壹萬零壹圓伍角. Everything here is a pure function over immutable tables
// and is safe for concurrent use.
package chequetext

import (
	"errors"
	"strings"

	"github.com/SscSPs/cheque_amount_app/internal/core/domain"
)

// Convert returns the cheque phrase for raw, or the fixed message explaining
// why raw was rejected. The result is never empty.
func Convert(raw string) string {
	text, _ := Render(raw)
	return text
}

// Render is Convert that also reports how the input was classified.
func Render(raw string) (string, domain.Outcome) {
	amount, err := Normalize(raw)
	if err != nil {
		var rejection *RejectionError
		if errors.As(err, &rejection) {
			return rejection.Error(), rejection.Outcome
		}
		return MessageInvalidFormat, domain.OutcomeInvalidFormat
	}
	if amount.IsZero() {
		return TextZeroAmount, domain.OutcomeZero
	}

	var b strings.Builder
	b.WriteString(ConvertInteger(amount.Integer))
	b.WriteString(yuanUnit)
	b.WriteString(FractionText(amount))
	return b.String(), domain.OutcomeConverted
}

var errorMarkers = []string{"錯誤", "不支持", "過大"}

// IsErrorText reports whether text is a rejection that should be shown in
// the error state.
func IsErrorText(text string) bool {
	return containsAny(text, errorMarkers)
}

// IsCopyable reports whether text is a phrase worth copying to the clipboard.
// Prompts and rejections are not.
func IsCopyable(text string) bool {
	return text != "" && !strings.Contains(text, "請輸入") && !IsErrorText(text)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
