package chequetext

import "github.com/SscSPs/cheque_amount_app/internal/core/domain"

// digitGlyphs maps a decimal digit to its formal (anti-forgery) numeral.
var digitGlyphs = [10]string{"零", "壹", "貳", "叁", "肆", "伍", "陸", "柒", "捌", "玖"}

// positionUnits are the units inside a four-digit group, ones place first.
var positionUnits = [4]string{"", "拾", "佰", "仟"}

// groupUnits are indexed by group number counting from the least significant group.
var groupUnits = [4]string{"", "萬", "億", "兆"}

// powers of ten for the positions of positionUnits
var positionPowers = [4]int{1, 10, 100, 1000}

const (
	zeroGlyph   = "零"
	yuanUnit    = "圓"
	jiaoUnit    = "角"
	fenUnit     = "分"
	wholeMarker = "整"

	zeroRune = '零'
	wanRune  = '萬'
	yiRune   = '億'
)

// Fixed texts returned instead of a converted phrase.
const (
	MessageEmptyInput    = "請輸入金額"
	MessageInvalidFormat = "輸入格式錯誤（請輸入有效數字）"
	MessageNegative      = "不支持負數"
	MessageTooLarge      = "金額過大（最大支持 " + domain.MaxAmountText + "）"
	TextZeroAmount       = "零圓整"
)

var outcomeMessages = map[domain.Outcome]string{
	domain.OutcomeEmptyInput:    MessageEmptyInput,
	domain.OutcomeInvalidFormat: MessageInvalidFormat,
	domain.OutcomeNegative:      MessageNegative,
	domain.OutcomeTooLarge:      MessageTooLarge,
	domain.OutcomeZero:          TextZeroAmount,
}

// Message returns the fixed text for an outcome, or "" for OutcomeConverted
// whose text depends on the amount.
func Message(outcome domain.Outcome) string {
	return outcomeMessages[outcome]
}

// Messages returns a copy of the fixed outcome texts.
func Messages() map[domain.Outcome]string {
	out := make(map[domain.Outcome]string, len(outcomeMessages))
	for k, v := range outcomeMessages {
		out[k] = v
	}
	return out
}
