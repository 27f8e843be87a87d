package domain

// Outcome classifies the result of converting one raw input.
type Outcome string

const (
	OutcomeConverted     Outcome = "CONVERTED"
	OutcomeZero          Outcome = "ZERO"
	OutcomeEmptyInput    Outcome = "EMPTY_INPUT"
	OutcomeInvalidFormat Outcome = "INVALID_FORMAT"
	OutcomeNegative      Outcome = "NEGATIVE_NOT_SUPPORTED"
	OutcomeTooLarge      Outcome = "AMOUNT_TOO_LARGE"
)

// IsRejection reports whether the outcome is one of the input rejections.
func (o Outcome) IsRejection() bool {
	switch o {
	case OutcomeEmptyInput, OutcomeInvalidFormat, OutcomeNegative, OutcomeTooLarge:
		return true
	}
	return false
}

// Conversion is the result of turning one raw input into cheque text.
type Conversion struct {
	Input    string  `json:"input"`    // Raw text as supplied by the caller
	Amount   string  `json:"amount"`   // Normalized amount with two decimals, empty when rejected
	Text     string  `json:"text"`     // Legal-amount phrase or rejection message
	Outcome  Outcome `json:"outcome"`  // CONVERTED, ZERO or a rejection kind
	IsError  bool    `json:"isError"`  // Text should be shown in the error state
	Copyable bool    `json:"copyable"` // Text may be copied to the clipboard
}
