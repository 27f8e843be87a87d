package chequetext

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/SscSPs/cheque_amount_app/internal/apperrors"
	"github.com/SscSPs/cheque_amount_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// amountPattern accepts an optional minus sign, digits, and at most two decimals.
// A bare trailing point ("12.") is allowed and counts as a present, empty fraction.
var amountPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]{0,2})?$`)

var maxAmount = decimal.RequireFromString(strings.ReplaceAll(domain.MaxAmountText, ",", ""))

// RejectionError reports why a raw input cannot be converted.
// Its message is the user-facing text for the rejection.
type RejectionError struct {
	Outcome domain.Outcome
}

func (e *RejectionError) Error() string {
	return Message(e.Outcome)
}

// Unwrap lets callers match any rejection with errors.Is(err, apperrors.ErrValidation).
func (e *RejectionError) Unwrap() error {
	return apperrors.ErrValidation
}

func reject(outcome domain.Outcome) error {
	return &RejectionError{Outcome: outcome}
}

// stripSeparators removes whitespace and thousands-separator commas.
func stripSeparators(raw string) string {
	return strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

// Normalize validates raw input and splits it into an Amount.
// A zero amount is returned as-is; callers decide how to render it.
func Normalize(raw string) (domain.Amount, error) {
	s := stripSeparators(raw)
	if s == "" {
		return domain.Amount{}, reject(domain.OutcomeEmptyInput)
	}
	if !amountPattern.MatchString(s) {
		return domain.Amount{}, reject(domain.OutcomeInvalidFormat)
	}

	value, err := decimal.NewFromString(strings.TrimSuffix(s, "."))
	if err != nil {
		return domain.Amount{}, reject(domain.OutcomeInvalidFormat)
	}
	if value.IsNegative() {
		return domain.Amount{}, reject(domain.OutcomeNegative)
	}
	if value.GreaterThan(maxAmount) {
		return domain.Amount{}, reject(domain.OutcomeTooLarge)
	}

	amount := domain.Amount{Integer: value.IntPart()}
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		amount.Fraction = (s[dot+1:] + "00")[:domain.MaxFractionDigits]
	}
	return amount, nil
}
