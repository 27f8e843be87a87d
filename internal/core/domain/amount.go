package domain

// MaxFractionDigits is the number of decimal places a cheque amount may carry (角 and 分).
const MaxFractionDigits = 2

// MaxAmountText is the largest amount accepted, written the way it is quoted to users.
const MaxAmountText = "999,999,999,999.99"

// Amount is a validated, non-negative cheque amount split into its integer
// magnitude and fractional digits.
type Amount struct {
	Integer  int64  `json:"integer"`  // 0 to 999,999,999,999
	Fraction string `json:"fraction"` // "" when no decimal point was given, otherwise exactly two digits
}

// HasFraction reports whether the amount was written with a decimal point.
// An absent fraction and a fraction of "00" both render as 整, but they are
// kept apart so callers can tell what was typed.
func (a Amount) HasFraction() bool {
	return a.Fraction != ""
}

// Jiao returns the tenths digit, 0 when the fraction is absent.
func (a Amount) Jiao() int {
	if len(a.Fraction) < 1 {
		return 0
	}
	return int(a.Fraction[0] - '0')
}

// Fen returns the hundredths digit, 0 when the fraction is absent.
func (a Amount) Fen() int {
	if len(a.Fraction) < 2 {
		return 0
	}
	return int(a.Fraction[1] - '0')
}

// IsZero reports whether the whole amount is zero.
func (a Amount) IsZero() bool {
	return a.Integer == 0 && a.Jiao() == 0 && a.Fen() == 0
}
