package chequetext

import "github.com/SscSPs/cheque_amount_app/internal/core/domain"

// FractionText returns the part written after 圓.
func FractionText(a domain.Amount) string {
	if !a.HasFraction() {
		return wholeMarker
	}

	jiao, fen := a.Jiao(), a.Fen()
	switch {
	case jiao == 0 && fen == 0:
		return wholeMarker
	case jiao != 0:
		text := digitGlyphs[jiao] + jiaoUnit
		if fen != 0 {
			text += digitGlyphs[fen] + fenUnit
		}
		return text
	default:
		return zeroGlyph + digitGlyphs[fen] + fenUnit
	}
}
