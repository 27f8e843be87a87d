package chequetext

import (
	"fmt"
	"strings"
)

// ConvertGroup writes a value of 0 to 9999 without any group unit.
// Zero yields "" so that empty groups contribute nothing; inner zeros
// collapse to a single 零 and trailing zeros are dropped.
func ConvertGroup(n int) string {
	if n < 0 || n > 9999 {
		panic(fmt.Sprintf("chequetext: group value %d out of range", n))
	}

	var b strings.Builder
	pendingZero := false
	for pos := len(positionUnits) - 1; pos >= 0; pos-- {
		digit := n / positionPowers[pos] % 10
		if digit == 0 {
			pendingZero = true
			continue
		}
		if pendingZero && b.Len() > 0 {
			b.WriteString(zeroGlyph)
		}
		b.WriteString(digitGlyphs[digit])
		b.WriteString(positionUnits[pos])
		pendingZero = false
	}
	return b.String()
}
