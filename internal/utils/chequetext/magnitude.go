package chequetext

import (
	"fmt"
	"strings"
)

// ConvertInteger writes a non-negative integer with 萬/億/兆 group units.
// 0 is the only value rendered as a bare 零.
func ConvertInteger(n int64) string {
	if n < 0 {
		panic(fmt.Sprintf("chequetext: negative magnitude %d", n))
	}
	if n == 0 {
		return zeroGlyph
	}

	var groups []int
	for v := n; v > 0; v /= 10000 {
		groups = append(groups, int(v%10000))
	}
	if len(groups) > len(groupUnits) {
		panic(fmt.Sprintf("chequetext: magnitude %d has no group unit", n))
	}

	var b strings.Builder
	top := len(groups) - 1
	for i := top; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		// A placeholder is needed when the thousands place of this group is
		// empty, or when a whole group above it was skipped.
		if i < top && (g < 1000 || groups[i+1] == 0) {
			b.WriteString(zeroGlyph)
		}
		b.WriteString(ConvertGroup(g))
		b.WriteString(groupUnits[i])
	}
	return Tidy(b.String())
}

// Tidy applies the zero cleanup passes in order: collapse runs of 零,
// drop 零 directly before 萬 or 億, drop trailing 零. Tidy(Tidy(s)) == Tidy(s).
func Tidy(s string) string {
	runes := []rune(s)

	collapsed := make([]rune, 0, len(runes))
	for _, r := range runes {
		if r == zeroRune && len(collapsed) > 0 && collapsed[len(collapsed)-1] == zeroRune {
			continue
		}
		collapsed = append(collapsed, r)
	}

	kept := make([]rune, 0, len(collapsed))
	for i, r := range collapsed {
		if r == zeroRune && i+1 < len(collapsed) && (collapsed[i+1] == wanRune || collapsed[i+1] == yiRune) {
			continue
		}
		kept = append(kept, r)
	}

	end := len(kept)
	for end > 0 && kept[end-1] == zeroRune {
		end--
	}
	return string(kept[:end])
}
