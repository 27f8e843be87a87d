package chequetext_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/cheque_amount_app/internal/utils/chequetext"
	"github.com/stretchr/testify/assert"
)

func TestConvertGroup(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{5, "伍"},
		{10, "壹拾"},
		{20, "貳拾"},
		{105, "壹佰零伍"},
		{110, "壹佰壹拾"},
		{1000, "壹仟"},
		{1005, "壹仟零伍"},
		{1050, "壹仟零伍拾"},
		{1234, "壹仟貳佰叁拾肆"},
		{9999, "玖仟玖佰玖拾玖"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, chequetext.ConvertGroup(tt.in), "group %d", tt.in)
	}
}

func TestConvertGroup_ZeroPlacement(t *testing.T) {
	for n := 1; n <= 9999; n++ {
		text := chequetext.ConvertGroup(n)
		assert.NotContains(t, text, "零零", "group %d", n)
		assert.False(t, strings.HasSuffix(text, "零"), "group %d ends in 零: %s", n, text)
		assert.False(t, strings.HasPrefix(text, "零"), "group %d starts with 零: %s", n, text)
	}
}

func TestConvertGroup_OutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { chequetext.ConvertGroup(-1) })
	assert.Panics(t, func() { chequetext.ConvertGroup(10000) })
}
