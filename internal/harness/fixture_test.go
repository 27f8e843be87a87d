package harness_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/cheque_amount_app/internal/apperrors"
	"github.com/SscSPs/cheque_amount_app/internal/harness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixture(t *testing.T) {
	in := "# golden\ninput,expected\n0,零圓整\n\" 1 \",壹圓整\n\"\",請輸入金額\n"

	cases, err := harness.LoadFixture(strings.NewReader(in))

	require.NoError(t, err)
	require.Len(t, cases, 3)
	assert.Equal(t, harness.Case{Line: 3, Input: "0", Expected: "零圓整"}, cases[0])
	assert.Equal(t, " 1 ", cases[1].Input)
	assert.Equal(t, "", cases[2].Input)
	assert.Equal(t, "請輸入金額", cases[2].Expected)
}

func TestLoadFixture_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		msg  string
	}{
		{name: "empty", in: "", msg: "empty fixture"},
		{name: "missing header", in: "0,零圓整\n", msg: "expected header"},
		{name: "extra field", in: "input,expected\n1,壹圓整,x\n", msg: "line 2: expected 2 fields, got 3"},
		{name: "bad quoting", in: "input,expected\n\"1,壹圓整\n", msg: "invalid fixture"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cases, err := harness.LoadFixture(strings.NewReader(tt.in))
			assert.Nil(t, cases)
			assert.ErrorIs(t, err, apperrors.ErrFixture)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestLoadFixtureFile(t *testing.T) {
	cases, err := harness.LoadFixtureFile(filepath.Join("testdata", "mixed.csv"))

	require.NoError(t, err)
	require.Len(t, cases, 3)
	assert.Equal(t, "1,000", cases[1].Input)
}

func TestLoadFixtureFile_Missing(t *testing.T) {
	_, err := harness.LoadFixtureFile(filepath.Join("testdata", "does-not-exist.csv"))

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGoldenFixtureShipsClean(t *testing.T) {
	cases, err := harness.LoadFixtureFile(filepath.Join("..", "..", "fixtures", "cheque_amounts.csv"))

	require.NoError(t, err)
	assert.NotEmpty(t, cases)
}
