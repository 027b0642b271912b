package format

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func digitsOf(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func TestCardBalanceScale(t *testing.T) {
	tests := []struct {
		minor      int64
		wantDigits string
	}{
		{minor: 0, wantDigits: "000"},
		{minor: 5, wantDigits: "005"},
		{minor: 100, wantDigits: "100"},
		{minor: 123456, wantDigits: "123456"},
		{minor: 150000000, wantDigits: "150000000"},
	}

	for _, tt := range tests {
		got := CardBalance(tt.minor)
		assert.True(t, strings.HasSuffix(got, " so'm"), got)
		assert.Equal(t, tt.wantDigits, digitsOf(got), got)
	}
}

func TestCardBalanceMatchesWholeAmount(t *testing.T) {
	// 1 500 000 tiyin is 15 000 so'm in every rendering.
	assert.Equal(t, digitsOf(Amount(15000))+"00", digitsOf(CardBalance(1500000)))
}

func TestAmount(t *testing.T) {
	got := Amount(2500000)
	assert.Equal(t, "2500000", digitsOf(got))
	assert.True(t, strings.HasSuffix(got, " so'm"))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "42", Count(42))
	assert.Equal(t, "1234567", digitsOf(Count(1234567)))
}

func TestNormalizeCardNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "8600 1234 5678 9012", want: "8600123456789012", wantOK: true},
		{in: " 8600123456789012\t", want: "8600123456789012", wantOK: true},
		{in: "8600 1234 5678", want: "860012345678", wantOK: false},
		{in: "8600 1234 5678 901a", want: "860012345678901a", wantOK: false},
		{in: "", want: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := NormalizeCardNumber(tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
}

func TestCardNumber(t *testing.T) {
	assert.Equal(t, "8600 1234 5678 9012", CardNumber("8600123456789012"))
	assert.Equal(t, "8600 1234 5678 9012", CardNumber("8600 1234 56789012"))
	assert.Equal(t, "860", CardNumber("860"))
}
