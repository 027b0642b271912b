// Package format renders money and card numbers for the panel pages.
package format

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// MinorUnitsPerSom is the scale of card and wallet balances.
	MinorUnitsPerSom = 100

	currencySuffix = " so'm"
	cardNumberLen  = 16
)

var printer = message.NewPrinter(language.Uzbek)

// CardBalance renders a balance held in minor units (tiyin). Every card
// and wallet balance goes through here so the scale stays the same.
func CardBalance(minor int64) string {
	som := float64(minor) / MinorUnitsPerSom
	return printer.Sprint(number.Decimal(som, number.Scale(2))) + currencySuffix
}

// Amount renders whole so'm values such as prizes and lottery balances.
func Amount(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(0))) + currencySuffix
}

// Count renders an integer with locale grouping.
func Count(n int64) string {
	return printer.Sprint(number.Decimal(n))
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeCardNumber strips whitespace and reports whether 16 digits remain.
func NormalizeCardNumber(s string) (string, bool) {
	digits := stripSpaces(s)
	if len(digits) != cardNumberLen {
		return digits, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return digits, false
		}
	}
	return digits, true
}

// CardNumber groups the digits of a card number in fours.
func CardNumber(s string) string {
	digits := stripSpaces(s)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
