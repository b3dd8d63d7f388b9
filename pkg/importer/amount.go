package importer

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/raolivei/canopy/pkg/formats"
)

// Multi-rune symbols first so "R$" is not left as a stray "R".
var currencySymbols = []string{"R$", "C$", "US$", "$", "€", "£"}

// ParseAmount reads one monetary value under the given decimal convention.
// Currency symbols and codes are stripped and parenthesized values are read
// as negative (accounting notation). Non-numeric residue yields zero: the
// parser is deliberately best-effort, and a genuinely-zero transaction is
// indistinguishable from a failed parse.
func ParseAmount(raw string, style formats.DecimalStyle) decimal.Decimal {
	value := strings.TrimSpace(raw)
	if value == "" {
		return decimal.Zero
	}

	for _, symbol := range currencySymbols {
		value = strings.ReplaceAll(value, symbol, "")
	}
	value = strings.TrimSpace(value)

	negative := false
	if strings.HasPrefix(value, "(") && strings.HasSuffix(value, ")") {
		negative = true
		value = value[1 : len(value)-1]
	}

	// Currency codes like "BRL 1.234,56" or "12.50 USD".
	value = strings.TrimFunc(value, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsSpace(r)
	})

	switch style {
	case formats.DecimalBrazil:
		value = strings.ReplaceAll(value, ".", "")
		value = strings.ReplaceAll(value, ",", ".")
	default:
		value = strings.ReplaceAll(value, ",", "")
	}

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}

	if negative {
		return parsed.Neg()
	}

	return parsed
}
