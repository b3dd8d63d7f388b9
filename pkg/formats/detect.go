package formats

import (
	"strings"

	"github.com/samber/lo"
)

// Detect inspects CSV header names and returns the best-matching dialect.
// Predicates run most-specific first; a false result is a normal outcome and
// callers fall back to InferMapping or a custom mapping.
func Detect(headers []string) (BankFormat, bool) {
	normalized := normalizeHeaders(headers)
	joined := strings.Join(normalized, ",")

	has := func(names ...string) bool {
		return lo.EveryBy(names, func(name string) bool {
			return lo.Contains(normalized, name)
		})
	}

	// Signature column sets unique to one dialect. Requiring the whole set
	// avoids false positives from generic Date/Amount columns.
	switch {
	case has("date", "merchant", "category", "account", "original statement"):
		return Monarch, true
	case has("date", "action", "symbol", "fees & comm"):
		return Schwab, true
	case has("date", "transaction type", "symbol", "quantity", "market value"):
		return WealthsimpleTrade, true
	}

	// Portuguese signature terms, most distinctive dialect first.
	switch {
	case strings.Contains(joined, "código de negociação") && strings.Contains(joined, "instituição"):
		return B3CEI, true
	case strings.Contains(joined, "data do negócio") && strings.Contains(joined, "preço unitário"):
		return XP, true
	case strings.Contains(joined, "data negócio") && strings.Contains(joined, "especificação do título"):
		return Clear, true
	case has("data", "descrição", "valor", "tipo", "ativo"):
		return NubankInvestments, true
	case has("date", "title", "amount", "category"):
		return Nubank, true
	}

	switch {
	case has("posting date", "type"):
		return Chase, true
	case has("account number", "transaction date"):
		return RBC, true
	case has("transaction date", "debit", "credit", "category"):
		return CapitalOne, true
	case lo.Contains(normalized, "transferwise id"):
		return Wise, true
	case has("date", "description", "amount", "currency", "account"):
		return Wealthsimple, true
	}

	// Lower-confidence fallback: a debit/credit pair next to a date column.
	if has("debit", "credit") && (lo.Contains(normalized, "date") || lo.Contains(normalized, "transaction date")) {
		return TDBank, true
	}

	return "", false
}

// InferMapping builds a best-guess mapping from generic header names. It is
// deliberately separate from Detect so its lower confidence stays visible to
// callers.
func InferMapping(headers []string) FieldMapping {
	cleaned := cleanHeaders(headers)

	mapping := FieldMapping{
		DateFormat:           "2006-01-02",
		NegativeMeansExpense: true,
	}

	for _, header := range cleaned {
		lower := strings.ToLower(header)

		if mapping.DateColumn == "" && containsAny(lower, "date", "posted") {
			mapping.DateColumn = header
		}

		if mapping.DescriptionColumn == "" &&
			containsAny(lower, "description", "memo", "details", "payee", "merchant", "title") {
			mapping.DescriptionColumn = header
		}

		switch {
		case strings.Contains(lower, "debit"):
			mapping.DebitColumn = header
		case strings.Contains(lower, "credit"):
			mapping.CreditColumn = header
		case mapping.AmountColumn == "" && containsAny(lower, "amount", "value", "total"):
			mapping.AmountColumn = header
		}
	}

	if mapping.DebitColumn != "" && mapping.CreditColumn != "" {
		mapping.AmountColumn = "" // the pair wins over a generic value column
	}

	if mapping.DateColumn == "" && len(cleaned) > 0 {
		mapping.DateColumn = cleaned[0]
	}

	if mapping.DescriptionColumn == "" {
		if len(cleaned) > 1 {
			mapping.DescriptionColumn = cleaned[1]
		} else if len(cleaned) > 0 {
			mapping.DescriptionColumn = cleaned[0]
		}
	}

	if !mapping.HasAmountSource() && len(cleaned) > 0 {
		mapping.AmountColumn = cleaned[len(cleaned)-1]
	}

	return mapping
}

func normalizeHeaders(headers []string) []string {
	return lo.Map(cleanHeaders(headers), func(header string, _ int) string {
		return strings.ToLower(header)
	})
}

func cleanHeaders(headers []string) []string {
	return lo.Map(headers, func(header string, _ int) string {
		return strings.TrimPrefix(strings.TrimSpace(header), "\ufeff")
	})
}

func containsAny(value string, terms ...string) bool {
	return lo.SomeBy(terms, func(term string) bool {
		return strings.Contains(value, term)
	})
}
