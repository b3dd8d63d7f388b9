package importer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/raolivei/canopy/pkg/database"
	"github.com/raolivei/canopy/pkg/duplicates"
)

// Common layouts retried when the mapping's own date format fails: ISO,
// US slash, day-first slash, ISO slash. Order matters.
var fallbackDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
}

// Operation and type column vocabularies, English and Portuguese. Checked
// case-insensitively; buy/sell win over the broader income/expense terms.
var (
	buyKeywords  = []string{"buy", "bought", "compra"}
	sellKeywords = []string{"sell", "sold", "venda"}

	incomeKeywords = []string{
		"credit", "deposit", "payment received", "income", "refund",
		"dividend", "dividendo", "rendimento", "juros sobre capital",
	}
	expenseKeywords = []string{
		"debit", "withdrawal", "payment", "purchase", "expense",
		"tarifa", "pagamento",
	}
	transferKeywords = []string{
		"transfer", "xfer", "transferência", "transferencia", "resgate",
	}
)

var (
	// "VTI - Limit buy", "PETR4: compra" and similar broker annotations.
	tickerDelimitedRegex = regexp.MustCompile(`^([A-Z]{2,5}[0-9]{0,2}(?:\.[A-Z]{1,2})?)\s*[-:]`)
	tickerLeadingRegex   = regexp.MustCompile(`^([A-Z]{2,5}[0-9]{0,2}(?:\.[A-Z]{1,2})?)\s`)
)

// parseRow turns one CSV row into a TransactionPreview. Only a date that
// resists every layout makes it return an error; the caller converts that
// into an error-flagged preview. Everything else degrades into flags on the
// returned value.
func parseRow(
	row map[string]string,
	rowNumber int,
	config ImportConfig,
	existing []database.Transaction,
) (*TransactionPreview, error) {
	mapping := config.FieldMapping

	date, err := parseDate(row[mapping.DateColumn], mapping.DateFormat)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(row[mapping.DescriptionColumn])
	if description == "" {
		description = "Imported Transaction"
	}

	amount, txType := resolveAmount(row, config)

	if mapping.OperationColumn != "" {
		if operationType, ok := typeFromKeywords(row[mapping.OperationColumn]); ok {
			txType = operationType
		}
	}

	if ruleType, ok := typeFromRules(description, config.TypeInferenceRules); ok {
		txType = ruleType
	}

	preview := &TransactionPreview{
		RowNumber:   rowNumber,
		Description: description,
		Amount:      amount.Abs(),
		Currency:    config.DefaultCurrency,
		Type:        txType,
		Date:        date,
		Account:     config.DefaultAccount,
		RawData:     row,
	}

	if mapping.CategoryColumn != "" {
		preview.Category = strings.TrimSpace(row[mapping.CategoryColumn])
	}
	if mapping.AccountColumn != "" {
		if account := strings.TrimSpace(row[mapping.AccountColumn]); account != "" {
			preview.Account = account
		}
	}
	if mapping.CurrencyColumn != "" {
		if currency := strings.TrimSpace(row[mapping.CurrencyColumn]); currency != "" {
			preview.Currency = currency
		}
	}
	if mapping.MerchantColumn != "" {
		preview.Merchant = strings.TrimSpace(row[mapping.MerchantColumn])
	}
	if mapping.OriginalStatementColumn != "" {
		preview.OriginalStatement = strings.TrimSpace(row[mapping.OriginalStatementColumn])
	}
	if mapping.NotesColumn != "" {
		preview.Notes = strings.TrimSpace(row[mapping.NotesColumn])
	}
	if mapping.TagsColumn != "" {
		preview.Tags = splitTags(row[mapping.TagsColumn])
	}

	applyInvestmentFields(preview, row, config)

	if config.SkipDuplicates {
		preview.IsDuplicate, preview.DuplicateReason = duplicates.Match(duplicates.Candidate{
			Description: preview.Description,
			Amount:      preview.Amount,
			Date:        preview.Date,
		}, existing)
	}

	if config.DateRangeStart != nil && date.Before(*config.DateRangeStart) {
		preview.HasError = true
		preview.ErrorMessage = fmt.Sprintf("date %s is before range start %s",
			date.Format(time.DateOnly), config.DateRangeStart.Format(time.DateOnly))
	}
	if config.DateRangeEnd != nil && date.After(*config.DateRangeEnd) {
		preview.HasError = true
		preview.ErrorMessage = fmt.Sprintf("date %s is after range end %s",
			date.Format(time.DateOnly), config.DateRangeEnd.Format(time.DateOnly))
	}

	return preview, nil
}

// resolveAmount picks the debit/credit pair when both are configured,
// otherwise the single signed column. The debit side is checked first, so a
// row with both populated resolves to an expense.
func resolveAmount(row map[string]string, config ImportConfig) (decimal.Decimal, database.TransactionType) {
	mapping := config.FieldMapping

	if mapping.DebitColumn != "" && mapping.CreditColumn != "" {
		debit := ParseAmount(row[mapping.DebitColumn], mapping.DecimalStyle)
		credit := ParseAmount(row[mapping.CreditColumn], mapping.DecimalStyle)

		switch {
		case debit.IsPositive():
			return debit, database.TransactionTypeExpense
		case credit.IsPositive():
			return credit, database.TransactionTypeIncome
		default:
			return decimal.Zero, database.TransactionTypeExpense
		}
	}

	amount := ParseAmount(row[mapping.AmountColumn], mapping.DecimalStyle)

	if mapping.TypeColumn != "" {
		txType, ok := typeFromKeywords(row[mapping.TypeColumn])
		if !ok {
			txType = database.TransactionTypeExpense
		}

		return amount, txType
	}

	if mapping.AmountIsAbsolute {
		// No sign to read; the operation column refines the type later.
		return amount, database.TransactionTypeExpense
	}

	negative := amount.IsNegative()
	if mapping.NegativeMeansExpense == negative {
		return amount, database.TransactionTypeExpense
	}

	return amount, database.TransactionTypeIncome
}

func typeFromKeywords(raw string) (database.TransactionType, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return "", false
	}

	// Clear's C/V column uses bare single letters.
	switch value {
	case "c":
		return database.TransactionTypeBuy, true
	case "v":
		return database.TransactionTypeSell, true
	}

	matches := func(keywords []string) bool {
		return lo.SomeBy(keywords, func(keyword string) bool {
			return strings.Contains(value, keyword)
		})
	}

	switch {
	case matches(buyKeywords):
		return database.TransactionTypeBuy, true
	case matches(sellKeywords):
		return database.TransactionTypeSell, true
	case matches(transferKeywords):
		return database.TransactionTypeTransfer, true
	case matches(incomeKeywords):
		return database.TransactionTypeIncome, true
	case matches(expenseKeywords):
		return database.TransactionTypeExpense, true
	}

	return "", false
}

// typeFromRules applies caller-supplied keyword rules to the description.
func typeFromRules(
	description string,
	rules map[string]database.TransactionType,
) (database.TransactionType, bool) {
	if len(rules) == 0 {
		return "", false
	}

	lowered := strings.ToLower(description)

	keywords := lo.Keys(rules)
	sort.Strings(keywords)

	for _, keyword := range keywords {
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			return rules[keyword], true
		}
	}

	return "", false
}

func applyInvestmentFields(preview *TransactionPreview, row map[string]string, config ImportConfig) {
	mapping := config.FieldMapping

	if mapping.TickerColumn != "" {
		preview.Ticker = strings.ToUpper(strings.TrimSpace(row[mapping.TickerColumn]))
	}

	// Monarch-style exports flag trades through the category instead of a
	// dedicated operation column.
	category := strings.ToLower(preview.Category)
	if category == "buy" || category == "sell" {
		if category == "buy" {
			preview.Type = database.TransactionTypeBuy
		} else {
			preview.Type = database.TransactionTypeSell
		}

		if preview.Ticker == "" && preview.OriginalStatement != "" {
			preview.Ticker = extractTicker(preview.OriginalStatement)
		}
		if preview.Ticker == "" {
			preview.Ticker = extractTicker(preview.Description)
		}
	}

	if mapping.SharesColumn != "" {
		if shares := strings.TrimSpace(row[mapping.SharesColumn]); shares != "" {
			value := ParseAmount(shares, mapping.DecimalStyle)
			preview.Shares = &value
		}
	}
	if mapping.PriceColumn != "" {
		if price := strings.TrimSpace(row[mapping.PriceColumn]); price != "" {
			value := ParseAmount(price, mapping.DecimalStyle)
			preview.PricePerShare = &value
		}
	}
	if mapping.FeesColumn != "" {
		if fees := strings.TrimSpace(row[mapping.FeesColumn]); fees != "" {
			value := ParseAmount(fees, mapping.DecimalStyle).Abs()
			preview.Fees = &value
		}
	}
}

func extractTicker(text string) string {
	if match := tickerDelimitedRegex.FindStringSubmatch(text); len(match) == 2 {
		return match[1]
	}
	if match := tickerLeadingRegex.FindStringSubmatch(text); len(match) == 2 {
		return match[1]
	}

	return ""
}

func splitTags(raw string) []string {
	raw = strings.ReplaceAll(raw, ";", ",")

	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

func parseDate(raw, layout string) (time.Time, error) {
	cleaned := strings.TrimFunc(raw, func(r rune) bool {
		return !unicode.IsGraphic(r) || unicode.IsSpace(r)
	})

	if layout != "" {
		if date, err := time.Parse(layout, cleaned); err == nil {
			return date, nil
		}
	}

	for _, fallback := range fallbackDateLayouts {
		if fallback == layout {
			continue
		}

		if date, err := time.Parse(fallback, cleaned); err == nil {
			return date, nil
		}
	}

	return time.Time{}, errors.Newf("could not parse date: %s", raw)
}
