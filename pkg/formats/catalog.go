package formats

// catalog holds one FieldMapping per supported dialect. Adding a bank means
// adding one entry here and, optionally, one predicate in Detect.
var catalog = map[BankFormat]FieldMapping{
	Monarch: {
		DateColumn:              "Date",
		MerchantColumn:          "Merchant",
		DescriptionColumn:       "Merchant", // merchant doubles as description
		OriginalStatementColumn: "Original Statement",
		NotesColumn:             "Notes",
		TagsColumn:              "Tags",
		AmountColumn:            "Amount",
		CategoryColumn:          "Category",
		AccountColumn:           "Account",
		DateFormat:              "2006-01-02",
		NegativeMeansExpense:    true,
	},
	Chase: {
		DateColumn:           "Posting Date",
		DescriptionColumn:    "Description",
		AmountColumn:         "Amount",
		TypeColumn:           "Type",
		CategoryColumn:       "Category",
		BalanceColumn:        "Balance",
		DateFormat:           "01/02/2006",
		NegativeMeansExpense: true,
	},
	BankOfAmerica: {
		DateColumn:           "Date",
		DescriptionColumn:    "Description",
		AmountColumn:         "Amount",
		BalanceColumn:        "Running Bal.",
		DateFormat:           "01/02/2006",
		NegativeMeansExpense: true,
	},
	WellsFargo: {
		DateColumn:           "Date",
		DescriptionColumn:    "Description",
		AmountColumn:         "Amount",
		DateFormat:           "01/02/2006",
		NegativeMeansExpense: true,
	},
	Amex: {
		DateColumn:        "Date",
		DescriptionColumn: "Description",
		AmountColumn:      "Amount",
		DateFormat:        "01/02/2006",
		AmountIsAbsolute:  true,
	},
	CapitalOne: {
		DateColumn:        "Transaction Date",
		DescriptionColumn: "Description",
		DebitColumn:       "Debit",
		CreditColumn:      "Credit",
		CategoryColumn:    "Category",
		DateFormat:        "2006-01-02",
	},
	Schwab: {
		DateColumn:           "Date",
		DescriptionColumn:    "Description",
		AmountColumn:         "Amount",
		OperationColumn:      "Action",
		TickerColumn:         "Symbol",
		SharesColumn:         "Quantity",
		PriceColumn:          "Price",
		FeesColumn:           "Fees & Comm",
		DateFormat:           "01/02/2006",
		NegativeMeansExpense: true,
	},
	TDBank: {
		DateColumn:        "Date",
		DescriptionColumn: "Description",
		DebitColumn:       "Debit",
		CreditColumn:      "Credit",
		DateFormat:        "01/02/2006",
	},
	RBC: {
		DateColumn:        "Transaction Date",
		DescriptionColumn: "Description",
		DebitColumn:       "Debit",
		CreditColumn:      "Credit",
		AccountColumn:     "Account Number",
		DateFormat:        "01/02/2006",
	},
	Wealthsimple: {
		DateColumn:           "Date",
		DescriptionColumn:    "Description",
		AmountColumn:         "Amount",
		CurrencyColumn:       "Currency",
		AccountColumn:        "Account",
		DateFormat:           "2006-01-02",
		NegativeMeansExpense: true,
	},
	WealthsimpleTrade: {
		DateColumn:        "Date",
		DescriptionColumn: "Symbol",
		AmountColumn:      "Market Value",
		OperationColumn:   "Transaction Type",
		TickerColumn:      "Symbol",
		SharesColumn:      "Quantity",
		PriceColumn:       "Price",
		CurrencyColumn:    "Currency",
		DateFormat:        "2006-01-02",
		AmountIsAbsolute:  true,
	},
	Nubank: {
		DateColumn:           "date",
		DescriptionColumn:    "title",
		AmountColumn:         "amount",
		CategoryColumn:       "category",
		DateFormat:           "2006-01-02",
		NegativeMeansExpense: false, // positive values are the card charges
	},
	NubankInvestments: {
		DateColumn:        "Data",
		DescriptionColumn: "Descrição",
		AmountColumn:      "Valor",
		OperationColumn:   "Tipo",
		TickerColumn:      "Ativo",
		DateFormat:        "02/01/2006",
		AmountIsAbsolute:  true,
		DecimalStyle:      DecimalBrazil,
	},
	Clear: {
		DateColumn:        "Data Negócio",
		DescriptionColumn: "Especificação do Título",
		AmountColumn:      "Valor Total",
		OperationColumn:   "C/V",
		TickerColumn:      "Código",
		SharesColumn:      "Quantidade",
		PriceColumn:       "Preço",
		DateFormat:        "02/01/2006",
		AmountIsAbsolute:  true,
		DecimalStyle:      DecimalBrazil,
	},
	XP: {
		DateColumn:        "Data do Negócio",
		DescriptionColumn: "Código do Ativo",
		AmountColumn:      "Valor Líquido",
		OperationColumn:   "Tipo de Movimentação",
		TickerColumn:      "Código do Ativo",
		SharesColumn:      "Quantidade",
		PriceColumn:       "Preço Unitário",
		DateFormat:        "02/01/2006",
		AmountIsAbsolute:  true,
		DecimalStyle:      DecimalBrazil,
	},
	B3CEI: {
		DateColumn:        "Data do Negócio",
		DescriptionColumn: "Código de Negociação",
		AmountColumn:      "Valor",
		OperationColumn:   "Tipo de Movimentação",
		TickerColumn:      "Código de Negociação",
		SharesColumn:      "Quantidade",
		PriceColumn:       "Preço",
		AccountColumn:     "Instituição",
		DateFormat:        "02/01/2006",
		AmountIsAbsolute:  true,
		DecimalStyle:      DecimalBrazil,
	},
	Wise: {
		DateColumn:           "Date",
		DescriptionColumn:    "Description",
		AmountColumn:         "Amount",
		CurrencyColumn:       "Currency",
		BalanceColumn:        "Running Balance",
		TransactionIDColumn:  "TransferWise ID",
		DateFormat:           "02/01/2006",
		NegativeMeansExpense: true,
	},
}

// Lookup returns the preset mapping for a dialect. A false result is a
// normal outcome: the caller falls back to inference or a custom mapping.
func Lookup(format BankFormat) (FieldMapping, bool) {
	mapping, ok := catalog[format]

	return mapping, ok
}

// Presets lists every dialect with a catalog entry, for discovery endpoints.
func Presets() []BankFormat {
	result := make([]BankFormat, 0, len(catalog))
	for format := range catalog {
		result = append(result, format)
	}

	return result
}
