package formats

// BankFormat names one known CSV export dialect, or one of the two sentinel
// values: Generic (unknown dialect, infer a mapping) and Custom (the caller
// supplies an explicit mapping).
type BankFormat string

const (
	Generic = BankFormat("generic")
	Custom  = BankFormat("custom")

	Monarch       = BankFormat("monarch")
	Chase         = BankFormat("chase")
	BankOfAmerica = BankFormat("bank_of_america")
	WellsFargo    = BankFormat("wells_fargo")
	Amex          = BankFormat("amex")
	CapitalOne    = BankFormat("capital_one")
	Schwab        = BankFormat("schwab")

	TDBank            = BankFormat("td_bank")
	RBC               = BankFormat("rbc")
	Wealthsimple      = BankFormat("wealthsimple")
	WealthsimpleTrade = BankFormat("wealthsimple_trade")

	Nubank            = BankFormat("nubank")
	NubankInvestments = BankFormat("nubank_investments")
	Clear             = BankFormat("clear")
	XP                = BankFormat("xp")
	B3CEI             = BankFormat("b3_cei")

	Wise = BankFormat("wise")
)

// DecimalStyle selects the numeric convention of a dialect. It is fixed once
// per import run, never auto-detected per value.
type DecimalStyle int32

const (
	// DecimalAnglo reads "1,234.56".
	DecimalAnglo = DecimalStyle(0)
	// DecimalBrazil reads "1.234,56".
	DecimalBrazil = DecimalStyle(1)
)

// FieldMapping describes how one dialect's columns map to transaction fields.
// DateColumn and DescriptionColumn are always required. Either AmountColumn
// or the DebitColumn/CreditColumn pair must be set for rows to parse.
type FieldMapping struct {
	DateColumn        string
	DescriptionColumn string

	AmountColumn string
	DebitColumn  string
	CreditColumn string

	TypeColumn          string
	CategoryColumn      string
	AccountColumn       string
	CurrencyColumn      string
	BalanceColumn       string // reconciliation only, unused downstream
	TransactionIDColumn string

	MerchantColumn          string
	OriginalStatementColumn string
	NotesColumn             string
	TagsColumn              string

	TickerColumn    string
	SharesColumn    string
	PriceColumn     string
	FeesColumn      string
	OperationColumn string

	// DateFormat is a Go reference layout. Rows failing it retry against a
	// fixed fallback list before erroring.
	DateFormat string

	// AmountIsAbsolute marks dialects whose amounts carry no sign; direction
	// comes from the type or operation column instead.
	AmountIsAbsolute bool
	// NegativeMeansExpense controls sign-based type inference. Some exports
	// (Nubank among them) use the opposite convention.
	NegativeMeansExpense bool
	DecimalStyle         DecimalStyle
}

// HasAmountSource reports whether at least one amount-resolution path is
// configured.
func (m FieldMapping) HasAmountSource() bool {
	if m.AmountColumn != "" {
		return true
	}

	return m.DebitColumn != "" && m.CreditColumn != ""
}
