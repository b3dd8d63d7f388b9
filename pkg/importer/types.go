package importer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/raolivei/canopy/pkg/database"
	"github.com/raolivei/canopy/pkg/formats"
)

// ImportConfig is the run-level policy for one import: the resolved mapping
// plus defaults and filters.
type ImportConfig struct {
	BankFormat      formats.BankFormat
	FieldMapping    formats.FieldMapping
	DefaultCurrency string
	DefaultAccount  string

	// SkipRows drops leading metadata rows; the first remaining row is the
	// header.
	SkipRows       int
	SkipDuplicates bool

	// TypeInferenceRules maps description keywords to a transaction type.
	// A matching rule wins over the sign and column heuristics; keywords are
	// tried in sorted order and the first hit applies.
	TypeInferenceRules map[string]database.TransactionType

	// Rows outside the range are marked erroneous, never silently dropped.
	DateRangeStart *time.Time
	DateRangeEnd   *time.Time
}

// TransactionPreview is one parsed row.
type TransactionPreview struct {
	RowNumber   int
	Description string
	Amount      decimal.Decimal
	Currency    string
	Type        database.TransactionType
	Category    string
	Date        time.Time
	Account     string

	Merchant          string
	OriginalStatement string
	Notes             string
	Tags              []string

	Ticker        string
	Shares        *decimal.Decimal
	PricePerShare *decimal.Decimal
	Fees          *decimal.Decimal

	IsDuplicate     bool
	DuplicateReason string
	HasError        bool
	ErrorMessage    string

	// RawData keeps the original row for audit and debugging.
	RawData map[string]string
}

// DateRange is the [min,max] transaction date across valid rows.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ImportPreview aggregates every row of one file. Duplicates are a subset of
// valid rows, so ValidRows+ErrorRows == TotalRows and DuplicateRows <= ValidRows.
type ImportPreview struct {
	TotalRows     int
	ValidRows     int
	DuplicateRows int
	ErrorRows     int
	Transactions  []*TransactionPreview
	DateRange     *DateRange
}
