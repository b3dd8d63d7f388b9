package database

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome   = TransactionType("income")
	TransactionTypeExpense  = TransactionType("expense")
	TransactionTypeTransfer = TransactionType("transfer")
	TransactionTypeBuy      = TransactionType("buy")
	TransactionTypeSell     = TransactionType("sell")
)

// Transaction is a persisted ledger record. Rows loaded from the store serve
// as the read-only comparison set for duplicate detection.
type Transaction struct {
	ID          string          `gorm:"primaryKey"`
	Date        time.Time       `gorm:"index"`
	Description string          `gorm:"type:text"`
	Amount      decimal.Decimal `gorm:"type:numeric"`
	Currency    string
	Type        TransactionType
	Category    string
	Account     string

	Merchant          string
	OriginalStatement string `gorm:"type:text"`
	Notes             string `gorm:"type:text"`
	Tags              string `gorm:"type:text"` // comma separated

	Ticker        string
	Shares        decimal.NullDecimal `gorm:"type:numeric"`
	PricePerShare decimal.NullDecimal `gorm:"type:numeric"`
	Fees          decimal.NullDecimal `gorm:"type:numeric"`

	ImportID     string `gorm:"index"`
	ImportSource string

	CreatedAt time.Time
}

// TransactionCreate is the normalized record the commit stage hands to the
// persistence layer. The store assigns the final identifier.
type TransactionCreate struct {
	Description string
	Amount      decimal.Decimal
	Currency    string
	Type        TransactionType
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
}
