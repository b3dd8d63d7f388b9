package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type GenericApiResponse[T any] struct {
	Data T `json:"data"`
}

type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Type        string          `json:"type"`
	Category    string          `json:"category,omitempty"`
	Account     string          `json:"account,omitempty"`
}

type CreateTransaction struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Type        string          `json:"type"`
	Category    string          `json:"category,omitempty"`
	Account     string          `json:"account,omitempty"`

	Merchant          string   `json:"merchant,omitempty"`
	OriginalStatement string   `json:"original_statement,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	Tags              []string `json:"tags,omitempty"`

	Ticker        string           `json:"ticker,omitempty"`
	Shares        *decimal.Decimal `json:"shares,omitempty"`
	PricePerShare *decimal.Decimal `json:"price_per_share,omitempty"`
	Fees          *decimal.Decimal `json:"fees,omitempty"`

	ImportID     string `json:"import_id,omitempty"`
	ImportSource string `json:"import_source,omitempty"`
}

type CreateTransactionsRequest struct {
	Transactions []CreateTransaction `json:"transactions"`
}

type CreatedTransaction struct {
	ID    string `json:"id"`
	Error string `json:"error,omitempty"`
}
