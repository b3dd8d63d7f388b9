package main

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/raolivei/canopy/pkg/importer"
	"github.com/raolivei/canopy/pkg/processor"
)

type PreviewResponseDto struct {
	ImportID       string   `json:"import_id"`
	FileName       string   `json:"file_name"`
	DetectedFormat string   `json:"detected_format,omitempty"`
	UsedFormat     string   `json:"used_format"`
	Headers        []string `json:"headers"`

	TotalRows     int           `json:"total_rows"`
	ValidRows     int           `json:"valid_rows"`
	DuplicateRows int           `json:"duplicate_rows"`
	ErrorRows     int           `json:"error_rows"`
	DateRange     *DateRangeDto `json:"date_range,omitempty"`

	Transactions []TransactionPreviewDto `json:"transactions"`
}

type DateRangeDto struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type TransactionPreviewDto struct {
	RowNumber   int             `json:"row_number"`
	Date        string          `json:"date"`
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

	IsDuplicate     bool   `json:"is_duplicate"`
	DuplicateReason string `json:"duplicate_reason,omitempty"`
	HasError        bool   `json:"has_error"`
	ErrorMessage    string `json:"error_message,omitempty"`
}

type CommitRequestDto struct {
	SkipDuplicates bool  `json:"skip_duplicates"`
	SkipErrors     bool  `json:"skip_errors"`
	SelectedRows   []int `json:"selected_rows,omitempty"`
}

type ImportResultDto struct {
	ImportID      string   `json:"import_id"`
	Status        string   `json:"status"`
	TotalRows     int      `json:"total_rows"`
	ImportedCount int      `json:"imported_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	Errors        []string `json:"errors,omitempty"`

	ImportedTransactionIDs []string `json:"imported_transaction_ids,omitempty"`
	DurationMs             int64    `json:"duration_ms"`
}

type ImportSummaryDto struct {
	ImportID         string    `json:"import_id"`
	ImportSource     string    `json:"import_source"`
	TransactionCount int64     `json:"transaction_count"`
	EarliestDate     string    `json:"earliest_date"`
	LatestDate       string    `json:"latest_date"`
	ImportedAt       time.Time `json:"imported_at"`
}

func toPreviewDto(resp *processor.PreviewResponse) PreviewResponseDto {
	dto := PreviewResponseDto{
		ImportID:       resp.ImportID,
		FileName:       resp.FileName,
		DetectedFormat: string(resp.DetectedFormat),
		UsedFormat:     string(resp.UsedFormat),
		Headers:        resp.Headers,
		TotalRows:      resp.Preview.TotalRows,
		ValidRows:      resp.Preview.ValidRows,
		DuplicateRows:  resp.Preview.DuplicateRows,
		ErrorRows:      resp.Preview.ErrorRows,
		Transactions:   make([]TransactionPreviewDto, 0, len(resp.Preview.Transactions)),
	}

	if resp.Preview.DateRange != nil {
		dto.DateRange = &DateRangeDto{
			Start: resp.Preview.DateRange.Start.Format(time.DateOnly),
			End:   resp.Preview.DateRange.End.Format(time.DateOnly),
		}
	}

	for _, tx := range resp.Preview.Transactions {
		dto.Transactions = append(dto.Transactions, toTransactionDto(tx))
	}

	return dto
}

func toTransactionDto(tx *importer.TransactionPreview) TransactionPreviewDto {
	date := ""
	if !tx.Date.IsZero() {
		date = tx.Date.Format(time.DateOnly)
	}

	return TransactionPreviewDto{
		RowNumber:         tx.RowNumber,
		Date:              date,
		Description:       tx.Description,
		Amount:            tx.Amount,
		Currency:          tx.Currency,
		Type:              string(tx.Type),
		Category:          tx.Category,
		Account:           tx.Account,
		Merchant:          tx.Merchant,
		OriginalStatement: tx.OriginalStatement,
		Notes:             tx.Notes,
		Tags:              tx.Tags,
		Ticker:            tx.Ticker,
		Shares:            tx.Shares,
		PricePerShare:     tx.PricePerShare,
		Fees:              tx.Fees,
		IsDuplicate:       tx.IsDuplicate,
		DuplicateReason:   tx.DuplicateReason,
		HasError:          tx.HasError,
		ErrorMessage:      tx.ErrorMessage,
	}
}

func toResultDto(result *processor.ImportResult) ImportResultDto {
	dto := ImportResultDto{
		ImportID:               result.ImportID,
		Status:                 string(result.Status),
		TotalRows:              result.TotalRows,
		ImportedCount:          result.ImportedCount,
		SkippedCount:           result.SkippedCount,
		ErrorCount:             result.ErrorCount,
		ImportedTransactionIDs: result.ImportedTransactionIDs,
		DurationMs:             result.Duration.Milliseconds(),
	}

	for _, recordErr := range result.Errors {
		dto.Errors = append(dto.Errors, recordErr.Message)
	}

	return dto
}
