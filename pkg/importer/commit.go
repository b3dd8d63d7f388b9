package importer

import (
	"github.com/samber/lo"

	"github.com/raolivei/canopy/pkg/database"
)

// CommitOptions filters a preview down to the rows that should be persisted.
// Every filter must pass independently. A nil SelectedRows means all rows; an
// empty non-nil set commits nothing.
type CommitOptions struct {
	SkipDuplicates bool
	SkipErrors     bool
	SelectedRows   []int
}

// Commit emits normalized create-records for the rows that survive the
// filters, in row order. Persistence is the caller's job.
func Commit(preview *ImportPreview, opts CommitOptions) []database.TransactionCreate {
	records := make([]database.TransactionCreate, 0, len(preview.Transactions))

	for _, tx := range preview.Transactions {
		if opts.SkipDuplicates && tx.IsDuplicate {
			continue
		}
		if opts.SkipErrors && tx.HasError {
			continue
		}
		if opts.SelectedRows != nil && !lo.Contains(opts.SelectedRows, tx.RowNumber) {
			continue
		}

		records = append(records, database.TransactionCreate{
			Description:       tx.Description,
			Amount:            tx.Amount,
			Currency:          tx.Currency,
			Type:              tx.Type,
			Category:          tx.Category,
			Date:              tx.Date,
			Account:           tx.Account,
			Merchant:          tx.Merchant,
			OriginalStatement: tx.OriginalStatement,
			Notes:             tx.Notes,
			Tags:              tx.Tags,
			Ticker:            tx.Ticker,
			Shares:            tx.Shares,
			PricePerShare:     tx.PricePerShare,
			Fees:              tx.Fees,
		})
	}

	return records
}
