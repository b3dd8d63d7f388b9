package ledger

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"

	"github.com/raolivei/canopy/pkg/database"
	"github.com/raolivei/canopy/pkg/formats"
)

// Ledger talks to a remote ledger backend. It serves deployments where the
// transaction store lives behind an HTTP API instead of a local database:
// the existing set for duplicate detection is fetched from it and committed
// records are pushed back.
type Ledger struct {
	cl        *req.Client
	apiKey    string
	ledgerURL string
}

func NewLedger(
	apiKey string,
	ledgerURL string,
	cl *req.Client,
) *Ledger {
	return &Ledger{
		cl:        cl,
		ledgerURL: ledgerURL,
		apiKey:    apiKey,
	}
}

func (l *Ledger) ListTransactions(
	ctx context.Context,
	start *time.Time,
	end *time.Time,
) ([]database.Transaction, error) {
	var apiResp GenericApiResponse[[]*Transaction]

	request := l.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(l.apiKey).
		SetSuccessResult(&apiResp)

	if start != nil {
		request.SetQueryParam("start_date", start.Format(time.DateOnly))
	}
	if end != nil {
		request.SetQueryParam("end_date", end.Format(time.DateOnly))
	}

	resp, err := request.Get(l.ledgerURL + "/api/v1/transactions")
	if err != nil {
		return nil, err
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("got error response: %s", resp.String())
	}

	records := make([]database.Transaction, 0, len(apiResp.Data))
	for _, tx := range apiResp.Data {
		records = append(records, database.Transaction{
			ID:          tx.ID,
			Date:        tx.Date,
			Description: tx.Description,
			Amount:      tx.Amount,
			Currency:    tx.Currency,
			Type:        database.TransactionType(tx.Type),
			Category:    tx.Category,
			Account:     tx.Account,
		})
	}

	return records, nil
}

func (l *Ledger) SaveTransactions(
	ctx context.Context,
	importID string,
	source formats.BankFormat,
	records []database.TransactionCreate,
) ([]string, []error, error) {
	if len(records) == 0 {
		return nil, nil, nil
	}

	payload := CreateTransactionsRequest{
		Transactions: make([]CreateTransaction, 0, len(records)),
	}

	for _, record := range records {
		payload.Transactions = append(payload.Transactions, CreateTransaction{
			Date:              record.Date,
			Description:       record.Description,
			Amount:            record.Amount,
			Currency:          record.Currency,
			Type:              string(record.Type),
			Category:          record.Category,
			Account:           record.Account,
			Merchant:          record.Merchant,
			OriginalStatement: record.OriginalStatement,
			Notes:             record.Notes,
			Tags:              record.Tags,
			Ticker:            record.Ticker,
			Shares:            record.Shares,
			PricePerShare:     record.PricePerShare,
			Fees:              record.Fees,
			ImportID:          importID,
			ImportSource:      string(source),
		})
	}

	var apiResp GenericApiResponse[[]*CreatedTransaction]

	resp, err := l.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(l.apiKey).
		SetBodyJsonMarshal(payload).
		SetSuccessResult(&apiResp).
		Post(l.ledgerURL + "/api/v1/transactions")
	if err != nil {
		return nil, nil, err
	}

	if resp.IsErrorState() {
		return nil, nil, errors.Newf("got error response: %s", resp.String())
	}

	var insertedIDs []string
	var recordErrs []error

	for _, created := range apiResp.Data {
		if created.Error != "" {
			recordErrs = append(recordErrs, errors.New(created.Error))
			continue
		}

		insertedIDs = append(insertedIDs, created.ID)
	}

	return insertedIDs, recordErrs, nil
}
