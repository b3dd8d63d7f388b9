package repo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gammazero/workerpool"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raolivei/canopy/pkg/database"
	"github.com/raolivei/canopy/pkg/formats"
)

const defaultPoolSize = 10

type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) (*Postgres, error) {
	if err := migrate(db); err != nil {
		return nil, errors.Wrap(err, "failed to migrate")
	}

	return &Postgres{
		db: db,
	}, nil
}

// ListTransactions loads the read-only comparison set for duplicate
// detection. Bounds are optional; a nil bound leaves that side open.
func (p *Postgres) ListTransactions(
	ctx context.Context,
	start *time.Time,
	end *time.Time,
) ([]database.Transaction, error) {
	query := p.db.WithContext(ctx).Model(&database.Transaction{})

	if start != nil {
		query = query.Where("date >= ?", *start)
	}
	if end != nil {
		query = query.Where("date <= ?", *end)
	}

	var records []database.Transaction
	if err := query.Order("date").Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch transactions")
	}

	return records, nil
}

// SaveTransactions persists committed records, assigning identifiers. Writes
// fan out over a bounded pool; per-record failures come back in the error
// slice so one rejected row does not lose the batch.
func (p *Postgres) SaveTransactions(
	ctx context.Context,
	importID string,
	source formats.BankFormat,
	records []database.TransactionCreate,
) ([]string, []error, error) {
	if len(records) == 0 {
		return nil, nil, nil
	}

	pool := workerpool.New(defaultPoolSize)

	var mu sync.Mutex
	var insertedIDs []string
	var recordErrs []error

	for _, record := range records {
		recordCopy := record

		pool.Submit(func() {
			row := toRow(recordCopy)
			row.ImportID = importID
			row.ImportSource = string(source)

			err := p.db.WithContext(ctx).Create(&row).Error

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				recordErrs = append(recordErrs, errors.Wrapf(err, "failed to save %s", recordCopy.Description))
				return
			}

			insertedIDs = append(insertedIDs, row.ID)
		})
	}

	pool.StopWait()

	return insertedIDs, recordErrs, nil
}

// ImportSummary is one line of the import history, grouped by import ID.
type ImportSummary struct {
	ImportID         string
	ImportSource     string
	TransactionCount int64
	EarliestDate     time.Time
	LatestDate       time.Time
	ImportedAt       time.Time
}

func (p *Postgres) ListImports(
	ctx context.Context,
	limit int,
	offset int,
) ([]ImportSummary, error) {
	var summaries []ImportSummary

	err := p.db.WithContext(ctx).
		Model(&database.Transaction{}).
		Select(`import_id,
			import_source,
			count(*) as transaction_count,
			min(date) as earliest_date,
			max(date) as latest_date,
			min(created_at) as imported_at`).
		Where("import_id <> ''").
		Group("import_id, import_source").
		Order("min(created_at) desc").
		Limit(limit).
		Offset(offset).
		Scan(&summaries).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch import history")
	}

	return summaries, nil
}

// DeleteImport rolls back one import by removing every transaction it
// created. Returns the number of removed rows.
func (p *Postgres) DeleteImport(ctx context.Context, importID string) (int64, error) {
	result := p.db.WithContext(ctx).
		Where("import_id = ?", importID).
		Delete(&database.Transaction{})
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "failed to delete import %s", importID)
	}

	return result.RowsAffected, nil
}

func toRow(record database.TransactionCreate) database.Transaction {
	row := database.Transaction{
		ID:                uuid.NewString(),
		Date:              record.Date,
		Description:       record.Description,
		Amount:            record.Amount,
		Currency:          record.Currency,
		Type:              record.Type,
		Category:          record.Category,
		Account:           record.Account,
		Merchant:          record.Merchant,
		OriginalStatement: record.OriginalStatement,
		Notes:             record.Notes,
		Tags:              joinTags(record.Tags),
		Ticker:            record.Ticker,
	}

	if record.Shares != nil {
		row.Shares.Decimal = *record.Shares
		row.Shares.Valid = true
	}
	if record.PricePerShare != nil {
		row.PricePerShare.Decimal = *record.PricePerShare
		row.PricePerShare.Valid = true
	}
	if record.Fees != nil {
		row.Fees.Decimal = *record.Fees
		row.Fees.Valid = true
	}

	return row
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}
