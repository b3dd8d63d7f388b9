package processor_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/raolivei/canopy/pkg/common"
	"github.com/raolivei/canopy/pkg/database"
	"github.com/raolivei/canopy/pkg/formats"
	"github.com/raolivei/canopy/pkg/importer"
	"github.com/raolivei/canopy/pkg/previewstore"
	"github.com/raolivei/canopy/pkg/printer"
	"github.com/raolivei/canopy/pkg/processor"
)

const monarchCsv = `Date,Merchant,Category,Account,Original Statement,Notes,Amount,Tags
2026-01-15,Coffee Shop,Food,Checking,COFFEE SHOP #42,,-4.50,
2026-01-16,Book Store,Shopping,Checking,BOOK STORE INC,,-32.00,
`

func newProcessor(
	existingSource processor.ExistingSource,
	sink processor.Sink,
	store processor.PreviewStore,
) *processor.Processor {
	return processor.NewProcessor(&processor.Config{
		ExistingSource:  existingSource,
		Sink:            sink,
		Store:           store,
		Printer:         printer.NewPrinter(),
		DefaultCurrency: "USD",
	})
}

func TestPreview(t *testing.T) {
	existingSource := NewMockExistingSource(gomock.NewController(t))
	sink := NewMockSink(gomock.NewController(t))
	store := NewMockPreviewStore(gomock.NewController(t))

	existingSource.EXPECT().ListTransactions(gomock.Any(), nil, nil).
		Return([]database.Transaction{
			{
				ID:          "tx-1",
				Description: "Book Store",
				Amount:      decimal.RequireFromString("32.00"),
				Date:        time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
			},
		}, nil)

	store.EXPECT().Put(gomock.Any()).
		DoAndReturn(func(entry *previewstore.Entry) string {
			assert.Equal(t, formats.Monarch, entry.Config.BankFormat)
			assert.Equal(t, "statement.csv", entry.FileName)
			return "import-1"
		})

	srv := newProcessor(existingSource, sink, store)

	resp, err := srv.Preview(context.TODO(), processor.PreviewRequest{
		FileName:       "statement.csv",
		FileContent:    []byte(monarchCsv),
		SkipDuplicates: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "import-1", resp.ImportID)
	assert.Equal(t, formats.Monarch, resp.DetectedFormat)
	assert.Equal(t, formats.Monarch, resp.UsedFormat)
	assert.Equal(t, []string{"Date", "Merchant", "Category", "Account", "Original Statement", "Notes", "Amount", "Tags"}, resp.Headers)

	assert.Equal(t, 2, resp.Preview.TotalRows)
	assert.Equal(t, 2, resp.Preview.ValidRows)
	assert.Equal(t, 1, resp.Preview.DuplicateRows)
	assert.Equal(t, "USD", resp.Preview.Transactions[0].Currency)
}

func TestPreviewEmptyFile(t *testing.T) {
	existingSource := NewMockExistingSource(gomock.NewController(t))
	sink := NewMockSink(gomock.NewController(t))
	store := NewMockPreviewStore(gomock.NewController(t))

	srv := newProcessor(existingSource, sink, store)

	_, err := srv.Preview(context.TODO(), processor.PreviewRequest{
		FileName: "empty.csv",
	})

	assert.ErrorIs(t, err, common.ErrEmptyFile)
}

func TestPreviewUnknownFormat(t *testing.T) {
	existingSource := NewMockExistingSource(gomock.NewController(t))
	sink := NewMockSink(gomock.NewController(t))
	store := NewMockPreviewStore(gomock.NewController(t))

	srv := newProcessor(existingSource, sink, store)

	_, err := srv.Preview(context.TODO(), processor.PreviewRequest{
		FileName:    "statement.csv",
		FileContent: []byte(monarchCsv),
		Format:      formats.BankFormat("no-such-bank"),
	})

	assert.ErrorContains(t, err, "unknown format")
}

func TestPreviewExplicitGenericFormat(t *testing.T) {
	existingSource := NewMockExistingSource(gomock.NewController(t))
	sink := NewMockSink(gomock.NewController(t))
	store := NewMockPreviewStore(gomock.NewController(t))

	existingSource.EXPECT().ListTransactions(gomock.Any(), nil, nil).
		Return(nil, nil)

	store.EXPECT().Put(gomock.Any()).Return("import-3")

	srv := newProcessor(existingSource, sink, store)

	resp, err := srv.Preview(context.TODO(), processor.PreviewRequest{
		FileName:    "statement.csv",
		FileContent: []byte(monarchCsv),
		Format:      formats.Generic,
	})

	assert.NoError(t, err)
	assert.Equal(t, formats.Monarch, resp.DetectedFormat)
	assert.Equal(t, formats.Generic, resp.UsedFormat)
	assert.Equal(t, 2, resp.Preview.ValidRows)
}

func TestPreviewCustomFormatWithoutMapping(t *testing.T) {
	existingSource := NewMockExistingSource(gomock.NewController(t))
	sink := NewMockSink(gomock.NewController(t))
	store := NewMockPreviewStore(gomock.NewController(t))

	srv := newProcessor(existingSource, sink, store)

	_, err := srv.Preview(context.TODO(), processor.PreviewRequest{
		FileName:    "statement.csv",
		FileContent: []byte(monarchCsv),
		Format:      formats.Custom,
	})

	assert.ErrorContains(t, err, "custom format requires a field mapping")
}

func TestPreviewLogsRowDetails(t *testing.T) {
	existingSource := NewMockExistingSource(gomock.NewController(t))
	sink := NewMockSink(gomock.NewController(t))
	store := NewMockPreviewStore(gomock.NewController(t))

	existingSource.EXPECT().ListTransactions(gomock.Any(), nil, nil).
		Return([]database.Transaction{
			{
				ID:          "tx-1",
				Description: "Book Store",
				Amount:      decimal.RequireFromString("32.00"),
				Date:        time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
			},
		}, nil)

	store.EXPECT().Put(gomock.Any()).Return("import-4")

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	srv := newProcessor(existingSource, sink, store)

	content := monarchCsv + "bogus,Broken,,Checking,,,-1.00,\n"

	_, err := srv.Preview(ctx, processor.PreviewRequest{
		FileName:       "statement.csv",
		FileContent:    []byte(content),
		SkipDuplicates: true,
	})

	assert.NoError(t, err)

	logged := buf.String()
	assert.Contains(t, logged, "Total rows: 3")
	assert.Contains(t, logged, "matches existing transaction tx-1")
	assert.Contains(t, logged, "could not parse date: bogus")
}

func TestPreviewFallsBackToInference(t *testing.T) {
	existingSource := NewMockExistingSource(gomock.NewController(t))
	sink := NewMockSink(gomock.NewController(t))
	store := NewMockPreviewStore(gomock.NewController(t))

	existingSource.EXPECT().ListTransactions(gomock.Any(), nil, nil).
		Return(nil, nil)

	store.EXPECT().Put(gomock.Any()).Return("import-2")

	srv := newProcessor(existingSource, sink, store)

	resp, err := srv.Preview(context.TODO(), processor.PreviewRequest{
		FileName:    "export.csv",
		FileContent: []byte("Transaction Date,Payee,Amount\n2026-01-15,Coffee Shop,-4.50\n"),
	})

	assert.NoError(t, err)
	assert.Empty(t, resp.DetectedFormat)
	assert.Equal(t, formats.Generic, resp.UsedFormat)
	assert.Equal(t, 1, resp.Preview.ValidRows)
}

func commitEntry() *previewstore.Entry {
	return &previewstore.Entry{
		Preview: &importer.ImportPreview{
			TotalRows: 3,
			ValidRows: 2,
			ErrorRows: 1,
			Transactions: []*importer.TransactionPreview{
				{
					RowNumber:   1,
					Description: "Coffee Shop",
					Amount:      decimal.RequireFromString("4.50"),
					Currency:    "USD",
					Type:        database.TransactionTypeExpense,
					Date:        time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
				},
				{
					RowNumber:   2,
					Description: "Paycheck",
					Amount:      decimal.RequireFromString("2500.00"),
					Currency:    "USD",
					Type:        database.TransactionTypeIncome,
					Date:        time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
				},
				{
					RowNumber:    3,
					Description:  "Parse Error",
					HasError:     true,
					ErrorMessage: "could not parse date: bogus",
				},
			},
		},
		Config: importer.ImportConfig{
			BankFormat: formats.Monarch,
		},
		FileName: "statement.csv",
	}
}

func TestCommit(t *testing.T) {
	existingSource := NewMockExistingSource(gomock.NewController(t))
	sink := NewMockSink(gomock.NewController(t))
	store := NewMockPreviewStore(gomock.NewController(t))

	store.EXPECT().Get("import-1").Return(commitEntry(), true)
	store.EXPECT().Delete("import-1").Return(true)

	sink.EXPECT().SaveTransactions(gomock.Any(), "import-1", formats.Monarch, gomock.Any()).
		DoAndReturn(func(
			_ context.Context,
			_ string,
			_ formats.BankFormat,
			records []database.TransactionCreate,
		) ([]string, []error, error) {
			assert.Len(t, records, 2)
			assert.Equal(t, "Coffee Shop", records[0].Description)
			assert.Equal(t, "Paycheck", records[1].Description)

			return []string{"new-1", "new-2"}, nil, nil
		})

	srv := newProcessor(existingSource, sink, store)

	result, err := srv.Commit(context.TODO(), processor.CommitRequest{
		ImportID:   "import-1",
		SkipErrors: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, processor.StatusCompleted, result.Status)
	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 2, result.ImportedCount)
	assert.Equal(t, 1, result.SkippedCount)
	assert.Equal(t, 0, result.ErrorCount)
	assert.Equal(t, []string{"new-1", "new-2"}, result.ImportedTransactionIDs)
}

func TestCommitPartialFailure(t *testing.T) {
	existingSource := NewMockExistingSource(gomock.NewController(t))
	sink := NewMockSink(gomock.NewController(t))
	store := NewMockPreviewStore(gomock.NewController(t))

	store.EXPECT().Get("import-1").Return(commitEntry(), true)
	store.EXPECT().Delete("import-1").Return(true)

	sink.EXPECT().SaveTransactions(gomock.Any(), "import-1", formats.Monarch, gomock.Any()).
		Return([]string{"new-1"}, []error{assert.AnError}, nil)

	srv := newProcessor(existingSource, sink, store)

	result, err := srv.Commit(context.TODO(), processor.CommitRequest{
		ImportID:   "import-1",
		SkipErrors: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, processor.StatusPartiallyCompleted, result.Status)
	assert.Equal(t, 1, result.ImportedCount)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Len(t, result.Errors, 1)
}

func TestCommitNothingSaved(t *testing.T) {
	existingSource := NewMockExistingSource(gomock.NewController(t))
	sink := NewMockSink(gomock.NewController(t))
	store := NewMockPreviewStore(gomock.NewController(t))

	store.EXPECT().Get("import-1").Return(commitEntry(), true)
	store.EXPECT().Delete("import-1").Return(true)

	sink.EXPECT().SaveTransactions(gomock.Any(), "import-1", formats.Monarch, gomock.Any()).
		Return(nil, []error{assert.AnError, assert.AnError}, nil)

	srv := newProcessor(existingSource, sink, store)

	result, err := srv.Commit(context.TODO(), processor.CommitRequest{
		ImportID:   "import-1",
		SkipErrors: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, processor.StatusFailed, result.Status)
	assert.Equal(t, 0, result.ImportedCount)
}

func TestCommitUnknownImport(t *testing.T) {
	existingSource := NewMockExistingSource(gomock.NewController(t))
	sink := NewMockSink(gomock.NewController(t))
	store := NewMockPreviewStore(gomock.NewController(t))

	store.EXPECT().Get("missing").Return(nil, false)

	srv := newProcessor(existingSource, sink, store)

	_, err := srv.Commit(context.TODO(), processor.CommitRequest{
		ImportID: "missing",
	})

	assert.ErrorIs(t, err, common.ErrPreviewNotFound)
}

func TestDiscardPreview(t *testing.T) {
	existingSource := NewMockExistingSource(gomock.NewController(t))
	sink := NewMockSink(gomock.NewController(t))
	store := NewMockPreviewStore(gomock.NewController(t))

	store.EXPECT().Delete("import-1").Return(true)
	store.EXPECT().Delete("missing").Return(false)

	srv := newProcessor(existingSource, sink, store)

	assert.NoError(t, srv.DiscardPreview("import-1"))
	assert.ErrorIs(t, srv.DiscardPreview("missing"), common.ErrPreviewNotFound)
}

func TestFormats(t *testing.T) {
	existingSource := NewMockExistingSource(gomock.NewController(t))
	sink := NewMockSink(gomock.NewController(t))
	store := NewMockPreviewStore(gomock.NewController(t))

	srv := newProcessor(existingSource, sink, store)

	presets := srv.Formats()

	assert.NotEmpty(t, presets)
	assert.Contains(t, presets, formats.Monarch)
	assert.Contains(t, presets, formats.Clear)
}
