package processor

import (
	"context"
	"time"

	"github.com/raolivei/canopy/pkg/database"
	"github.com/raolivei/canopy/pkg/formats"
	"github.com/raolivei/canopy/pkg/previewstore"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package processor_test -source=interfaces.go

type ExistingSource interface {
	ListTransactions(
		ctx context.Context,
		start *time.Time,
		end *time.Time,
	) ([]database.Transaction, error)
}

type Sink interface {
	SaveTransactions(
		ctx context.Context,
		importID string,
		source formats.BankFormat,
		records []database.TransactionCreate,
	) ([]string, []error, error)
}

type PreviewStore interface {
	Put(entry *previewstore.Entry) string
	Get(id string) (*previewstore.Entry, bool)
	Delete(id string) bool
}
