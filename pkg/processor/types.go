package processor

import (
	"time"

	"github.com/raolivei/canopy/pkg/database"
	"github.com/raolivei/canopy/pkg/formats"
	"github.com/raolivei/canopy/pkg/importer"
)

// PreviewRequest carries one uploaded statement through the preview stage.
type PreviewRequest struct {
	FileName    string
	FileContent []byte

	// Format selects a preset explicitly. Empty means detect from headers.
	Format        formats.BankFormat
	CustomMapping *formats.FieldMapping

	DefaultCurrency string
	DefaultAccount  string
	SkipRows        int
	SkipDuplicates  bool
	DateRangeStart  *time.Time
	DateRangeEnd    *time.Time

	// TypeInferenceRules maps description keywords to a transaction type,
	// overriding the mapping's own type heuristics.
	TypeInferenceRules map[string]database.TransactionType
}

type PreviewResponse struct {
	ImportID       string
	FileName       string
	DetectedFormat formats.BankFormat
	UsedFormat     formats.BankFormat
	Headers        []string
	Preview        *importer.ImportPreview
}

type CommitRequest struct {
	ImportID       string
	SkipDuplicates bool
	SkipErrors     bool
	SelectedRows   []int
}

type ImportStatus string

const (
	StatusCompleted          ImportStatus = "completed"
	StatusPartiallyCompleted ImportStatus = "partially_completed"
	StatusFailed             ImportStatus = "failed"
)

type ImportResult struct {
	ImportID      string
	Status        ImportStatus
	TotalRows     int
	ImportedCount int
	SkippedCount  int
	ErrorCount    int
	Errors        []RecordError

	ImportedTransactionIDs []string
	Duration               time.Duration
}

type RecordError struct {
	Message string
}
