package main

import (
	"context"

	"github.com/raolivei/canopy/pkg/formats"
	"github.com/raolivei/canopy/pkg/processor"
	"github.com/raolivei/canopy/pkg/repo"
)

type ImportProcessor interface {
	Preview(
		ctx context.Context,
		request processor.PreviewRequest,
	) (*processor.PreviewResponse, error)

	Commit(
		ctx context.Context,
		request processor.CommitRequest,
	) (*processor.ImportResult, error)

	Formats() []formats.BankFormat

	DiscardPreview(importID string) error
}

// ImportHistory is only available when the service owns its own database.
// The handler degrades to 404 on the history endpoints when it is nil.
type ImportHistory interface {
	ListImports(ctx context.Context, limit int, offset int) ([]repo.ImportSummary, error)
	DeleteImport(ctx context.Context, importID string) (int64, error)
}
