package processor

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/raolivei/canopy/pkg/common"
	"github.com/raolivei/canopy/pkg/formats"
	"github.com/raolivei/canopy/pkg/importer"
	"github.com/raolivei/canopy/pkg/previewstore"
)

var xlsxMagic = []byte("PK\x03\x04")

type Config struct {
	ExistingSource  ExistingSource
	Sink            Sink
	Store           PreviewStore
	Printer         Printer
	DefaultCurrency string
}

type Printer interface {
	Preview(ctx context.Context, preview *importer.ImportPreview) string
	Duplicates(ctx context.Context, preview *importer.ImportPreview) string
	Errors(ctx context.Context, preview *importer.ImportPreview) string
	Commit(
		ctx context.Context,
		preview *importer.ImportPreview,
		insertedIDs []string,
		errArr []error,
	) string
}

// Processor ties the stages together: detect the format, build a preview,
// hold it until the caller commits or discards it.
type Processor struct {
	existingSource  ExistingSource
	sink            Sink
	store           PreviewStore
	printer         Printer
	defaultCurrency string
}

func NewProcessor(cfg *Config) *Processor {
	return &Processor{
		existingSource:  cfg.ExistingSource,
		sink:            cfg.Sink,
		store:           cfg.Store,
		printer:         cfg.Printer,
		defaultCurrency: cfg.DefaultCurrency,
	}
}

func (p *Processor) Preview(
	ctx context.Context,
	request PreviewRequest,
) (*PreviewResponse, error) {
	logger := zerolog.Ctx(ctx)

	if len(request.FileContent) == 0 {
		return nil, errors.WithStack(common.ErrEmptyFile)
	}

	content := string(request.FileContent)

	if bytes.HasPrefix(request.FileContent, xlsxMagic) {
		converted, err := importer.ExcelToCSV(request.FileContent)
		if err != nil {
			return nil, err
		}

		content = converted
	}

	headers, err := readHeaders(content, request.SkipRows)
	if err != nil {
		return nil, err
	}

	detected, _ := formats.Detect(headers)

	usedFormat, mapping, err := resolveMapping(request, headers, detected)
	if err != nil {
		return nil, err
	}

	existing, err := p.existingSource.ListTransactions(ctx, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch existing transactions")
	}

	importConfig := importer.ImportConfig{
		BankFormat:      usedFormat,
		FieldMapping:    mapping,
		DefaultCurrency: request.DefaultCurrency,
		DefaultAccount:  request.DefaultAccount,
		SkipRows:        request.SkipRows,
		SkipDuplicates:  request.SkipDuplicates,
		DateRangeStart:  request.DateRangeStart,
		DateRangeEnd:    request.DateRangeEnd,

		TypeInferenceRules: request.TypeInferenceRules,
	}
	if importConfig.DefaultCurrency == "" {
		importConfig.DefaultCurrency = p.defaultCurrency
	}

	preview, err := importer.BuildPreview(content, importConfig, existing)
	if err != nil {
		return nil, err
	}

	importID := p.store.Put(&previewstore.Entry{
		Preview:  preview,
		Config:   importConfig,
		FileName: request.FileName,
	})

	logger.Info().
		Str("importId", importID).
		Str("format", string(usedFormat)).
		Int("totalRows", preview.TotalRows).
		Int("validRows", preview.ValidRows).
		Int("duplicateRows", preview.DuplicateRows).
		Int("errorRows", preview.ErrorRows).
		Msg("built import preview")

	logger.Debug().Msg(p.printer.Preview(ctx, preview))

	if preview.DuplicateRows > 0 {
		logger.Debug().Msg(p.printer.Duplicates(ctx, preview))
	}
	if preview.ErrorRows > 0 {
		logger.Debug().Msg(p.printer.Errors(ctx, preview))
	}

	return &PreviewResponse{
		ImportID:       importID,
		FileName:       request.FileName,
		DetectedFormat: detected,
		UsedFormat:     usedFormat,
		Headers:        headers,
		Preview:        preview,
	}, nil
}

func (p *Processor) Commit(
	ctx context.Context,
	request CommitRequest,
) (*ImportResult, error) {
	logger := zerolog.Ctx(ctx)
	startedAt := time.Now()

	entry, ok := p.store.Get(request.ImportID)
	if !ok {
		return nil, errors.Wrapf(common.ErrPreviewNotFound, "import %s", request.ImportID)
	}

	records := importer.Commit(entry.Preview, importer.CommitOptions{
		SkipDuplicates: request.SkipDuplicates,
		SkipErrors:     request.SkipErrors,
		SelectedRows:   request.SelectedRows,
	})

	insertedIDs, recordErrs, err := p.sink.SaveTransactions(
		ctx,
		request.ImportID,
		entry.Config.BankFormat,
		records,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save transactions")
	}

	p.store.Delete(request.ImportID)

	result := &ImportResult{
		ImportID:               request.ImportID,
		TotalRows:              entry.Preview.TotalRows,
		ImportedCount:          len(insertedIDs),
		SkippedCount:           entry.Preview.TotalRows - len(records),
		ErrorCount:             len(recordErrs),
		ImportedTransactionIDs: insertedIDs,
		Duration:               time.Since(startedAt),
	}

	for _, recordErr := range recordErrs {
		result.Errors = append(result.Errors, RecordError{
			Message: recordErr.Error(),
		})
	}

	switch {
	case len(records) > 0 && len(insertedIDs) == 0:
		result.Status = StatusFailed
	case len(recordErrs) > 0:
		result.Status = StatusPartiallyCompleted
	default:
		result.Status = StatusCompleted
	}

	logger.Info().
		Str("importId", request.ImportID).
		Str("status", string(result.Status)).
		Dur("took", result.Duration).
		Msg(p.printer.Commit(ctx, entry.Preview, insertedIDs, recordErrs))

	return result, nil
}

func (p *Processor) Formats() []formats.BankFormat {
	return formats.Presets()
}

func (p *Processor) DiscardPreview(importID string) error {
	if !p.store.Delete(importID) {
		return errors.Wrapf(common.ErrPreviewNotFound, "import %s", importID)
	}

	return nil
}

func resolveMapping(
	request PreviewRequest,
	headers []string,
	detected formats.BankFormat,
) (formats.BankFormat, formats.FieldMapping, error) {
	if request.CustomMapping != nil {
		return formats.Custom, *request.CustomMapping, nil
	}

	switch request.Format {
	case "":
	case formats.Generic:
		// The generic sentinel always means "infer from the headers", even
		// when detection would have found a preset.
		return formats.Generic, formats.InferMapping(headers), nil
	case formats.Custom:
		return "", formats.FieldMapping{}, errors.New("custom format requires a field mapping")
	default:
		mapping, ok := formats.Lookup(request.Format)
		if !ok {
			return "", formats.FieldMapping{}, errors.Newf("unknown format: %s", request.Format)
		}

		return request.Format, mapping, nil
	}

	if detected != "" {
		if mapping, ok := formats.Lookup(detected); ok {
			return detected, mapping, nil
		}
	}

	return formats.Generic, formats.InferMapping(headers), nil
}

func readHeaders(content string, skipRows int) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1

	for i := 0; i < skipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.WithStack(common.ErrEmptyFile)
		}
	}

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.WithStack(common.ErrEmptyFile)
	}

	for i, header := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
	}

	return headers, nil
}
