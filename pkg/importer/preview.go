package importer

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/raolivei/canopy/pkg/common"
	"github.com/raolivei/canopy/pkg/database"
	"github.com/raolivei/canopy/pkg/duplicates"
)

type seenRow struct {
	rowNumber int
	candidate duplicates.Candidate
}

// BuildPreview runs the whole pipeline over one file without persisting
// anything: split rows, parse each one, check duplicates against the
// caller-supplied existing set and tally the outcome. A malformed row never
// aborts the batch; it is recorded with HasError set. Configuration problems
// (no amount mapping, missing header) fail the whole call instead.
func BuildPreview(
	fileContent string,
	config ImportConfig,
	existing []database.Transaction,
) (*ImportPreview, error) {
	if !config.FieldMapping.HasAmountSource() {
		return nil, errors.WithStack(common.ErrNoAmountMapping)
	}
	if config.FieldMapping.DateColumn == "" || config.FieldMapping.DescriptionColumn == "" {
		return nil, errors.New("mapping needs both a date and a description column")
	}

	reader := csv.NewReader(strings.NewReader(fileContent))
	reader.FieldsPerRecord = -1

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv")
	}

	if config.SkipRows > 0 {
		if config.SkipRows >= len(lines) {
			lines = nil
		} else {
			lines = lines[config.SkipRows:]
		}
	}

	if len(lines) == 0 {
		return nil, errors.WithStack(common.ErrEmptyFile)
	}

	header := lines[0]
	rows := lines[1:]

	preview := &ImportPreview{
		TotalRows:    len(rows),
		Transactions: make([]*TransactionPreview, 0, len(rows)),
	}

	var seen []seenRow

	for idx, line := range rows {
		rowNumber := idx + 1

		record, parseErr := parseRow(zipRow(header, line), rowNumber, config, existing)
		if parseErr != nil {
			record = &TransactionPreview{
				RowNumber:    rowNumber,
				Description:  "Parse Error",
				Currency:     config.DefaultCurrency,
				Type:         database.TransactionTypeExpense,
				HasError:     true,
				ErrorMessage: parseErr.Error(),
				RawData:      zipRow(header, line),
			}
		}

		// A row can also duplicate an earlier row of the same file, not just
		// a persisted transaction.
		if config.SkipDuplicates && !record.HasError {
			candidate := duplicates.Candidate{
				Description: record.Description,
				Amount:      record.Amount,
				Date:        record.Date,
			}

			if !record.IsDuplicate {
				for _, prior := range seen {
					if candidate.Matches(prior.candidate) {
						record.IsDuplicate = true
						record.DuplicateReason = fmt.Sprintf("matches row %d in this file", prior.rowNumber)
						break
					}
				}
			}

			seen = append(seen, seenRow{rowNumber: rowNumber, candidate: candidate})
		}

		preview.Transactions = append(preview.Transactions, record)

		if record.HasError {
			preview.ErrorRows++
			continue
		}

		preview.ValidRows++
		if record.IsDuplicate {
			preview.DuplicateRows++
		}

		if preview.DateRange == nil {
			preview.DateRange = &DateRange{Start: record.Date, End: record.Date}
			continue
		}

		if record.Date.Before(preview.DateRange.Start) {
			preview.DateRange.Start = record.Date
		}
		if record.Date.After(preview.DateRange.End) {
			preview.DateRange.End = record.Date
		}
	}

	return preview, nil
}

func zipRow(header, line []string) map[string]string {
	row := make(map[string]string, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")

		if i < len(line) {
			row[name] = line[i]
		} else {
			row[name] = ""
		}
	}

	return row
}
