package printer

import (
	"context"
	"fmt"
	"strings"

	"github.com/raolivei/canopy/pkg/importer"
)

type Printer struct {
}

func NewPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) Preview(
	ctx context.Context,
	preview *importer.ImportPreview,
) string {
	var sb strings.Builder

	sb.WriteString(p.Stat(ctx, preview))
	sb.WriteString("\n\n")

	for _, tx := range preview.Transactions {
		if tx.HasError || tx.IsDuplicate {
			continue
		}

		p.FancyPrintTx(tx, &sb)
	}

	return sb.String()
}

func (p *Printer) Commit(
	ctx context.Context,
	preview *importer.ImportPreview,
	insertedIDs []string,
	errArr []error,
) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Imported: %v 🔥", len(insertedIDs)))
	sb.WriteString(fmt.Sprintf("\nSkipped: %v ✨",
		preview.TotalRows-len(insertedIDs)-len(errArr)))
	sb.WriteString(fmt.Sprintf("\nErrors: %v 🚒", len(errArr)))

	for _, err := range errArr {
		sb.WriteString(fmt.Sprintf("\nError: %s", err))
	}

	if len(errArr) == 0 && len(insertedIDs) > 0 {
		sb.WriteString("\n\nAll transactions imported! 🎉")
	}

	return sb.String()
}

func (p *Printer) Duplicates(
	_ context.Context,
	preview *importer.ImportPreview,
) string {
	var duplicates []*importer.TransactionPreview

	for _, tx := range preview.Transactions {
		if tx.IsDuplicate {
			duplicates = append(duplicates, tx)
		}
	}

	if len(duplicates) == 0 {
		return "No duplicates found"
	}

	var sb strings.Builder
	for _, tx := range duplicates {
		p.FancyPrintTx(tx, &sb)
	}

	if len(duplicates) == len(preview.Transactions) {
		sb.WriteString("\nAll transactions are duplicates: ✅")
	}

	return sb.String()
}

func (p *Printer) Errors(
	_ context.Context,
	preview *importer.ImportPreview,
) string {
	var errCount int
	var sb strings.Builder

	for _, tx := range preview.Transactions {
		if !tx.HasError {
			continue
		}

		p.FancyPrintTx(tx, &sb)

		errCount += 1
	}

	if errCount == 0 {
		sb.WriteString("No errors.")
	}

	return sb.String()
}

func (p *Printer) Stat(
	_ context.Context,
	preview *importer.ImportPreview,
) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total rows: %v", preview.TotalRows))
	sb.WriteString(fmt.Sprintf("\nOk: %v 🔥", preview.ValidRows))
	sb.WriteString(fmt.Sprintf("\nErrors: %v 🚒", preview.ErrorRows))
	sb.WriteString(fmt.Sprintf("\nDuplicates: %v ✨", preview.DuplicateRows))

	if preview.DateRange != nil {
		sb.WriteString(fmt.Sprintf("\nRange: %s .. %s",
			preview.DateRange.Start.Format("2006-01-02"),
			preview.DateRange.End.Format("2006-01-02")))
	}

	if preview.ValidRows == preview.TotalRows && preview.DuplicateRows == 0 {
		sb.WriteString("\n\nAll rows are ok! 🎉")
	}

	return sb.String()
}

func (p *Printer) FancyPrintTx(tx *importer.TransactionPreview, sb *strings.Builder) {
	if tx.IsDuplicate {
		sb.WriteString("Duplicate: ✨\n")
	}

	if tx.HasError {
		sb.WriteString("Has Error: ❌\n")
	}

	sb.WriteString(fmt.Sprintf("Row: %v", tx.RowNumber))
	sb.WriteString(fmt.Sprintf("\nDate: %s", tx.Date.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("\nAmount: %v %v", tx.Amount.StringFixed(2), tx.Currency))
	sb.WriteString(fmt.Sprintf("\nType: %v", tx.Type))
	sb.WriteString(fmt.Sprintf("\nDescription: %s", tx.Description))

	if tx.Category != "" {
		sb.WriteString(fmt.Sprintf("\nCategory: %s", tx.Category))
	}

	if tx.Ticker != "" {
		sb.WriteString(fmt.Sprintf("\nTicker: %s", tx.Ticker))

		if tx.Shares != nil {
			sb.WriteString(fmt.Sprintf(" x%v", tx.Shares))
		}
	}

	if tx.DuplicateReason != "" {
		sb.WriteString(fmt.Sprintf("\nReason: %s", tx.DuplicateReason))
	}

	if tx.HasError {
		sb.WriteString(fmt.Sprintf("\nERROR: %s", tx.ErrorMessage))
	}

	sb.WriteString("\n====================\n")
}
