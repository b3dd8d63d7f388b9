package common

import "github.com/cockroachdb/errors"

var (
	ErrEmptyFile       = errors.New("file has no data")
	ErrNoAmountMapping = errors.New("mapping has no amount column and no debit/credit pair")
	ErrPreviewNotFound = errors.New("import preview not found")
)
