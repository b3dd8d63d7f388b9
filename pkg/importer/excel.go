package importer

import (
	"bytes"
	"encoding/csv"

	"github.com/cockroachdb/errors"
	"github.com/tealeg/xlsx"
)

// ExcelToCSV renders the first sheet of an xlsx workbook as comma-separated
// text so spreadsheet exports can go through the regular CSV pipeline.
func ExcelToCSV(data []byte) (string, error) {
	file, err := xlsx.OpenBinary(data)
	if err != nil {
		return "", errors.Wrap(err, "failed to open workbook")
	}

	if len(file.Sheets) == 0 {
		return "", errors.New("no sheets found")
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	for _, row := range file.Sheets[0].Rows {
		var cells []string
		for _, cell := range row.Cells {
			cells = append(cells, cell.String())
		}

		if err = writer.Write(cells); err != nil {
			return "", err
		}
	}

	writer.Flush()

	return buf.String(), writer.Error()
}
