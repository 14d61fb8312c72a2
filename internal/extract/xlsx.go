package extract

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/eps-group/leadgen-cli/internal/model"
)

// ReadXLSX parses the first sheet of an Excel workbook, treating the first
// row as the header. Event lists and CRM exports both arrive this way.
func ReadXLSX(path string) ([]model.RawRow, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}
	if len(f.Sheets) == 0 {
		return nil, nil
	}
	sheet := f.Sheets[0]

	var header []string
	var rows []model.RawRow
	for i, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = strings.TrimSpace(cell.String())
		}
		if i == 0 {
			header = cells
			continue
		}
		out := make(model.RawRow, len(header))
		for j, h := range header {
			if h == "" {
				continue
			}
			if j < len(cells) {
				out[h] = cells[j]
			} else {
				out[h] = ""
			}
		}
		rows = append(rows, out)
	}
	return rows, nil
}
