package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rotisserie/eris"

	"github.com/eps-group/leadgen-cli/internal/model"
)

// minPDFLineLen filters out page furniture; shorter lines are noise.
const minPDFLineLen = 5

// ReadEventPDF extracts attendee/exhibitor lines from an event brochure.
// PDFs carry no column structure, so each usable line becomes a notes-only
// row for downstream keyword scoring.
func ReadEventPDF(path string) ([]model.RawRow, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "pdf: open file")
	}
	defer f.Close()

	var buf bytes.Buffer
	plain, err := reader.GetPlainText()
	if err != nil {
		return nil, eris.Wrap(err, "pdf: extract text")
	}
	if _, err := buf.ReadFrom(plain); err != nil {
		return nil, eris.Wrap(err, "pdf: read text")
	}

	var rows []model.RawRow
	for _, line := range strings.Split(buf.String(), "\n") {
		line = strings.TrimSpace(line)
		if len(line) < minPDFLineLen {
			continue
		}
		rows = append(rows, model.RawRow{"notes": "event_pdf:" + line})
	}
	return rows, nil
}
