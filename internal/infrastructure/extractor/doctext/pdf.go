package doctext

import (
	"bytes"
	"fmt"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// pdfPlainText extracts text page by page. Pages that fail to decode are
// skipped; non-blank pages are concatenated with a trailing newline each.
func pdfPlainText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	for pageNr := 1; pageNr <= reader.NumPage(); pageNr++ {
		pageText := pdfPageText(reader, pageNr)
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// pdfPageText isolates per-page decoding so a panic on one malformed page
// skips that page instead of aborting the document.
func pdfPageText(reader *pdf.Reader, pageNr int) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	page := reader.Page(pageNr)
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}
