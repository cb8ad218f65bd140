package corpus

import (
	"errors"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextUnavailable is returned when no text can be pulled from the sample
// document. The generator still gets a prompt, just without layout context.
const TextUnavailable = "Could not extract text."

// FirstPageText extracts the text of the first page of a PDF. Extraction
// failures never propagate; the caller gets the sentinel instead.
func FirstPageText(path string) string {
	text, err := firstPageText(path)
	if err != nil || strings.TrimSpace(text) == "" {
		return TextUnavailable
	}
	return strings.TrimSpace(text)
}

// firstPageText prefers row-wise extraction (best layout preservation) and
// falls back to plain text. The pdf library panics on some malformed files,
// so the recover is load-bearing.
func firstPageText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = errPDFCrash
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if r.NumPage() < 1 {
		return "", errNoPages
	}
	page := r.Page(1)
	if page.V.IsNull() {
		return "", errNoPages
	}

	if rows, err := page.GetTextByRow(); err == nil {
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			return strings.Join(lines, "\n"), nil
		}
	}

	return page.GetPlainText(nil)
}

var (
	errPDFCrash = errors.New("pdf library crashed")
	errNoPages  = errors.New("pdf has no pages")
)
