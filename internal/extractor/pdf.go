package extractor

import (
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ExtractText reads a statement PDF and returns the text of each page.
// It tries the structured PDF library first, then raw content-stream
// decoding, then the external pdftotext command. Whichever method runs,
// the output is gated through a readability check so the parser never
// sees binary garbage from a custom-font or image-only PDF.
func ExtractText(filePath string) ([]string, error) {
	pages, libErr := extractWithLibrary(filePath)
	if libErr == nil && IsReadableText(pages) {
		return pages, nil
	}

	rawPages, rawErr := ExtractTextRaw(filePath)
	if rawErr == nil && IsReadableText(rawPages) {
		return rawPages, nil
	}

	popplerPages, popplerErr := extractWithPdftotext(filePath)
	if popplerErr == nil && IsReadableText(popplerPages) {
		return popplerPages, nil
	}

	if libErr != nil {
		return nil, fmt.Errorf("PDF text extraction failed: %v; the statement may be scanned or use custom font encodings — try OCR", libErr)
	}
	return nil, fmt.Errorf("no readable text could be extracted; the statement appears to be image-based or uses undecodable fonts — try OCR")
}

// ExtractTextCombined returns the whole document as one string, pages
// joined by newlines. This is the form the field-extraction engine takes.
func ExtractTextCombined(filePath string) (string, error) {
	pages, err := ExtractText(filePath)
	if err != nil {
		return "", err
	}
	return strings.Join(pages, "\n"), nil
}

// statementWords are words that appear in virtually every credit card
// statement. Extracted text containing none of them is treated as
// garbage even when it decodes to printable characters.
var statementWords = []string{
	"card", "credit", "statement", "payment", "due", "amount",
	"total", "billing", "bank", "account", "balance", "limit",
	"minimum", "transaction", "date", "period",
}

func containsStatementWords(pages []string) bool {
	combined := strings.ToLower(strings.Join(pages, " "))
	for _, word := range statementWords {
		if strings.Contains(combined, word) {
			return true
		}
	}
	return false
}

// asciiQuality returns the ratio of plain readable characters to total.
// A strict ASCII check works better here than unicode.IsPrint, which
// accepts the accented garbage produced by identity-encoded fonts.
func asciiQuality(pages []string) float64 {
	total, readable := 0, 0
	for _, page := range pages {
		for _, r := range page {
			total++
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
				readable++
			case unicode.IsSpace(r):
				readable++
			case strings.ContainsRune(`.,-/:;()'"%&@#!?+=*`, r):
				readable++
			case r == '₹', r == '£', r == '$', r == '€':
				readable++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

// IsReadableText reports whether extracted pages are worth handing to
// the parser: enough text, mostly readable characters, and at least
// one word a statement would contain.
func IsReadableText(pages []string) bool {
	n := 0
	for _, p := range pages {
		n += len(strings.TrimSpace(p))
	}
	if n <= 50 {
		return false
	}
	if asciiQuality(pages) <= 0.6 {
		return false
	}
	return containsStatementWords(pages)
}

// extractWithLibrary uses ledongthuc/pdf, trying its extraction methods
// in order of layout fidelity until one yields readable text.
func extractWithLibrary(filePath string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return nil, openErr
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	pages = extractByRow(r, numPages)
	if IsReadableText(pages) {
		return pages, nil
	}

	pages = extractByPlainText(r, numPages)
	if IsReadableText(pages) {
		return pages, nil
	}

	if text := extractWholeDocument(r); IsReadableText([]string{text}) {
		return []string{text}, nil
	}

	return pages, nil
}

// extractByRow preserves line structure, which the label-based field
// rules depend on ("Name on Card: ..." must stay on one line).
func extractByRow(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

func extractByPlainText(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			f := page.Font(name)
			fonts[name] = &f
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	return pages
}

func extractWholeDocument(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// extractWithPdftotext shells out to poppler-utils as a last resort for
// PDFs neither Go path can decode.
func extractWithPdftotext(filePath string) ([]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not available: %v", err)
	}

	numPages := pdfinfoPageCount(filePath)
	if numPages < 1 {
		numPages = 1
	}

	var pages []string
	for i := 1; i <= numPages; i++ {
		n := strconv.Itoa(i)
		out, err := exec.Command("pdftotext", "-layout", "-f", n, "-l", n, filePath, "-").Output()
		if err != nil {
			continue
		}
		if text := strings.TrimSpace(string(out)); text != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) > 0 {
		return pages, nil
	}

	out, err := exec.Command("pdftotext", "-layout", filePath, "-").Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext failed: %v", err)
	}
	if text := strings.TrimSpace(string(out)); text != "" {
		return []string{text}, nil
	}
	return nil, fmt.Errorf("pdftotext produced no output")
}

// pdfinfoPageCount asks pdfinfo for the page count; 0 when unknown.
func pdfinfoPageCount(filePath string) int {
	out, err := exec.Command("pdfinfo", filePath).Output()
	if err != nil {
		return 0
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "Pages:") {
			if n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Pages:"))); err == nil {
				return n
			}
		}
	}
	return 0
}
