package parser

import (
	"fmt"
	"strings"

	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/models"
)

// minTextLength is the smallest trimmed input the engine will attempt
// to parse. Anything shorter is almost certainly a failed or partial
// text extraction; the caller should retry acquisition (e.g. with OCR)
// before calling Parse again. The engine itself never retries.
const minTextLength = 50

// Parse identifies the issuing bank from the statement text and
// extracts all canonical fields with that issuer's rule tables.
//
// It returns a *models.ParseError with kind FailNoText when the input
// is too short to be usable, and FailBankNotDetected when no registered
// issuer matches. Individual fields that no rule matched come back as
// nil inside the ParsedStatement; that is data, not an error.
func Parse(text string) (*models.ParsedStatement, error) {
	if len(strings.TrimSpace(text)) < minTextLength {
		return nil, errNoText()
	}

	profile := Detect(text)
	if profile == nil {
		return nil, models.NewParseError(models.FailBankNotDetected,
			fmt.Sprintf("could not identify the card issuer; supported issuers: %s",
				strings.Join(SupportedIssuers(), ", ")))
	}

	return ParseWith(profile, text)
}

// ParseWith extracts all fields using an explicitly chosen profile.
// It skips auto-detection, not the minimum-text check: an explicit
// --bank flag says which rules to use, but too-short input is still a
// FailNoText error rather than an all-nil statement.
func ParseWith(profile *Profile, text string) (*models.ParsedStatement, error) {
	if len(strings.TrimSpace(text)) < minTextLength {
		return nil, errNoText()
	}

	stmt := &models.ParsedStatement{Issuer: profile.Issuer}
	for field, value := range profile.ExtractAll(text) {
		stmt.SetField(field, value)
	}
	return stmt, nil
}

func errNoText() *models.ParseError {
	return models.NewParseError(models.FailNoText,
		"insufficient statement text; extraction may have failed — try OCR on the source document")
}
