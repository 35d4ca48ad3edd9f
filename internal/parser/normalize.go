package parser

import (
	"strings"

	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/models"
)

// rupeeSymbol prefixes every normalized amount, regardless of how the
// statement spelled the currency (Rs., INR, ₹). Statements from all
// supported issuers are rupee-denominated.
const rupeeSymbol = "₹"

// normalize converts a raw capture into the field's canonical textual
// form. Amounts gain the currency prefix; everything else is trimmed
// verbatim. No reformatting of dates, no re-grouping of thousands
// separators, no case conversion. The capture is guaranteed non-empty
// by the matching step, so normalize never fails.
func normalize(field models.FieldName, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if field == models.FieldTotalAmountDue {
		return rupeeSymbol + trimmed
	}
	return trimmed
}
