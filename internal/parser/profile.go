package parser

import (
	"fmt"
	"strings"

	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/models"
)

// Profile bundles everything needed to recognize and parse one issuer's
// statements: a keyword validator plus an ordered rule chain per field.
// Profiles are immutable once built; there is exactly one per issuer.
type Profile struct {
	// Issuer is the canonical display name, e.g. "HDFC Bank".
	Issuer string

	keywords []string
	rules    map[models.FieldName][]rule
}

// newProfile builds a Profile and verifies that every extractable field
// has at least one rule. Profiles are package-level constants in spirit,
// so a gap here is a programming error worth failing loudly on at init.
func newProfile(issuer string, keywords []string, rules map[models.FieldName][]rule) *Profile {
	for _, field := range models.AllFields {
		if len(rules[field]) == 0 {
			panic(fmt.Sprintf("parser: profile %q has no rules for field %q", issuer, field))
		}
	}
	return &Profile{Issuer: issuer, keywords: keywords, rules: rules}
}

// Validate reports whether the text looks like a statement from this
// issuer: true iff any configured keyword appears as a case-insensitive
// substring. Keyword sets are not enforced disjoint across issuers;
// overlap is resolved by registry order.
func (p *Profile) Validate(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range p.keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// ExtractAll runs every field's rule chain independently against the
// same text and returns the fields that matched. A field with no
// matching rule is simply left out of the map; it never blocks the
// other fields.
func (p *Profile) ExtractAll(text string) map[models.FieldName]string {
	found := make(map[models.FieldName]string, len(models.AllFields))
	for _, field := range models.AllFields {
		if value, ok := p.extractField(field, text); ok {
			found[field] = value
		}
	}
	return found
}

// extractField walks the field's rule chain in declared order and
// returns the normalized value of the first rule that captures.
// Rule order is a precedence contract: rules are authored most
// specific first, and a later looser rule never shadows an earlier one.
func (p *Profile) extractField(field models.FieldName, text string) (string, bool) {
	for _, r := range p.rules[field] {
		if raw, ok := r.capture(text); ok {
			return normalize(field, raw), true
		}
	}
	return "", false
}
