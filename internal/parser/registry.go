package parser

import (
	"fmt"
	"strings"
)

// Registry lists every supported issuer profile in detection priority
// order. The order is part of the observable contract: when a statement
// contains keywords from more than one issuer (co-branded or rebranded
// cards), Detect returns the profile registered first. Keep this list
// stable; registry_test.go pins the order.
var Registry = []*Profile{
	hdfcProfile,
	iciciProfile,
	sbiProfile,
	axisProfile,
	amexProfile,
}

// Detect walks the registry in order and returns the first profile
// whose validator accepts the text, or nil if no issuer matches.
// Scanning stops at the first match even if a later profile would
// also validate.
func Detect(text string) *Profile {
	for _, p := range Registry {
		if p.Validate(text) {
			return p
		}
	}
	return nil
}

// SupportedIssuers returns the display names of all registered issuers,
// in registry order. Used in user-facing "bank not detected" messages.
func SupportedIssuers() []string {
	names := make([]string, len(Registry))
	for i, p := range Registry {
		names[i] = p.Issuer
	}
	return names
}

// ProfileFor resolves an explicit issuer key (e.g. from a --bank flag
// or API parameter) to its profile, bypassing auto-detection.
func ProfileFor(key string) (*Profile, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "hdfc":
		return hdfcProfile, nil
	case "icici":
		return iciciProfile, nil
	case "sbi":
		return sbiProfile, nil
	case "axis":
		return axisProfile, nil
	case "amex", "americanexpress":
		return amexProfile, nil
	default:
		return nil, fmt.Errorf("unsupported issuer %q (use hdfc, icici, sbi, axis, or amex)", key)
	}
}
