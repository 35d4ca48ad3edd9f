package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// groupPolicy controls which capture group(s) of a matched rule become
// the extracted value.
type groupPolicy int

const (
	// firstGroup uses capture group 1.
	firstGroup groupPolicy = iota
	// lastGroup uses the final capture group, and only fires when every
	// group matched and is purely numeric. Used for bare full card
	// numbers like "1234 5678 9012 3456" where only the last block of
	// four digits is wanted.
	lastGroup
	// joinGroups combines capture groups 1 and 2 with " - ", each
	// trimmed independently. Used for explicit from/to date pairs.
	joinGroups
)

// rule is the atomic unit of extraction: one compiled expression plus the
// policy for turning its capture groups into a value. Rules are built once
// at package init and shared read-only across all calls.
type rule struct {
	re     *regexp.Regexp
	policy groupPolicy
}

// capture runs the rule against text and returns the selected capture.
// A rule either yields a non-empty capture or reports no match; partial
// and empty captures count as misses so the next rule in the chain gets
// its turn.
func (r rule) capture(text string) (string, bool) {
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	switch r.policy {
	case lastGroup:
		for _, g := range m[1:] {
			if !isDigits(g) {
				return "", false
			}
		}
		return m[len(m)-1], true
	case joinGroups:
		if len(m) < 3 || m[1] == "" || m[2] == "" {
			return "", false
		}
		return strings.TrimSpace(m[1]) + " - " + strings.TrimSpace(m[2]), true
	default:
		if strings.TrimSpace(m[1]) == "" {
			return "", false
		}
		return m[1], true
	}
}

// match builds a case-insensitive rule that extracts capture group 1.
func match(expr string) rule {
	return newRule(expr, firstGroup)
}

// matchLast builds a rule whose value is the last of its capture groups;
// all groups must be present and numeric for it to fire.
func matchLast(expr string) rule {
	return newRule(expr, lastGroup)
}

// matchRange builds a rule that joins two captured endpoints into a
// single "<start> - <end>" range string.
func matchRange(expr string) rule {
	return newRule(expr, joinGroups)
}

// newRule compiles a rule and verifies the expression carries the
// capture groups its policy indexes. Rules are authored by hand, so a
// group-less pattern is a programming error caught at init, the same
// way newProfile catches an uncovered field.
func newRule(expr string, policy groupPolicy) rule {
	re := regexp.MustCompile(`(?i)` + expr)
	want := 1
	if policy == joinGroups {
		want = 2
	}
	if re.NumSubexp() < want {
		panic(fmt.Sprintf("parser: pattern %q needs at least %d capture group(s)", expr, want))
	}
	return rule{re: re, policy: policy}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
