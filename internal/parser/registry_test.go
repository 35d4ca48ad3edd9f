package parser

import (
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		issuer string // "" means no detection
	}{
		{
			name:   "detects HDFC",
			text:   "HDFC Bank Credit Card Statement\nName on Card: AYUSH KARANI",
			issuer: "HDFC Bank",
		},
		{
			name:   "detects ICICI",
			text:   "ICICI Bank Credit Card\nCustomer Name: AYUSH KARANI",
			issuer: "ICICI Bank",
		},
		{
			name:   "detects SBI Card",
			text:   "SBI Card Statement\nCard Holder: AYUSH KARANI",
			issuer: "SBI Card",
		},
		{
			name:   "detects Axis",
			text:   "Axis Bank Statement for your credit card",
			issuer: "Axis Bank",
		},
		{
			name:   "detects Amex",
			text:   "American Express Statement of Account",
			issuer: "American Express",
		},
		{
			name:   "detects by website keyword",
			text:   "Visit www.hdfcbank.com for details",
			issuer: "HDFC Bank",
		},
		{
			name:   "keywords are case-insensitive",
			text:   "hdfc bank credit card statement",
			issuer: "HDFC Bank",
		},
		{
			name: "unknown issuer returns nil",
			text: "Grocery Mart Receipt\nTotal: 450.00\nThank you for shopping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.text)
			if tt.issuer == "" {
				if got != nil {
					t.Errorf("expected no detection, got %q", got.Issuer)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %q, got no detection", tt.issuer)
			}
			if got.Issuer != tt.issuer {
				t.Errorf("got %q, want %q", got.Issuer, tt.issuer)
			}
		})
	}
}

// TestDetect_TieBreak pins the documented tie-break: when a statement
// mentions more than one issuer (co-branded or rebranded cards), the
// profile registered first wins. HDFC precedes Axis in the registry.
func TestDetect_TieBreak(t *testing.T) {
	text := "HDFC Bank and Axis Bank co-branded promotional statement"
	got := Detect(text)
	if got == nil {
		t.Fatal("expected a detection")
	}
	if got.Issuer != "HDFC Bank" {
		t.Errorf("tie-break broken: got %q, want %q (first in registry)", got.Issuer, "HDFC Bank")
	}
}

// TestRegistryOrder pins the registry order itself; it is part of the
// observable contract, not incidental declaration order.
func TestRegistryOrder(t *testing.T) {
	want := []string{"HDFC Bank", "ICICI Bank", "SBI Card", "Axis Bank", "American Express"}
	got := SupportedIssuers()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("registry order changed: got %v, want %v", got, want)
	}
}

func TestProfileFor(t *testing.T) {
	tests := []struct {
		key     string
		issuer  string
		wantErr bool
	}{
		{"hdfc", "HDFC Bank", false},
		{"icici", "ICICI Bank", false},
		{"sbi", "SBI Card", false},
		{"axis", "Axis Bank", false},
		{"amex", "American Express", false},
		{"AMEX", "American Express", false},
		{"americanexpress", "American Express", false},
		{"monzo", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p, err := ProfileFor(tt.key)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Issuer != tt.issuer {
				t.Errorf("got %q, want %q", p.Issuer, tt.issuer)
			}
		})
	}
}
