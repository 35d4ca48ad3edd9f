package parser

import (
	"testing"

	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/models"
)

func TestHDFCProfile_Validate(t *testing.T) {
	if !hdfcProfile.Validate("Statement from HDFC Bank") {
		t.Error("expected HDFC keyword to validate")
	}
	if hdfcProfile.Validate("Statement from Some Other Bank") {
		t.Error("unexpected validation of unrelated text")
	}
}

// HDFC netbanking downloads use a different wording than the emailed
// statements: salutation instead of a name label, full unmasked card
// number, slash dates, "New Balance" instead of "Total Amount Due".
// The fallback chains have to cover all of it.
func TestHDFCProfile_AlternateLayout(t *testing.T) {
	text := `www.hdfcbank.com
Dear AYUSH KARANI,
Your card 5241 9300 1182 7744 statement is ready.
From: 01/09/2025 To: 30/09/2025
Payment due date : 15/10/2025
New Balance Rs. 5,000.00`

	fields := hdfcProfile.ExtractAll(text)

	want := map[models.FieldName]string{
		models.FieldCardHolder:     "AYUSH KARANI",
		models.FieldLast4Digits:    "7744",
		models.FieldBillingCycle:   "01/09/2025 - 30/09/2025",
		models.FieldPaymentDueDate: "15/10/2025",
		models.FieldTotalAmountDue: "₹5,000.00",
	}

	for field, w := range want {
		got, ok := fields[field]
		if !ok {
			t.Errorf("%s: missing, want %q", field, w)
			continue
		}
		if got != w {
			t.Errorf("%s: got %q, want %q", field, got, w)
		}
	}
}

func TestHDFCProfile_MaskedCardVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"X-mask with label", "Card Number: XXXX XXXX XXXX 4581", "4581"},
		{"star mask", "Card: ************4581", "4581"},
		{"ending with", "card ending with 4581", "4581"},
		{"ending in", "Card ending in 4581", "4581"},
		{"bare X blocks", "XXXX XXXX XXXX 4581", "4581"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := hdfcProfile.extractField(models.FieldLast4Digits, tt.text)
			if !ok {
				t.Fatalf("no match for %q", tt.text)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
