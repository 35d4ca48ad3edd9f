package parser

import (
	"testing"

	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/models"
)

func TestSBIProfile_ExtractAll(t *testing.T) {
	// Asterisk-masked variant with the State Bank branding.
	text := `State Bank of India - SBICARD
Cardholder Name: AYUSH KARANI
Card No: **** **** **** 8910
Statement Period: 10 Sep 2025 - 09 Oct 2025
Pay by: 25 Oct 2025
Total Outstanding: Rs. 3,500.00`

	if Detect(text) != sbiProfile {
		t.Fatal("expected SBI detection")
	}

	fields := sbiProfile.ExtractAll(text)

	want := map[models.FieldName]string{
		models.FieldCardHolder:     "AYUSH KARANI",
		models.FieldLast4Digits:    "8910",
		models.FieldBillingCycle:   "10 Sep 2025 - 09 Oct 2025",
		models.FieldPaymentDueDate: "25 Oct 2025",
		models.FieldTotalAmountDue: "₹3,500.00",
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
