package parser

import (
	"testing"

	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/models"
)

func TestAmexProfile_ExtractAll(t *testing.T) {
	// Amex cards are 15 digits, masked with eleven X characters.
	text := `American Express India Statement
Card Member: AYUSH KARANI
Card Number: XXXXXXXXXXX1005
Statement Period: 08 Sep 2025 - 07 Oct 2025
Payment Due: 28 Oct 2025
Total Amount Due: Rs. 21,075.00`

	if Detect(text) != amexProfile {
		t.Fatal("expected Amex detection")
	}

	fields := amexProfile.ExtractAll(text)

	want := map[models.FieldName]string{
		models.FieldCardHolder:     "AYUSH KARANI",
		models.FieldLast4Digits:    "1005",
		models.FieldBillingCycle:   "08 Sep 2025 - 07 Oct 2025",
		models.FieldPaymentDueDate: "28 Oct 2025",
		models.FieldTotalAmountDue: "₹21,075.00",
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
