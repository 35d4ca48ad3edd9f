package parser

import (
	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/models"
)

// amexProfile recognizes and parses American Express statements.
// Amex formats are the most uniform of the supported issuers, so the
// chains are short. Card numbers are 15 digits, hence the 11-X mask.
var amexProfile = newProfile(
	"American Express",
	[]string{"American Express", "AMEX", "www.americanexpress.com"},
	map[models.FieldName][]rule{
		models.FieldCardHolder: {
			match(`Card\s+(?:Member|Holder)[:\s]+([A-Z][A-Z\s]+?)(?:\n|Card)`),
			match(`Dear\s+([A-Z][A-Z\s]+?)(?:,|\n)`),
			match(`Account\s+Holder[:\s]+([A-Z][A-Z\s]+?)(?:\n)`),
		},
		models.FieldLast4Digits: {
			match(`Card\s+(?:Number|No\.?)[:\s]+(?:X+\s*)*(\d{4})`),
			match(`[X\*]{11}(\d{4})`),
			match(`Account\s+ending[:\s]+(\d{4})`),
		},
		models.FieldBillingCycle: {
			match(`Statement\s+Period[:\s]+(\d{1,2}\s+[A-Za-z]{3}\s+\d{4}\s*[-–to\s]+\s*\d{1,2}\s+[A-Za-z]{3}\s+\d{4})`),
			match(`(\d{1,2}\s+[A-Za-z]{3}\s+\d{4}\s*[-–]+\s*\d{1,2}\s+[A-Za-z]{3}\s+\d{4})`),
		},
		models.FieldPaymentDueDate: {
			match(`Payment\s+Due[:\s]+(\d{1,2}\s+[A-Za-z]{3}\s+\d{4})`),
			match(`Due\s+Date[:\s]+(\d{1,2}\s+[A-Za-z]{3}\s+\d{4})`),
		},
		models.FieldTotalAmountDue: {
			match(`Total\s+(?:Amount\s+)?Due[:\s]+(?:Rs\.?|INR|₹)\s*([\d,]+\.?\d*)`),
			match(`Amount\s+Due[:\s]+(?:Rs\.?|INR|₹)\s*([\d,]+\.?\d*)`),
		},
	},
)
