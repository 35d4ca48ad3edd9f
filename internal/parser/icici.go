package parser

import (
	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/models"
)

// iciciProfile recognizes and parses ICICI Bank credit card statements.
// ICICI statements label the holder "Customer Name" and mask card
// numbers with a 12-X prefix.
var iciciProfile = newProfile(
	"ICICI Bank",
	[]string{"ICICI Bank", "ICICI Credit Card", "www.icicibank.com"},
	map[models.FieldName][]rule{
		models.FieldCardHolder: {
			match(`Customer\s+Name[:\s]+([A-Z][A-Z\s]+?)(?:\n|Card)`),
			match(`Card\s+(?:Holder|Member)[:\s]+([A-Z][A-Z\s]+?)(?:\n|Card|\d)`),
			match(`Name[:\s]+([A-Z][A-Z\s]+?)(?:\n|Card)`),
			match(`Dear\s+([A-Z][A-Z\s]+?)(?:,|\n)`),
			match(`Mr\.?\s+([A-Z][A-Z\s]+?)(?:\n|,)`),
			match(`Ms\.?\s+([A-Z][A-Z\s]+?)(?:\n|,)`),
		},
		models.FieldLast4Digits: {
			match(`Card\s+(?:Number|No\.?)[:\s]+(?:X+\s*)*(\d{4})`),
			match(`(?:X{4}\s+){3}(\d{4})`),
			match(`[X\*]{12}(\d{4})`),
			match(`ending\s+(?:with\s+)?(\d{4})`),
			match(`Card\s+ending[:\s]+(\d{4})`),
		},
		models.FieldBillingCycle: {
			match(`Statement\s+Period[:\s]+(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4}\s*[-–to\s]+\s*\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`),
			match(`Billing\s+(?:Cycle|Period)[:\s]+(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4}\s*[-–to\s]+\s*\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`),
			match(`(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4}\s*[-–]+\s*\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`),
			matchRange(`From[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{4})\s+To[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
		},
		models.FieldPaymentDueDate: {
			match(`Payment\s+Due\s+Date[:\s]+(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`),
			match(`Due\s+Date[:\s]+(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`),
			match(`Pay\s+by[:\s]+(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`),
			match(`Payment\s+Due\s+Date[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
			match(`Due\s+Date[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
		},
		models.FieldTotalAmountDue: {
			match(`Total\s+Amount\s+Due[:\s]+(?:Rs\.?|INR|₹)?\s*([\d,]+\.?\d*)`),
			match(`Total\s+Due[:\s]+(?:Rs\.?|INR|₹)?\s*([\d,]+\.?\d*)`),
			match(`Amount\s+Due[:\s]+(?:Rs\.?|INR|₹)?\s*([\d,]+\.?\d*)`),
			match(`Total\s+Outstanding[:\s]+(?:Rs\.?|INR|₹)?\s*([\d,]+\.?\d*)`),
			match(`(?:Rs\.?|INR|₹)\s*([\d,]+\.?\d*)\s+Total`),
		},
	},
)
