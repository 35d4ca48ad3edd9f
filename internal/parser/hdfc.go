package parser

import (
	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/models"
)

// hdfcProfile recognizes and parses HDFC Bank credit card statements.
//
// HDFC layouts vary widely between netbanking downloads, emailed
// statements, and older printed formats, so the name and amount chains
// carry more fallbacks than the other issuers. Rules are ordered most
// specific first; the generic "Dear NAME" and bare-range fallbacks sit
// at the bottom of their chains.
var hdfcProfile = newProfile(
	"HDFC Bank",
	[]string{"HDFC Bank", "HDFC Credit Card", "www.hdfcbank.com"},
	map[models.FieldName][]rule{
		models.FieldCardHolder: {
			match(`Card\s+holder\s+Name\s*:\s*([A-Z][A-Za-z\s]+?)(?:\n|Name:|Address:|For|$)`),
			match(`Name\s+on\s+Card[:\s]+([A-Z][A-Z\s]+?)(?:\n|Card|Number|\d)`),
			match(`Card\s*Holder[:\s]+([A-Z][A-Z\s]+?)(?:\n|Card|Number|\d)`),
			match(`Cardholder[:\s]+([A-Z][A-Z\s]+?)(?:\n|Card|Number|\d)`),
			match(`Primary\s+Member[:\s]+([A-Z][A-Z\s]+?)(?:\n|Card|Number|\d)`),
			match(`Customer\s+Name[:\s]+([A-Z][A-Z\s]+?)(?:\n|Card|Number|\d)`),
			match(`Account\s+Holder[:\s]+([A-Z][A-Z\s]+?)(?:\n|Card|Number|\d)`),
			match(`Dear\s+([A-Z][A-Z\s]+?)(?:,|\n)`),
			match(`Mr\.?\s+([A-Z][A-Z\s]+?)(?:\n|,)`),
			match(`Ms\.?\s+([A-Z][A-Z\s]+?)(?:\n|,)`),
			match(`Mrs\.?\s+([A-Z][A-Z\s]+?)(?:\n|,)`),
		},
		models.FieldLast4Digits: {
			// Full unmasked card number: keep only the last block.
			matchLast(`(\d{4})\s+(\d{4})\s+(\d{4})\s+(\d{4})`),
			match(`Card\s+(?:Number|ending|No\.?)[:\s]+(?:X+\s*)*(\d{4})`),
			match(`Card\s+No\.?\s*[:\s]*[X\*]+(\d{4})`),
			match(`(?:X{4}\s+){3}(\d{4})`),
			match(`(?:\*{4}\s+){3}(\d{4})`),
			match(`ending\s+(?:with\s+)?(\d{4})`),
			match(`Card\s+ending\s+in\s+(\d{4})`),
			match(`(?:XXXX|\*{4})\s*(?:XXXX|\*{4})\s*(?:XXXX|\*{4})\s*(\d{4})`),
			match(`Card:\s*[X\*]+(\d{4})`),
			match(`Card\s+[X\*]{4,}\s*(\d{4})`),
		},
		models.FieldBillingCycle: {
			matchRange(`Opening/Closing\s+Date\s+(\d{1,2}/\d{1,2}/[A-Z]{2})\s*[-–]\s*(\d{1,2}/\d{1,2}/[A-Z]{2})`),
			match(`Statement\s+Period[:\s]+(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4}\s*[-–to\s]+\s*\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`),
			match(`Billing\s+Cycle[:\s]+(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4}\s*[-–to\s]+\s*\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`),
			match(`Statement\s+Date[:\s]+(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4}\s*[-–to\s]+\s*\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`),
			match(`Period[:\s]+(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4}\s*[-–to\s]+\s*\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`),
			match(`(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4}\s*[-–]+\s*\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`),
			matchRange(`From[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{4})\s+To[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
			matchRange(`(\d{1,2}[/-]\d{1,2}[/-]\d{4})\s+(?:to|-)\s+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
		},
		models.FieldPaymentDueDate: {
			match(`Payment\s+due\s+date\s*:\s*(\d{1,2}/\d{1,2}/\d{4})`),
			match(`Payment\s+Due\s+Date[:\s]+(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`),
			match(`Due\s+Date[:\s]+(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`),
			match(`Pay\s+by[:\s]+(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`),
			match(`Payment\s+Due[:\s]+(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`),
			match(`Due\s+on[:\s]+(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`),
			match(`Payment\s+Due\s+Date[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
			match(`Due\s+Date[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
			match(`Pay\s+by[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{4})`),
		},
		models.FieldTotalAmountDue: {
			match(`New\s+Balance\s+(?:\$|Rs\.?|INR|₹)?\s*([\d,]+\.?\d*)`),
			match(`Total\s+balance\s*:\s*(?:\$|Rs\.?|INR|₹)?\s*([\d,]+\.?\d*)`),
			match(`Total\s+Amount\s+Due[:\s]+(?:\$|Rs\.?|INR|₹)?\s*([\d,]+\.?\d*)`),
			match(`Total\s+Due[:\s]+(?:\$|Rs\.?|INR|₹)?\s*([\d,]+\.?\d*)`),
			match(`Amount\s+Due[:\s]+(?:\$|Rs\.?|INR|₹)?\s*([\d,]+\.?\d*)`),
			match(`Total\s+Outstanding[:\s]+(?:\$|Rs\.?|INR|₹)?\s*([\d,]+\.?\d*)`),
			match(`Outstanding\s+Amount[:\s]+(?:\$|Rs\.?|INR|₹)?\s*([\d,]+\.?\d*)`),
			match(`Amount\s+Payable[:\s]+(?:\$|Rs\.?|INR|₹)?\s*([\d,]+\.?\d*)`),
			match(`Payable[:\s]+(?:\$|Rs\.?|INR|₹)?\s*([\d,]+\.?\d*)`),
			match(`(?:\$|Rs\.?|INR|₹)\s*([\d,]+\.?\d*)\s+Total\s+(?:Amount\s+)?Due`),
			match(`(?:\$|Rs\.?|INR|₹)\s*([\d,]+\.?\d*)\s+(?:is\s+)?(?:the\s+)?Total`),
		},
	},
)
