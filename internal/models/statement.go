package models

// FieldName identifies one of the canonical fields extracted from a
// credit card statement.
type FieldName string

const (
	FieldCardHolder     FieldName = "card_holder"
	FieldLast4Digits    FieldName = "last_4_digits"
	FieldBillingCycle   FieldName = "billing_cycle"
	FieldPaymentDueDate FieldName = "payment_due_date"
	FieldTotalAmountDue FieldName = "total_amount_due"
)

// AllFields lists every extractable field in a fixed order.
var AllFields = []FieldName{
	FieldCardHolder,
	FieldLast4Digits,
	FieldBillingCycle,
	FieldPaymentDueDate,
	FieldTotalAmountDue,
}

// ParsedStatement holds the fields extracted from one statement.
// A nil field means no configured pattern matched; absence of one
// field never affects the others. Nil fields marshal to JSON null.
type ParsedStatement struct {
	Issuer         string  `json:"issuer"`
	CardHolder     *string `json:"card_holder"`
	Last4Digits    *string `json:"last_4_digits"`
	BillingCycle   *string `json:"billing_cycle"`
	PaymentDueDate *string `json:"payment_due_date"`
	TotalAmountDue *string `json:"total_amount_due"`
}

// SetField stores a value under the given field name.
func (s *ParsedStatement) SetField(name FieldName, value string) {
	v := value
	switch name {
	case FieldCardHolder:
		s.CardHolder = &v
	case FieldLast4Digits:
		s.Last4Digits = &v
	case FieldBillingCycle:
		s.BillingCycle = &v
	case FieldPaymentDueDate:
		s.PaymentDueDate = &v
	case FieldTotalAmountDue:
		s.TotalAmountDue = &v
	}
}

// Field returns the value for the given field name and whether it is present.
func (s *ParsedStatement) Field(name FieldName) (string, bool) {
	var p *string
	switch name {
	case FieldCardHolder:
		p = s.CardHolder
	case FieldLast4Digits:
		p = s.Last4Digits
	case FieldBillingCycle:
		p = s.BillingCycle
	case FieldPaymentDueDate:
		p = s.PaymentDueDate
	case FieldTotalAmountDue:
		p = s.TotalAmountDue
	}
	if p == nil {
		return "", false
	}
	return *p, true
}
