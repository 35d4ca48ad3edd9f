package models

import "errors"

// FailureKind classifies why a statement could not be parsed at all.
// Per-field misses are not failures; they surface as nil fields in a
// ParsedStatement.
type FailureKind string

const (
	// FailNoText means the caller supplied too little text to work with.
	FailNoText FailureKind = "no_text"
	// FailBankNotDetected means no registered issuer matched the text.
	FailBankNotDetected FailureKind = "bank_not_detected"
)

// ParseError is the structured failure returned by the extraction engine.
type ParseError struct {
	Kind    FailureKind `json:"error"`
	Message string      `json:"message"`
}

func (e *ParseError) Error() string {
	return e.Message
}

// NewParseError builds a ParseError of the given kind.
func NewParseError(kind FailureKind, message string) *ParseError {
	return &ParseError{Kind: kind, Message: message}
}

// AsParseError unwraps err into a *ParseError if it is one.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
