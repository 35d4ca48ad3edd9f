package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestParsedStatement_FieldRoundTrip(t *testing.T) {
	stmt := &ParsedStatement{Issuer: "HDFC Bank"}

	for i, field := range AllFields {
		want := fmt.Sprintf("value-%d", i)
		stmt.SetField(field, want)
		got, ok := stmt.Field(field)
		if !ok {
			t.Errorf("%s: missing after SetField", field)
			continue
		}
		if got != want {
			t.Errorf("%s: got %q, want %q", field, got, want)
		}
	}
}

func TestParsedStatement_AbsentFieldsMarshalToNull(t *testing.T) {
	stmt := &ParsedStatement{Issuer: "SBI Card"}
	stmt.SetField(FieldLast4Digits, "5678")

	data, err := json.Marshal(stmt)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	s := string(data)
	if !strings.Contains(s, `"last_4_digits":"5678"`) {
		t.Errorf("present field not serialized: %s", s)
	}
	if !strings.Contains(s, `"total_amount_due":null`) {
		t.Errorf("absent field should be explicit null: %s", s)
	}
	if !strings.Contains(s, `"issuer":"SBI Card"`) {
		t.Errorf("issuer missing: %s", s)
	}
}

func TestAsParseError(t *testing.T) {
	err := NewParseError(FailBankNotDetected, "no issuer matched")

	pe, ok := AsParseError(err)
	if !ok {
		t.Fatal("expected AsParseError to succeed")
	}
	if pe.Kind != FailBankNotDetected {
		t.Errorf("kind: got %q, want %q", pe.Kind, FailBankNotDetected)
	}

	if _, ok := AsParseError(fmt.Errorf("plain error")); ok {
		t.Error("plain error should not convert")
	}
}
