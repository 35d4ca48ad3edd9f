package writer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/models"
)

func sampleStatement() *models.ParsedStatement {
	stmt := &models.ParsedStatement{Issuer: "HDFC Bank"}
	stmt.SetField(models.FieldCardHolder, "AYUSH KARANI")
	stmt.SetField(models.FieldLast4Digits, "4581")
	stmt.SetField(models.FieldTotalAmountDue, "₹14,820.00")
	return stmt
}

func TestJSONWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, sampleStatement()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded models.ParsedStatement
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Issuer != "HDFC Bank" {
		t.Errorf("issuer: got %q", decoded.Issuer)
	}
	if decoded.TotalAmountDue == nil || *decoded.TotalAmountDue != "₹14,820.00" {
		t.Error("amount not preserved through serialization")
	}
	// Fields that were never extracted must appear as null, not be omitted.
	if !strings.Contains(buf.String(), `"billing_cycle":null`) {
		t.Errorf("absent field missing from output: %s", buf.String())
	}
}

func TestJSONWriter_Indent(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{Indent: true}
	if err := w.Write(&buf, sampleStatement()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"issuer\"") {
		t.Errorf("expected indented output, got: %s", buf.String())
	}
}

func TestJSONWriter_WriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.json")
	w := &JSONWriter{Indent: true}
	if err := w.WriteToFile(path, sampleStatement()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	var decoded models.ParsedStatement
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("file is not valid JSON: %v", err)
	}
	if decoded.Last4Digits == nil || *decoded.Last4Digits != "4581" {
		t.Error("last_4_digits not preserved")
	}
}
