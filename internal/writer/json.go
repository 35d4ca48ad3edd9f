package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/models"
)

// JSONWriter serializes parsed statements. Absent fields are written as
// explicit nulls so downstream consumers can tell "not found" from
// "not requested".
type JSONWriter struct {
	Indent bool
}

// WriteToFile writes the statement as JSON to the given path.
func (w *JSONWriter) WriteToFile(path string, stmt *models.ParsedStatement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, stmt)
}

// Write serializes the statement to the given writer.
func (w *JSONWriter) Write(out io.Writer, stmt *models.ParsedStatement) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if w.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(stmt); err != nil {
		return fmt.Errorf("failed to encode statement: %w", err)
	}
	return nil
}
