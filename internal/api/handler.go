package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/extractor"
	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/models"
	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/parser"
)

// Version is the single service version string; the health endpoint,
// parse responses, and the CLI --version flag all report it.
const Version = "1.0.0"

// ParseResponse is the JSON body returned by POST /api/parse.
type ParseResponse struct {
	Success          bool                    `json:"success"`
	Error            string                  `json:"error,omitempty"`
	Message          string                  `json:"message,omitempty"`
	SupportedIssuers []string                `json:"supportedIssuers,omitempty"`
	Statement        *models.ParsedStatement `json:"statement,omitempty"`
	Version          string                  `json:"version,omitempty"`
}

// RegisterRoutes attaches the API handlers to a fiber app.
func RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", HandleHealth)
	app.Post("/api/parse", HandleParse)
}

// HandleHealth reports service liveness and the supported issuer list.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": Version,
		"issuers": strings.Join(parser.SupportedIssuers(), ", "),
	})
}

// HandleParse accepts a statement PDF upload (form field "file") and
// returns the extracted fields. Optional form fields:
//
//	bank — issuer key (hdfc, icici, sbi, axis, amex) to skip detection
//	text — pre-extracted statement text; skips server-side extraction
//	ocr  — "true" to fall back to OCR when text extraction fails
func HandleParse(c *fiber.Ctx) error {
	text := strings.TrimSpace(c.FormValue("text"))

	if text == "" {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return failJSON(c, fiber.StatusBadRequest, "bad_request", "no file uploaded; use form field 'file'")
		}
		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
			return failJSON(c, fiber.StatusBadRequest, "bad_request", "only PDF files are supported")
		}

		tmpFile, err := os.CreateTemp("", "statement-*.pdf")
		if err != nil {
			return failJSON(c, fiber.StatusInternalServerError, "internal", "failed to create temp file")
		}
		tmpPath := tmpFile.Name()
		tmpFile.Close()
		defer os.Remove(tmpPath)

		if err := c.SaveFile(fileHeader, tmpPath); err != nil {
			return failJSON(c, fiber.StatusInternalServerError, "internal", "failed to save uploaded file")
		}

		text, err = extractor.ExtractTextCombined(tmpPath)
		if err != nil && c.FormValue("ocr") == "true" {
			var pages []string
			pages, err = extractor.ExtractTextOCR(tmpPath)
			if err == nil {
				text = strings.Join(pages, "\n")
			}
		}
		if err != nil {
			return failJSON(c, fiber.StatusUnprocessableEntity, "extraction_failed",
				fmt.Sprintf("could not extract text from %s: %v", filepath.Base(fileHeader.Filename), err))
		}
	}

	var stmt *models.ParsedStatement
	var parseErr error
	if bank := c.FormValue("bank"); bank != "" {
		profile, err := parser.ProfileFor(bank)
		if err != nil {
			return failJSON(c, fiber.StatusBadRequest, "bad_request", err.Error())
		}
		stmt, parseErr = parser.ParseWith(profile, text)
	} else {
		stmt, parseErr = parser.Parse(text)
	}
	if parseErr != nil {
		if pe, ok := models.AsParseError(parseErr); ok {
			resp := ParseResponse{Error: string(pe.Kind), Message: pe.Message}
			if pe.Kind == models.FailBankNotDetected {
				resp.SupportedIssuers = parser.SupportedIssuers()
			}
			return c.Status(fiber.StatusUnprocessableEntity).JSON(resp)
		}
		return failJSON(c, fiber.StatusInternalServerError, "internal", parseErr.Error())
	}

	return c.JSON(ParseResponse{
		Success:   true,
		Statement: stmt,
		Version:   Version,
	})
}

func failJSON(c *fiber.Ctx, status int, kind, message string) error {
	return c.Status(status).JSON(ParseResponse{Error: kind, Message: message})
}
