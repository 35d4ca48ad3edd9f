package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/api"
	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/config"
	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/extractor"
	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/models"
	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/parser"
	"github.com/ayushkarani47/sure-financial-credit-card-statement-parser/internal/writer"
)

func main() {
	bankFlag := flag.String("bank", "", "Issuer: hdfc, icici, sbi, axis, amex (auto-detected if omitted)")
	outputFlag := flag.String("output", "", "Output JSON file path (defaults to input filename with .json extension)")
	ocrFlag := flag.Bool("ocr", false, "Fall back to OCR for scanned/image-based statements")
	serveFlag := flag.Bool("serve", false, "Run the HTTP API server instead of converting files")
	addrFlag := flag.String("addr", "", "Server listen address (overrides LISTEN_ADDR)")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Credit Card Statement Parser

Extracts card holder, card number (last 4), billing cycle, payment due
date and total amount due from credit card statement PDFs.

Usage:
  statement-parser [flags] <statement.pdf> [statement2.pdf ...]
  statement-parser --serve

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Auto-detect issuer and parse
  statement-parser statement.pdf

  # Specify issuer explicitly
  statement-parser --bank=hdfc statement.pdf

  # Scanned statement
  statement-parser --ocr statement.pdf

  # Run the API server
  statement-parser --serve --addr=:8080

Supported Issuers:
  hdfc      - HDFC Bank
  icici     - ICICI Bank
  sbi       - SBI Card
  axis      - Axis Bank
  amex      - American Express
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("statement-parser v%s\n", api.Version)
		os.Exit(0)
	}

	if *serveFlag {
		serve(*addrFlag)
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	// Validate the bank flag up front so a typo fails before any PDF work.
	var profile *parser.Profile
	if *bankFlag != "" {
		p, err := parser.ProfileFor(*bankFlag)
		if err != nil {
			fatalf("%v\n", err)
		}
		profile = p
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(inputPath, profile, *outputFlag, *ocrFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func processFile(inputPath string, profile *parser.Profile, outputPath string, useOCR bool) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}
	if ext := strings.ToLower(filepath.Ext(inputPath)); ext != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", ext)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	text, err := extractor.ExtractTextCombined(inputPath)
	if err != nil && useOCR {
		fmt.Println("  Text extraction failed, attempting OCR...")
		pages, ocrErr := extractor.ExtractTextOCR(inputPath)
		if ocrErr != nil {
			return fmt.Errorf("OCR extraction failed: %w", ocrErr)
		}
		text = strings.Join(pages, "\n")
		err = nil
	}
	if err != nil {
		return fmt.Errorf("PDF extraction failed: %w", err)
	}

	var stmt *models.ParsedStatement
	if profile != nil {
		fmt.Printf("  Using %s parser\n", profile.Issuer)
		stmt, err = parser.ParseWith(profile, text)
		if err != nil {
			return err
		}
	} else {
		stmt, err = parser.Parse(text)
		if err != nil {
			return err
		}
		fmt.Printf("  Detected issuer: %s\n", stmt.Issuer)
	}

	printSummary(stmt)

	outPath := outputPath
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".json"
	}

	w := &writer.JSONWriter{Indent: true}
	if err := w.WriteToFile(outPath, stmt); err != nil {
		return fmt.Errorf("JSON write failed: %w", err)
	}

	fmt.Printf("  Output: %s\n", outPath)
	fmt.Println("  Done.")
	return nil
}

func printSummary(stmt *models.ParsedStatement) {
	labels := map[models.FieldName]string{
		models.FieldCardHolder:     "Card holder",
		models.FieldLast4Digits:    "Card ending",
		models.FieldBillingCycle:   "Billing cycle",
		models.FieldPaymentDueDate: "Payment due",
		models.FieldTotalAmountDue: "Amount due",
	}
	for _, field := range models.AllFields {
		if value, ok := stmt.Field(field); ok {
			fmt.Printf("  %s: %s\n", labels[field], value)
		} else {
			fmt.Printf("  %s: not found\n", labels[field])
		}
	}
}

func serve(addrOverride string) {
	cfg := config.Load()
	addr := cfg.ListenAddr
	if addrOverride != "" {
		addr = addrOverride
	}

	app := fiber.New(fiber.Config{
		AppName:   "statement-parser",
		BodyLimit: cfg.MaxUploadMB << 20,
	})
	app.Use(fiberlogger.New())
	api.RegisterRoutes(app)

	fmt.Printf("Listening on %s (issuers: %s)\n", addr, strings.Join(parser.SupportedIssuers(), ", "))
	if err := app.Listen(addr); err != nil {
		fatalf("server error: %v\n", err)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
