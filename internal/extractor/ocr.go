package extractor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// IsOCRAvailable reports whether the external OCR toolchain (pdftoppm
// from poppler-utils and tesseract) is installed.
func IsOCRAvailable() bool {
	_, err1 := exec.LookPath("pdftoppm")
	_, err2 := exec.LookPath("tesseract")
	return err1 == nil && err2 == nil
}

// ExtractTextOCR rasterizes the PDF and runs Tesseract on each page.
// This is the path for scanned statements with no text layer; callers
// should reach it only after ExtractText fails or produces too little
// text for the parser.
func ExtractTextOCR(filePath string) ([]string, error) {
	if !IsOCRAvailable() {
		return nil, fmt.Errorf("OCR tools not available (install poppler-utils and tesseract-ocr)")
	}

	tmpDir, err := os.MkdirTemp("", "statement-ocr-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// 300 DPI gives tesseract enough resolution for the small print on
	// statement footers.
	prefix := filepath.Join(tmpDir, "page")
	cmd := exec.Command("pdftoppm", "-r", "300", "-png", filePath, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %v (output: %s)", err, string(out))
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp dir: %v", err)
	}
	var images []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".png") {
			images = append(images, filepath.Join(tmpDir, e.Name()))
		}
	}
	sort.Strings(images)
	if len(images) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no page images")
	}

	var pages []string
	for _, img := range images {
		outBase := strings.TrimSuffix(img, ".png")
		// PSM 4: single column of variably sized text, which fits the
		// label/value layout of statement summary boxes.
		cmd := exec.Command("tesseract", img, outBase, "-l", "eng", "--psm", "4")
		if out, err := cmd.CombinedOutput(); err != nil {
			fmt.Fprintf(os.Stderr, "tesseract warning for %s: %v (output: %s)\n", img, err, string(out))
			continue
		}
		data, err := os.ReadFile(outBase + ".txt")
		if err != nil {
			continue
		}
		if text := strings.TrimSpace(string(data)); text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("OCR produced no text from %d page images", len(images))
	}
	return pages, nil
}
