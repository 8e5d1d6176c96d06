package statement

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"fjacquet/ccs-extract/internal/logging"
	"fjacquet/ccs-extract/internal/parsererror"
)

// TextExtractor obtains the raw text of a statement document.
// The interface exists so the processor can be tested without a PDF
// toolchain installed.
type TextExtractor interface {
	ExtractText(pdfPath string) (string, error)
}

// PdftotextExtractor extracts statement text with the pdftotext tool from
// poppler-utils. The -layout flag preserves the column structure so the
// transaction line patterns can find dates and amounts.
type PdftotextExtractor struct {
	logger logging.Logger
}

// NewPdftotextExtractor returns the production text extractor.
func NewPdftotextExtractor(logger logging.Logger) *PdftotextExtractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &PdftotextExtractor{logger: logger}
}

// ExtractText runs pdftotext against the given file and returns the
// extracted text. The intermediate text file is removed afterwards.
func (e *PdftotextExtractor) ExtractText(pdfPath string) (string, error) {
	tempFile := pdfPath + ".txt"

	cmd := exec.Command("pdftotext", "-layout", pdfPath, tempFile)
	if err := cmd.Run(); err != nil {
		e.logger.WithError(err).
			WithField(logging.FieldFile, pdfPath).
			Error("Failed to run pdftotext")
		return "", &parsererror.ExtractionError{
			FilePath: pdfPath,
			Reason:   "pdftotext failed (is poppler-utils installed?)",
			Err:      err,
		}
	}

	output, err := os.ReadFile(tempFile)
	if err != nil {
		return "", &parsererror.ExtractionError{
			FilePath: pdfPath,
			Reason:   "cannot read extracted text",
			Err:      err,
		}
	}

	if err := os.Remove(tempFile); err != nil {
		e.logger.WithError(err).
			WithField(logging.FieldFile, tempFile).
			Warn("Failed to remove temporary text file")
	}

	return string(output), nil
}

// MockTextExtractor returns canned text or a canned error for tests.
type MockTextExtractor struct {
	Text string
	Err  error
}

// ExtractText returns the mock data regardless of the path.
func (e *MockTextExtractor) ExtractText(string) (string, error) {
	if e.Err != nil {
		return "", e.Err
	}
	return e.Text, nil
}

// ValidateStatementFile checks that the input exists, is a regular file and
// carries a .pdf extension (case-insensitive).
func ValidateStatementFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &parsererror.ValidationError{FilePath: path, Reason: "file not found"}
	}
	if info.IsDir() {
		return &parsererror.ValidationError{FilePath: path, Reason: "path is a directory"}
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return &parsererror.ValidationError{FilePath: path, Reason: "file is not a PDF"}
	}
	return nil
}
