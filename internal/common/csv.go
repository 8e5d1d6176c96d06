// Package common provides the shared CSV reading and writing helpers.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"fjacquet/ccs-extract/internal/logging"
	"fjacquet/ccs-extract/internal/models"
	"fjacquet/ccs-extract/internal/parsererror"
)

var log = logging.GetLogger()

// Delimiter is the global CSV output delimiter, configurable through the
// application config or the CSV_DELIMITER environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger replaces the package logger.
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string) ([]TCSVRow, error) {
	log.WithField(logging.FieldFile, filePath).Info("Reading CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []TCSVRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.WithField(logging.FieldCount, len(rows)).Info("Successfully read CSV data")
	return rows, nil
}

// WriteCSVFile writes rows to a CSV file using gocsv, creating the target
// directory first if needed. The header row is always written, so an empty
// slice produces a header-only file.
func WriteCSVFile[TCSVRow any](rows []TCSVRow, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return &parsererror.OutputError{FilePath: filePath, Err: err}
	}

	file, err := os.Create(filePath)
	if err != nil {
		return &parsererror.OutputError{FilePath: filePath, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return &parsererror.OutputError{FilePath: filePath, Err: err}
	}

	return nil
}

// WriteTransactionsToCSV writes transactions to a CSV file. The header row
// is always written; an empty transaction list produces a header-only file
// with a warning so downstream tooling still finds a valid CSV.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Writing transactions to CSV file")

	if len(transactions) == 0 {
		log.Warn("No transactions to write, output will contain headers only")
	}

	if err := WriteCSVFile(transactions, csvFile); err != nil {
		return err
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Successfully wrote transactions to CSV file")

	return nil
}
