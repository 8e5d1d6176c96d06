package statement

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"fjacquet/ccs-extract/internal/categorizer"
	"fjacquet/ccs-extract/internal/common"
	"fjacquet/ccs-extract/internal/dateutils"
	"fjacquet/ccs-extract/internal/logging"
	"fjacquet/ccs-extract/internal/models"
)

// Processor runs the full statement pipeline: validate the input file,
// extract its text, parse and clean the transaction lines, resolve a
// merchant and category for every transaction and write the CSV output.
type Processor struct {
	extractor TextExtractor
	parser    *Parser
	resolver  *categorizer.Resolver
	logger    logging.Logger
}

// NewProcessor creates a Processor from its collaborators.
func NewProcessor(extractor TextExtractor, parser *Parser, resolver *categorizer.Resolver, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Processor{
		extractor: extractor,
		parser:    parser,
		resolver:  resolver,
		logger:    logger,
	}
}

// Options control a single processing run.
type Options struct {
	InputFile  string
	OutputFile string // derived from InputFile when empty
	Debug      bool   // dump the raw extracted text next to the input
}

// Result reports what a processing run produced.
type Result struct {
	OutputFile   string
	Transactions []models.Transaction
	Stats        *models.CategorizationStats
}

// Process runs the pipeline for a single statement file.
func (p *Processor) Process(opts Options) (*Result, error) {
	if err := ValidateStatementFile(opts.InputFile); err != nil {
		return nil, err
	}

	text, err := p.extractor.ExtractText(opts.InputFile)
	if err != nil {
		return nil, err
	}

	if opts.Debug {
		p.writeDebugText(opts.InputFile, text)
	}

	transactions, err := p.parser.Parse(text)
	if err != nil {
		return nil, err
	}

	stats := models.NewCategorizationStats()
	for i := range transactions {
		tx := &transactions[i]
		tx.Merchant = p.resolver.NormalizeMerchant(tx.Description)
		tx.Category = p.resolver.Resolve(tx.Description, tx.Amount.Decimal, transactionDate(tx.Date))
		stats.Record(tx.Category)
	}

	outputFile := opts.OutputFile
	if outputFile == "" {
		outputFile = DefaultOutputPath(opts.InputFile)
	}

	if err := common.WriteTransactionsToCSV(transactions, outputFile); err != nil {
		return nil, err
	}

	stats.LogSummary(p.logger)
	p.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: outputFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Statement processed")

	return &Result{
		OutputFile:   outputFile,
		Transactions: transactions,
		Stats:        stats,
	}, nil
}

// DefaultOutputPath derives the CSV output path from the input path by
// replacing its extension with .csv.
func DefaultOutputPath(inputFile string) string {
	return strings.TrimSuffix(inputFile, filepath.Ext(inputFile)) + ".csv"
}

// DebugOutputPath derives the debug text dump path from the input path.
func DebugOutputPath(inputFile string) string {
	return strings.TrimSuffix(inputFile, filepath.Ext(inputFile)) + "_debug.txt"
}

// writeDebugText dumps the raw extracted text next to the input file. A
// failed dump is only a warning, the run continues.
func (p *Processor) writeDebugText(inputFile, text string) {
	debugPath := DebugOutputPath(inputFile)
	if err := os.WriteFile(debugPath, []byte(text), models.PermissionOutputFile); err != nil {
		p.logger.WithError(err).Warn("Failed to write debug text file")
		return
	}
	p.logger.WithField(logging.FieldFile, debugPath).Debug("Wrote raw statement text to debug file")
}

// transactionDate parses a cleaned transaction date for rule evaluation.
// Dates kept verbatim after a parse failure come back as the zero time,
// which only matters to rules carrying a date condition.
func transactionDate(dateStr string) time.Time {
	date, err := dateutils.ParseOutputDate(dateStr)
	if err != nil {
		return time.Time{}
	}
	return date
}
