// Package batch handles batch processing of statement directories
package batch

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"fjacquet/ccs-extract/cmd/root"
	"fjacquet/ccs-extract/internal/batch"
	"fjacquet/ccs-extract/internal/fileutils"
	"fjacquet/ccs-extract/internal/logging"
	"fjacquet/ccs-extract/internal/statement"
)

// SummaryFileName is the per-category totals file written into the output
// directory alongside the converted statements.
const SummaryFileName = "summary.csv"

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Process every statement PDF in a directory",
	Long: `Process all credit card statement PDFs found in the input directory
and write one CSV per statement into the output directory, plus a
summary.csv with per-category totals across the whole run.

A statement that fails to process is logged and skipped; the remaining
files are still converted.

Example:
  ccs-extract batch -i statements/ -o output/`,
	RunE: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Batch command called")

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" || outputDir == "" {
		return fmt.Errorf("input and output directories are required (use -i and -o)")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}
	logger := appContainer.GetLogger()

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return err
	}

	files, err := fileutils.ListFilesWithExtension(inputDir, ".pdf")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Warn("No PDF statements found in input directory",
			logging.Field{Key: logging.FieldFile, Value: inputDir})
		return nil
	}

	logger.WithField(logging.FieldCount, len(files)).Info("Found statements for processing")

	processor := appContainer.GetProcessor()
	aggregator := batch.NewAggregator(logger)

	for _, file := range files {
		result, err := processor.Process(statement.Options{
			InputFile:  file,
			OutputFile: filepath.Join(outputDir, outputName(file)),
			Debug:      root.SharedFlags.Debug,
		})
		if err != nil {
			aggregator.AddFailure(file, err)
			continue
		}
		aggregator.AddResult(file, result.Transactions)
	}

	summary := aggregator.Summary()
	summary.LogSummary(logger)

	summaryFile := filepath.Join(outputDir, SummaryFileName)
	if err := batch.WriteSummaryCSV(summary, summaryFile); err != nil {
		return err
	}
	logger.WithField(logging.FieldFile, summaryFile).Info("Wrote batch summary")

	if summary.Files == 0 {
		return fmt.Errorf("all %d statements failed to process", summary.Failed)
	}
	return nil
}

// outputName derives the per-statement CSV name from the input file name.
func outputName(inputFile string) string {
	base := filepath.Base(inputFile)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".csv"
}
