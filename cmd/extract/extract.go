// Package extract handles statement extraction commands
package extract

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/ccs-extract/cmd/root"
	"fjacquet/ccs-extract/internal/logging"
	"fjacquet/ccs-extract/internal/statement"
)

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract transactions from a statement PDF",
	Long: `Extract itemized transactions from a credit card statement PDF,
normalize merchant names, assign a category to every transaction and write
the result to a CSV file.`,
	RunE: extractFunc,
}

func extractFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Extract command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output file: %s", root.SharedFlags.Output)

	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required (use -i)")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	result, err := appContainer.GetProcessor().Process(statement.Options{
		InputFile:  root.SharedFlags.Input,
		OutputFile: root.SharedFlags.Output,
		Debug:      root.SharedFlags.Debug,
	})
	if err != nil {
		return err
	}

	appContainer.GetLogger().WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: result.OutputFile},
		logging.Field{Key: logging.FieldCount, Value: len(result.Transactions)},
	).Info("Statement extraction completed successfully")
	return nil
}
