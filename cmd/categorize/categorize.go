// Package categorize handles transaction categorization commands
package categorize

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fjacquet/ccs-extract/cmd/root"
	"fjacquet/ccs-extract/internal/currencyutils"
	"fjacquet/ccs-extract/internal/dateutils"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long: `Categorize a single transaction description the same way extraction
does: conditional rules first, then category keywords, falling back to
"Other". Useful for checking how a rule or pattern change behaves.`,
	RunE: categorizeFunc,
}

func init() {
	// Categorize command flags
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description to categorize")
	Cmd.Flags().StringVarP(&root.Amount, "amount", "a", "0.00", "Transaction amount (optional)")
	Cmd.Flags().StringVarP(&root.Date, "date", "t", "", "Transaction date, e.g. 2024-12-15 (defaults to today)")
	if err := Cmd.MarkFlagRequired("description"); err != nil {
		panic(err)
	}
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Categorize command called")

	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	amount, err := currencyutils.ParseAmount(root.Amount)
	if err != nil {
		return err
	}

	date := time.Now()
	if root.Date != "" {
		parsed, _, err := dateutils.ParseDate(root.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", root.Date, err)
		}
		date = parsed
	}

	resolver := appContainer.GetResolver()
	merchant := resolver.NormalizeMerchant(root.Description)
	category := resolver.Resolve(root.Description, amount, date)

	root.Log.Infof("Merchant: %s", merchant)
	root.Log.Infof("Transaction categorized as: %s", category)
	return nil
}
