package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chinmay1088/risescan/extract"
)

var (
	limitFlag    int
	internalFlag bool
)

var transactionsCmd = &cobra.Command{
	Use:   "transactions <address>",
	Short: "Extract the transaction history of an address",
	Long: `Extract the most recent transactions of an address, newest first.

Examples:
  risescan transactions 0x1234...              # Last 100 transactions
  risescan transactions 0x1234... --limit 1000 # Last 1000 transactions
  risescan transactions 0x1234... --internal   # Internal transactions`,
	Args: cobra.ExactArgs(1),
	RunE: runTransactions,
}

func init() {
	transactionsCmd.Flags().IntVarP(&limitFlag, "limit", "l", extract.DefaultMaxTransactions, "maximum transactions to fetch")
	transactionsCmd.Flags().BoolVar(&internalFlag, "internal", false, "extract internal transactions instead")
}

func runTransactions(cmd *cobra.Command, args []string) error {
	extractor, err := newExtractor(cmd)
	if err != nil {
		return err
	}
	defer extractor.Close()

	if internalFlag {
		result, err := extractor.ExtractInternalTransactions(cmd.Context(), args[0], limitFlag)
		printResult("Internal transactions "+args[0], result)
		return err
	}

	result, err := extractor.ExtractAccount(cmd.Context(), extract.AccountOptions{
		Address:         args[0],
		Transactions:    true,
		MaxTransactions: limitFlag,
	})
	printResult("Transactions "+args[0], result)
	return err
}
