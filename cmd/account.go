package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chinmay1088/risescan/extract"
)

var (
	accountTransactions bool
	accountTokens       bool
	accountMaxTx        int
)

var accountCmd = &cobra.Command{
	Use:   "account <address>",
	Short: "Extract balance, transactions and tokens of an address",
	Long: `Extract the balance of an address and, optionally, its most recent
transactions and the tokens it holds.

Examples:
  risescan account 0x1234...                          # Balance only
  risescan account 0x1234... --transactions --tokens  # Everything
  risescan account 0x1234... --transactions --max-tx 500`,
	Args: cobra.ExactArgs(1),
	RunE: runAccount,
}

func init() {
	accountCmd.Flags().BoolVar(&accountTransactions, "transactions", false, "include transactions")
	accountCmd.Flags().BoolVar(&accountTokens, "tokens", false, "include token holdings")
	accountCmd.Flags().IntVar(&accountMaxTx, "max-tx", extract.DefaultMaxTransactions, "maximum transactions to fetch")
}

func runAccount(cmd *cobra.Command, args []string) error {
	extractor, err := newExtractor(cmd)
	if err != nil {
		return err
	}
	defer extractor.Close()

	result, err := extractor.ExtractAccount(cmd.Context(), extract.AccountOptions{
		Address:         args[0],
		Transactions:    accountTransactions,
		Tokens:          accountTokens,
		MaxTransactions: accountMaxTx,
	})
	printResult("Account "+args[0], result)
	return err
}
