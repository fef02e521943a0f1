package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chinmay1088/risescan/extract"
)

var (
	transfersContract string
	transfersLimit    int
)

var tokenTransfersCmd = &cobra.Command{
	Use:   "token-transfers <address>",
	Short: "Extract token transfers of an address",
	Long: `Extract ERC-20/721 token transfers of an address, newest first.

Examples:
  risescan token-transfers 0x1234...
  risescan token-transfers 0x1234... --contract 0xabcd... --limit 200`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenTransfers,
}

func init() {
	tokenTransfersCmd.Flags().StringVar(&transfersContract, "contract", "", "only transfers of this token contract")
	tokenTransfersCmd.Flags().IntVarP(&transfersLimit, "limit", "l", extract.DefaultMaxTransfers, "maximum transfers to fetch")
}

func runTokenTransfers(cmd *cobra.Command, args []string) error {
	extractor, err := newExtractor(cmd)
	if err != nil {
		return err
	}
	defer extractor.Close()

	result, err := extractor.ExtractTokenTransfers(cmd.Context(), args[0], transfersContract, transfersLimit)
	printResult("Token transfers "+args[0], result)
	return err
}
