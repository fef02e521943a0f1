package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chinmay1088/risescan/extract"
)

var holdersLimit int

var tokenHoldersCmd = &cobra.Command{
	Use:   "token-holders <contract>",
	Short: "Extract token metadata and top holders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor, err := newExtractor(cmd)
		if err != nil {
			return err
		}
		defer extractor.Close()

		result, err := extractor.ExtractTokenHolders(cmd.Context(), args[0], holdersLimit)
		printResult("Token holders "+args[0], result)
		return err
	},
}

func init() {
	tokenHoldersCmd.Flags().IntVarP(&holdersLimit, "limit", "l", extract.DefaultMaxHolders, "maximum holders to fetch")
}
