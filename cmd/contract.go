package cmd

import (
	"github.com/spf13/cobra"
)

var contractCmd = &cobra.Command{
	Use:   "contract <address>",
	Short: "Extract verified source code and ABI of a contract",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor, err := newExtractor(cmd)
		if err != nil {
			return err
		}
		defer extractor.Close()

		result, err := extractor.ExtractContract(cmd.Context(), args[0])
		printResult("Contract "+args[0], result)
		return err
	},
}
