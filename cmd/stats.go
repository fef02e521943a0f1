package cmd

import (
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Extract network supply and price statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor, err := newExtractor(cmd)
		if err != nil {
			return err
		}
		defer extractor.Close()

		result, err := extractor.ExtractNetworkStats(cmd.Context())
		printResult("Network statistics", result)
		return err
	},
}
