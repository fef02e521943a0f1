package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chinmay1088/risescan/api"
	"github.com/chinmay1088/risescan/extract"
)

var (
	logsFrom     uint64
	logsTo       uint64
	logsAddress  string
	logsTopics   [4]string
	logsEvent    string
	logsOperator string
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Extract event logs over a block range",
	Long: fmt.Sprintf(`Extract event logs emitted in a block range, optionally filtered by
contract address and topics. The explorer returns at most %d logs per call;
narrow the range if a result hits that limit.

--event takes an event signature and filters on its topic0 hash.

Examples:
  risescan logs --from 1000 --to 2000 --address 0xabcd...
  risescan logs --from 1000 --to 2000 --event "Transfer(address,address,uint256)"
  risescan logs --from 1000 --to 2000 --topic0 0xddf2... --topic2 0x0000...1234 --operator or`, api.MaxLogsPerCall),
	Args: cobra.NoArgs,
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().Uint64Var(&logsFrom, "from", 0, "first block")
	logsCmd.Flags().Uint64Var(&logsTo, "to", 0, "last block (inclusive)")
	logsCmd.Flags().StringVar(&logsAddress, "address", "", "contract that emitted the logs")
	for i := range logsTopics {
		logsCmd.Flags().StringVar(&logsTopics[i], fmt.Sprintf("topic%d", i), "", fmt.Sprintf("topic%d filter (32-byte hex)", i))
	}
	logsCmd.Flags().StringVar(&logsEvent, "event", "", "event signature used as topic0")
	logsCmd.Flags().StringVar(&logsOperator, "operator", "and", "how topic filters combine: and, or")
	_ = logsCmd.MarkFlagRequired("from")
	_ = logsCmd.MarkFlagRequired("to")
}

func runLogs(cmd *cobra.Command, args []string) error {
	extractor, err := newExtractor(cmd)
	if err != nil {
		return err
	}
	defer extractor.Close()

	result, err := extractor.ExtractLogs(cmd.Context(), extract.LogsOptions{
		FromBlock: logsFrom,
		ToBlock:   logsTo,
		Address:   logsAddress,
		Topics:    logsTopics,
		Event:     logsEvent,
		Operator:  api.TopicOperator(logsOperator),
	})
	printResult(fmt.Sprintf("Logs %d to %d", logsFrom, logsTo), result)
	return err
}
