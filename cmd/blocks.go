package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	startBlock uint64
	endBlock   uint64
)

var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Extract block rewards for a range of blocks",
	Long: `Extract the reward record (miner, reward, uncles) of every block in a range.
One request is sent per block.

Examples:
  risescan blocks --start 1000 --end 1100`,
	Args: cobra.NoArgs,
	RunE: runBlocks,
}

func init() {
	blocksCmd.Flags().Uint64Var(&startBlock, "start", 0, "first block")
	blocksCmd.Flags().Uint64Var(&endBlock, "end", 0, "last block (inclusive)")
	_ = blocksCmd.MarkFlagRequired("start")
	_ = blocksCmd.MarkFlagRequired("end")
}

func runBlocks(cmd *cobra.Command, args []string) error {
	if startBlock > endBlock {
		return fmt.Errorf("start block %d is after end block %d", startBlock, endBlock)
	}

	extractor, err := newExtractor(cmd)
	if err != nil {
		return err
	}
	defer extractor.Close()

	bar := newProgressBar(int(endBlock-startBlock+1), "[cyan]Fetching blocks...[reset]")
	result, err := extractor.ExtractBlockRange(cmd.Context(), startBlock, endBlock, func(done, total int) {
		if bar != nil {
			_ = bar.Set(done)
		}
	})
	if bar != nil {
		_ = bar.Finish()
	}
	printResult(fmt.Sprintf("Blocks %d to %d", startBlock, endBlock), result)
	return err
}
