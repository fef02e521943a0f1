package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/risescan/api"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show the explorer endpoint and check that it responds",
	Long: `Show the explorer endpoint and client settings in use, then query the
latest block and the native supply to check the endpoint responds.

Examples:
  risescan network
  risescan network --base-url http://localhost:4000/api`,
	Args: cobra.NoArgs,
	RunE: runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	config := client.Config()
	fmt.Printf("🌐 Explorer: %s\n", color.CyanString(config.BaseURL))
	fmt.Printf("   Timeout: %s | Attempts: %d | Rate limit: %s\n",
		config.Timeout, config.MaxAttempts, rateLimitString(config.RateLimitPerSec))
	fmt.Println()

	ctx := cmd.Context()
	start := time.Now()
	resp, err := client.GetBlockNumberByTime(ctx, start.Unix(), api.ClosestBefore)
	if err != nil {
		fmt.Printf("%s unreachable\n", color.RedString("✗"))
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}
	var block api.BlockNumber
	if err := resp.Decode(&block); err != nil {
		return err
	}
	fmt.Printf("%s reachable (%s)\n", color.GreenString("✓"), time.Since(start).Round(time.Millisecond))
	fmt.Printf("   Latest block: %s\n", block.BlockNumber)

	supply, err := client.GetEthSupply(ctx)
	if err != nil {
		return err
	}
	if supply.OK() {
		if wei, err := supply.Wei(); err == nil {
			fmt.Printf("   Supply:       %s ETH\n", api.WeiToEther(wei).StringFixed(4))
		}
	}
	return nil
}

func rateLimitString(perSec float64) string {
	if perSec <= 0 {
		return "off"
	}
	return fmt.Sprintf("%g/s", perSec)
}
