package cmd

import (
	"context"
	"fmt"
	"math/big"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/risescan/api"
)

var usdFlag bool

var balanceCmd = &cobra.Command{
	Use:   "balance <address>...",
	Short: "Show native balances of one or more addresses",
	Long: fmt.Sprintf(`Show the native balance of up to %d addresses. Nothing is saved.

Examples:
  risescan balance 0x1234...              # One address
  risescan balance 0x1234... 0x5678...    # Several addresses in one request
  risescan balance 0x1234... --usd        # With USD value`, api.MaxBalanceMultiAddresses),
	Args: cobra.RangeArgs(1, api.MaxBalanceMultiAddresses),
	RunE: runBalance,
}

func init() {
	balanceCmd.Flags().BoolVar(&usdFlag, "usd", false, "show USD values")
}

func runBalance(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := cmd.Context()
	balances, err := fetchBalances(ctx, client, args)
	if err != nil {
		return err
	}

	var usd *decimal.Decimal
	if usdFlag {
		usd = coinPriceUSD(ctx, client)
	}

	fmt.Println("💰 Balances")
	fmt.Println()
	for _, b := range balances {
		wei, ok := new(big.Int).SetString(b.Balance, 10)
		if !ok {
			fmt.Printf("%s %s: unreadable balance %q\n", color.RedString("✗"), b.Account, b.Balance)
			continue
		}
		eth := api.WeiToEther(wei)
		fmt.Printf("🔷 %s\n", b.Account)
		fmt.Printf("   %s ETH\n", color.GreenString(eth.String()))
		if usd != nil {
			fmt.Printf("   💵 USD: $%s\n", eth.Mul(*usd).StringFixed(2))
		}
		if b.Stale {
			fmt.Printf("   %s\n", color.YellowString("balance may be stale"))
		}
		fmt.Println()
	}
	return nil
}

// fetchBalances uses balancemulti when more than one address is given.
func fetchBalances(ctx context.Context, client *api.Client, addresses []string) ([]api.AddressBalance, error) {
	if len(addresses) == 1 {
		resp, err := client.GetBalance(ctx, addresses[0])
		if err != nil {
			return nil, err
		}
		if err := resp.Err(); err != nil {
			return nil, err
		}
		return []api.AddressBalance{{Account: addresses[0], Balance: resp.ResultString()}}, nil
	}

	resp, err := client.GetBalanceMulti(ctx, addresses)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	var balances []api.AddressBalance
	if err := resp.Decode(&balances); err != nil {
		return nil, err
	}
	return balances, nil
}

// coinPriceUSD returns nil when the explorer has no price.
func coinPriceUSD(ctx context.Context, client *api.Client) *decimal.Decimal {
	resp, err := client.GetCoinPrice(ctx)
	if err != nil || !resp.OK() {
		fmt.Printf("%s price unavailable\n", color.YellowString("!"))
		return nil
	}
	var price api.CoinPrice
	if err := resp.Decode(&price); err != nil {
		return nil
	}
	usd, err := decimal.NewFromString(price.CoinUSD)
	if err != nil {
		return nil
	}
	return &usd
}
