package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/risescan/api"
)

var txCmd = &cobra.Command{
	Use:   "tx <hash>",
	Short: "Show the status of a transaction",
	Long: `Show the execution and receipt status of a transaction. Nothing is saved.

Examples:
  risescan tx 0x2f3a...`,
	Args: cobra.ExactArgs(1),
	RunE: runTx,
}

func runTx(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := cmd.Context()
	hash := args[0]

	fmt.Printf("🔍 Transaction %s\n", hash)
	fmt.Println()

	info, err := client.GetTransactionInfo(ctx, hash)
	if err != nil {
		return err
	}
	if info.OK() {
		var tx api.TxInfo
		if err := info.Decode(&tx); err != nil {
			return err
		}
		fmt.Printf("   Block:  %s (%s confirmations)\n", tx.BlockNumber, tx.Confirmations)
		fmt.Printf("   From:   %s\n", tx.From)
		fmt.Printf("   To:     %s\n", tx.To)
		fmt.Printf("   Gas:    %s used of %s\n", tx.GasUsed, tx.GasLimit)
		fmt.Printf("   Logs:   %d\n", len(tx.Logs))
	}

	receipt, err := client.GetTransactionReceiptStatus(ctx, hash)
	if err != nil {
		return err
	}
	if err := receipt.Err(); err != nil {
		return err
	}
	var rs api.ReceiptStatus
	if err := receipt.Decode(&rs); err != nil {
		return err
	}

	status, err := client.GetTransactionStatus(ctx, hash)
	if err != nil {
		return err
	}
	var ts api.TxStatus
	if status.OK() {
		if err := status.Decode(&ts); err != nil {
			return err
		}
	}

	switch {
	case ts.IsError == "1":
		fmt.Printf("   Status: %s %s\n", color.RedString("failed"), ts.ErrDescription)
	case rs.Status == "1":
		fmt.Printf("   Status: %s\n", color.GreenString("success"))
	case rs.Status == "0":
		fmt.Printf("   Status: %s\n", color.RedString("failed"))
	default:
		fmt.Printf("   Status: %s\n", color.YellowString("pending"))
	}
	return nil
}
