package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
)

func txCmd(opts *options) *cobra.Command {
	var (
		wait     string
		receipts bool
	)

	cmd := &cobra.Command{
		Use:   "tx <tx-hash> <sender-account-id>",
		Short: "Print the status of a transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !entity.IsCryptoHash(args[0]) {
				return fmt.Errorf("%q is not a transaction hash", args[0])
			}
			waitUntil, err := parseWaitUntil(wait)
			if err != nil {
				return err
			}

			req := entity.TxStatusByHash(entity.CryptoHash(args[0]), entity.NormalizeAccountID(args[1]), waitUntil)

			ctx, cancel := opts.context(cmd)
			defer cancel()

			var resp *entity.RpcTransactionResponse
			if receipts {
				resp, err = opts.client.ExperimentalTxStatus(ctx, req)
			} else {
				resp, err = opts.client.Tx(ctx, req)
			}
			if err != nil {
				return err
			}
			return opts.print(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&wait, "wait", string(entity.TxExecutionStatusExecutedOptimistic), "execution status to wait for")
	cmd.Flags().BoolVar(&receipts, "receipts", false, "include receipts in the outcome")
	return cmd
}

func receiptCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "receipt <receipt-id>",
		Short: "Print a receipt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := entity.RpcReceiptRequest{ReceiptID: entity.CryptoHash(args[0])}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			receipt, err := opts.client.ExperimentalReceipt(ctx, req)
			if err != nil {
				return err
			}
			return opts.print(cmd, receipt)
		},
	}
}
