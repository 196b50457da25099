package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
)

func blockFlag(cmd *cobra.Command, value *string) {
	cmd.Flags().StringVar(value, "block", "", "finality, sync checkpoint, height or hash of the block (default final)")
}

func accountCmd(opts *options) *cobra.Command {
	var block string

	cmd := &cobra.Command{
		Use:   "account <account-id>",
		Short: "Print an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseBlockReference(block)
			if err != nil {
				return err
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			resp, err := opts.client.Query(ctx, entity.ViewAccountRequest(ref, entity.NormalizeAccountID(args[0])))
			if err != nil {
				return err
			}
			return opts.print(cmd, resp)
		},
	}

	blockFlag(cmd, &block)
	return cmd
}

func accessKeysCmd(opts *options) *cobra.Command {
	var block string

	cmd := &cobra.Command{
		Use:   "access-keys <account-id> [public-key]",
		Short: "Print all access keys of an account, or one of them",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseBlockReference(block)
			if err != nil {
				return err
			}

			account := entity.NormalizeAccountID(args[0])
			req := entity.ViewAccessKeyListRequest(ref, account)
			if len(args) == 2 {
				req = entity.ViewAccessKeyRequest(ref, account, entity.PublicKey(args[1]))
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			resp, err := opts.client.Query(ctx, req)
			if err != nil {
				return err
			}
			return opts.print(cmd, resp)
		},
	}

	blockFlag(cmd, &block)
	return cmd
}

// callOutput shows the bytes returned by a view function as JSON when they
// are JSON, as a string otherwise.
type callOutput struct {
	BlockHash   entity.CryptoHash  `json:"block_hash"`
	BlockHeight entity.BlockHeight `json:"block_height"`
	Result      any                `json:"result"`
	Logs        []string           `json:"logs"`
}

func newCallOutput(resp *entity.RpcQueryResponse) (callOutput, error) {
	if resp.CallResult == nil {
		return callOutput{}, fmt.Errorf("node answered without a call result")
	}

	out := callOutput{
		BlockHash:   resp.BlockHash,
		BlockHeight: resp.BlockHeight,
		Logs:        resp.CallResult.Logs,
	}
	if out.Logs == nil {
		out.Logs = []string{}
	}

	raw := []byte(resp.CallResult.Result)
	if json.Valid(raw) {
		out.Result = json.RawMessage(raw)
	} else {
		out.Result = string(raw)
	}
	return out, nil
}

func callCmd(opts *options) *cobra.Command {
	var (
		block string
		raw   bool
	)

	cmd := &cobra.Command{
		Use:   "call <account-id> <method> [json-args]",
		Short: "Call a view function of a contract",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseBlockReference(block)
			if err != nil {
				return err
			}

			fnArgs := []byte("{}")
			if len(args) == 3 {
				fnArgs = []byte(args[2])
				if !json.Valid(fnArgs) {
					return fmt.Errorf("arguments are not valid JSON: %s", args[2])
				}
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			resp, err := opts.client.Query(ctx, entity.CallFunctionRequest(ref, entity.NormalizeAccountID(args[0]), args[1], fnArgs))
			if err != nil {
				return err
			}
			if raw {
				return opts.print(cmd, resp)
			}

			out, err := newCallOutput(resp)
			if err != nil {
				return err
			}
			return opts.print(cmd, out)
		},
	}

	blockFlag(cmd, &block)
	cmd.Flags().BoolVar(&raw, "raw", false, "print the result as the node returns it, a byte array")
	return cmd
}
