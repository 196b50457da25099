package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
	"github.com/lidofinance/near-jsonrpc/internal/utils/pointers"
)

func statusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the node status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			status, err := opts.client.Status(ctx)
			if err != nil {
				return err
			}
			return opts.print(cmd, status)
		},
	}
}

func healthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the node is healthy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			if err := opts.client.Health(ctx); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return err
		},
	}
}

func networkInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "network-info",
		Short: "Print the peers of the node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			info, err := opts.client.NetworkInfo(ctx)
			if err != nil {
				return err
			}
			return opts.print(cmd, info)
		},
	}
}

func genesisCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "genesis",
		Short: "Print the genesis config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			genesis, err := opts.client.GenesisConfig(ctx)
			if err != nil {
				return err
			}
			return opts.print(cmd, genesis)
		},
	}
}

func protocolConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "protocol-config [block]",
		Short: "Print the protocol config at a block",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value string
			if len(args) == 1 {
				value = args[0]
			}
			ref, err := parseBlockReference(value)
			if err != nil {
				return err
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			config, err := opts.client.ExperimentalProtocolConfig(ctx, entity.RpcProtocolConfigRequest{BlockReference: ref})
			if err != nil {
				return err
			}
			return opts.print(cmd, config)
		},
	}
}

func gasPriceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gas-price [height|hash]",
		Short: "Print the gas price at a block, the latest one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value string
			if len(args) == 1 {
				value = args[0]
			}
			blockID, err := parseOptionalBlockId(value)
			if err != nil {
				return err
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			price, err := opts.client.GasPrice(ctx, entity.RpcGasPriceRequest{BlockID: blockID})
			if err != nil {
				return err
			}
			return opts.print(cmd, price)
		},
	}
}

func validatorsCmd(opts *options) *cobra.Command {
	var (
		epoch string
		total bool
	)

	cmd := &cobra.Command{
		Use:   "validators [height|hash]",
		Short: "Print the validators of the latest epoch, or of the epoch of a block",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := entity.EpochReference{Latest: true}
			switch {
			case epoch != "" && len(args) == 1:
				return fmt.Errorf("--epoch and a block are mutually exclusive")
			case epoch != "":
				ref = entity.EpochReference{EpochID: pointers.To(entity.EpochId(epoch))}
			case len(args) == 1:
				blockID, err := parseBlockId(args[0])
				if err != nil {
					return err
				}
				ref = entity.EpochReference{BlockID: blockID}
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			validators, err := opts.client.Validators(ctx, entity.RpcValidatorRequest{EpochReference: ref})
			if err != nil {
				return err
			}
			if !total {
				return opts.print(cmd, validators)
			}

			stake, err := validators.TotalStake()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), stake)
			return err
		},
	}

	cmd.Flags().StringVar(&epoch, "epoch", "", "epoch id")
	cmd.Flags().BoolVar(&total, "total", false, "print only the total stake of the current validators")
	return cmd
}
