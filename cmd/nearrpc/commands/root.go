package commands

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lidofinance/near-jsonrpc/internal/pkg/near"
)

const (
	keyCaseSnake = "snake"
	keyCaseCamel = "camel"
)

type options struct {
	url      string
	timeout  time.Duration
	keyCase  string
	sorted   bool
	attempts uint
	rps      float64

	client *near.Client
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	v := viper.New()
	v.SetEnvPrefix("NEAR")
	v.AutomaticEnv()
	v.SetDefault("RPC_URL", "https://rpc.mainnet.near.org")

	root := &cobra.Command{
		Use:          "nearrpc",
		Short:        "Query a NEAR node over JSON-RPC",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.url == "" {
				opts.url = v.GetString("RPC_URL")
			}
			if opts.keyCase != keyCaseSnake && opts.keyCase != keyCaseCamel {
				return fmt.Errorf("--key-case must be %s or %s, got %q", keyCaseSnake, keyCaseCamel, opts.keyCase)
			}

			client, err := near.New(opts.url,
				near.WithHTTPClient(&http.Client{Timeout: opts.timeout}),
				near.WithRetry(opts.attempts, near.RetryDelay, near.MaxDelay),
				near.WithRateLimit(opts.rps, 1),
			)
			if err != nil {
				return err
			}
			opts.client = client
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.url, "url", "", "node JSON-RPC url (default $NEAR_RPC_URL or mainnet)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "timeout of a command")
	root.PersistentFlags().StringVar(&opts.keyCase, "key-case", keyCaseSnake, "object keys of the output: snake or camel")
	root.PersistentFlags().BoolVar(&opts.sorted, "sorted", false, "sort object keys of the output")
	root.PersistentFlags().UintVar(&opts.attempts, "attempts", near.MaxAttempts, "attempts per request")
	root.PersistentFlags().Float64Var(&opts.rps, "rps", 0, "requests per second sent to the node, 0 for no limit")

	root.AddCommand(
		statusCmd(opts),
		healthCmd(opts),
		blockCmd(opts),
		chunkCmd(opts),
		txCmd(opts),
		receiptCmd(opts),
		accountCmd(opts),
		accessKeysCmd(opts),
		callCmd(opts),
		validatorsCmd(opts),
		gasPriceCmd(opts),
		protocolConfigCmd(opts),
		genesisCmd(opts),
		networkInfoCmd(opts),
		methodsCmd(),
		watchCmd(opts),
	)
	return root
}

func (o *options) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), o.timeout)
}
