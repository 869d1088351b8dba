package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	rootCmd := newRootCmd()
	rootCmd.AddCommand(newDemoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &orderFlags{}

	cmd := &cobra.Command{
		Use:   "futures-bot",
		Short: "Place and inspect orders on the binance futures testnet",
		Example: `  # market buy
  futures-bot --symbol BTCUSDT --side BUY --type MARKET --quantity 0.001

  # limit sell
  futures-bot --symbol ETHUSDT --side SELL --type LIMIT --quantity 0.01 --price 2500.50

  # account info
  futures-bot --account-info`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	cmd.SetFlagErrorFunc(usageError)

	cmd.Flags().StringVar(&f.symbol, "symbol", "", "trading symbol, e.g. BTCUSDT")
	cmd.Flags().StringVar(&f.side, "side", "", "order side, BUY or SELL")
	cmd.Flags().StringVar(&f.orderType, "type", "", "order type, MARKET or LIMIT")
	cmd.Flags().StringVar(&f.quantity, "quantity", "", "order quantity")
	cmd.Flags().StringVar(&f.price, "price", "", "order price, required for LIMIT orders")
	cmd.Flags().BoolVar(&f.accountInfo, "account-info", false, "show account information")
	cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, "place the order without asking for confirmation")

	return cmd
}

// usageError reports a bad command line with the usage text. Cobra errors are silenced, so
// anything failing before RunE has to be printed here.
func usageError(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())

	return err
}

func noArgs(cmd *cobra.Command, args []string) error {
	return usageError(cmd, cobra.NoArgs(cmd, args))
}
