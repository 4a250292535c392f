package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newWalletCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage the simulated wallet session",
	}

	cmd.AddCommand(
		newWalletConnectCmd(app),
		newWalletStatusCmd(app),
	)

	return cmd
}

func newWalletConnectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Connect the simulated wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := connectWallet(cmd, app); err != nil {
				return err
			}

			session := app.service.Session()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "connected %s (balance %s USDC)\n", session.Address, session.BalanceUSDC.StringFixed(0))
			return err
		},
	}
}

func newWalletStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current wallet session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := app.service.Session()
			if !session.Connected() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "wallet: disconnected")
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wallet: %s (balance %s USDC)\n", session.Address, session.BalanceUSDC.StringFixed(0))
			return err
		},
	}
}

// connectWallet runs the connect flow behind a spinner, since the simulated
// provider resolves after a delay.
func connectWallet(cmd *cobra.Command, app *app) error {
	connect := func(ctx context.Context) error {
		_, err := app.service.ConnectWallet(ctx)
		return err
	}

	if err := runTaskSpinner(cmd.Context(), cmd.ErrOrStderr(), "Requesting wallet connection...", connect); err != nil {
		return fmt.Errorf("connect wallet: %w", err)
	}

	return nil
}
