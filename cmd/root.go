package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bb",
		Short:         "Bounty Board CLI (bb): a simulated crypto-bounty marketplace",
		Long:          "bb (Bounty Board CLI) demonstrates a GitHub-issue bounty marketplace from the terminal: fund issues with USDC, claim and release bounties, and let the analysis helper suggest titles and prices. All wallet, escrow and chain behavior is simulated in memory.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newWalletCmd(app),
		newBountyCmd(app),
		newAnalyzeCmd(app),
		newBrowseCmd(app),
		newDocsCmd(),
	)

	return rootCmd
}
