package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "an",
		Short:         "ArthaNidhi portal CLI: accounts, statements, transfers, and market views",
		Long:          "an is the ArthaNidhi online-banking portal for the terminal. It talks to either the demo canister backend or a REST API, selected via ARTHA_BACKEND_MODE, and covers profile, balance, statements, transfers, deposits, market data, and settings.",
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
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProfileCmd(app),
		newBalanceCmd(app),
		newStatementCmd(app),
		newSearchCmd(app),
		newTransferCmd(app),
		newDepositCmd(app),
		newWithdrawCmd(app),
		newHealthCmd(app),
		newMarketCmd(app),
		newSettingsCmd(app),
	)

	return rootCmd
}
