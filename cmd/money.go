package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTransferCmd(app *app) *cobra.Command {
	var (
		fromAccount string
		toAccount   string
		amount      string
		description string
	)

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer money to another account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paise, err := parseAmount(amount)
			if err != nil {
				return err
			}

			if err := app.service.Transfer(cmd.Context(), fromAccount, toAccount, paise, description); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Transferred INR %s to %s\n", amount, toAccount)
			return err
		},
	}

	cmd.Flags().StringVar(&fromAccount, "from", "", "Source account number")
	cmd.Flags().StringVar(&toAccount, "to", "", "Destination account number")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount in rupees, e.g. 1500.50")
	cmd.Flags().StringVar(&description, "description", "", "Transfer description")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newDepositCmd(app *app) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Deposit money into the caller's account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paise, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			if err := app.service.Deposit(cmd.Context(), paise, description); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deposited INR %s\n", args[0])
			return err
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Deposit description")

	return cmd
}

func newWithdrawCmd(app *app) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "withdraw <amount>",
		Short: "Withdraw money from the caller's account (rest mode only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paise, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			if err := app.service.Withdraw(cmd.Context(), paise, description); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Withdrew INR %s\n", args[0])
			return err
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Withdrawal description")

	return cmd
}
