package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PudgyPigeon/MockBankSystem/internal/model"
)

func newBalanceCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the current account balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := login(cmd, user, pass)
			if err != nil {
				return err
			}

			balance, err := session.Balance(cmd.Context())
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintBalance(BalanceResult{
				Username: string(session.Username()),
				Balance:  balance,
			})
			return nil
		},
	}

	addAuthFlags(cmd, &user, &pass)
	return cmd
}

func newDepositCmd() *cobra.Command {
	var user, pass string
	var amount float64

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit into the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := login(cmd, user, pass)
			if err != nil {
				return err
			}

			balance, err := session.Deposit(cmd.Context(), amount)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintBalance(BalanceResult{
				Username: string(session.Username()),
				Balance:  balance,
				Message:  fmt.Sprintf("Deposited %.2f", amount),
			})
			return nil
		},
	}

	addAuthFlags(cmd, &user, &pass)
	addAmountFlag(cmd, &amount)
	return cmd
}

func newWithdrawCmd() *cobra.Command {
	var user, pass string
	var amount float64

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw from the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := login(cmd, user, pass)
			if err != nil {
				return err
			}

			balance, err := session.Withdraw(cmd.Context(), amount)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintBalance(BalanceResult{
				Username: string(session.Username()),
				Balance:  balance,
				Message:  fmt.Sprintf("Withdrew %.2f", amount),
			})
			return nil
		},
	}

	addAuthFlags(cmd, &user, &pass)
	addAmountFlag(cmd, &amount)
	return cmd
}

func newTransferCmd() *cobra.Command {
	var user, pass, to string
	var amount float64

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer to another account",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := login(cmd, user, pass)
			if err != nil {
				return err
			}

			balance, err := session.Transfer(cmd.Context(), model.Username(to), amount)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintBalance(BalanceResult{
				Username: string(session.Username()),
				Balance:  balance,
				Message:  fmt.Sprintf("Transferred %.2f to %s", amount, to),
			})
			return nil
		},
	}

	addAuthFlags(cmd, &user, &pass)
	addAmountFlag(cmd, &amount)
	cmd.Flags().StringVar(&to, "to", "", "Destination username (required)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func addAuthFlags(cmd *cobra.Command, user, pass *string) {
	cmd.Flags().StringVar(user, "user", "", "Username (required)")
	cmd.Flags().StringVar(pass, "pass", "", "Password (prompted if omitted)")
	_ = cmd.MarkFlagRequired("user")
}

func addAmountFlag(cmd *cobra.Command, amount *float64) {
	cmd.Flags().Float64Var(amount, "amount", 0, "Amount (required)")
	_ = cmd.MarkFlagRequired("amount")
}
