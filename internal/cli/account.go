package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PudgyPigeon/MockBankSystem/internal/model"
	"github.com/PudgyPigeon/MockBankSystem/internal/services/bank"
)

func newCreateCmd() *cobra.Command {
	var user, pass string
	var balance float64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := resolveSecret(pass, "Choose a password: ")
			if err != nil {
				return err
			}

			account, err := app.BankController.CreateAccount(
				cmd.Context(), model.Username(user), secret, balance,
			)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintBalance(BalanceResult{
				Username: string(account.Username),
				Balance:  account.Balance,
				Message:  "Account created",
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (prompted if omitted)")
	cmd.Flags().Float64Var(&balance, "balance", 0, "Starting balance")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// login authenticates with the given flags and returns the session handle.
// Shared by every command that operates on an authenticated account.
func login(cmd *cobra.Command, user, pass string) (*bank.Session, error) {
	if user == "" {
		return nil, fmt.Errorf("--user is required")
	}
	secret, err := resolveSecret(pass, "Password: ")
	if err != nil {
		return nil, err
	}
	session, err := app.BankController.Login(cmd.Context(), model.Username(user), secret)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return session, nil
}

// resolveSecret uses the flag value when given, otherwise prompts without echo
func resolveSecret(pass, prompt string) (string, error) {
	if pass != "" {
		return pass, nil
	}
	return readSecret(prompt)
}
