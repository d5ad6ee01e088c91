package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/krapaoshare/krapao-go/internal/api"
	"github.com/krapaoshare/krapao-go/internal/cli"
	"github.com/krapaoshare/krapao-go/internal/model"
	"github.com/krapaoshare/krapao-go/internal/store"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage accounts",
		Long:  `List, create, update, and delete accounts, and adjust balances.`,
	}

	cmd.AddCommand(listAccountsCmd())
	cmd.AddCommand(createAccountCmd())
	cmd.AddCommand(updateAccountCmd())
	cmd.AddCommand(deleteAccountCmd())
	cmd.AddCommand(balanceCmd())
	cmd.AddCommand(shareAccountCmd())

	return cmd
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newAccountStore()
			if err != nil {
				return err
			}

			s.Refresh(cmd.Context())
			if msg := s.Err(); msg != "" {
				fmt.Println(cli.ErrorStyle.Render(msg))
				return nil
			}

			accounts := s.Accounts()
			if len(accounts) == 0 {
				fmt.Println(cli.InfoStyle.Render("No accounts found. Use 'krapao accounts create' to add one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Balance"),
				cli.BoldStyle.Render("Active"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 20),
				strings.Repeat("-", 10),
				strings.Repeat("-", 12),
				strings.Repeat("-", 6))

			for _, a := range accounts {
				active := "yes"
				if !a.IsActive {
					active = cli.SubtleStyle.Render("no")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\n", a.ID, a.Name, a.AccountType, a.CurrentBalance, active)
			}

			return nil
		},
	}
}

func createAccountCmd() *cobra.Command {
	var (
		accountType string
		color       string
		startAmount float64
		private     bool
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newAccountStore()
			if err != nil {
				return err
			}

			input := store.CreateAccountInput{
				Name:        args[0],
				AccountType: model.AccountType(accountType),
				Color:       color,
				StartAmount: startAmount,
			}
			if cmd.Flags().Changed("private") {
				input.IsPrivate = &private
			}

			account, err := s.Create(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Created account %q (%s)", account.Name, account.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&accountType, "type", "", "account type (personal, shared, business)")
	cmd.Flags().StringVar(&color, "color", "", "display color")
	cmd.Flags().Float64Var(&startAmount, "start-amount", 0, "starting balance")
	cmd.Flags().BoolVar(&private, "private", false, "hide the account from shared views")

	return cmd
}

func updateAccountCmd() *cobra.Command {
	var (
		name        string
		accountType string
		color       string
		active      bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newAccountStore()
			if err != nil {
				return err
			}

			var patch api.AccountPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("type") {
				t := model.AccountType(accountType)
				patch.AccountType = &t
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}
			if cmd.Flags().Changed("active") {
				patch.IsActive = &active
			}

			account, err := s.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Updated account %q", account.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&accountType, "type", "", "account type")
	cmd.Flags().StringVar(&color, "color", "", "display color")
	cmd.Flags().BoolVar(&active, "active", true, "active state")

	return cmd
}

func deleteAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newAccountStore()
			if err != nil {
				return err
			}

			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Account deleted."))
			return nil
		},
	}
}

func shareAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share <id>",
		Short: "Show an account's share code",
		Long:  `Print the code another user needs to join a shared account.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newAccountStore()
			if err != nil {
				return err
			}

			account := s.GetByID(cmd.Context(), args[0])
			if account == nil {
				fmt.Println(cli.ErrorStyle.Render("Account not found."))
				return nil
			}

			if !account.IsShared() {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("%q is not a shared account.", account.Name)))
				return nil
			}
			if account.ShareCode == "" {
				fmt.Println(cli.InfoStyle.Render("This account has no share code yet."))
				return nil
			}

			fmt.Printf("%s %s\n", cli.BoldStyle.Render("Share code:"), account.ShareCode)
			return nil
		},
	}
}

func balanceCmd() *cobra.Command {
	var (
		amount    float64
		operation string
		note      string
	)

	cmd := &cobra.Command{
		Use:   "balance <id>",
		Short: "Adjust an account balance",
		Long:  `Apply an add, subtract, or set operation to an account balance. The arithmetic happens server-side.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newAccountStore()
			if err != nil {
				return err
			}

			account, err := s.UpdateBalance(cmd.Context(), args[0], api.BalanceUpdate{
				Amount:    amount,
				Operation: api.BalanceOperation(operation),
				Note:      note,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("Balance of %q is now %.2f", account.Name, account.CurrentBalance)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "amount to apply")
	cmd.Flags().StringVar(&operation, "op", "add", "operation (add, subtract, set)")
	cmd.Flags().StringVar(&note, "note", "", "optional note")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
