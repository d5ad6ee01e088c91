package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/krapaoshare/krapao-go/internal/api"
	"github.com/krapaoshare/krapao-go/internal/cli"
	"github.com/krapaoshare/krapao-go/internal/model"
	"github.com/krapaoshare/krapao-go/internal/store"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"txns"},
		Short:   "Manage transactions",
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(createTransactionCmd())
	cmd.AddCommand(updateTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var (
		accountID string
		txnType   string
		page      int
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the active user's transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newTransactionStore()
			if err != nil {
				return err
			}

			var transactions []model.Transaction
			if accountID != "" || txnType != "" || page > 0 {
				transactions = s.List(cmd.Context(), api.TransactionFilter{
					AccountID: accountID,
					Type:      model.TransactionType(txnType),
					Page:      page,
					Limit:     limit,
				})
			} else {
				s.Refresh(cmd.Context())
				transactions = s.Transactions()
			}

			if msg := s.Err(); msg != "" {
				fmt.Println(cli.ErrorStyle.Render(msg))
				return nil
			}
			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Account"),
				cli.BoldStyle.Render("Description"))

			for _, t := range transactions {
				amount := fmt.Sprintf("%.2f", t.Amount)
				switch t.Type {
				case model.TransactionIncome:
					amount = cli.SuccessStyle.Render("+" + amount)
				case model.TransactionExpense:
					amount = cli.ErrorStyle.Render("-" + amount)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					t.TransactionDate.Format("2006-01-02"),
					t.Type, amount, t.AccountID, t.Description)
			}
			w.Flush()

			if meta := s.Meta(); meta != nil {
				fmt.Println(cli.SubtleStyle.Render(
					fmt.Sprintf("Page %d of %d (%d total)", meta.Page, meta.TotalPages, meta.Total)))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "filter by account id")
	cmd.Flags().StringVar(&txnType, "type", "", "filter by type (income, expense, transfer)")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")

	return cmd
}

func createTransactionCmd() *cobra.Command {
	var (
		accountID   string
		txnType     string
		amount      float64
		description string
		date        string
		categoryID  string
		billID      string
		goalID      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a new transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newTransactionStore()
			if err != nil {
				return err
			}

			when := time.Now()
			if date != "" {
				when, err = time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", date)
				}
			}

			txn, err := s.Create(cmd.Context(), store.CreateTransactionInput{
				AccountID:       accountID,
				Type:            model.TransactionType(txnType),
				Amount:          amount,
				Description:     description,
				TransactionDate: when,
				CategoryID:      categoryID,
				BillID:          billID,
				GoalID:          goalID,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("Recorded %s of %.2f (%s)", txn.Type, txn.Amount, txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "account id")
	cmd.Flags().StringVar(&txnType, "type", "expense", "type (income, expense, transfer)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&categoryID, "category", "", "category id")
	cmd.Flags().StringVar(&billID, "bill", "", "linked bill id")
	cmd.Flags().StringVar(&goalID, "goal", "", "linked goal id")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func updateTransactionCmd() *cobra.Command {
	var (
		txnType     string
		amount      float64
		description string
		date        string
		categoryID  string
	)

	cmd := &cobra.Command{
		Use:   "update <transaction-id>",
		Short: "Update fields on an existing transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newTransactionStore()
			if err != nil {
				return err
			}

			var patch api.TransactionPatch
			if cmd.Flags().Changed("type") {
				t := model.TransactionType(txnType)
				patch.Type = &t
			}
			if cmd.Flags().Changed("amount") {
				patch.Amount = &amount
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("date") {
				when, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", date)
				}
				patch.TransactionDate = &when
			}
			if cmd.Flags().Changed("category") {
				patch.CategoryID = &categoryID
			}

			txn, err := s.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Updated transaction %s", txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&txnType, "type", "", "type (income, expense, transfer)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&categoryID, "category", "", "category id")

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newTransactionStore()
			if err != nil {
				return err
			}

			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Transaction deleted."))
			return nil
		},
	}
}
