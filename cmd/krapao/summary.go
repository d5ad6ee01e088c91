package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/krapaoshare/krapao-go/internal/cli"
	"github.com/krapaoshare/krapao-go/internal/stats"
)

func summaryCmd() *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a dashboard summary of balances and flows",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := newAccountStore()
			if err != nil {
				return err
			}
			transactions, err := newTransactionStore()
			if err != nil {
				return err
			}

			// The two collections are independent; fetch them in
			// parallel. Refresh never returns an error, failures
			// surface through each store's Err state.
			var g errgroup.Group
			g.Go(func() error {
				accounts.Refresh(cmd.Context())
				return nil
			})
			g.Go(func() error {
				transactions.Refresh(cmd.Context())
				return nil
			})
			_ = g.Wait()

			if msg := accounts.Err(); msg != "" {
				fmt.Println(cli.ErrorStyle.Render(msg))
				return nil
			}
			if msg := transactions.Err(); msg != "" {
				fmt.Println(cli.ErrorStyle.Render(msg))
				return nil
			}

			summary := stats.Summarize(accounts.Accounts(), transactions.Transactions())

			fmt.Println(cli.TitleStyle.Render("Summary"))
			fmt.Printf("%s  %.2f\n", cli.BoldStyle.Render("Total balance:"), summary.TotalBalance)
			fmt.Printf("%s   %s\n", cli.BoldStyle.Render("Total income:"),
				cli.SuccessStyle.Render(fmt.Sprintf("+%.2f", summary.TotalIncome)))
			fmt.Printf("%s  %s\n", cli.BoldStyle.Render("Total expense:"),
				cli.ErrorStyle.Render(fmt.Sprintf("-%.2f", summary.TotalExpense)))
			fmt.Printf("%s       %.2f\n", cli.BoldStyle.Render("Net flow:"), summary.NetFlow)
			fmt.Println(cli.SubtleStyle.Render(
				fmt.Sprintf("%d accounts, %d transactions", summary.Accounts, summary.Transactions)))

			if recent > 0 {
				fmt.Println()
				fmt.Println(cli.TitleStyle.Render("Recent transactions"))
				for _, t := range stats.RecentTransactions(transactions.Transactions(), recent) {
					fmt.Printf("  %s  %-8s  %8.2f  %s\n",
						t.TransactionDate.Format("2006-01-02"), t.Type, t.Amount, t.Description)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 5, "number of recent transactions to show (0 to hide)")

	return cmd
}
