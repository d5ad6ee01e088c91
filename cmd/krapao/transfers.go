package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/krapaoshare/krapao-go/internal/cli"
	"github.com/krapaoshare/krapao-go/internal/store"
)

func transfersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfers",
		Short: "View and record transfers between accounts",
	}

	cmd.AddCommand(listTransfersCmd())
	cmd.AddCommand(createTransferCmd())

	return cmd
}

func listTransfersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the active user's transfers",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newAccountStore()
			if err != nil {
				return err
			}

			transfers := s.Transfers(cmd.Context())
			if msg := s.Err(); msg != "" {
				fmt.Println(cli.ErrorStyle.Render(msg))
				return nil
			}
			if len(transfers) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transfers yet."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("From"),
				cli.BoldStyle.Render("To"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Note"))

			for _, t := range transfers {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\n",
					t.CreatedAt.Format("2006-01-02"),
					t.FromAccountID, t.ToAccountID, t.Amount, t.Note)
			}

			return nil
		},
	}
}

func createTransferCmd() *cobra.Command {
	var (
		amount float64
		note   string
	)

	cmd := &cobra.Command{
		Use:   "create <from-account-id> <to-account-id>",
		Short: "Move money between two accounts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newAccountStore()
			if err != nil {
				return err
			}

			transfer, err := s.CreateTransfer(cmd.Context(), store.CreateTransferInput{
				FromAccountID: args[0],
				ToAccountID:   args[1],
				Amount:        amount,
				Note:          note,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("Transferred %.2f from %s to %s", transfer.Amount, transfer.FromAccountID, transfer.ToAccountID)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "amount to transfer")
	cmd.Flags().StringVar(&note, "note", "", "optional note")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
