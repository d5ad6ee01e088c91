package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/krapaoshare/krapao-go/internal/api"
	"github.com/krapaoshare/krapao-go/internal/cli"
	"github.com/krapaoshare/krapao-go/internal/model"
	"github.com/krapaoshare/krapao-go/internal/store"
)

func typesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "Manage transaction classification types",
	}

	cmd.AddCommand(listTypesCmd())
	cmd.AddCommand(createTypeCmd())
	cmd.AddCommand(updateTypeCmd())
	cmd.AddCommand(deleteTypeCmd())

	return cmd
}

func listTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List system and user types",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newTypeStore()
			if err != nil {
				return err
			}

			s.Refresh(cmd.Context())
			if msg := s.Err(); msg != "" {
				fmt.Println(cli.ErrorStyle.Render(msg))
				return nil
			}

			types := s.Types()
			if len(types) == 0 {
				fmt.Println(cli.InfoStyle.Render("No types found."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Kind"),
				cli.BoldStyle.Render("Color"),
				cli.BoldStyle.Render("Owner"))

			for _, t := range types {
				owner := t.UserID
				if owner == "" {
					owner = cli.SubtleStyle.Render("system")
				}
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n", t.ID, t.Icon, t.Name, t.Kind, t.Color, owner)
			}

			return nil
		},
	}
}

func createTypeCmd() *cobra.Command {
	var (
		color string
		icon  string
		kind  string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a custom type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newTypeStore()
			if err != nil {
				return err
			}

			t, err := s.Create(cmd.Context(), store.CreateTypeInput{
				Name:  args[0],
				Color: color,
				Icon:  icon,
				Kind:  model.TypeKind(kind),
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Created type %s (%s)", t.Name, t.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "hex color")
	cmd.Flags().StringVar(&icon, "icon", "", "icon name or emoji")
	cmd.Flags().StringVar(&kind, "kind", "", "kind (income, expense, custom)")

	return cmd
}

func updateTypeCmd() *cobra.Command {
	var (
		name  string
		color string
		icon  string
		kind  string
	)

	cmd := &cobra.Command{
		Use:   "update <type-id>",
		Short: "Update fields on an existing type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newTypeStore()
			if err != nil {
				return err
			}

			var patch api.TypePatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}
			if cmd.Flags().Changed("icon") {
				patch.Icon = &icon
			}
			if cmd.Flags().Changed("kind") {
				k := model.TypeKind(kind)
				patch.Kind = &k
			}

			t, err := s.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Updated type %s", t.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&color, "color", "", "hex color")
	cmd.Flags().StringVar(&icon, "icon", "", "icon name or emoji")
	cmd.Flags().StringVar(&kind, "kind", "", "kind (income, expense, custom)")

	return cmd
}

func deleteTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <type-id>",
		Short: "Delete a custom type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newTypeStore()
			if err != nil {
				return err
			}

			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Type deleted."))
			return nil
		},
	}
}
