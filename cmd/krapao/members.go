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

func membersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage shared account members",
	}

	cmd.AddCommand(listMembersCmd())
	cmd.AddCommand(addMemberCmd())
	cmd.AddCommand(updateMemberCmd())
	cmd.AddCommand(removeMemberCmd())

	return cmd
}

func permissionTags(raw []string) []model.Permission {
	tags := make([]model.Permission, 0, len(raw))
	for _, r := range raw {
		tags = append(tags, model.Permission(r))
	}
	return tags
}

func listMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <account-id>",
		Short: "List members of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newAccountStore()
			if err != nil {
				return err
			}

			if err := s.LoadMembers(cmd.Context(), args[0]); err != nil {
				return err
			}

			members := s.MembersOf(args[0])
			if len(members) == 0 {
				fmt.Println(cli.InfoStyle.Render("No members on this account."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("User"),
				cli.BoldStyle.Render("Role"),
				cli.BoldStyle.Render("Permissions"))

			for _, m := range members {
				perms := make([]string, 0, len(m.Permissions))
				for _, p := range m.Permissions {
					perms = append(perms, string(p))
				}
				rendered := strings.Join(perms, ", ")
				if rendered == "" {
					rendered = cli.SubtleStyle.Render("(view only)")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.UserID, m.Role, rendered)
			}

			return nil
		},
	}
}

func addMemberCmd() *cobra.Command {
	var (
		role        string
		permissions []string
	)

	cmd := &cobra.Command{
		Use:   "add <account-id> <user-id>",
		Short: "Add a member to a shared account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newAccountStore()
			if err != nil {
				return err
			}

			member, err := s.AddMember(cmd.Context(), store.AddMemberInput{
				AccountID:   args[0],
				UserID:      args[1],
				Role:        model.Role(role),
				Permissions: permissionTags(permissions),
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Added member %s as %s", member.UserID, member.Role)))
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "member", "role (owner, admin, member)")
	cmd.Flags().StringSliceVar(&permissions, "permissions", nil, "capability tags (deposit, withdraw)")

	return cmd
}

func updateMemberCmd() *cobra.Command {
	var (
		role        string
		permissions []string
	)

	cmd := &cobra.Command{
		Use:   "update <member-id>",
		Short: "Update a member's role or permissions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newAccountStore()
			if err != nil {
				return err
			}

			var patch api.MemberPatch
			if cmd.Flags().Changed("role") {
				r := model.Role(role)
				patch.Role = &r
			}
			if cmd.Flags().Changed("permissions") {
				patch.Permissions = permissionTags(permissions)
			}

			member, err := s.UpdateMember(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Updated member %s", member.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "role (owner, admin, member)")
	cmd.Flags().StringSliceVar(&permissions, "permissions", nil, "capability tags (deposit, withdraw)")

	return cmd
}

func removeMemberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <member-id>",
		Short: "Remove a member from its account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newAccountStore()
			if err != nil {
				return err
			}

			if err := s.RemoveMember(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Member removed."))
			return nil
		},
	}
}
