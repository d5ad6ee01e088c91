package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krapaoshare/krapao-go/internal/cli"
	"github.com/krapaoshare/krapao-go/internal/common"
	"github.com/krapaoshare/krapao-go/internal/notify"
	"github.com/krapaoshare/krapao-go/internal/tui"
)

func notificationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notify"},
		Short:   "Browse notifications in an interactive panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			userID := currentSession().CurrentUserID()
			if userID == "" {
				return common.NewUserError(
					"Please sign in to view notifications. Set session.user_id or --user.",
					common.ErrNoActiveUser,
				)
			}

			ctx := cmd.Context()
			notifications, err := client.ListNotifications(ctx, userID)
			if err != nil {
				return common.NewUserError("Unable to load your notifications. Please try again.", err)
			}

			// Panel state changes are committed to the server through
			// hooks; the panel fires each at most once per transition.
			panel := notify.NewPanel(notifications, notify.Hooks{
				MarkRead: func(id string) {
					if err := client.MarkNotificationRead(ctx, id); err != nil {
						common.LogError(err, "failed to mark notification read", common.Fields{"notification_id": id})
					}
				},
				MarkAllRead: func() {
					if err := client.MarkAllNotificationsRead(ctx, userID); err != nil {
						common.LogError(err, "failed to mark all notifications read", common.Fields{"user_id": userID})
					}
				},
				Delete: func(id string) {
					if err := client.DeleteNotification(ctx, id); err != nil {
						common.LogError(err, "failed to delete notification", common.Fields{"notification_id": id})
					}
				},
			})

			if len(notifications) == 0 {
				fmt.Println(cli.InfoStyle.Render("No notifications."))
				return nil
			}

			return tui.Run(panel)
		},
	}
}
