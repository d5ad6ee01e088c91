package api

import (
	"context"
	"time"

	"github.com/krapaoshare/krapao-go/internal/model"
	"github.com/krapaoshare/krapao-go/internal/normalize"
)

type notificationWire struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Message   string                `json:"message"`
	Type      string                `json:"type"`
	Priority  string                `json:"priority"`
	IsRead    bool                  `json:"isRead"`
	ReadAt    *time.Time            `json:"readAt"`
	ActionURL string                `json:"actionUrl"`
	Data      *notificationDataWire `json:"data"`
	CreatedAt time.Time             `json:"createdAt"`
}

type notificationDataWire struct {
	Category string `json:"category"`
	EntityID string `json:"entityId"`
}

func (w notificationWire) toModel() model.Notification {
	n := model.Notification{
		ID:        w.ID,
		Title:     w.Title,
		Message:   w.Message,
		Type:      model.NotificationType(w.Type),
		Priority:  w.Priority,
		IsRead:    w.IsRead,
		ReadAt:    w.ReadAt,
		ActionURL: w.ActionURL,
		CreatedAt: w.CreatedAt,
	}
	if w.Data != nil {
		n.Data = model.NotificationData{
			Category: model.NotificationCategory(w.Data.Category),
			EntityID: w.Data.EntityID,
		}
	}
	return n
}

// ListNotifications fetches a user's notifications.
func (c *Client) ListNotifications(ctx context.Context, userID string) ([]model.Notification, error) {
	var body listBody[notificationWire]
	if err := c.do(ctx, "GET", "/notifications/user/"+userID, nil, nil, &body); err != nil {
		return nil, err
	}

	result := normalize.List(body.payload())
	notifications := make([]model.Notification, 0, len(result.Items))
	for _, w := range result.Items {
		notifications = append(notifications, w.toModel())
	}
	return notifications, nil
}

// MarkNotificationRead marks one notification as read server-side.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, "PATCH", "/notifications/"+id+"/read", nil, nil, nil)
}

// MarkAllNotificationsRead marks every unread notification of a user as
// read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	return c.do(ctx, "PATCH", "/notifications/user/"+userID+"/read-all", nil, nil, nil)
}

// DeleteNotification permanently removes a notification.
func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/notifications/"+id, nil, nil, nil)
}
