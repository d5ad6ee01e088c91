package model

import "time"

// NotificationType is the severity class of a notification.
type NotificationType string

// Notification types.
const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
	NotificationSuccess NotificationType = "success"
)

// NotificationCategory groups notifications by the domain object they
// concern. When the server omits an explicit category it is inferred
// from the title text; see the notify package.
type NotificationCategory string

// Notification categories.
const (
	CategoryTransaction NotificationCategory = "transaction"
	CategoryBill        NotificationCategory = "bill"
	CategoryGoal        NotificationCategory = "goal"
	CategorySystem      NotificationCategory = "system"
)

// NotificationData is the optional structured payload attached to a
// notification. Category is empty when the server did not classify the
// notification explicitly.
type NotificationData struct {
	Category NotificationCategory
	EntityID string
}

// Notification is a server-created message delivered to the client.
// Read state is mutated locally and reported back to the server.
type Notification struct {
	ID        string
	Title     string
	Message   string
	Type      NotificationType
	Priority  string
	IsRead    bool
	ReadAt    *time.Time
	ActionURL string
	Data      NotificationData
	CreatedAt time.Time
}
