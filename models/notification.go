package models

import "time"

// Notification priorities.
const (
	NotificationPriorityLow    = "low"
	NotificationPriorityMedium = "medium"
	NotificationPriorityHigh   = "high"
)

// Notification is an in-app notification row, persisted best-effort and
// polled later by the recipient's client.
type Notification struct {
	ID          string    `bson:"id" json:"id"`
	RecipientID string    `bson:"recipient_id" json:"recipientId"`
	Title       string    `bson:"title" json:"title"`
	Message     string    `bson:"message" json:"message"`
	Type        string    `bson:"type" json:"type"` // e.g. "booking", "payment"
	RelatedID   string    `bson:"related_id,omitempty" json:"relatedId,omitempty"`
	RelatedType string    `bson:"related_type,omitempty" json:"relatedType,omitempty"`
	ActionPath  string    `bson:"action_path,omitempty" json:"actionPath,omitempty"` // client deep link
	Priority    string    `bson:"priority" json:"priority"`
	Read        bool      `bson:"read" json:"read"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
