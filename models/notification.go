package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType enum
type NotificationType string

const (
	NotificationStatusUpdate      NotificationType = "status_update"
	NotificationResolutionRequest NotificationType = "resolution_request"
)

// NotificationStatus enum
type NotificationStatus string

const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

// Notification is an audit record of one outbound dispatch attempt.
// Dispatch is best-effort: a failed record never affects the status
// transition that triggered it.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IssueID   primitive.ObjectID `bson:"issueId" json:"issueId"`
	UserID    string             `bson:"userId" json:"userId"`
	Type      NotificationType   `bson:"type" json:"type"`
	Message   string             `bson:"message" json:"message"`
	Status    NotificationStatus `bson:"status" json:"status"`
	SentAt    *time.Time         `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
