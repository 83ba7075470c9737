package models

import "time"

// Notification is an in-app message for a user.
type Notification struct {
	ID        int64     `bson:"id" json:"id"`
	UserID    int64     `bson:"userId" json:"userId"`
	Title     string    `bson:"title" json:"title"`
	Message   string    `bson:"message" json:"message"`
	Link      string    `bson:"link,omitempty" json:"link,omitempty"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// PushPayload is the queued body of a push delivery.
type PushPayload struct {
	UserID         int64  `json:"userId"`
	NotificationID int64  `json:"notificationId"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	Link           string `json:"link,omitempty"`
}
