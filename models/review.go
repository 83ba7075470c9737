package models

import "time"

// Review is a customer rating left on a service.
type Review struct {
	ID      int64     `bson:"id" json:"id"`
	UserID  int64     `bson:"userId,omitempty" json:"userId,omitempty"`
	Name    string    `bson:"name" json:"name"`
	Rating  int       `bson:"rating" json:"rating"` // 1 to 5
	Comment string    `bson:"comment" json:"comment"`
	Date    time.Time `bson:"date" json:"date"`
	Avatar  *string   `bson:"avatar,omitempty" json:"avatar"`
}

// ReviewInput is what a customer submits.
type ReviewInput struct {
	UserID  int64
	Name    string
	Rating  int
	Comment string
	Avatar  *string
}

// UserReview is a review tagged with the service it belongs to.
type UserReview struct {
	Review
	ServiceID    int64  `json:"serviceId"`
	ServiceTitle string `json:"serviceTitle"`
}
