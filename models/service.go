package models

import "time"

// Provider is the denormalized identity of the provider offering a service.
type Provider struct {
	ID       int64   `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Avatar   *string `bson:"avatar,omitempty" json:"avatar"`
	Location string  `bson:"location,omitempty" json:"location,omitempty"`
}

// Moderation states of a listing. Rejected listings are hidden from search.
const (
	ServicePending  = "pending"
	ServiceApproved = "approved"
	ServiceRejected = "rejected"
)

// Service is a catalog listing.
type Service struct {
	ID           int64     `bson:"id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	Category     string    `bson:"category" json:"category"`
	Location     string    `bson:"location" json:"location"`
	Price        float64   `bson:"price" json:"price"`
	DeliveryTime string    `bson:"deliveryTime" json:"deliveryTime"`
	Rating       float64   `bson:"rating" json:"rating"`   // running mean, two decimals
	Reviews      int       `bson:"reviews" json:"reviews"` // review count
	RatingSum    float64   `bson:"ratingSum" json:"-"`     // exact sum behind Rating
	Views        int       `bson:"views" json:"views"`
	Provider     Provider  `bson:"provider" json:"provider"`
	ProviderID   int64     `bson:"providerId" json:"providerId"`
	Features     []string  `bson:"features" json:"features"`
	ReviewsList  []Review  `bson:"reviewsList" json:"reviewsList"` // newest first
	Image        string    `bson:"image" json:"image"`
	Status       string    `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
	Version      int64     `bson:"version" json:"-"`
}

// Clone returns a copy that shares no slices with s.
func (s Service) Clone() Service {
	out := s
	if s.Features != nil {
		out.Features = append([]string(nil), s.Features...)
	}
	out.ReviewsList = make([]Review, len(s.ReviewsList))
	copy(out.ReviewsList, s.ReviewsList)
	if s.Provider.Avatar != nil {
		avatar := *s.Provider.Avatar
		out.Provider.Avatar = &avatar
	}
	return out
}

// ServicePatch carries the fields of a partial update. Nil fields are left untouched.
type ServicePatch struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category"`
	Location     *string   `json:"location"`
	Price        *float64  `json:"price"`
	DeliveryTime *string   `json:"deliveryTime"`
	Features     *[]string `json:"features"`
	Image        *string   `json:"image"`
}

// Empty reports whether the patch sets no field.
func (p ServicePatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil && p.Location == nil &&
		p.Price == nil && p.DeliveryTime == nil && p.Features == nil && p.Image == nil
}

// Apply merges the provided fields into s.
func (p ServicePatch) Apply(s *Service) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.DeliveryTime != nil {
		s.DeliveryTime = *p.DeliveryTime
	}
	if p.Features != nil {
		s.Features = append([]string(nil), (*p.Features)...)
	}
	if p.Image != nil {
		s.Image = *p.Image
	}
}
