package models

import "time"

// Roles a user can hold.
const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// Account states. An empty status reads as active.
const (
	UserActive    = "active"
	UserSuspended = "suspended"
)

// User is an account in the user directory.
type User struct {
	ID           int64     `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	Status       string    `bson:"status,omitempty" json:"status,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Location     string    `bson:"location,omitempty" json:"location,omitempty"`
	Avatar       *string   `bson:"avatar,omitempty" json:"avatar"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Suspended reports whether an admin has locked the account.
func (u User) Suspended() bool {
	return u.Status == UserSuspended
}

// AsProvider returns the identity stamped onto a provider's listings.
func (u User) AsProvider() Provider {
	return Provider{ID: u.ID, Name: u.Name, Avatar: u.Avatar, Location: u.Location}
}

// ProfilePatch is a partial profile update.
type ProfilePatch struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
	FCMToken *string `json:"fcmToken"`
}

// Apply merges the provided fields into u.
func (p ProfilePatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.FCMToken != nil {
		u.FCMToken = *p.FCMToken
	}
}

// Registration is the sign-up payload.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AuthResponse is returned on login and registration.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
