package user

import (
	"time"

	"servicehub/models"
)

// SeedPassword is the password of every demo account.
const SeedPassword = "password123"

// DefaultUsers returns the demo accounts with hashed passwords. Every provider
// of the demo catalog has an account; the admin's id is past all of them.
func DefaultUsers(now time.Time) ([]models.User, error) {
	hash, err := HashPassword(SeedPassword)
	if err != nil {
		return nil, err
	}
	account := func(id int64, name, email, role, location, bio string) models.User {
		return models.User{
			ID:           id,
			Name:         name,
			Email:        email,
			PasswordHash: hash,
			Role:         role,
			Status:       models.UserActive,
			Location:     location,
			Bio:          bio,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}
	return []models.User{
		account(1, "John Customer", "customer@test.com", models.RoleCustomer, "New York, NY", ""),
		account(2, "Jane Provider", "provider@test.com", models.RoleProvider, "New York, NY", "Full-stack developer and designer"),
		account(3, "Clean Pro", "cleanpro@test.com", models.RoleProvider, "Los Angeles, CA", "Residential and office cleaning"),
		account(4, "Creative Studio", "studio@test.com", models.RoleProvider, "Chicago, IL", "Brand identity and logo design"),
		account(5, "Business Advisors", "advisors@test.com", models.RoleProvider, "Boston, MA", "Strategy consulting for small businesses"),
		account(6, "Tutor Pro", "tutor@test.com", models.RoleProvider, "Austin, TX", "Math and science tutoring"),
		account(7, "App Developers Inc", "apps@test.com", models.RoleProvider, "San Francisco, CA", "iOS and Android development"),
		account(8, "Admin User", "admin@test.com", models.RoleAdmin, "", ""),
	}, nil
}
