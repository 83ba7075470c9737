package user

import (
	"context"
	"testing"
	"time"

	catalogRepo "servicehub/database/repository/catalog"
	"servicehub/database/repository/sequence"
	userRepo "servicehub/database/repository/user"
	"servicehub/models"
	"servicehub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *DefaultUserService {
	t.Helper()
	repo := userRepo.NewMemoryUserRepo(sequence.NewCounter(0))
	users, err := DefaultUsers(time.Now())
	require.NoError(t, err)
	repo.Seed(users...)
	return NewUserService(repo, time.Hour)
}

func TestLogin_SeedAccounts(t *testing.T) {
	s := newService(t)

	res, err := s.Login(context.Background(), "Provider@Test.com", SeedPassword)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.User.ID)
	assert.Equal(t, models.RoleProvider, res.User.Role)

	claims, err := utils.ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(2), claims.UserID)
	assert.Equal(t, models.RoleProvider, claims.Role)
}

func TestDefaultUsers_OwnEveryListing(t *testing.T) {
	users, err := DefaultUsers(time.Now())
	require.NoError(t, err)
	byID := make(map[int64]string, len(users))
	for _, u := range users {
		byID[u.ID] = u.Role
	}

	services := catalogRepo.DefaultServices(time.Now())
	for _, svc := range services {
		assert.Equal(t, models.RoleProvider, byID[svc.ProviderID], "provider of service %d", svc.ID)
	}
	for _, u := range users {
		if u.Role == models.RoleAdmin {
			assert.Greater(t, u.ID, catalogRepo.MaxServiceID(services))
			for _, svc := range services {
				assert.NotEqual(t, u.ID, svc.ProviderID)
			}
		}
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	s := newService(t)

	_, err := s.Login(context.Background(), "customer@test.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login(context.Background(), "nobody@test.com", SeedPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_SuspendedAccount(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.Repo.Mutate(ctx, 1, func(u *models.User) error {
		u.Status = models.UserSuspended
		return nil
	})
	require.NoError(t, err)

	_, err = s.Login(ctx, "customer@test.com", SeedPassword)
	assert.ErrorIs(t, err, ErrAccountSuspended)
	_, err = s.Login(ctx, "customer@test.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	res, err := s.Register(ctx, models.Registration{Name: " Sam ", Email: "Sam@Example.com", Password: "secret1", Role: "Provider"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), res.User.ID)
	assert.Equal(t, "Sam", res.User.Name)
	assert.Equal(t, "sam@example.com", res.User.Email)
	assert.Equal(t, models.RoleProvider, res.User.Role)
	assert.NotEmpty(t, res.Token)

	_, err = s.Register(ctx, models.Registration{Name: "Dup", Email: "sam@example.com", Password: "secret1", Role: "customer"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	login, err := s.Login(ctx, "sam@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)
}

func TestRegister_Validation(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		reg  models.Registration
	}{
		{"missing name", models.Registration{Email: "a@b.com", Password: "secret1", Role: "customer"}},
		{"bad email", models.Registration{Name: "A", Email: "nope", Password: "secret1", Role: "customer"}},
		{"admin role", models.Registration{Name: "A", Email: "a@b.com", Password: "secret1", Role: "admin"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Register(ctx, tc.reg)
			var verr ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}

	_, err := s.Register(ctx, models.Registration{Name: "A", Email: "a@b.com", Password: "12345", Role: "customer"})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestUpdateProfile(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	bio := "Plumber"
	updated, err := s.UpdateProfile(ctx, 1, models.ProfilePatch{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Plumber", updated.Bio)
	assert.Equal(t, "John Customer", updated.Name)

	blank := "  "
	_, err = s.UpdateProfile(ctx, 1, models.ProfilePatch{Name: &blank})
	var verr ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = s.UpdateProfile(ctx, 42, models.ProfilePatch{Bio: &bio})
	assert.ErrorIs(t, err, ErrNotFound)
}
