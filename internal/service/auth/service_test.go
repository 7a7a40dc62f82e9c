package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/clockwork-hq/timeclock-backend-go/internal/domain/auth"
	"github.com/clockwork-hq/timeclock-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	admins   map[string]auth.Admin
	failWith error
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (auth.Admin, error) {
	if r.failWith != nil {
		return auth.Admin{}, r.failWith
	}
	admin, ok := r.admins[email]
	if !ok {
		return auth.Admin{}, auth.ErrAdminNotFound
	}
	return admin, nil
}

func newTestAuthService(t *testing.T) auth.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeAdminRepo{admins: map[string]auth.Admin{
		"admin@example.com": {
			ID:           "admin-1",
			Email:        "admin@example.com",
			PasswordHash: string(hash),
		},
	}}

	return NewAuthService(repo, jwt.NewJWTService("test-secret", "15m"))
}

func TestLogin_Success(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotZero(t, resp.ExpiresAt)
	assert.Equal(t, "admin@example.com", resp.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newTestAuthService(t)

	cases := []struct {
		name string
		req  auth.LoginRequest
	}{
		{"unknown email", auth.LoginRequest{Email: "nobody@example.com", Password: "correct-horse"}},
		{"wrong password", auth.LoginRequest{Email: "admin@example.com", Password: "wrong"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), c.req)
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		})
	}
}

func TestLogin_RepositoryFailureHidden(t *testing.T) {
	repo := &fakeAdminRepo{failWith: errors.New("connection refused")}
	svc := NewAuthService(repo, jwt.NewJWTService("test-secret", "15m"))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_ValidationRejected(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: ""})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}
