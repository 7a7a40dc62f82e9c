package auth

import (
	"context"
	"log/slog"

	"github.com/clockwork-hq/timeclock-backend-go/internal/domain/auth"
	"github.com/clockwork-hq/timeclock-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	adminRepo  auth.AdminRepository
	jwtService jwt.Service
}

func NewAuthService(adminRepo auth.AdminRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService. Unknown email and wrong password
// produce the same error.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err != auth.ErrAdminNotFound {
			slog.Error("admin lookup failed", "error", err)
		}
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(admin.ID, admin.Email)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Email:       admin.Email,
	}, nil
}
