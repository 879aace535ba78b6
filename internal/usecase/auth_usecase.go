package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"arcoiris/internal/domain/model"
	repo "arcoiris/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AccessTokenIssuer signs dashboard access tokens.
type AccessTokenIssuer interface {
	Issue(userID int64, role model.Role, now time.Time) (token string, expiresAt time.Time, err error)
}

// AuthUsecase is dashboard-only: storefront customers never authenticate.
type AuthUsecase struct {
	userRepo repo.UserRepository
	issuer   AccessTokenIssuer
}

func NewAuthUsecase(userRepo repo.UserRepository, issuer AccessTokenIssuer) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo, issuer: issuer}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Role        string    `json:"role"`
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err == repo.ErrUserNotFound {
		// Same response as a wrong password.
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !user.IsActive {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	now := time.Now()
	token, expiresAt, err := u.issuer.Issue(user.ID, user.Role, now)
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	user.LastLoginAt = &now
	_ = u.userRepo.Update(ctx, user)

	return LoginOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Role:        string(user.Role),
	}, nil
}
