package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"account-manager-api/internal/application/ports"
	"account-manager-api/internal/domain/account"
	"account-manager-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(
	jwtService *jwt.Service,
) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
	}
}

// GenerateToken is the whole credential check: the store only looks rows
// up by identification, the password is verified here against the stored
// hash before any token is signed.
func (as *AuthService) GenerateToken(a *account.Account, requestPassword string) (string, error) {
	err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(requestPassword))
	if err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(a.ID.String(), a.Type, time.Hour)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
