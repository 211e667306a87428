package services

import (
	"errors"
	"strings"
	"time"

	"vipshop-backend/entity"
	"vipshop-backend/repository"
	"vipshop-backend/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService signs admins in. Every mutating back-office route is gated
// by the token issued here; there is no client-side shared secret.
type AuthService struct {
	adminRepo *repository.AdminRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.AdminRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		adminRepo: repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Login checks the bcrypt hash and issues a JWT with the admin role.
func (s *AuthService) Login(username, password string) (string, *entity.Admin, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	admin, err := s.adminRepo.FindByUsername(username)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(admin.ID, "admin", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, admin, nil
}
