package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"fortumars-mart/config"
	"fortumars-mart/models"
	"fortumars-mart/repositories"
	"fortumars-mart/utils"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// RoleForEmail derives the role from the email at credential-entry time:
// administrator iff the email contains "admin" anywhere, case-insensitive.
// Fragile on purpose ("badmin@x.com" qualifies); not meant as real
// authorization.
func RoleForEmail(email string) string {
	if strings.Contains(strings.ToLower(email), "admin") {
		return models.RoleAdmin
	}
	return models.RoleUser
}

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Register creates a credentialed account. The role is fixed here, from the
// email, and never re-derived afterwards.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if config.DB != nil {
		if _, _, err := s.users.FindByEmail(ctx, email); err == nil {
			return nil, "", errors.New("email already registered")
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Name:     req.Name,
		Role:     RoleForEmail(email),
		JoinDate: time.Now().Format("January 2006"),
	}

	if config.DB != nil {
		if err := s.users.Create(ctx, &user, hash); err != nil {
			return nil, "", err
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login resolves an identity for the given credentials. An account with a
// stored password must verify; an unknown email becomes a fresh identity on
// the spot (the remote record is created during reconcile). Remote lookup
// failures degrade to the locally built identity.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user *models.User
	if config.DB != nil {
		found, hash, err := s.users.FindByEmail(ctx, email)
		switch {
		case err == nil && hash != "":
			if !utils.VerifyPassword(hash, req.Password) {
				return nil, "", ErrInvalidCredentials
			}
			user = found
		case err == nil:
			user = found
		case errors.Is(err, repositories.ErrUserNotFound):
			// First sign-in: the identity is created at login.
		default:
			log.Printf("Credential lookup failed for %s: %v", email, err)
		}
	}

	if user == nil {
		user = &models.User{
			ID:       uuid.NewString(),
			Email:    email,
			Name:     displayNameFromEmail(email),
			Role:     RoleForEmail(email),
			JoinDate: time.Now().Format("January 2006"),
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func displayNameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}
	if local == "" {
		return "Shopper"
	}
	return strings.ToUpper(local[:1]) + local[1:]
}
