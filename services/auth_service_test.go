package services

import (
	"context"
	"testing"

	"fortumars-mart/config"
	"fortumars-mart/models"
	"fortumars-mart/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}
}

func TestRoleForEmail(t *testing.T) {
	tests := []struct {
		email    string
		expected string
	}{
		{"admin@example.com", models.RoleAdmin},
		{"jane@example.com", models.RoleUser},
		{"ADMIN@EXAMPLE.COM", models.RoleAdmin},
		{"badmin@x.com", models.RoleAdmin}, // substring match is deliberate
		{"store.administrator@shop.io", models.RoleAdmin},
		{"", models.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoleForEmail(tt.email))
		})
	}
}

// With no database configured, login builds a fresh identity on the spot:
// role from the email, name derived from the local part.
func TestLoginCreatesIdentityWithDerivedRole(t *testing.T) {
	svc := NewAuthService()

	user, token, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "Admin@Example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.JoinDate)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestLoginOrdinaryUserRole(t *testing.T) {
	svc := NewAuthService()

	user, _, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, "Jane", user.Name)
}

func TestRegisterDerivesRoleOnce(t *testing.T) {
	svc := NewAuthService()

	user, token, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "shopadmin@example.com",
		Password: "secret123",
		Name:     "Shop Admin",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "Shop Admin", user.Name)
	assert.NotEmpty(t, token)
}

func TestDisplayNameFromEmail(t *testing.T) {
	assert.Equal(t, "Jane", displayNameFromEmail("jane@example.com"))
	assert.Equal(t, "Shopper", displayNameFromEmail(""))
}
