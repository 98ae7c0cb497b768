package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"fortumars-mart/config"
	"fortumars-mart/models"

	"github.com/jackc/pgx/v5"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByEmail looks up the profile document keyed by lowercased email,
// returning the identity and its stored password hash.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, string, error) {
	query := `SELECT id, email, name, role, avatar, bio, location, join_date, password_hash
	          FROM users WHERE email = $1`

	var u models.User
	var hash string
	err := config.DB.QueryRow(ctx, query, strings.ToLower(email)).Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.Avatar, &u.Bio, &u.Location, &u.JoinDate, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	return &u, hash, nil
}

// Create writes a new profile document. The email key is lowercased.
func (r *UserRepository) Create(ctx context.Context, u *models.User, passwordHash string) error {
	u.Email = strings.ToLower(u.Email)
	query := `INSERT INTO users (email, id, name, role, avatar, bio, location, join_date, password_hash, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`
	_, err := config.DB.Exec(ctx, query,
		u.Email, u.ID, u.Name, u.Role, u.Avatar, u.Bio, u.Location, u.JoinDate, passwordHash, time.Now())
	return err
}

// Upsert writes the full identity shape under its email key, preserving any
// stored password hash.
func (r *UserRepository) Upsert(ctx context.Context, u models.User) error {
	email := strings.ToLower(u.Email)
	query := `INSERT INTO users (email, id, name, role, avatar, bio, location, join_date, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	          ON CONFLICT (email) DO UPDATE SET
	              name = EXCLUDED.name,
	              role = EXCLUDED.role,
	              avatar = EXCLUDED.avatar,
	              bio = EXCLUDED.bio,
	              location = EXCLUDED.location,
	              join_date = EXCLUDED.join_date,
	              updated_at = EXCLUDED.updated_at`
	_, err := config.DB.Exec(ctx, query,
		email, u.ID, u.Name, u.Role, u.Avatar, u.Bio, u.Location, u.JoinDate, time.Now())
	return err
}
