package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"fortumars-mart/config"
	"fortumars-mart/models"
	"fortumars-mart/repositories"
)

const sessionCacheKey = "fortumarsmart_user"

// SessionService holds the signed-in identity: a local cached copy (Redis,
// falling back to process memory) mirrored best-effort to the remote profile
// store keyed by lowercased email.
type SessionService struct {
	users *repositories.UserRepository

	mu    sync.Mutex
	local *models.User
}

func NewSessionService() *SessionService {
	return &SessionService{users: repositories.NewUserRepository()}
}

// LoadCached returns the locally cached identity, or nil when logged out.
func (s *SessionService) LoadCached() *models.User {
	if config.RedisClient != nil {
		stored, err := config.RedisClient.Get(context.Background(), sessionCacheKey).Result()
		if err == nil {
			var u models.User
			if json.Unmarshal([]byte(stored), &u) == nil {
				return &u
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.local == nil {
		return nil
	}
	u := *s.local
	return &u
}

// Reconcile syncs the given identity against the remote profile record. A
// found record wins; a missing record is created from the given identity,
// which is then returned unchanged. Any failure degrades silently to the
// given identity.
func (s *SessionService) Reconcile(ctx context.Context, user models.User) models.User {
	if config.DB == nil {
		return user
	}

	remote, _, err := s.users.FindByEmail(ctx, user.Email)
	if err == nil {
		return *remote
	}
	if errors.Is(err, repositories.ErrUserNotFound) {
		if cerr := s.users.Create(ctx, &user, ""); cerr != nil {
			log.Printf("Failed to create remote profile for %s: %v", user.Email, cerr)
		}
		return user
	}

	log.Printf("Profile sync failed for %s: %v", user.Email, err)
	return user
}

// Persist writes the identity locally and, best-effort, remotely.
func (s *SessionService) Persist(user models.User) {
	s.mu.Lock()
	u := user
	s.local = &u
	s.mu.Unlock()

	if config.RedisClient != nil {
		data, err := json.Marshal(user)
		if err == nil {
			config.RedisClient.Set(context.Background(), sessionCacheKey, string(data), 0)
		}
	}

	if config.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := s.users.Upsert(ctx, user); err != nil {
			log.Printf("Failed to update remote profile for %s: %v", user.Email, err)
		}
	}
}

// Clear removes the local identity copy; the remote record stays.
func (s *SessionService) Clear() {
	s.mu.Lock()
	s.local = nil
	s.mu.Unlock()

	if config.RedisClient != nil {
		config.RedisClient.Del(context.Background(), sessionCacheKey)
	}
}
