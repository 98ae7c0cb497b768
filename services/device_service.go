package services

import (
	"context"
	"strconv"
	"sync"

	"fortumars-mart/config"
)

const darkModeKey = "fortumarsmart_dark_mode"

// DeviceService persists per-device preferences. Only the dark-mode flag
// lives here today. A stored value always wins over the system default.
type DeviceService struct {
	mu     sync.Mutex
	stored *bool
}

func NewDeviceService() *DeviceService {
	return &DeviceService{}
}

func (s *DeviceService) DarkMode(systemDefault bool) bool {
	if config.RedisClient != nil {
		val, err := config.RedisClient.Get(context.Background(), darkModeKey).Result()
		if err == nil {
			return val == "true"
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stored != nil {
		return *s.stored
	}
	return systemDefault
}

func (s *DeviceService) SetDarkMode(on bool) {
	s.mu.Lock()
	s.stored = &on
	s.mu.Unlock()

	if config.RedisClient != nil {
		config.RedisClient.Set(context.Background(), darkModeKey, strconv.FormatBool(on), 0)
	}
}
