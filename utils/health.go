package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents the current status of the service's collaborators.
type HealthStatus struct {
	Intents   int       `json:"intents"`
	Redis     *bool     `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// SetIntentCount records the size of the loaded intent catalog. Set once at
// startup, after the catalog loads.
func SetIntentCount(n int) {
	mu.Lock()
	currentHealth.Intents = n
	currentHealth.CheckedAt = time.Now()
	mu.Unlock()
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. redisClient may be nil when no cache is configured.
func StartHealthMonitor(redisClient *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			var redisHealth *bool
			if redisClient != nil {
				ok := redisClient.Ping(ctx).Err() == nil
				redisHealth = &ok
			}

			mu.Lock()
			currentHealth.Redis = redisHealth
			currentHealth.CheckedAt = time.Now()
			mu.Unlock()
		}
	}()
}
