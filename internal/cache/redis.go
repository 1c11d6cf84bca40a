package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes the Redis connection
func Init() error {
	// K8s sets REDIS_SERVICE_HOST and REDIS_SERVICE_PORT for services
	host := os.Getenv("REDIS_SERVICE_HOST")
	if host == "" {
		host = "redis" // fallback to service name
	}
	port := os.Getenv("REDIS_SERVICE_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetCached returns cached data for a key
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores data with a TTL
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}

// InvalidatePattern removes all keys matching a glob pattern
func InvalidatePattern(ctx context.Context, pattern string) {
	if client == nil {
		return
	}
	keys, err := client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// InvalidateKeys removes specific cache keys
func InvalidateKeys(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}

// ============================================
// Entity-Based Cache Invalidators
// ============================================

// InvalidateItineraryCaches clears all itinerary-related caches
// Called when: CreateItinerary, UpdateItinerary, DeleteItinerary, AssignItinerary
func InvalidateItineraryCaches(ctx context.Context) {
	InvalidatePattern(ctx, "itineraries:*")
}

// InvalidateStakeholderCaches clears all stakeholder-related caches
// Called when: CreateStakeholder, UpdateStakeholder, DeleteStakeholder
func InvalidateStakeholderCaches(ctx context.Context) {
	InvalidatePattern(ctx, "stakeholders:*")
}

// InvalidateTemplateCaches clears all template-related caches
// Called when: template create, update or delete
func InvalidateTemplateCaches(ctx context.Context) {
	InvalidatePattern(ctx, "templates:*")
}

// InvalidateAgencyCaches clears cached agency profiles
// Called when: SaveAgencyDetails
func InvalidateAgencyCaches(ctx context.Context) {
	InvalidatePattern(ctx, "agency:*")
}

// InvalidateLocationCaches clears the cached location list
// Called when: AddLocation
func InvalidateLocationCaches(ctx context.Context) {
	InvalidatePattern(ctx, "locations:*")
}

// InvalidateUserCaches clears all user-related caches
// Called when: CreateUser, UpdateUser, ToggleStatus
func InvalidateUserCaches(ctx context.Context) {
	InvalidatePattern(ctx, "users:*")
}

// IsHealthy returns true if Redis connection is working
func IsHealthy() bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}
