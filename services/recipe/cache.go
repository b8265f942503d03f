// File: sushichat/services/recipe/cache.go
package recipe

import (
	"context"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const recipeKeyPrefix = "recipe:"

// RedisRecipeCache is a read-through cache for recipe text. Ingredients of
// a fixed menu don't change between requests, so successful lookups are
// reused instead of re-querying the model.
type RedisRecipeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRecipeCache(client *redis.Client, ttl time.Duration) *RedisRecipeCache {
	return &RedisRecipeCache{client: client, ttl: ttl}
}

func cacheKey(dishName string) string {
	return recipeKeyPrefix + strings.ToLower(dishName)
}

func (c *RedisRecipeCache) Get(ctx context.Context, dishName string) (string, error) {
	text, err := c.client.Get(ctx, cacheKey(dishName)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *RedisRecipeCache) Set(ctx context.Context, dishName, text string) error {
	return c.client.Set(ctx, cacheKey(dishName), text, c.ttl).Err()
}
