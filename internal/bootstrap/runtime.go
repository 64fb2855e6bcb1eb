package bootstrap

import (
	"fmt"
	"os"

	"okuyan/internal/cache"
	"okuyan/internal/config"
	"okuyan/internal/database"
	"okuyan/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedBuiltIns bool
}

// InitRuntime connects to the database and Redis, ensures the media
// directory exists, and optionally seeds the built-in starter posts.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if cfg.MediaDir != "" {
		if err := os.MkdirAll(cfg.MediaDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create media directory: %w", err)
		}
	}

	if opts.SeedBuiltIns {
		if err := seed.BuiltIns(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed built-in posts: %w", err)
		}
	}

	return db, r, nil
}
