// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"account_backend/internal/feature/users/adapters"
	"account_backend/internal/feature/users/usecase"
	"account_backend/internal/platform/cache"
)

// NewUserRepository creates a UserRepository implementation.
// If Redis is available, the MySQL repository is decorated with a
// read-through cache of the user list. Otherwise it is used directly.
func NewUserRepository(rdb *redis.Client, db *gorm.DB) usecase.UserRepository {
	repo := adapters.NewUserMySQL(db)
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, 0, repo, "users")
	}
	return repo
}
