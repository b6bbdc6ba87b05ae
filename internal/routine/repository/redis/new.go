package redis

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"

	"slack-routine-bot/internal/model"
	pkgLog "slack-routine-bot/pkg/log"
)

// catalogCacheTTL bounds how stale a cached catalog read may be. Catalog
// edits are rare and curated; completions never read through this cache.
const catalogCacheTTL = 30 * time.Second

type implRepository struct {
	client *redis.Client
	l      pkgLog.Logger

	catalogCache *expirable.LRU[string, []model.TaskDefinition]
}

// New creates the Redis-backed repository implementing the catalog,
// session and assignment contracts.
func New(client *redis.Client, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client:       client,
		l:            l,
		catalogCache: expirable.NewLRU[string, []model.TaskDefinition](4, nil, catalogCacheTTL),
	}
}
