package cache

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sinaliza/sinaliza-api/internal/config"
)

// DefaultTTL limita a vida de uma entrada caso a invalidação explícita falhe.
const DefaultTTL = 5 * time.Minute

// CatalogPathKey guarda o snapshot de tópicos e lições usado pela trilha.
// Escritas administrativas no catálogo invalidam essa chave.
const CatalogPathKey = "catalog:path:v1"

var ErrMiss = errors.New("cache miss")

// Invalidator é a visão de escrita do cache: quem altera o catálogo só
// precisa descartar chaves, nunca ler ou gravar.
type Invalidator interface {
	Delete(ctx context.Context, keys ...string)
}

// Cache é um cache JSON sobre Redis. Sem REDIS_ADDR configurado o cliente
// fica nulo e todas as operações degradam para miss silencioso.
type Cache struct {
	client *redis.Client
}

func New() *Cache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return &Cache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	return &Cache{client: client}
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest any) error {
	if c == nil || c.client == nil {
		return ErrMiss
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			config.WithContext(ctx).WithError(err).Debug("Falha ao ler do cache")
		}
		return ErrMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		config.WithContext(ctx).WithError(err).Debug("Falha ao gravar no cache")
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		config.WithContext(ctx).WithError(err).Debug("Falha ao invalidar cache")
	}
}
