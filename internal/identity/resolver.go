package identity

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrInvalidToken unknown or expired bearer token
var ErrInvalidToken = errors.New("invalid token")

// Identity the resolved caller: every workflow operation is scoped to
// exactly this tenant.
type Identity struct {
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
}

// Resolver maps an opaque bearer token to an Identity. The workflow core
// never inspects the token itself.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*Identity, error)
}

const tokenKeyPrefix = "fairchance:auth:token:"

// RedisResolver resolves tokens from Redis, where the auth service (or the
// dev seeder) stores them as JSON under fairchance:auth:token:<token>.
type RedisResolver struct {
	c *redis.Client
}

func NewRedisResolver(c *redis.Client) *RedisResolver { return &RedisResolver{c: c} }

func (r *RedisResolver) Resolve(ctx context.Context, token string) (*Identity, error) {
	val, err := r.c.Get(ctx, tokenKeyPrefix+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	var id Identity
	if err := json.Unmarshal([]byte(val), &id); err != nil {
		return nil, ErrInvalidToken
	}
	return &id, nil
}

// Seed stores a token for dev bootstrap. A zero ttl means no expiry.
func (r *RedisResolver) Seed(ctx context.Context, token string, id Identity, ttl time.Duration) error {
	payload, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return r.c.Set(ctx, tokenKeyPrefix+token, payload, ttl).Err()
}

// StaticResolver is a minimal in-memory token table for dev/stub mode and
// tests, used when Redis is disabled.
type StaticResolver struct {
	mu     sync.RWMutex
	tokens map[string]Identity
}

func NewStaticResolver() *StaticResolver {
	return &StaticResolver{tokens: map[string]Identity{}}
}

func (s *StaticResolver) Upsert(token string, id Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = id
}

func (s *StaticResolver) Resolve(_ context.Context, token string) (*Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.tokens[token]
	if !ok {
		return nil, ErrInvalidToken
	}
	return &id, nil
}
