package events

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Workflow event types published after each successful mutation
const (
	TypeReferralSubmitted = "referral.submitted"
	TypeCaseOpened        = "case.opened"
	TypeNoteRecorded      = "note.recorded"
)

// Event one workflow fact for downstream consumers (reporting, alerting)
type Event struct {
	Type       string
	TenantID   string
	EntityID   string
	OccurredAt time.Time
}

// Publisher emits workflow events. Publishing happens after commit and is
// best-effort: a failed publish never fails the operation.
type Publisher interface {
	Publish(ctx context.Context, evt Event)
}

// RedisPublisher appends events to a Redis Stream via XADD
type RedisPublisher struct {
	c      *redis.Client
	stream string
	logger *zap.Logger
}

func NewRedisPublisher(c *redis.Client, stream string, logger *zap.Logger) *RedisPublisher {
	return &RedisPublisher{c: c, stream: stream, logger: logger}
}

func (p *RedisPublisher) Publish(ctx context.Context, evt Event) {
	values := map[string]interface{}{
		"event_type":  evt.Type,
		"tenant_id":   evt.TenantID,
		"entity_id":   evt.EntityID,
		"occurred_at": evt.OccurredAt.UTC().Format(time.RFC3339),
	}
	if err := p.c.XAdd(ctx, &redis.XAddArgs{Stream: p.stream, Values: values}).Err(); err != nil {
		p.logger.Warn("failed to publish workflow event",
			zap.String("event_type", evt.Type),
			zap.String("entity_id", evt.EntityID),
			zap.Error(err))
	}
}

// NopPublisher discards events (Redis disabled)
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}
