package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"helpdesk/internal/application/ticket/dto"
)

const (
	ticketDetailKeyPrefix     = "helpdesk:ticket:detail:"
	ticketGenerationKeyPrefix = "helpdesk:ticket:gen:"

	// generationTTL only has to outlive the slowest cache fill.
	generationTTL = 24 * time.Hour
)

// RedisTicketDetailCache stores rendered ticket details as JSON with a fixed
// TTL. Every ticket also has a generation counter that Invalidate bumps; a
// fill carries the generation seen by its Get and is dropped once the counter
// has moved, so a read racing a write cannot put the old detail back.
type RedisTicketDetailCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTicketDetailCache(client *redis.Client, ttl time.Duration) *RedisTicketDetailCache {
	return &RedisTicketDetailCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached detail, or nil and the current generation on a miss.
func (c *RedisTicketDetailCache) Get(ctx context.Context, ticketID uint) (*dto.TicketDetailDTO, int64, error) {
	vals, err := c.client.MGet(ctx, TicketDetailKey(ticketID), generationKey(ticketID)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read ticket detail from redis: %w", err)
	}

	gen, err := parseGeneration(vals[1])
	if err != nil {
		return nil, 0, err
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, gen, nil
	}

	var detail dto.TicketDetailDTO
	if err := json.Unmarshal([]byte(raw), &detail); err != nil {
		return nil, gen, fmt.Errorf("failed to unmarshal ticket detail: %w", err)
	}
	return &detail, gen, nil
}

// Set stores detail unless the ticket was invalidated after the Get that
// returned generation.
func (c *RedisTicketDetailCache) Set(ctx context.Context, ticketID uint, detail *dto.TicketDetailDTO, generation int64) error {
	data, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("failed to marshal ticket detail: %w", err)
	}

	genKey := generationKey(ticketID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		gen, err := parseGeneration(current)
		if err != nil {
			return err
		}
		if gen != generation {
			return errStaleFill
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, TicketDetailKey(ticketID), data, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil, errors.Is(err, errStaleFill), errors.Is(err, redis.TxFailedErr):
		return nil
	default:
		return fmt.Errorf("failed to store ticket detail in redis: %w", err)
	}
}

// Invalidate drops the cached detail and bumps the ticket's generation.
func (c *RedisTicketDetailCache) Invalidate(ctx context.Context, ticketID uint) error {
	genKey := generationKey(ticketID)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)
		pipe.Del(ctx, TicketDetailKey(ticketID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate ticket detail in redis: %w", err)
	}
	return nil
}

var errStaleFill = errors.New("ticket detail fill is stale")

func parseGeneration(v interface{}) (int64, error) {
	switch s := v.(type) {
	case nil:
		return 0, nil
	case string:
		if s == "" {
			return 0, nil
		}
		gen, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid ticket generation %q: %w", s, err)
		}
		return gen, nil
	default:
		return 0, fmt.Errorf("unexpected ticket generation type %T", v)
	}
}

func generationKey(ticketID uint) string {
	return ticketGenerationKeyPrefix + strconv.FormatUint(uint64(ticketID), 10)
}

// TicketDetailKey returns the redis key of a ticket's cached detail.
func TicketDetailKey(ticketID uint) string {
	return ticketDetailKeyPrefix + strconv.FormatUint(uint64(ticketID), 10)
}

// NoopTicketDetailCache is used when caching is disabled. Every Get misses.
type NoopTicketDetailCache struct{}

func (NoopTicketDetailCache) Get(context.Context, uint) (*dto.TicketDetailDTO, int64, error) {
	return nil, 0, nil
}

func (NoopTicketDetailCache) Set(context.Context, uint, *dto.TicketDetailDTO, int64) error {
	return nil
}

func (NoopTicketDetailCache) Invalidate(context.Context, uint) error {
	return nil
}
