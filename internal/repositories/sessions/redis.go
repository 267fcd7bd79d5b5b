package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/aegis-tracker/internal/domain/narrative"
	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

const (
	// Key patterns
	sheetKey = "session:%s:sheet"
	logKey   = "session:%s:log"
)

// RedisConfig holds configuration for the Redis repository
type RedisConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using Redis. The sheet is one JSON string,
// the narrative a list of JSON entries.
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed session repository
func NewRedisRepository(cfg *RedisConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{
		client: cfg.Client,
	}
}

// NewRedis creates a new Redis-backed session repository with default configuration
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisConfig{Client: client})
}

func (r *redisRepository) GetSheet(ctx context.Context, sessionID string) (*sheet.CharacterSheet, error) {
	data, err := r.client.Get(ctx, fmt.Sprintf(sheetKey, sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFoundf("no sheet for session %s", sessionID).
				WithMeta("session_id", sessionID)
		}
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to get sheet from Redis").
			WithMeta("session_id", sessionID)
	}

	s, err := sheet.Decode(data)
	if err != nil {
		return nil, apperr.Wrapf(err, "stored sheet for session %s is unreadable", sessionID)
	}

	return s, nil
}

func (r *redisRepository) SaveSheet(ctx context.Context, sessionID string, s *sheet.CharacterSheet) error {
	if sessionID == "" {
		return apperr.InvalidArgument("session ID cannot be empty")
	}

	data, err := sheet.Encode(s)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, fmt.Sprintf(sheetKey, sessionID), string(data), 0).Err(); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to save sheet to Redis").
			WithMeta("session_id", sessionID)
	}

	return nil
}

func (r *redisRepository) AppendEntry(ctx context.Context, sessionID string, entry narrative.Entry) error {
	if !entry.IsValid() {
		return apperr.InvalidArgument("entry needs a role and text")
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to marshal entry")
	}

	if err := r.client.RPush(ctx, fmt.Sprintf(logKey, sessionID), string(data)).Err(); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to append entry to Redis").
			WithMeta("session_id", sessionID)
	}

	return nil
}

func (r *redisRepository) ListEntries(ctx context.Context, sessionID string) ([]narrative.Entry, error) {
	values, err := r.client.LRange(ctx, fmt.Sprintf(logKey, sessionID), 0, -1).Result()
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to list entries from Redis").
			WithMeta("session_id", sessionID)
	}

	entries := make([]narrative.Entry, 0, len(values))
	for i, value := range values {
		var entry narrative.Entry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeDecode, "failed to unmarshal entry").
				WithMeta("session_id", sessionID).
				WithMeta("index", i)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
