package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mbs/inventory/internal/kv"
	"mbs/inventory/internal/navigation"
)

// StateManager remembers where each browsing session stands, so a
// shopper (or a sequence of CLI calls) resumes at the same view.
type StateManager interface {
	GetPosition(ctx context.Context, session string) (navigation.Position, error)
	SetPosition(ctx context.Context, session string, pos navigation.Position) error
}

type positionRecord struct {
	Type       string `json:"type"` // "", "flat" or "hierarchical"
	Category   string `json:"category,omitempty"`
	Brand      string `json:"brand,omitempty"`
	Subsection string `json:"subsection,omitempty"`
	Product    string `json:"product,omitempty"`
}

func encodePosition(pos navigation.Position) ([]byte, error) {
	var rec positionRecord
	switch p := pos.(type) {
	case navigation.Flat:
		rec = positionRecord{Type: "flat", Category: p.Category}
	case navigation.Hierarchical:
		rec = positionRecord{
			Type:       "hierarchical",
			Category:   p.Category,
			Brand:      p.Brand,
			Subsection: p.Subsection,
			Product:    p.Product,
		}
	}
	return json.Marshal(rec)
}

func decodePosition(raw []byte) (navigation.Position, error) {
	var rec positionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	switch rec.Type {
	case "flat":
		return navigation.Flat{Category: rec.Category}, nil
	case "hierarchical":
		return navigation.Hierarchical{
			Category:   rec.Category,
			Brand:      rec.Brand,
			Subsection: rec.Subsection,
			Product:    rec.Product,
		}, nil
	default:
		return nil, nil
	}
}

type redisStateManager struct {
	redisClient *redis.Client
	keyPrefix   string
	ttl         time.Duration
}

// NewRedisStateManager keeps sessions in Redis, expiring them ttl after
// the last move. A zero ttl keeps them forever.
func NewRedisStateManager(redisClient *redis.Client, ttl time.Duration) StateManager {
	return &redisStateManager{
		redisClient: redisClient,
		keyPrefix:   "mbs:session:",
		ttl:         ttl,
	}
}

func (s *redisStateManager) GetPosition(ctx context.Context, session string) (navigation.Position, error) {
	key := s.keyPrefix + session
	val, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // No position saved yet
		}
		return nil, fmt.Errorf("failed to get position for session %s: %w", session, err)
	}

	pos, err := decodePosition(val)
	if err != nil {
		return nil, fmt.Errorf("failed to parse position for session %s: %w", session, err)
	}
	return pos, nil
}

func (s *redisStateManager) SetPosition(ctx context.Context, session string, pos navigation.Position) error {
	key := s.keyPrefix + session
	val, err := encodePosition(pos)
	if err != nil {
		return fmt.Errorf("failed to encode position for session %s: %w", session, err)
	}
	if err := s.redisClient.Set(ctx, key, val, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set position for session %s: %w", session, err)
	}
	return nil
}

type kvStateManager struct {
	backend   kv.Backend
	keyPrefix string
}

// NewKVStateManager keeps sessions in the catalog's key-value backend.
func NewKVStateManager(backend kv.Backend) StateManager {
	return &kvStateManager{
		backend:   backend,
		keyPrefix: "session:",
	}
}

func (s *kvStateManager) GetPosition(ctx context.Context, session string) (navigation.Position, error) {
	val, err := s.backend.Get(ctx, s.keyPrefix+session)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get position for session %s: %w", session, err)
	}

	pos, err := decodePosition(val)
	if err != nil {
		return nil, fmt.Errorf("failed to parse position for session %s: %w", session, err)
	}
	return pos, nil
}

func (s *kvStateManager) SetPosition(ctx context.Context, session string, pos navigation.Position) error {
	val, err := encodePosition(pos)
	if err != nil {
		return fmt.Errorf("failed to encode position for session %s: %w", session, err)
	}
	if err := s.backend.Set(ctx, s.keyPrefix+session, val); err != nil {
		return fmt.Errorf("failed to set position for session %s: %w", session, err)
	}
	return nil
}
