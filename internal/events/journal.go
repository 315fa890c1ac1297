package events

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Record is a published event as read back from a journal.
type Record struct {
	ID   string
	Type string
	Data []byte
}

type Journal interface {
	Publish(ctx context.Context, event Event) (string, error) // Returns message ID
	// Recent returns up to count records of eventType, newest first.
	Recent(ctx context.Context, eventType string, count int64) ([]Record, error)
}

type RedisJournal struct {
	redisClient  *redis.Client
	streamPrefix string
	maxLen       int64
}

func NewRedisJournal(redisClient *redis.Client, maxLen int64) *RedisJournal {
	return &RedisJournal{
		redisClient:  redisClient,
		streamPrefix: "mbs:stream:",
		maxLen:       maxLen,
	}
}

func (j *RedisJournal) Publish(ctx context.Context, event Event) (string, error) {
	eventType := event.EventType()
	streamName := j.streamPrefix + eventType

	eventValue, err := event.EventValue()
	if err != nil {
		return "", fmt.Errorf("failed to serialize event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: streamName,
		Values: map[string]interface{}{
			"event_type": eventType,
			"event_data": string(eventValue),
		},
	}
	if j.maxLen > 0 {
		args.MaxLen = j.maxLen
		args.Approx = true
	}

	messageID, err := j.redisClient.XAdd(ctx, args).Result()
	if err != nil {
		return "", fmt.Errorf("failed to add event to Redis stream %s: %w", streamName, err)
	}

	log.Debugf("Added event %s to stream %s with message ID: %s", eventType, streamName, messageID)
	return messageID, nil
}

func (j *RedisJournal) Recent(ctx context.Context, eventType string, count int64) ([]Record, error) {
	streamName := j.streamPrefix + eventType
	messages, err := j.redisClient.XRevRangeN(ctx, streamName, "+", "-", count).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read from Redis stream %s: %w", streamName, err)
	}

	records := make([]Record, 0, len(messages))
	for _, msg := range messages {
		data, _ := msg.Values["event_data"].(string)
		typ, _ := msg.Values["event_type"].(string)
		records = append(records, Record{ID: msg.ID, Type: typ, Data: []byte(data)})
	}
	return records, nil
}

// MemoryJournal keeps events in process. Used when Redis is not
// configured and in tests.
type MemoryJournal struct {
	mu      sync.Mutex
	records []Record
}

func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{}
}

func (j *MemoryJournal) Publish(_ context.Context, event Event) (string, error) {
	eventValue, err := event.EventValue()
	if err != nil {
		return "", fmt.Errorf("failed to serialize event: %w", err)
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	id := strconv.Itoa(len(j.records)+1) + "-0"
	j.records = append(j.records, Record{ID: id, Type: event.EventType(), Data: eventValue})
	return id, nil
}

func (j *MemoryJournal) Recent(_ context.Context, eventType string, count int64) ([]Record, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	var out []Record
	for i := len(j.records) - 1; i >= 0 && int64(len(out)) < count; i-- {
		if j.records[i].Type == eventType {
			out = append(out, j.records[i])
		}
	}
	return out, nil
}

type noopJournal struct{}

// Noop discards every event.
func Noop() Journal {
	return noopJournal{}
}

func (noopJournal) Publish(context.Context, Event) (string, error) {
	return "", nil
}

func (noopJournal) Recent(context.Context, string, int64) ([]Record, error) {
	return nil, nil
}
