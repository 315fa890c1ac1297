package stock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"mbs/inventory/internal/domain"
	"mbs/inventory/internal/kv"
)

// Cache holds the stock records. AddIfAbsent must be atomic per SKU: it
// returns the value that ends up stored, which is the existing one when
// another writer got there first.
type Cache interface {
	Get(ctx context.Context, sku string) (int, bool, error)
	AddIfAbsent(ctx context.Context, sku string, value int) (int, error)
	Set(ctx context.Context, sku string, value int) error
}

// kvCache keeps the whole record map as one JSON document under
// product-stocks, loaded on first use.
type kvCache struct {
	backend kv.Backend

	mu      sync.Mutex
	loaded  bool
	records domain.StockRecords
}

func NewKVCache(backend kv.Backend) Cache {
	return &kvCache{backend: backend}
}

// load reads the saved records once. A missing or corrupt document
// starts an empty map; any other read failure leaves the cache unloaded
// so nothing is written over records that were never read.
func (c *kvCache) load(ctx context.Context) error {
	if c.loaded {
		return nil
	}

	raw, err := c.backend.Get(ctx, domain.StockKey)
	if err != nil && !errors.Is(err, kv.ErrNotFound) {
		return fmt.Errorf("failed to read saved stocks: %w", err)
	}

	c.records = make(domain.StockRecords)
	c.loaded = true
	if err != nil {
		return nil
	}

	var records domain.StockRecords
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Warnf("⚠️ Error loading saved stocks: %v", err)
		return nil
	}
	if records != nil {
		c.records = records
	}
	return nil
}

func (c *kvCache) persist(ctx context.Context) error {
	raw, err := json.Marshal(c.records)
	if err != nil {
		return fmt.Errorf("failed to encode stocks: %w", err)
	}
	if err := c.backend.Set(ctx, domain.StockKey, raw); err != nil {
		return fmt.Errorf("failed to save stocks: %w", err)
	}
	return nil
}

func (c *kvCache) Get(ctx context.Context, sku string) (int, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(ctx); err != nil {
		return 0, false, err
	}
	v, ok := c.records[sku]
	return v, ok, nil
}

func (c *kvCache) AddIfAbsent(ctx context.Context, sku string, value int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(ctx); err != nil {
		return 0, err
	}
	if existing, ok := c.records[sku]; ok {
		return existing, nil
	}
	c.records[sku] = value
	if err := c.persist(ctx); err != nil {
		delete(c.records, sku)
		return 0, err
	}
	return value, nil
}

// Set overwrites sku. The in-memory record only changes once the write
// succeeds.
func (c *kvCache) Set(ctx context.Context, sku string, value int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(ctx); err != nil {
		return err
	}
	previous, existed := c.records[sku]
	c.records[sku] = value
	if err := c.persist(ctx); err != nil {
		if existed {
			c.records[sku] = previous
		} else {
			delete(c.records, sku)
		}
		return err
	}
	return nil
}

// redisCache stores one hash field per SKU so several processes can share
// the records; HSETNX makes first generation atomic per field.
type redisCache struct {
	redisClient *redis.Client
	key         string
}

func NewRedisCache(redisClient *redis.Client) Cache {
	return &redisCache{
		redisClient: redisClient,
		key:         "mbs:" + domain.StockKey,
	}
}

func (c *redisCache) Get(ctx context.Context, sku string) (int, bool, error) {
	val, err := c.redisClient.HGet(ctx, c.key, sku).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get stock for %s: %w", sku, err)
	}

	stock, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse stock for %s: %w", sku, err)
	}
	return stock, true, nil
}

func (c *redisCache) AddIfAbsent(ctx context.Context, sku string, value int) (int, error) {
	added, err := c.redisClient.HSetNX(ctx, c.key, sku, value).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to add stock for %s: %w", sku, err)
	}
	if added {
		return value, nil
	}

	existing, ok, err := c.Get(ctx, sku)
	if err != nil {
		return 0, err
	}
	if !ok {
		return value, nil
	}
	return existing, nil
}

func (c *redisCache) Set(ctx context.Context, sku string, value int) error {
	if err := c.redisClient.HSet(ctx, c.key, sku, value).Err(); err != nil {
		return fmt.Errorf("failed to set stock for %s: %w", sku, err)
	}
	return nil
}
