package stock

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Service hands out stable stock levels. The first lookup of a SKU
// generates a value from its id and records it; later lookups return the
// record, including an explicit 0.
type Service struct {
	cache    Cache
	generate func(string) int
	group    singleflight.Group
}

func NewService(cache Cache) *Service {
	return &Service{
		cache:    cache,
		generate: Generate,
	}
}

// GetStock never fails: cache errors are logged and the generated value
// is returned instead.
func (s *Service) GetStock(ctx context.Context, sku string) int {
	if v, ok, err := s.cache.Get(ctx, sku); err != nil {
		log.Warnf("⚠️ Failed to read stock for %s: %v", sku, err)
	} else if ok {
		return v
	}

	v, _, _ := s.group.Do(sku, func() (any, error) {
		generated := s.generate(sku)
		stored, err := s.cache.AddIfAbsent(ctx, sku, generated)
		if err != nil {
			log.Warnf("⚠️ Failed to save generated stock for %s: %v", sku, err)
			return generated, nil
		}
		if stored == generated {
			log.Debugf("Generated stock %d for %s", generated, sku)
		}
		return stored, nil
	})
	return v.(int)
}

// SetStock overwrites the record for sku, clamped to zero.
func (s *Service) SetStock(ctx context.Context, sku string, value int) (int, error) {
	if value < 0 {
		value = 0
	}
	if err := s.cache.Set(ctx, sku, value); err != nil {
		return 0, err
	}
	log.Infof("📦 Stock for %s set to %d", sku, value)
	return value, nil
}
