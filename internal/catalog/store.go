package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"mbs/inventory/internal/domain"
	"mbs/inventory/internal/kv"

	log "github.com/sirupsen/logrus"
)

// Store owns the catalog collections. Each kind is read from the backend
// once and cached; Save replaces the cached value and the persisted one
// together.
//
// Values returned by the typed accessors are shared with the cache and
// must be treated as read-only. Clone before modifying.
type Store struct {
	backend kv.Backend

	mu    sync.RWMutex
	cache map[domain.Kind]any

	locksMu sync.Mutex
	locks   map[domain.Kind]*sync.Mutex
}

func NewStore(backend kv.Backend) *Store {
	return &Store{
		backend: backend,
		cache:   make(map[domain.Kind]any),
		locks:   make(map[domain.Kind]*sync.Mutex),
	}
}

func defaultsFor(kind domain.Kind) (any, error) {
	switch kind {
	case domain.KindCategory:
		return defaultCategories(), nil
	case domain.KindBrand:
		return defaultBrands(), nil
	case domain.KindProductLine:
		return defaultProductLines(), nil
	case domain.KindColorVariant:
		return defaultColorVariants(), nil
	case domain.KindDirectProduct:
		return defaultDirectProducts(), nil
	case domain.KindSwatch:
		return defaultSwatches(), nil
	default:
		return nil, fmt.Errorf("unknown catalog kind %q", kind)
	}
}

func decode(kind domain.Kind, raw []byte) (any, error) {
	var err error
	switch kind {
	case domain.KindCategory:
		var v domain.Categories
		err = json.Unmarshal(raw, &v)
		return v, err
	case domain.KindBrand:
		var v domain.Brands
		err = json.Unmarshal(raw, &v)
		return v, err
	case domain.KindProductLine:
		var v domain.ProductLines
		err = json.Unmarshal(raw, &v)
		return v, err
	case domain.KindColorVariant:
		var v domain.ColorVariants
		err = json.Unmarshal(raw, &v)
		return v, err
	case domain.KindDirectProduct:
		var v domain.DirectProducts
		err = json.Unmarshal(raw, &v)
		return v, err
	case domain.KindSwatch:
		var v domain.Swatches
		err = json.Unmarshal(raw, &v)
		return v, err
	default:
		return nil, fmt.Errorf("unknown catalog kind %q", kind)
	}
}

// Load returns the collection for kind. A missing key, an unreachable
// backend or a corrupt document all yield the built-in defaults; the
// failure is logged, never returned. Defaults served because the backend
// could not be reached are not cached, so the next call reads again.
func (s *Store) Load(ctx context.Context, kind domain.Kind) any {
	value, err := s.load(ctx, kind)
	if err != nil {
		log.Warnf("⚠️ %v, using defaults", err)
	}
	return value
}

// Ensure makes sure kind was actually read from the backend, returning
// the read error otherwise. Writers call it before replacing a
// collection so a transient failure is never saved over real data.
func (s *Store) Ensure(ctx context.Context, kind domain.Kind) error {
	_, err := s.load(ctx, kind)
	return err
}

func (s *Store) load(ctx context.Context, kind domain.Kind) (any, error) {
	s.mu.RLock()
	cached, ok := s.cache[kind]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	value, err := s.read(ctx, kind)
	if err != nil {
		return value, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A concurrent Save wins over what we read.
	if cached, ok := s.cache[kind]; ok {
		return cached, nil
	}
	s.cache[kind] = value
	return value, nil
}

// read returns the persisted collection, or the defaults when the key is
// missing or corrupt. The error is set only when the backend failed; the
// defaults are returned alongside it.
func (s *Store) read(ctx context.Context, kind domain.Kind) (any, error) {
	fallback, err := defaultsFor(kind)
	if err != nil {
		return nil, err
	}

	raw, err := s.backend.Get(ctx, kind.String())
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			log.Debugf("No saved %s, using defaults", kind)
			return fallback, nil
		}
		return fallback, fmt.Errorf("failed to read %s: %w", kind, err)
	}

	value, err := decode(kind, raw)
	if err != nil {
		log.Warnf("⚠️ Error loading saved %s, using defaults: %v", kind, err)
		return fallback, nil
	}
	if isNil(value) {
		log.Warnf("⚠️ Saved %s is null, using defaults", kind)
		return fallback, nil
	}

	return value, nil
}

func isNil(v any) bool {
	switch c := v.(type) {
	case domain.Categories:
		return c == nil
	case domain.Brands:
		return c == nil
	case domain.ProductLines:
		return c == nil
	case domain.ColorVariants:
		return c == nil
	case domain.DirectProducts:
		return c == nil
	case domain.Swatches:
		return c == nil
	default:
		return v == nil
	}
}

func matches(kind domain.Kind, data any) bool {
	switch data.(type) {
	case domain.Categories:
		return kind == domain.KindCategory
	case domain.Brands:
		return kind == domain.KindBrand
	case domain.ProductLines:
		return kind == domain.KindProductLine
	case domain.ColorVariants:
		return kind == domain.KindColorVariant
	case domain.DirectProducts:
		return kind == domain.KindDirectProduct
	case domain.Swatches:
		return kind == domain.KindSwatch
	default:
		return false
	}
}

// Save writes the full collection for kind and replaces the cached copy.
// On a write failure the cache is left untouched.
func (s *Store) Save(ctx context.Context, kind domain.Kind, data any) error {
	if !matches(kind, data) {
		return fmt.Errorf("cannot save %T as %s", data, kind)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", kind, err)
	}

	if err := s.backend.Set(ctx, kind.String(), raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", kind, err)
	}

	s.mu.Lock()
	s.cache[kind] = data
	s.mu.Unlock()

	log.Debugf("Saved %s (%d bytes)", kind, len(raw))
	return nil
}

// WithLock runs fn holding the exclusive lock for kind. Edits of one kind
// serialize; different kinds proceed independently.
func (s *Store) WithLock(kind domain.Kind, fn func() error) error {
	s.locksMu.Lock()
	l, ok := s.locks[kind]
	if !ok {
		l = &sync.Mutex{}
		s.locks[kind] = l
	}
	s.locksMu.Unlock()

	l.Lock()
	defer l.Unlock()
	return fn()
}

func (s *Store) Categories(ctx context.Context) domain.Categories {
	v, _ := s.Load(ctx, domain.KindCategory).(domain.Categories)
	return v
}

func (s *Store) Brands(ctx context.Context) domain.Brands {
	v, _ := s.Load(ctx, domain.KindBrand).(domain.Brands)
	return v
}

func (s *Store) ProductLines(ctx context.Context) domain.ProductLines {
	v, _ := s.Load(ctx, domain.KindProductLine).(domain.ProductLines)
	return v
}

func (s *Store) ColorVariants(ctx context.Context) domain.ColorVariants {
	v, _ := s.Load(ctx, domain.KindColorVariant).(domain.ColorVariants)
	return v
}

func (s *Store) DirectProducts(ctx context.Context) domain.DirectProducts {
	v, _ := s.Load(ctx, domain.KindDirectProduct).(domain.DirectProducts)
	return v
}

func (s *Store) Swatches(ctx context.Context) domain.Swatches {
	v, _ := s.Load(ctx, domain.KindSwatch).(domain.Swatches)
	return v
}

// Snapshot projects the current collections into a tree.
func (s *Store) Snapshot(ctx context.Context) *domain.Tree {
	return domain.BuildTree(domain.Collections{
		Categories:     s.Categories(ctx),
		Brands:         s.Brands(ctx),
		ProductLines:   s.ProductLines(ctx),
		ColorVariants:  s.ColorVariants(ctx),
		DirectProducts: s.DirectProducts(ctx),
		Swatches:       s.Swatches(ctx),
	})
}

// Seed persists the defaults for every kind that has no saved value yet.
// Kinds that already hold data, parseable or not, are left alone.
func (s *Store) Seed(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, kind := range domain.Kinds {
		g.Go(func() error {
			_, err := s.backend.Get(ctx, kind.String())
			if err == nil {
				log.Infof("🔄 %s already seeded", kind.GetKindName())
				return nil
			}
			if !errors.Is(err, kv.ErrNotFound) {
				return fmt.Errorf("failed to check %s: %w", kind, err)
			}

			defaults, err := defaultsFor(kind)
			if err != nil {
				return err
			}
			if err := s.Save(ctx, kind, defaults); err != nil {
				return err
			}

			log.Infof("✅ Seeded %s", kind.GetKindName())
			return nil
		})
	}

	return g.Wait()
}
