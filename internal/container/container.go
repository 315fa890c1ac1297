package container

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"mbs/inventory/internal/cart"
	"mbs/inventory/internal/catalog"
	"mbs/inventory/internal/config"
	"mbs/inventory/internal/domain"
	"mbs/inventory/internal/editor"
	"mbs/inventory/internal/events"
	"mbs/inventory/internal/kv"
	"mbs/inventory/internal/pricing"
	"mbs/inventory/internal/proxy"
	"mbs/inventory/internal/service"
	"mbs/inventory/internal/state"
	"mbs/inventory/internal/stock"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const sessionTTL = 24 * time.Hour

// Container holds all initialized components
type Container struct {
	Config       *config.Config
	Backend      kv.Backend
	Store        *catalog.Store
	Stock        *stock.Service
	Pricing      *pricing.Engine
	Journal      events.Journal
	Cart         cart.Cart
	StateManager state.StateManager
	Editor       *editor.Editor

	Inventory *service.Inventory

	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if needsRedis(cfg) {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		// Test connection
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")
		c.redis = rdb
	}

	backend, err := c.openBackend(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.Backend = kv.Prefixed(backend, cfg.Store.KeyPrefix)
	c.Store = catalog.NewStore(c.Backend)

	switch cfg.Store.StockCache {
	case "redis":
		c.Stock = stock.NewService(stock.NewRedisCache(c.redis))
	default:
		c.Stock = stock.NewService(stock.NewKVCache(c.Backend))
	}

	tiers := cfg.Pricing.Tiers
	if len(tiers) == 0 {
		tiers = pricing.DefaultTiers()
	}
	c.Pricing = pricing.NewEngine(tiers)

	c.Journal = events.Noop()
	if cfg.Redis.Journal {
		c.Journal = events.NewRedisJournal(c.redis, cfg.Redis.JournalMaxLen)
	}

	if cfg.Store.Backend == "redis" {
		c.StateManager = state.NewRedisStateManager(c.redis, sessionTTL)
	} else {
		c.StateManager = state.NewKVStateManager(c.Backend)
	}

	switch cfg.Cart.Backend {
	case "http":
		proxySupplier := proxy.NewSupplier(ctx, cfg.Cart.Proxies, cfg.Cart.BaseURL+"/healthz")
		c.Cart = cart.NewHTTPCart(cfg.Cart, proxySupplier)
	default:
		c.Cart = cart.NewMemoryCart()
	}

	gate, err := newGate(cfg.Admin)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.Editor = editor.NewEditor(c.Store, c.Stock, c.Journal, gate)

	c.Inventory = service.NewInventory(c.Store, c.Stock, c.Pricing, c.Cart, c.StateManager, cfg.Stock.Locations)

	log.Infof("✅ Inventory ready (store: %s, stock cache: %s, cart: %s)",
		cfg.Store.Backend, cfg.Store.StockCache, cfg.Cart.Backend)
	return c, nil
}

func needsRedis(cfg *config.Config) bool {
	return cfg.Store.Backend == "redis" || cfg.Store.StockCache == "redis" || cfg.Redis.Journal
}

func (c *Container) openBackend(ctx context.Context) (kv.Backend, error) {
	cfg := c.Config

	switch cfg.Store.Backend {
	case "memory":
		return kv.NewMemory(), nil

	case "badger":
		path := cfg.Badger.Path
		if cfg.Badger.InMemory {
			path = ""
		}
		b, err := kv.OpenBadger(path)
		if err != nil {
			return nil, err
		}
		log.Infof("✅ Opened badger store at %q", path)
		return b, nil

	case "redis":
		return kv.NewRedis(c.redis), nil

	case "postgres":
		db, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
		}
		b, err := kv.NewPostgres(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		log.Info("✅ Connected to Postgres successfully")
		return b, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func newGate(cfg config.AdminConfig) (*editor.Gate, error) {
	hash := cfg.PasswordHash
	if hash == "" && cfg.Password != "" {
		h, err := editor.HashPassword(cfg.Password)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	return editor.NewGate(hash)
}

// Seed writes the default catalog where nothing is saved yet. With
// warmStock, every stock-tracked SKU also gets its record generated.
func (c *Container) Seed(ctx context.Context, warmStock bool) error {
	if err := c.Store.Seed(ctx); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	if !warmStock {
		return nil
	}

	skus := stockTrackedSKUs(c.Store.Snapshot(ctx))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, sku := range skus {
		g.Go(func() error {
			c.Stock.GetStock(ctx, sku)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Infof("📦 Stock records ready for %d SKUs", len(skus))
	return nil
}

// stockTrackedSKUs lists the ids whose stock comes from the stock
// service: color variants and product lines with a color table.
func stockTrackedSKUs(tree *domain.Tree) []string {
	seen := make(map[string]bool)
	var skus []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			skus = append(skus, id)
		}
	}

	for _, cat := range tree.Children(nil) {
		for _, brand := range tree.ChildrenOfKind(cat.Path, domain.KindBrand) {
			for _, line := range tree.ChildrenOfKind(brand.Path, domain.KindProductLine) {
				if !line.HasSubProducts {
					add(line.ID())
					continue
				}
				for _, variant := range tree.ChildrenOfKind(line.Path, domain.KindColorVariant) {
					add(variant.ID())
				}
			}
		}
	}
	return skus
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Debug("Shutting down container...")

	if c.Backend != nil {
		if err := c.Backend.Close(); err != nil {
			log.Warnf("⚠️ Failed to close store: %v", err)
		}
	}
	if c.redis != nil && c.Config.Store.Backend != "redis" {
		c.redis.Close()
	}

	log.Debug("Container shut down successfully")
	return nil
}
