package container

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbs/inventory/internal/config"
	"mbs/inventory/internal/domain"
	"mbs/inventory/internal/editor"
)

func testConfig(backend string) *config.Config {
	return &config.Config{
		Store:  config.StoreConfig{Backend: backend, StockCache: "kv"},
		Badger: config.BadgerConfig{InMemory: true},
		Cart:   config.CartConfig{Backend: "memory"},
		Admin:  config.AdminConfig{Password: "shingle-admin"},
	}
}

func TestNewWiresMemoryStack(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, testConfig("memory"))
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Seed(ctx, true))

	raw, err := c.Backend.Get(ctx, domain.StockKey)
	require.NoError(t, err)
	var records domain.StockRecords
	require.NoError(t, json.Unmarshal(raw, &records))
	assert.Len(t, records, 20)
	assert.Equal(t, 103, records["black-1"])
	assert.Equal(t, 175, records["hi-def-pewter"])

	for _, kind := range domain.Kinds {
		_, err := c.Backend.Get(ctx, kind.String())
		assert.NoError(t, err, kind.String())
	}

	assert.Equal(t, "5% off 10+ bundles", c.Pricing.GetTier("shingles", 12).Label)
}

func TestNewHashesPlainAdminPassword(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, testConfig("memory"))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Editor.Edit(ctx, editor.Target{Kind: domain.KindCategory, Path: domain.NewPath("nails")}, editor.Patch{"name": "Fasteners"})
	assert.ErrorIs(t, err, editor.ErrLocked)

	require.True(t, c.Editor.Gate().Unlock("shingle-admin"))
	ok, err := c.Editor.Edit(ctx, editor.Target{Kind: domain.KindCategory, Path: domain.NewPath("nails")}, editor.Patch{"name": "Fasteners"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewWithBadgerInMemory(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig("badger")
	cfg.Store.KeyPrefix = "shop1:"
	cfg.Pricing.Tiers = map[string][]domain.BulkPricingTier{
		"nails": {{MinQty: 20, Discount: 0.1, Label: "10% off 20+ boxes"}},
	}

	c, err := New(ctx, cfg)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Seed(ctx, false))
	assert.Len(t, c.Store.Categories(ctx), 11)
	assert.Equal(t, "10% off 20+ boxes", c.Pricing.GetTier("nails", 25).Label)
	assert.Nil(t, c.Pricing.Tiers("shingles"), "configured tiers replace the defaults")
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	_, err := New(context.Background(), testConfig("sqlite"))
	assert.Error(t, err)
}
