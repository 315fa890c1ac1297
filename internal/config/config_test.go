package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbs/inventory/internal/domain"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "badger", cfg.Store.Backend)
	assert.Equal(t, "kv", cfg.Store.StockCache)
	assert.Equal(t, "./data/badger", cfg.Badger.Path)
	assert.Equal(t, "memory", cfg.Cart.Backend)
	assert.Equal(t, 20, cfg.Cart.MaxRequestsPerSecond)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Pricing.Tiers)
	assert.Empty(t, cfg.Stock.Locations)
}

func TestLoadReadsYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := `
store:
  backend: postgres
database:
  host: db.internal
  name: inventory
cart:
  backend: http
  proxies:
    - http://proxy-a:3128
pricing:
  tiers:
    nails:
      - min_qty: 1
        discount: 0
        label: Regular Price
      - min_qty: 20
        discount: 0.1
        label: 10% off 20+ boxes
stock:
  locations:
    - id: boardman
      name: Boardman, OH
    - id: warren
      name: Warren, OH
      is_main: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	t.Setenv("CART_BASE_URL", "https://cart.mbs.test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Backend)
	assert.Equal(t, "host=db.internal port=5432 user=mbs_user password=mbs_pass dbname=inventory sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "http", cfg.Cart.Backend)
	assert.Equal(t, "https://cart.mbs.test", cfg.Cart.BaseURL)
	assert.Equal(t, []string{"http://proxy-a:3128"}, cfg.Cart.Proxies)
	assert.Equal(t, "debug", cfg.Log.Level)

	require.Len(t, cfg.Pricing.Tiers["nails"], 2)
	assert.Equal(t, 20, cfg.Pricing.Tiers["nails"][1].MinQty)
	assert.Equal(t, 0.1, cfg.Pricing.Tiers["nails"][1].Discount)
	assert.Equal(t, "10% off 20+ boxes", cfg.Pricing.Tiers["nails"][1].Label)

	assert.Equal(t, []domain.StockLocation{
		{ID: "boardman", Name: "Boardman, OH"},
		{ID: "warren", Name: "Warren, OH", IsMain: true},
	}, cfg.Stock.Locations)
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("missing.yaml")
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORE_BACKEND=memory\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("STORE_BACKEND") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store.Backend)
}
