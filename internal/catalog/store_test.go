package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbs/inventory/internal/domain"
	"mbs/inventory/internal/kv"
)

// countingBackend records reads and writes and can be told to fail.
type countingBackend struct {
	kv.Backend
	mu      sync.Mutex
	gets    map[string]int
	sets    map[string]int
	failGet error
	failSet error
}

func newCountingBackend() *countingBackend {
	return &countingBackend{
		Backend: kv.NewMemory(),
		gets:    make(map[string]int),
		sets:    make(map[string]int),
	}
}

func (b *countingBackend) Get(ctx context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	b.gets[key]++
	b.mu.Unlock()
	if b.failGet != nil {
		return nil, b.failGet
	}
	return b.Backend.Get(ctx, key)
}

func (b *countingBackend) Set(ctx context.Context, key string, value []byte) error {
	b.mu.Lock()
	b.sets[key]++
	b.mu.Unlock()
	if b.failSet != nil {
		return b.failSet
	}
	return b.Backend.Set(ctx, key, value)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name  string
		setup func(b *countingBackend)
	}{
		{
			name:  "missing key",
			setup: func(b *countingBackend) {},
		},
		{
			name: "corrupt value",
			setup: func(b *countingBackend) {
				require.NoError(t, b.Backend.Set(ctx, "categories", []byte(`[{"id":`)))
			},
		},
		{
			name: "wrong shape",
			setup: func(b *countingBackend) {
				require.NoError(t, b.Backend.Set(ctx, "categories", []byte(`{"shingles":true}`)))
			},
		},
		{
			name: "null document",
			setup: func(b *countingBackend) {
				require.NoError(t, b.Backend.Set(ctx, "categories", []byte(`null`)))
			},
		},
		{
			name: "backend failure",
			setup: func(b *countingBackend) {
				b.failGet = errors.New("connection refused")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			backend := newCountingBackend()
			tc.setup(backend)
			store := NewStore(backend)

			categories := store.Categories(ctx)
			assert.Equal(t, defaultCategories(), categories)
			assert.Zero(t, backend.sets["categories"], "fallback must not be written back")
		})
	}
}

func TestLoadReadsPersistedValue(t *testing.T) {
	ctx := context.Background()
	backend := newCountingBackend()
	require.NoError(t, backend.Backend.Set(ctx, "categories",
		[]byte(`[{"id":"nails","name":"Nails","image":"n.png","hasSubcategories":false}]`)))

	store := NewStore(backend)
	categories := store.Categories(ctx)

	require.Len(t, categories, 1)
	assert.Equal(t, domain.Category{ID: "nails", Name: "Nails", Image: "n.png"}, categories[0])
}

func TestBackendFailureIsNotCached(t *testing.T) {
	ctx := context.Background()
	backend := newCountingBackend()
	saved := domain.Categories{{ID: "nails", Name: "Nails"}}
	require.NoError(t, NewStore(backend).Save(ctx, domain.KindCategory, saved))

	store := NewStore(backend)
	backend.failGet = errors.New("connection reset")

	assert.Equal(t, defaultCategories(), store.Categories(ctx))
	assert.Error(t, store.Ensure(ctx, domain.KindCategory))

	backend.failGet = nil
	require.NoError(t, store.Ensure(ctx, domain.KindCategory))
	assert.Equal(t, saved, store.Categories(ctx))
}

func TestLoadIsCached(t *testing.T) {
	ctx := context.Background()
	backend := newCountingBackend()
	store := NewStore(backend)

	store.Brands(ctx)
	store.Brands(ctx)
	store.Load(ctx, domain.KindBrand)

	assert.Equal(t, 1, backend.gets["brands"])
}

func TestSaveUpdatesCacheWithoutReparsing(t *testing.T) {
	ctx := context.Background()
	backend := newCountingBackend()
	store := NewStore(backend)

	updated := domain.DirectProducts{
		"nails": {{ID: "staples", Name: "Staples", Price: 30, Stock: 10}},
	}
	require.NoError(t, store.Save(ctx, domain.KindDirectProduct, updated))

	assert.Equal(t, updated, store.DirectProducts(ctx))
	assert.Zero(t, backend.gets["direct-products"])

	raw, err := backend.Backend.Get(ctx, "direct-products")
	require.NoError(t, err)
	assert.JSONEq(t, `{"nails":[{"id":"staples","name":"Staples","image":"","price":30,"stock":10,"hasOptions":false}]}`, string(raw))
}

func TestSaveSurvivesNewStore(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()

	categories := defaultCategories()
	categories[0].Name = "Roof Shingles"
	require.NoError(t, NewStore(backend).Save(ctx, domain.KindCategory, categories))

	reloaded := NewStore(backend).Categories(ctx)
	assert.Equal(t, "Roof Shingles", reloaded[0].Name)
}

func TestSaveRejectsMismatchedKind(t *testing.T) {
	ctx := context.Background()
	backend := newCountingBackend()
	store := NewStore(backend)

	err := store.Save(ctx, domain.KindBrand, defaultCategories())
	assert.Error(t, err)
	assert.Zero(t, backend.sets["brands"])
}

func TestSaveFailureKeepsCache(t *testing.T) {
	ctx := context.Background()
	backend := newCountingBackend()
	store := NewStore(backend)
	before := store.Categories(ctx)

	backend.failSet = errors.New("disk full")
	err := store.Save(ctx, domain.KindCategory, domain.Categories{{ID: "x"}})

	assert.Error(t, err)
	assert.Equal(t, before, store.Categories(ctx))
}

func TestSeedWritesOnlyMissingKinds(t *testing.T) {
	ctx := context.Background()
	backend := newCountingBackend()
	require.NoError(t, backend.Backend.Set(ctx, "brands", []byte(`{bad`)))

	store := NewStore(backend)
	require.NoError(t, store.Seed(ctx))

	for _, kind := range domain.Kinds {
		if kind == domain.KindBrand {
			assert.Zero(t, backend.sets[kind.String()])
			continue
		}
		assert.Equal(t, 1, backend.sets[kind.String()], kind.String())
	}

	raw, err := backend.Backend.Get(ctx, "brands")
	require.NoError(t, err)
	assert.Equal(t, "{bad", string(raw))
}

func TestSnapshotBuildsTree(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kv.NewMemory())
	tree := store.Snapshot(ctx)

	assert.Len(t, tree.Children(nil), 11)

	landmark, ok := tree.Node(domain.NewPath("shingles", "certainteed", "landmark"))
	require.True(t, ok)
	assert.Equal(t, domain.KindProductLine, landmark.Kind)
	assert.True(t, landmark.HasSubProducts)
	assert.Equal(t, 125.99, landmark.Price)

	variants := tree.Children(landmark.Path)
	require.Len(t, variants, 11)
	assert.Equal(t, domain.KindColorVariant, variants[0].Kind)

	swatches := tree.Children(domain.NewPath("hip-and-ridge", "certainteed", "hi-def-pewter"))
	require.Len(t, swatches, 3)
	assert.Equal(t, domain.KindSwatch, swatches[0].Kind)
	assert.Equal(t, "#696969", swatches[0].Hex)

	felts := tree.Children(domain.NewPath("underlayment"))
	require.Len(t, felts, 4)
	assert.Equal(t, domain.KindDirectProduct, felts[0].Kind)
}

func TestWithLockSerializesSameKind(t *testing.T) {
	store := NewStore(kv.NewMemory())

	inside := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		_ = store.WithLock(domain.KindBrand, func() error {
			close(inside)
			<-release
			return nil
		})
	}()
	<-inside

	// A different kind is not blocked.
	require.NoError(t, store.WithLock(domain.KindCategory, func() error { return nil }))

	go func() {
		_ = store.WithLock(domain.KindBrand, func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("second edit of the same kind ran while the first held the lock")
	default:
	}

	close(release)
	<-done
}
