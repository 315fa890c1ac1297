package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbs/inventory/internal/config"
	"mbs/inventory/internal/domain"
)

func TestMemoryCartMergesByID(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCart()

	felt := Item{ID: "15lb-felt-default", Name: "15lb Felt", Price: 35.99}
	require.NoError(t, c.AddToCart(ctx, felt, 2))
	require.NoError(t, c.AddToCart(ctx, Item{ID: "staples-default", Name: "Staples", Price: 35.99}, 1))
	require.NoError(t, c.AddToCart(ctx, felt, 3))

	total, err := c.TotalItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, total)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "15lb-felt-default", lines[0].Item.ID)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, "215.94", c.Subtotal().StringFixed(2))
}

func TestMemoryCartRejectsNonPositiveQuantity(t *testing.T) {
	c := NewMemoryCart()
	assert.Error(t, c.AddToCart(context.Background(), Item{ID: "x"}, 0))
	total, _ := c.TotalItems(context.Background())
	assert.Zero(t, total)
}

func TestItemBuilders(t *testing.T) {
	landmark := domain.Node{Kind: domain.KindProductLine, Path: domain.NewPath("shingles", "certainteed", "landmark"), Name: "Landmark"}
	black := domain.Node{Kind: domain.KindColorVariant, Path: landmark.Path.Child("black-1"), Name: "Black 1", Image: "black.jpg"}

	item := ColorOptionItem(landmark, black, 119.69)
	assert.Equal(t, Item{ID: "landmark-black-1-default", Name: "Landmark Black 1", Price: 119.69, Image: "black.jpg"}, item)

	pewter := domain.Node{Kind: domain.KindProductLine, Path: domain.NewPath("hip-and-ridge", "certainteed", "hi-def-pewter"), Name: "Hi Def Pewter", Image: "pewter.jpg"}
	swatch := domain.Node{Kind: domain.KindSwatch, Path: pewter.Path.Child("charcoal-black"), Name: "Charcoal Black"}

	item = SwatchItem(pewter, swatch, 89.99)
	assert.Equal(t, Item{ID: "hi-def-pewter-charcoal-black-default", Name: "Hi Def Pewter - Charcoal Black", Price: 89.99, Image: "pewter.jpg"}, item)

	felt := domain.Node{Kind: domain.KindDirectProduct, Path: domain.NewPath("underlayment", "15lb-felt"), Name: "15lb Felt", Image: "felt.jpg"}
	assert.Equal(t, Item{ID: "15lb-felt-default", Name: "15lb Felt", Price: 35.99, Image: "felt.jpg"}, DirectItem(felt, 35.99))

	ridge := domain.Node{Kind: domain.KindProductLine, Path: domain.NewPath("hip-and-ridge", "certainteed", "shadow-ridge"), Name: "Shadow Ridge", Image: "ridge.jpg"}
	assert.Equal(t, Item{ID: "shadow-ridge-default", Name: "Shadow Ridge", Price: 64.99, Image: "ridge.jpg"}, ProductLineItem(ridge, 64.99))
}

func testCartConfig(baseURL string) config.CartConfig {
	return config.CartConfig{
		BaseURL:               baseURL,
		Timeout:               5,
		MaxRetries:            0,
		MaxRequestsPerSecond:  0,
		CircuitBreakerSeconds: 60,
	}
}

func TestHTTPCartAddAndTotal(t *testing.T) {
	ctx := context.Background()
	var received addRequest
	var total atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/cart/items":
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			total.Add(int32(received.Quantity))
		case r.Method == http.MethodGet && r.URL.Path == "/cart":
		default:
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(cartResponse{TotalItems: int(total.Load())})
	}))
	defer srv.Close()

	c := NewHTTPCart(testCartConfig(srv.URL), nil)

	item := Item{ID: "landmark-black-1", Name: "Landmark Black 1", Price: 107.09, Image: "black.jpg"}
	require.NoError(t, c.AddToCart(ctx, item, 4))
	assert.Equal(t, item, received.Item)
	assert.Equal(t, 4, received.Quantity)

	n, err := c.TotalItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestHTTPCartOpensCircuitWhenOverloaded(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewHTTPCart(testCartConfig(srv.URL), nil)

	err := c.AddToCart(ctx, Item{ID: "staples-default"}, 1)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(1), calls.Load())

	_, err = c.TotalItems(ctx)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(1), calls.Load(), "open circuit must not reach the service")
}

func TestHTTPCartCircuitClosesAfterDelay(t *testing.T) {
	ctx := context.Background()
	var overloaded atomic.Bool
	overloaded.Store(true)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if overloaded.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalItems":7}`))
	}))
	defer srv.Close()

	cfg := testCartConfig(srv.URL)
	cfg.CircuitBreakerSeconds = 0
	c := NewHTTPCart(cfg, nil)

	_, err := c.TotalItems(ctx)
	assert.ErrorIs(t, err, ErrCircuitOpen)

	overloaded.Store(false)
	n, err := c.TotalItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestHTTPCartReportsServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewHTTPCart(testCartConfig(srv.URL), nil)
	err := c.AddToCart(context.Background(), Item{ID: "x"}, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCircuitOpen)

	// a plain error does not open the circuit
	err = c.AddToCart(context.Background(), Item{ID: "x"}, 1)
	assert.NotErrorIs(t, err, ErrCircuitOpen)
}
