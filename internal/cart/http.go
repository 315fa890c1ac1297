package cart

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"mbs/inventory/internal/config"
	"mbs/inventory/internal/proxy"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

var ErrCircuitOpen = errors.New("cart service circuit breaker is open")

type addRequest struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

type cartResponse struct {
	TotalItems int    `json:"totalItems"`
	Lines      []Line `json:"lines,omitempty"`
}

// HTTPCart talks to a remote cart service. Requests are paced, and an
// overloaded service (429/503) opens a circuit breaker for a cool-down
// period during which calls fail fast with ErrCircuitOpen.
type HTTPCart struct {
	rl            ratelimit.Limiter
	baseURL       string
	httpClient    *resty.Client
	proxySupplier proxy.Supplier

	// Circuit breaker for an overloaded cart service
	circuitBreakerMutex sync.RWMutex
	openUntil           time.Time
	circuitBreakerDelay time.Duration
}

func NewHTTPCart(cfg config.CartConfig, proxySupplier proxy.Supplier) *HTTPCart {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("Accept", "application/json")

	if proxySupplier != nil {
		if proxyURL := proxySupplier.Get(); proxyURL != "" {
			client.SetProxy(proxyURL)
			log.Infof("🔗 Using initial cart proxy: %s", proxyURL)
		}
	}

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &HTTPCart{
		rl:                  rl,
		baseURL:             cfg.BaseURL,
		httpClient:          client,
		proxySupplier:       proxySupplier,
		circuitBreakerDelay: time.Duration(cfg.CircuitBreakerSeconds) * time.Second,
	}
}

func (c *HTTPCart) AddToCart(ctx context.Context, item Item, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("invalid quantity %d for %s", quantity, item.ID)
	}

	var out cartResponse
	err := c.do(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetBody(addRequest{Item: item, Quantity: quantity}).
			SetResult(&out).
			Post(c.baseURL + "/cart/items")
	})
	if err != nil {
		return fmt.Errorf("failed to add %s to cart: %w", item.ID, err)
	}

	log.Debugf("🛒 Added %d x %s, cart holds %d items", quantity, item.ID, out.TotalItems)
	return nil
}

func (c *HTTPCart) TotalItems(ctx context.Context) (int, error) {
	var out cartResponse
	err := c.do(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetResult(&out).Get(c.baseURL + "/cart")
	})
	if err != nil {
		return 0, fmt.Errorf("failed to read cart: %w", err)
	}
	return out.TotalItems, nil
}

func (c *HTTPCart) do(ctx context.Context, send func(*resty.Request) (*resty.Response, error)) error {
	if c.isCircuitBreakerOpen() {
		remaining := c.getRemainingCircuitBreakerTime()
		log.Debugf("🚫 Request blocked by circuit breaker. Remaining time: %v", remaining.Round(time.Second))
		return ErrCircuitOpen
	}

	c.rl.Take()

	resp, err := send(c.httpClient.R().SetContext(ctx))
	if err != nil && ctx.Err() == nil && c.rotateProxy() {
		log.Infof("🔄 Retrying with new proxy...")
		resp, err = send(c.httpClient.R().SetContext(ctx))
	}
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return err
	}

	switch {
	case resp.StatusCode() == http.StatusTooManyRequests, resp.StatusCode() == http.StatusServiceUnavailable:
		c.triggerCircuitBreaker()
		return fmt.Errorf("cart service overloaded (%d): %w", resp.StatusCode(), ErrCircuitOpen)
	case resp.IsError():
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}
	return nil
}

// rotateProxy switches to the next proxy, reporting whether there was
// another one to switch to.
func (c *HTTPCart) rotateProxy() bool {
	if c.proxySupplier == nil || c.proxySupplier.Len() < 2 {
		return false
	}
	next := c.proxySupplier.Get()
	log.Infof("🔄 Switching to new proxy: %s", next)
	c.httpClient.SetProxy(next)
	return true
}

func (c *HTTPCart) isCircuitBreakerOpen() bool {
	c.circuitBreakerMutex.RLock()
	now := time.Now()
	wasOpen := now.Before(c.openUntil)
	wasTriggered := !c.openUntil.IsZero()
	c.circuitBreakerMutex.RUnlock()

	if !wasOpen && wasTriggered {
		c.circuitBreakerMutex.Lock()
		// Double-check after acquiring write lock
		if !c.openUntil.IsZero() && !now.Before(c.openUntil) {
			c.openUntil = time.Time{}
			log.Infof("✅ Cart circuit breaker re-enabled - requests are now allowed")
		}
		c.circuitBreakerMutex.Unlock()
	}

	return wasOpen
}

func (c *HTTPCart) triggerCircuitBreaker() {
	c.circuitBreakerMutex.Lock()
	defer c.circuitBreakerMutex.Unlock()

	c.openUntil = time.Now().Add(c.circuitBreakerDelay)
	log.Warnf("🚫 Cart circuit breaker activated! Requests disabled until %v",
		c.openUntil.Format("15:04:05"))
}

func (c *HTTPCart) getRemainingCircuitBreakerTime() time.Duration {
	c.circuitBreakerMutex.RLock()
	defer c.circuitBreakerMutex.RUnlock()

	remaining := time.Until(c.openUntil)
	if remaining < 0 {
		return 0
	}
	return remaining
}
