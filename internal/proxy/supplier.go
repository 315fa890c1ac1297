package proxy

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// Supplier hands out egress proxies in round-robin order
type Supplier interface {
	Get() string
	Len() int
}

type supplier struct {
	proxies []string
	current int
	mutex   sync.Mutex
}

// NewSupplier keeps the proxies that can reach healthURL. With no
// proxies configured the supplier is empty and Get returns "".
func NewSupplier(ctx context.Context, proxies []string, healthURL string) Supplier {
	if len(proxies) == 0 {
		return &supplier{}
	}

	log.Infof("🔄 Checking %d cart proxies...", len(proxies))

	valid := make([]bool, len(proxies))
	semaphore := make(chan struct{}, 8)
	var wg sync.WaitGroup

	for i, proxyURL := range proxies {
		wg.Add(1)
		go func(i int, proxyURL string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			valid[i] = isProxyValid(ctx, proxyURL, healthURL)
		}(i, proxyURL)
	}
	wg.Wait()

	// keep configured order so rotation is predictable
	working := make([]string, 0, len(proxies))
	for i, ok := range valid {
		if ok {
			working = append(working, proxies[i])
		} else {
			log.Infof("❌ Proxy %s is not working, skipping", proxies[i])
		}
	}

	log.Infof("✅ Proxy supplier ready with %d of %d proxies", len(working), len(proxies))
	return &supplier{proxies: working}
}

// Get returns the next proxy URL in round-robin fashion
func (p *supplier) Get() string {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if len(p.proxies) == 0 {
		return ""
	}

	proxy := p.proxies[p.current]
	p.current = (p.current + 1) % len(p.proxies)
	return proxy
}

func (p *supplier) Len() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return len(p.proxies)
}

func isProxyValid(ctx context.Context, proxyURL, healthURL string) bool {
	client := resty.New().
		SetTimeout(5 * time.Second).
		SetRetryCount(0).
		SetProxy(proxyURL)

	resp, err := client.R().
		SetContext(ctx).
		Get(healthURL)
	if err != nil {
		log.Debugf("Proxy check failed for %s: %v", proxyURL, err)
		return false
	}
	if resp.IsError() {
		log.Debugf("Proxy check failed for %s with status: %s", proxyURL, resp.Status())
		return false
	}
	return true
}
