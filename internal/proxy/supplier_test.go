package proxy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// forwardProxy answers every proxied request itself.
func forwardProxy(status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
}

func TestSupplierKeepsWorkingProxiesInOrder(t *testing.T) {
	good1 := forwardProxy(http.StatusOK)
	defer good1.Close()
	good2 := forwardProxy(http.StatusOK)
	defer good2.Close()
	failing := forwardProxy(http.StatusBadGateway)
	defer failing.Close()
	dead := forwardProxy(http.StatusOK)
	dead.Close()

	s := NewSupplier(context.Background(),
		[]string{good1.URL, failing.URL, dead.URL, good2.URL},
		"http://cart.mbs.test/healthz",
	)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, good1.URL, s.Get())
	assert.Equal(t, good2.URL, s.Get())
	assert.Equal(t, good1.URL, s.Get())
}

func TestEmptySupplier(t *testing.T) {
	s := NewSupplier(context.Background(), nil, "http://cart.mbs.test/healthz")
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Get())
}
