package editor

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	log "github.com/sirupsen/logrus"
)

var ErrLocked = errors.New("catalog editing is locked")

// Gate guards edit mode behind the single shared admin password. It is
// a UI convenience, not an authentication layer.
type Gate struct {
	hash []byte

	mu       sync.RWMutex
	unlocked bool
}

// NewGate takes a bcrypt hash. An empty hash yields a gate that never
// unlocks.
func NewGate(passwordHash string) (*Gate, error) {
	if passwordHash == "" {
		log.Warn("⚠️ No admin password configured, catalog editing is disabled")
		return &Gate{}, nil
	}
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, fmt.Errorf("failed to read admin password hash: %w", err)
	}
	return &Gate{hash: []byte(passwordHash)}, nil
}

// HashPassword produces a hash suitable for NewGate.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash admin password: %w", err)
	}
	return string(h), nil
}

// Unlock enters edit mode when password matches.
func (g *Gate) Unlock(password string) bool {
	if len(g.hash) == 0 {
		return false
	}
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(password)); err != nil {
		log.Warn("🔒 Rejected admin password")
		return false
	}

	g.mu.Lock()
	g.unlocked = true
	g.mu.Unlock()
	log.Info("🔓 Edit mode enabled")
	return true
}

func (g *Gate) Lock() {
	g.mu.Lock()
	g.unlocked = false
	g.mu.Unlock()
}

func (g *Gate) Unlocked() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.unlocked
}
