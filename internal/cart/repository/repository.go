package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	cartDomain "github.com/stridewear/storefront/internal/cart/domain"
	checkoutDomain "github.com/stridewear/storefront/internal/checkout/domain"
	"github.com/stridewear/storefront/pkg/logger"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// Session is one shopper's server-held state: cart, wishlist and the
// applied-coupon slot. One instance per active session, torn down on
// expiry.
type Session struct {
	ID        string
	Cart      cartDomain.Cart
	Wishlist  cartDomain.Wishlist
	Coupon    *checkoutDomain.AppliedCoupon
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionRepository provides access to shopper sessions. Reads and
// writes go through closures executed under the store lock, so session
// state is never handed out for unguarded mutation.
type SessionRepository interface {
	Create() *Session
	// View runs fn read-only against the session.
	View(id string, fn func(*Session)) error
	// Mutate runs fn against the session and extends its TTL.
	Mutate(id string, fn func(*Session)) error
}

// MemorySessionRepository keeps sessions in-process with a sliding TTL
// and a background expiry sweep.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration

	stop chan struct{}
	once sync.Once
}

// NewMemorySessionRepository creates the store and starts its expiry
// sweep loop.
func NewMemorySessionRepository(ttl, sweepInterval time.Duration) *MemorySessionRepository {
	r := &MemorySessionRepository{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go r.sweep(sweepInterval)
	return r
}

// Create registers a new empty session.
func (r *MemorySessionRepository) Create() *Session {
	now := time.Now()
	session := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(r.ttl),
	}

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	logger.Logger.Debug().Str("session_id", session.ID).Msg("Session created")
	return session
}

// View runs fn read-only against the session.
func (r *MemorySessionRepository) View(id string, fn func(*Session)) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok || time.Now().After(session.ExpiresAt) {
		return ErrSessionNotFound
	}
	fn(session)
	return nil
}

// Mutate runs fn against the session under the store lock and slides
// the expiry window.
func (r *MemorySessionRepository) Mutate(id string, fn func(*Session)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok || time.Now().After(session.ExpiresAt) {
		return ErrSessionNotFound
	}
	fn(session)
	session.ExpiresAt = time.Now().Add(r.ttl)
	return nil
}

// Len reports the number of live sessions.
func (r *MemorySessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Close stops the expiry sweep loop.
func (r *MemorySessionRepository) Close() {
	r.once.Do(func() { close(r.stop) })
}

func (r *MemorySessionRepository) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.evictExpired()
		}
	}
}

func (r *MemorySessionRepository) evictExpired() {
	now := time.Now()

	r.mu.Lock()
	var evicted int
	for id, session := range r.sessions {
		if now.After(session.ExpiresAt) {
			delete(r.sessions, id)
			evicted++
		}
	}
	r.mu.Unlock()

	if evicted > 0 {
		logger.Logger.Debug().Int("evicted", evicted).Msg("Expired sessions removed")
	}
}
