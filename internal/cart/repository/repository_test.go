package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/stridewear/storefront/internal/catalog/domain"
)

func TestMemorySessionRepository_CreateAndView(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour, time.Hour)
	defer repo.Close()

	session := repo.Create()
	assert.NotEmpty(t, session.ID)

	var empty bool
	require.NoError(t, repo.View(session.ID, func(s *Session) {
		empty = s.Cart.IsEmpty()
	}))
	assert.True(t, empty)
}

func TestMemorySessionRepository_UnknownID(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour, time.Hour)
	defer repo.Close()

	assert.ErrorIs(t, repo.View("missing", func(*Session) {}), ErrSessionNotFound)
	assert.ErrorIs(t, repo.Mutate("missing", func(*Session) {}), ErrSessionNotFound)
}

func TestMemorySessionRepository_MutatePersists(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour, time.Hour)
	defer repo.Close()

	session := repo.Create()
	product := catalog.Product{ID: 1, Price: 100}

	require.NoError(t, repo.Mutate(session.ID, func(s *Session) {
		s.Cart.Add(product, 2, "")
	}))

	var subtotal int64
	require.NoError(t, repo.View(session.ID, func(s *Session) {
		subtotal = s.Cart.Subtotal()
	}))
	assert.Equal(t, int64(200), subtotal)
}

func TestMemorySessionRepository_ExpiredSessionUnreachable(t *testing.T) {
	repo := NewMemorySessionRepository(time.Millisecond, time.Hour)
	defer repo.Close()

	session := repo.Create()
	time.Sleep(5 * time.Millisecond)

	assert.ErrorIs(t, repo.View(session.ID, func(*Session) {}), ErrSessionNotFound)
}

func TestMemorySessionRepository_SweepEvicts(t *testing.T) {
	repo := NewMemorySessionRepository(time.Millisecond, 5*time.Millisecond)
	defer repo.Close()

	repo.Create()
	repo.Create()

	assert.Eventually(t, func() bool {
		return repo.Len() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestMemorySessionRepository_MutateSlidesExpiry(t *testing.T) {
	repo := NewMemorySessionRepository(50*time.Millisecond, time.Hour)
	defer repo.Close()

	session := repo.Create()

	for i := 0; i < 4; i++ {
		time.Sleep(20 * time.Millisecond)
		require.NoError(t, repo.Mutate(session.ID, func(*Session) {}))
	}
}
